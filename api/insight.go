package api

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"

	"tracker/config"
	"tracker/models"
	"tracker/service"

	"github.com/gin-gonic/gin"
)

// InsightHandler AI分析代理处理器
// 纯透传：组装提示词、转发到外部生成接口、返回文本，无缓存无重试
type InsightHandler struct {
	cfg *config.Config
}

// NewInsightHandler 创建AI分析代理处理器
func NewInsightHandler(cfg *config.Config) *InsightHandler {
	return &InsightHandler{cfg: cfg}
}

// InsightsRequest 财务分析请求
type InsightsRequest struct {
	Transactions []models.Transaction `json:"transactions"`
}

// GoalsRequest 理财目标请求
type GoalsRequest struct {
	Income   *float64 `json:"income" binding:"required" example:"1500"`
	Expenses *float64 `json:"expenses" binding:"required" example:"-200"`
}

// TextResponse 生成文本响应
type TextResponse struct {
	Text string `json:"text"`
}

// Insights 生成财务分析
// @Summary 生成财务分析
// @Description 将收支记录列表嵌入提示词，转发到外部生成接口并返回分析文本
// @Tags AI
// @Accept json
// @Produce json
// @Param request body InsightsRequest true "收支记录列表"
// @Success 200 {object} TextResponse "生成成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "上游调用失败"
// @Router /api/llm/insights [post]
func (h *InsightHandler) Insights(c *gin.Context) {
	var req InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 记录列表原样序列化进提示词
	serialized, err := json.Marshal(req.Transactions)
	if err != nil {
		InternalError(c, "Failed to generate insights")
		return
	}
	prompt := "Act as a personal financial advisor. Analyze the following transactions and provide a concise, actionable summary:\n" + string(serialized)

	text, err := service.GenerateText(h.cfg.AI.APIURL, "You are a friendly financial advisor.", prompt, h.cfg.AI.Timeout)
	if err != nil {
		log.Printf("生成财务分析失败: %v", err)
		InternalError(c, "Failed to generate insights")
		return
	}

	c.JSON(http.StatusOK, TextResponse{Text: text})
}

// Goals 生成理财目标建议
// @Summary 生成理财目标建议
// @Description 根据收入和支出总额组装提示词，转发到外部生成接口并返回建议文本
// @Tags AI
// @Accept json
// @Produce json
// @Param request body GoalsRequest true "收入与支出总额"
// @Success 200 {object} TextResponse "生成成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 500 {object} ErrorResponse "上游调用失败"
// @Router /api/llm/goals [post]
func (h *InsightHandler) Goals(c *gin.Context) {
	var req GoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	prompt := fmt.Sprintf(
		"Act as a financial coach. Based on total income $%.2f and expenses $%.2f, suggest a simple achievable financial goal.",
		*req.Income, math.Abs(*req.Expenses))

	text, err := service.GenerateText(h.cfg.AI.APIURL, "You are a helpful financial coach.", prompt, h.cfg.AI.Timeout)
	if err != nil {
		log.Printf("生成理财目标失败: %v", err)
		InternalError(c, "Failed to generate a financial goal")
		return
	}

	c.JSON(http.StatusOK, TextResponse{Text: text})
}
