package api

import (
	"net/http"

	"tracker/database"
	"tracker/models"

	"github.com/gin-gonic/gin"
)

// SummaryResponse 收支汇总返回
// 金额为 0 的记录在符号判定中归入支出一侧，但对两个合计均无贡献
type SummaryResponse struct {
	Income   float64 `json:"income" example:"5000.00"`   // 收入总和（正数金额之和）
	Expenses float64 `json:"expenses" example:"-123.45"` // 支出总和（负数金额之和）
	Balance  float64 `json:"balance" example:"4876.55"`  // 结余 = 收入 + 支出
}

// GetSummary 获取收支汇总
// @Summary 获取收支汇总
// @Description 统计收入总和（正数金额）、支出总和（负数金额）与结余。浏览器端自行从完整列表计算同样口径的合计，本接口供其他调用方使用。
// @Tags 统计
// @Produce json
// @Success 200 {object} SummaryResponse "获取成功"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	var income float64
	var expenses float64

	if err := database.DB.Model(&models.Transaction{}).
		Where("amount > 0").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&income).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if err := database.DB.Model(&models.Transaction{}).
		Where("amount < 0").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Income:   income,
		Expenses: expenses,
		Balance:  income + expenses,
	})
}
