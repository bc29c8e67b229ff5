package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"tracker/database"
	"tracker/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 收支记录处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建收支记录处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// CreateTransactionRequest 创建收支记录请求
type CreateTransactionRequest struct {
	Title    string   `json:"title" binding:"required" example:"Paycheck"`
	Amount   *float64 `json:"amount" binding:"required" example:"1500"`
	Date     string   `json:"date" binding:"required" example:"2024-01-05"`
	Category string   `json:"category" binding:"required" example:"Salary"`
}

// UpdateTransactionRequest 更新收支记录请求（所有字段可选，只覆盖传入的字段）
type UpdateTransactionRequest struct {
	Title    *string  `json:"title" example:"Paycheck"`
	Amount   *float64 `json:"amount" example:"1500"`
	Date     *string  `json:"date" example:"2024-01-05"`
	Category *string  `json:"category" example:"Salary"`
}

// parseDate 解析日期字段
// 前端表单提交 2006-01-02，回显记录再次提交时可能是 RFC3339
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// List 获取收支记录列表
// @Summary 获取收支记录列表
// @Description 返回全部收支记录，按日期倒序排列，可选按类别筛选
// @Tags 收支记录
// @Produce json
// @Param category query string false "类别筛选（精确匹配）"
// @Success 200 {array} models.Transaction "记录数组"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Transaction{})

	// 类别筛选（可选；前端默认自行过滤，此参数供其他调用方使用）
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		query = query.Where("category = ?", category)
	}

	transactions := make([]models.Transaction, 0)
	if err := query.Order("date DESC, id DESC").Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// Create 创建收支记录
// @Summary 创建收支记录
// @Description 创建一条新的收支记录，金额正数为收入、负数为支出
// @Tags 收支记录
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "收支记录信息"
// @Success 201 {object} models.Transaction "创建成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 解析日期
	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	transaction := models.Transaction{
		Title:    req.Title,
		Amount:   *req.Amount,
		Date:     date,
		Category: req.Category,
	}

	if err := database.DB.Create(&transaction).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "创建收支记录失败"))
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// Update 更新收支记录
// @Summary 更新收支记录
// @Description 更新指定的收支记录，只覆盖请求中出现的字段
// @Tags 收支记录
// @Accept json
// @Produce json
// @Param id path int true "收支记录ID"
// @Param request body UpdateTransactionRequest true "收支记录信息"
// @Success 200 {object} models.Transaction "更新成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} MessageResponse "记录不存在"
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Transaction not found")
		return
	}

	var transaction models.Transaction
	if err := database.DB.First(&transaction, uint(id)).Error; err != nil {
		NotFound(c, "Transaction not found")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 更新字段
	updates := make(map[string]interface{})
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			BadRequest(c, "标题不能为空")
			return
		}
		updates["title"] = *req.Title
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		updates["date"] = date
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&transaction).Updates(updates).Error; err != nil {
			BadRequest(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	// 重新获取更新后的记录
	database.DB.First(&transaction, transaction.ID)
	c.JSON(http.StatusOK, transaction)
}

// Delete 删除收支记录
// @Summary 删除收支记录
// @Description 删除指定的收支记录
// @Tags 收支记录
// @Produce json
// @Param id path int true "收支记录ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 404 {object} MessageResponse "记录不存在"
// @Failure 500 {object} ErrorResponse "删除失败"
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Transaction not found")
		return
	}

	var transaction models.Transaction
	if err := database.DB.First(&transaction, uint(id)).Error; err != nil {
		NotFound(c, "Transaction not found")
		return
	}

	if err := database.DB.Delete(&transaction).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	Message(c, "Transaction deleted")
}

// GetCategories 获取收支类别列表
// @Summary 获取收支类别列表
// @Description 返回前端表单使用的固定类别列表
// @Tags 收支记录
// @Produce json
// @Success 200 {array} string "类别数组"
// @Router /api/categories [get]
func (h *TransactionHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.GetCategories())
}
