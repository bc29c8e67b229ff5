package models

import (
	"time"
)

// Transaction 收支记录模型
// 金额符号区分收支：正数为收入，负数为支出，不单独维护类型字段
type Transaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Amount    float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date      time.Time `json:"date" gorm:"not null;index"`
	Category  string    `json:"category" gorm:"size:50;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// Category 收支类别常量（前端表单使用的固定类别，服务端不做校验）
const (
	CategoryFood     = "Food"
	CategoryBills    = "Bills"
	CategorySalary   = "Salary"
	CategoryTravel   = "Travel"
	CategoryShopping = "Shopping"
	CategoryOther    = "Other"
)

// GetCategories 获取所有收支类别
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryBills,
		CategorySalary,
		CategoryTravel,
		CategoryShopping,
		CategoryOther,
	}
}
