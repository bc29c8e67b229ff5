package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCategories(t *testing.T) {
	categories := GetCategories()
	assert.Equal(t, []string{
		CategoryFood,
		CategoryBills,
		CategorySalary,
		CategoryTravel,
		CategoryShopping,
		CategoryOther,
	}, categories)
	assert.Len(t, categories, 6)
}

func TestTransactionTableName(t *testing.T) {
	assert.Equal(t, "transactions", Transaction{}.TableName())
}
