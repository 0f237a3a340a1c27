package models

import "time"

// Category категория операции, привязана к типу операции.
// Название уникально в рамках своего типа операции.
// Удаление типа операции каскадно удаляет его категории.
type Category struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Name            string        `json:"name" gorm:"size:100;not null;uniqueIndex:idx_categories_name_operation_type"`
	OperationTypeID uint          `json:"operation_type" gorm:"not null;uniqueIndex:idx_categories_name_operation_type;index"`
	Description     string        `json:"description" gorm:"type:text"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	OperationType   OperationType `json:"-" gorm:"foreignKey:OperationTypeID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string {
	return "categories"
}
