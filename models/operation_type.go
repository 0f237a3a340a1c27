package models

import "time"

// OperationType тип операции — вершина классификации (Пополнение, Списание).
// Удаление типа каскадно удаляет его категории и их подкатегории.
type OperationType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (OperationType) TableName() string {
	return "operation_types"
}
