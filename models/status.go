package models

import "time"

// Status статус операции (Бизнес, Личное, Налог и т.д.).
// Используется записями журнала независимо от классификации.
type Status struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Status) TableName() string {
	return "statuses"
}
