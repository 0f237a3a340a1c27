package models

import "time"

// Subcategory подкатегория операции, привязана к категории.
// Название уникально в рамках своей категории.
// Удаление категории каскадно удаляет её подкатегории.
type Subcategory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_subcategories_name_category"`
	CategoryID  uint      `json:"category" gorm:"not null;uniqueIndex:idx_subcategories_name_category;index"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Category    Category  `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (Subcategory) TableName() string {
	return "subcategories"
}
