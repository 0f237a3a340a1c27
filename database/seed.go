package database

import (
	"fmt"
	"log"

	"dds/models"

	"gorm.io/gorm"
)

// Начальные данные справочников. Совпадение определяется по естественным
// уникальным ключам, поэтому повторный запуск ничего не дублирует.

type seedCategory struct {
	Name          string
	OperationType string
	Subcategories []string
}

var seedStatuses = []models.Status{
	{Name: "Бизнес", Description: "Бизнес операции"},
	{Name: "Личное", Description: "Личные финансы"},
	{Name: "Налог", Description: "Налоговые операции"},
}

var seedOperationTypes = []models.OperationType{
	{Name: "Пополнение", Description: "Поступление денежных средств"},
	{Name: "Списание", Description: "Расход денежных средств"},
}

var seedCategories = []seedCategory{
	{Name: "Маркетинг", OperationType: "Списание", Subcategories: []string{"Avito", "Farpost", "Яндекс.Директ"}},
	{Name: "Инфраструктура", OperationType: "Списание", Subcategories: []string{"VPS", "Proxy", "Домены"}},
	{Name: "Зарплата", OperationType: "Пополнение", Subcategories: []string{"Аванс", "Основная зарплата", "Премия"}},
}

// Seed загружает начальный набор статусов, типов операций и дерево
// категорий/подкатегорий. Операция идемпотентна.
func Seed(db *gorm.DB) error {
	for _, s := range seedStatuses {
		var status models.Status
		if err := db.Where("name = ?", s.Name).
			Attrs(models.Status{Name: s.Name, Description: s.Description}).
			FirstOrCreate(&status).Error; err != nil {
			return fmt.Errorf("статус %q: %w", s.Name, err)
		}
	}

	for _, ot := range seedOperationTypes {
		var opType models.OperationType
		if err := db.Where("name = ?", ot.Name).
			Attrs(models.OperationType{Name: ot.Name, Description: ot.Description}).
			FirstOrCreate(&opType).Error; err != nil {
			return fmt.Errorf("тип операции %q: %w", ot.Name, err)
		}
	}

	for _, c := range seedCategories {
		var opType models.OperationType
		if err := db.Where("name = ?", c.OperationType).First(&opType).Error; err != nil {
			return fmt.Errorf("тип операции %q не найден: %w", c.OperationType, err)
		}

		var category models.Category
		if err := db.Where("name = ? AND operation_type_id = ?", c.Name, opType.ID).
			Attrs(models.Category{Name: c.Name, OperationTypeID: opType.ID}).
			FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("категория %q: %w", c.Name, err)
		}

		for _, subName := range c.Subcategories {
			var subcategory models.Subcategory
			if err := db.Where("name = ? AND category_id = ?", subName, category.ID).
				Attrs(models.Subcategory{Name: subName, CategoryID: category.ID}).
				FirstOrCreate(&subcategory).Error; err != nil {
				return fmt.Errorf("подкатегория %q: %w", subName, err)
			}
		}
	}

	log.Println("начальные данные загружены")
	return nil
}
