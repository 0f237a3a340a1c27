package api

import (
	"strconv"
	"strings"

	"dds/database"
	"dds/models"

	"github.com/gin-gonic/gin"
)

// AutocompleteHandler подбор вариантов для зависимых выпадающих списков.
// Без выбранного родителя список всегда пуст: «не выбран родитель — нет
// вариантов» используется формами как блокировка дочернего поля.
type AutocompleteHandler struct{}

// NewAutocompleteHandler создаёт обработчик автодополнения
func NewAutocompleteHandler() *AutocompleteHandler {
	return &AutocompleteHandler{}
}

// AutocompleteItem один вариант выпадающего списка
type AutocompleteItem struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// Categories варианты категорий для выбранного типа операции
// @Summary Автодополнение категорий
// @Description Возвращает категории выбранного типа операции, при необходимости суженные подстрокой. Без operation_type список пуст.
// @Tags autocomplete
// @Produce json
// @Param operation_type query int false "ID типа операции"
// @Param q query string false "Подстрока названия"
// @Success 200 {object} map[string][]AutocompleteItem
// @Router /category-autocomplete [get]
func (h *AutocompleteHandler) Categories(c *gin.Context) {
	opType, ok := parentParam(c, "operation_type")
	if !ok {
		OK(c, gin.H{"results": []AutocompleteItem{}})
		return
	}

	query := database.DB.Model(&models.Category{}).Where("operation_type_id = ?", opType)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}

	var categories []models.Category
	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}

	items := make([]AutocompleteItem, 0, len(categories))
	for _, cat := range categories {
		items = append(items, AutocompleteItem{ID: cat.ID, Text: cat.Name})
	}
	OK(c, gin.H{"results": items})
}

// Subcategories варианты подкатегорий для выбранной категории
// @Summary Автодополнение подкатегорий
// @Description Возвращает подкатегории выбранной категории, при необходимости суженные подстрокой. Без category список пуст.
// @Tags autocomplete
// @Produce json
// @Param category query int false "ID категории"
// @Param q query string false "Подстрока названия"
// @Success 200 {object} map[string][]AutocompleteItem
// @Router /subcategory-autocomplete [get]
func (h *AutocompleteHandler) Subcategories(c *gin.Context) {
	category, ok := parentParam(c, "category")
	if !ok {
		OK(c, gin.H{"results": []AutocompleteItem{}})
		return
	}

	query := database.DB.Model(&models.Subcategory{}).Where("category_id = ?", category)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}

	var subcategories []models.Subcategory
	if err := query.Order("name ASC").Find(&subcategories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}

	items := make([]AutocompleteItem, 0, len(subcategories))
	for _, sub := range subcategories {
		items = append(items, AutocompleteItem{ID: sub.ID, Text: sub.Name})
	}
	OK(c, gin.H{"results": items})
}

// parentParam извлекает идентификатор родителя; false, если он не передан
// или нечитаем (это не ошибка, а пустой список вариантов)
func parentParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
