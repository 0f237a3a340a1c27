package api

import (
	"errors"
	"strconv"
	"strings"

	"dds/database"
	"dds/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubcategoryHandler CRUD справочника подкатегорий
type SubcategoryHandler struct{}

// NewSubcategoryHandler создаёт обработчик подкатегорий
func NewSubcategoryHandler() *SubcategoryHandler {
	return &SubcategoryHandler{}
}

// SubcategoryRequest тело запроса создания/обновления подкатегории
type SubcategoryRequest struct {
	Name        *string `json:"name"`
	Category    *uint   `json:"category"`
	Description *string `json:"description"`
}

// SubcategoryView подкатегория с развёрнутыми названиями родителей
type SubcategoryView struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Category          uint   `json:"category"`
	CategoryName      string `json:"category_name"`
	OperationTypeName string `json:"operation_type_name"`
	Description       string `json:"description"`
}

type subcategoryRow struct {
	ID                uint
	Name              string
	CategoryID        uint
	CategoryName      string
	OperationTypeName string
	Description       string
}

const msgSubcategoryExists = "Подкатегория с таким названием уже существует для этой категории."

func subcategoryViewQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Subcategory{}).
		Select("subcategories.id, subcategories.name, subcategories.category_id, subcategories.description, categories.name AS category_name, operation_types.name AS operation_type_name").
		Joins("JOIN categories ON categories.id = subcategories.category_id").
		Joins("JOIN operation_types ON operation_types.id = categories.operation_type_id")
}

func (r subcategoryRow) view() SubcategoryView {
	return SubcategoryView{
		ID:                r.ID,
		Name:              r.Name,
		Category:          r.CategoryID,
		CategoryName:      r.CategoryName,
		OperationTypeName: r.OperationTypeName,
		Description:       r.Description,
	}
}

// List получить список подкатегорий
// @Summary Получить список подкатегорий
// @Description Возвращает подкатегории с фильтрацией по категории или по типу операции родительской категории
// @Tags subcategories
// @Produce json
// @Param category query int false "Фильтр по категории"
// @Param category__operation_type query int false "Фильтр по типу операции родительской категории"
// @Param search query string false "Поиск по названию"
// @Success 200 {array} SubcategoryView
// @Router /api/subcategories [get]
func (h *SubcategoryHandler) List(c *gin.Context) {
	query := subcategoryViewQuery(database.DB)

	if category := c.Query("category"); category != "" {
		if id, err := strconv.ParseUint(category, 10, 32); err == nil {
			query = query.Where("subcategories.category_id = ?", uint(id))
		}
	}
	if opType := c.Query("category__operation_type"); opType != "" {
		if id, err := strconv.ParseUint(opType, 10, 32); err == nil {
			query = query.Where("categories.operation_type_id = ?", uint(id))
		}
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("subcategories.name LIKE ?", "%"+search+"%")
	}

	var rows []subcategoryRow
	if err := query.Order("subcategories.id ASC").Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}

	views := make([]SubcategoryView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	OK(c, views)
}

// Get получить подкатегорию по идентификатору
// @Summary Получить подкатегорию по ID
// @Tags subcategories
// @Produce json
// @Param id path int true "ID подкатегории"
// @Success 200 {object} SubcategoryView
// @Failure 404 {object} map[string]string
// @Router /api/subcategories/{id} [get]
func (h *SubcategoryHandler) Get(c *gin.Context) {
	subcategory, ok := h.load(c)
	if !ok {
		return
	}
	h.respondView(c, subcategory.ID, false)
}

// Create создать подкатегорию
// @Summary Создать новую подкатегорию
// @Description Создаёт подкатегорию, привязанную к категории. Название уникально в рамках категории.
// @Tags subcategories
// @Accept json
// @Produce json
// @Param request body SubcategoryRequest true "Подкатегория"
// @Success 201 {object} SubcategoryView
// @Failure 400 {object} models.ValidationErrors
// @Router /api/subcategories [post]
func (h *SubcategoryHandler) Create(c *gin.Context) {
	var req SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректное тело запроса"))
		return
	}

	errs := models.ValidationErrors{}
	name := checkDictName(req.Name, errs)
	categoryID := h.checkCategory(req.Category, errs)
	if errs.Empty() {
		var existing models.Subcategory
		if err := database.DB.Where("name = ? AND category_id = ?", name, categoryID).
			First(&existing).Error; err == nil {
			errs.Add("name", msgSubcategoryExists)
		}
	}
	if !errs.Empty() {
		FieldErrors(c, errs)
		return
	}

	subcategory := models.Subcategory{Name: name, CategoryID: categoryID}
	if req.Description != nil {
		subcategory.Description = *req.Description
	}
	if err := database.DB.Create(&subcategory).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "создание не выполнено"))
		return
	}
	h.respondView(c, subcategory.ID, true)
}

// Update полностью обновить подкатегорию.
// Частичное обновление для иерархических справочников не поддерживается.
// @Summary Обновить подкатегорию
// @Tags subcategories
// @Accept json
// @Produce json
// @Param id path int true "ID подкатегории"
// @Param request body SubcategoryRequest true "Подкатегория"
// @Success 200 {object} SubcategoryView
// @Failure 400 {object} models.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/subcategories/{id} [put]
func (h *SubcategoryHandler) Update(c *gin.Context) {
	subcategory, ok := h.load(c)
	if !ok {
		return
	}

	var req SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректное тело запроса"))
		return
	}

	errs := models.ValidationErrors{}
	name := checkDictName(req.Name, errs)
	categoryID := h.checkCategory(req.Category, errs)
	if errs.Empty() {
		var existing models.Subcategory
		if err := database.DB.
			Where("name = ? AND category_id = ? AND id != ?", name, categoryID, subcategory.ID).
			First(&existing).Error; err == nil {
			errs.Add("name", msgSubcategoryExists)
		}
	}
	if !errs.Empty() {
		FieldErrors(c, errs)
		return
	}

	subcategory.Name = name
	subcategory.CategoryID = categoryID
	subcategory.Description = ""
	if req.Description != nil {
		subcategory.Description = *req.Description
	}

	if err := database.DB.Save(subcategory).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "обновление не выполнено"))
		return
	}
	h.respondView(c, subcategory.ID, false)
}

// Delete удалить подкатегорию.
// Подкатегория, на которую ссылается операция ДДС, защищена от удаления.
// @Summary Удалить подкатегорию
// @Tags subcategories
// @Param id path int true "ID подкатегории"
// @Success 204 "Удалено"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/subcategories/{id} [delete]
func (h *SubcategoryHandler) Delete(c *gin.Context) {
	subcategory, ok := h.load(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := guardMovementRefs(tx, "subcategory_id", subcategory.ID); err != nil {
			return err
		}
		return tx.Delete(subcategory).Error
	})
	switch {
	case errors.Is(err, errProtectedByMovements):
		Conflict(c, msgProtectedByMovements)
	case err != nil:
		InternalError(c, SafeErrorMessage(err, "удаление не выполнено"))
	default:
		NoContent(c)
	}
}

func (h *SubcategoryHandler) load(c *gin.Context) (*models.Subcategory, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c)
		return nil, false
	}
	var subcategory models.Subcategory
	if err := database.DB.First(&subcategory, uint(id)).Error; err != nil {
		NotFound(c)
		return nil, false
	}
	return &subcategory, true
}

func (h *SubcategoryHandler) checkCategory(id *uint, errs models.ValidationErrors) uint {
	if id == nil {
		errs.Add("category", models.MsgFieldRequired)
		return 0
	}
	var category models.Category
	if err := database.DB.First(&category, *id).Error; err != nil {
		errs.Add("category", models.MsgObjectNotFound)
		return 0
	}
	return category.ID
}

func (h *SubcategoryHandler) respondView(c *gin.Context, id uint, created bool) {
	var rows []subcategoryRow
	if err := subcategoryViewQuery(database.DB).
		Where("subcategories.id = ?", id).Limit(1).Scan(&rows).Error; err != nil || len(rows) == 0 {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}
	if created {
		Created(c, rows[0].view())
		return
	}
	OK(c, rows[0].view())
}
