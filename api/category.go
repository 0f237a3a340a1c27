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

// CategoryHandler CRUD справочника категорий
type CategoryHandler struct{}

// NewCategoryHandler создаёт обработчик категорий
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryRequest тело запроса создания/обновления категории
type CategoryRequest struct {
	Name          *string `json:"name"`
	OperationType *uint   `json:"operation_type"`
	Description   *string `json:"description"`
}

// CategoryView категория с развёрнутым названием типа операции
type CategoryView struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	OperationType     uint   `json:"operation_type"`
	OperationTypeName string `json:"operation_type_name"`
	Description       string `json:"description"`
}

type categoryRow struct {
	ID                uint
	Name              string
	OperationTypeID   uint
	OperationTypeName string
	Description       string
}

const msgCategoryExists = "Категория с таким названием уже существует для этого типа операции."

func categoryViewQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Category{}).
		Select("categories.id, categories.name, categories.operation_type_id, categories.description, operation_types.name AS operation_type_name").
		Joins("JOIN operation_types ON operation_types.id = categories.operation_type_id")
}

func (r categoryRow) view() CategoryView {
	return CategoryView{
		ID:                r.ID,
		Name:              r.Name,
		OperationType:     r.OperationTypeID,
		OperationTypeName: r.OperationTypeName,
		Description:       r.Description,
	}
}

// List получить список категорий
// @Summary Получить список категорий
// @Description Возвращает категории с фильтрацией по типу операции и поиском по названию
// @Tags categories
// @Produce json
// @Param operation_type query int false "Фильтр по типу операции"
// @Param search query string false "Поиск по названию"
// @Success 200 {array} CategoryView
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	query := categoryViewQuery(database.DB)

	if opType := c.Query("operation_type"); opType != "" {
		if id, err := strconv.ParseUint(opType, 10, 32); err == nil {
			query = query.Where("categories.operation_type_id = ?", uint(id))
		}
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("categories.name LIKE ?", "%"+search+"%")
	}

	var rows []categoryRow
	if err := query.Order("categories.id ASC").Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}

	views := make([]CategoryView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	OK(c, views)
}

// Get получить категорию по идентификатору
// @Summary Получить категорию по ID
// @Tags categories
// @Produce json
// @Param id path int true "ID категории"
// @Success 200 {object} CategoryView
// @Failure 404 {object} map[string]string
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	category, ok := h.load(c)
	if !ok {
		return
	}
	h.respondView(c, category.ID, false)
}

// Create создать категорию
// @Summary Создать новую категорию
// @Description Создаёт категорию, привязанную к типу операции. Название уникально в рамках типа операции.
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "Категория"
// @Success 201 {object} CategoryView
// @Failure 400 {object} models.ValidationErrors
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректное тело запроса"))
		return
	}

	errs := models.ValidationErrors{}
	name := checkDictName(req.Name, errs)
	opTypeID := h.checkOperationType(req.OperationType, errs)
	if errs.Empty() {
		var existing models.Category
		if err := database.DB.Where("name = ? AND operation_type_id = ?", name, opTypeID).
			First(&existing).Error; err == nil {
			errs.Add("name", msgCategoryExists)
		}
	}
	if !errs.Empty() {
		FieldErrors(c, errs)
		return
	}

	category := models.Category{Name: name, OperationTypeID: opTypeID}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if err := database.DB.Create(&category).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "создание не выполнено"))
		return
	}
	h.respondView(c, category.ID, true)
}

// Update полностью обновить категорию.
// Частичное обновление для иерархических справочников не поддерживается.
// @Summary Обновить категорию
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "ID категории"
// @Param request body CategoryRequest true "Категория"
// @Success 200 {object} CategoryView
// @Failure 400 {object} models.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	category, ok := h.load(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректное тело запроса"))
		return
	}

	errs := models.ValidationErrors{}
	name := checkDictName(req.Name, errs)
	opTypeID := h.checkOperationType(req.OperationType, errs)
	if errs.Empty() {
		var existing models.Category
		if err := database.DB.
			Where("name = ? AND operation_type_id = ? AND id != ?", name, opTypeID, category.ID).
			First(&existing).Error; err == nil {
			errs.Add("name", msgCategoryExists)
		}
	}
	if !errs.Empty() {
		FieldErrors(c, errs)
		return
	}

	category.Name = name
	category.OperationTypeID = opTypeID
	category.Description = ""
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := database.DB.Save(category).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "обновление не выполнено"))
		return
	}
	h.respondView(c, category.ID, false)
}

// Delete удалить категорию вместе с её подкатегориями.
// Категория, на которую ссылается операция ДДС, защищена от удаления.
// @Summary Удалить категорию
// @Description Каскадно удаляет категорию и её подкатегории
// @Tags categories
// @Param id path int true "ID категории"
// @Success 204 "Удалено"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	category, ok := h.load(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := guardMovementRefs(tx, "category_id", category.ID); err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).
			Delete(&models.Subcategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
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

func (h *CategoryHandler) load(c *gin.Context) (*models.Category, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c)
		return nil, false
	}
	var category models.Category
	if err := database.DB.First(&category, uint(id)).Error; err != nil {
		NotFound(c)
		return nil, false
	}
	return &category, true
}

func (h *CategoryHandler) checkOperationType(id *uint, errs models.ValidationErrors) uint {
	if id == nil {
		errs.Add("operation_type", models.MsgFieldRequired)
		return 0
	}
	var opType models.OperationType
	if err := database.DB.First(&opType, *id).Error; err != nil {
		errs.Add("operation_type", models.MsgObjectNotFound)
		return 0
	}
	return opType.ID
}

func (h *CategoryHandler) respondView(c *gin.Context, id uint, created bool) {
	var rows []categoryRow
	if err := categoryViewQuery(database.DB).
		Where("categories.id = ?", id).Limit(1).Scan(&rows).Error; err != nil || len(rows) == 0 {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}
	if created {
		Created(c, rows[0].view())
		return
	}
	OK(c, rows[0].view())
}
