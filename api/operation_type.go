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

// OperationTypeHandler CRUD справочника типов операций
type OperationTypeHandler struct{}

// NewOperationTypeHandler создаёт обработчик типов операций
func NewOperationTypeHandler() *OperationTypeHandler {
	return &OperationTypeHandler{}
}

// OperationTypeRequest тело запроса создания/обновления типа операции
type OperationTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

const msgOperationTypeExists = "Тип операции с таким названием уже существует."

// List получить список типов операций
// @Summary Получить список типов операций
// @Tags operation_types
// @Produce json
// @Param search query string false "Поиск по названию"
// @Success 200 {array} models.OperationType
// @Router /api/operation_types [get]
func (h *OperationTypeHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.OperationType{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var opTypes []models.OperationType
	if err := query.Order("id ASC").Find(&opTypes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}
	OK(c, opTypes)
}

// Get получить тип операции по идентификатору
// @Summary Получить тип операции по ID
// @Tags operation_types
// @Produce json
// @Param id path int true "ID типа операции"
// @Success 200 {object} models.OperationType
// @Failure 404 {object} map[string]string
// @Router /api/operation_types/{id} [get]
func (h *OperationTypeHandler) Get(c *gin.Context) {
	opType, ok := h.load(c)
	if !ok {
		return
	}
	OK(c, opType)
}

// Create создать тип операции
// @Summary Создать новый тип операции
// @Tags operation_types
// @Accept json
// @Produce json
// @Param request body OperationTypeRequest true "Тип операции"
// @Success 201 {object} models.OperationType
// @Failure 400 {object} models.ValidationErrors
// @Router /api/operation_types [post]
func (h *OperationTypeHandler) Create(c *gin.Context) {
	var req OperationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректное тело запроса"))
		return
	}

	errs := models.ValidationErrors{}
	name := checkDictName(req.Name, errs)
	if !errs.Empty() {
		FieldErrors(c, errs)
		return
	}

	var existing models.OperationType
	if err := database.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		errs.Add("name", msgOperationTypeExists)
		FieldErrors(c, errs)
		return
	}

	opType := models.OperationType{Name: name}
	if req.Description != nil {
		opType.Description = *req.Description
	}
	if err := database.DB.Create(&opType).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "создание не выполнено"))
		return
	}
	Created(c, opType)
}

// Update полностью обновить тип операции.
// Частичное обновление для иерархических справочников не поддерживается.
// @Summary Обновить тип операции
// @Tags operation_types
// @Accept json
// @Produce json
// @Param id path int true "ID типа операции"
// @Param request body OperationTypeRequest true "Тип операции"
// @Success 200 {object} models.OperationType
// @Failure 400 {object} models.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/operation_types/{id} [put]
func (h *OperationTypeHandler) Update(c *gin.Context) {
	opType, ok := h.load(c)
	if !ok {
		return
	}

	var req OperationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректное тело запроса"))
		return
	}

	errs := models.ValidationErrors{}
	name := checkDictName(req.Name, errs)
	if errs.Empty() {
		var existing models.OperationType
		if err := database.DB.Where("name = ? AND id != ?", name, opType.ID).
			First(&existing).Error; err == nil {
			errs.Add("name", msgOperationTypeExists)
		}
	}
	if !errs.Empty() {
		FieldErrors(c, errs)
		return
	}

	opType.Name = name
	opType.Description = ""
	if req.Description != nil {
		opType.Description = *req.Description
	}

	if err := database.DB.Save(opType).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "обновление не выполнено"))
		return
	}
	OK(c, opType)
}

// Delete удалить тип операции вместе с его категориями и подкатегориями.
// Тип, на который ссылается хотя бы одна операция ДДС, защищён от удаления.
// @Summary Удалить тип операции
// @Description Каскадно удаляет тип операции, его категории и их подкатегории
// @Tags operation_types
// @Param id path int true "ID типа операции"
// @Success 204 "Удалено"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/operation_types/{id} [delete]
func (h *OperationTypeHandler) Delete(c *gin.Context) {
	opType, ok := h.load(c)
	if !ok {
		return
	}

	// Каскад сверху вниз одной транзакцией, проверка ссылок — там же
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := guardMovementRefs(tx, "operation_type_id", opType.ID); err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM subcategories WHERE category_id IN (SELECT id FROM categories WHERE operation_type_id = ?)",
			opType.ID,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("operation_type_id = ?", opType.ID).
			Delete(&models.Category{}).Error; err != nil {
			return err
		}
		return tx.Delete(opType).Error
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

func (h *OperationTypeHandler) load(c *gin.Context) (*models.OperationType, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c)
		return nil, false
	}
	var opType models.OperationType
	if err := database.DB.First(&opType, uint(id)).Error; err != nil {
		NotFound(c)
		return nil, false
	}
	return &opType, true
}
