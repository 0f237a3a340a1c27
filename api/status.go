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

// StatusHandler CRUD справочника статусов
type StatusHandler struct{}

// NewStatusHandler создаёт обработчик статусов
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// StatusRequest тело запроса создания/обновления статуса
type StatusRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

const msgStatusExists = "Статус с таким названием уже существует."
const msgProtectedByMovements = "Невозможно удалить: на объект ссылаются операции движения денежных средств."

var errProtectedByMovements = errors.New("на объект ссылаются операции ДДС")

// guardMovementRefs запрещает удаление записи справочника, на которую
// ссылаются операции. Вызывается внутри транзакции удаления, иначе
// операция, созданная между проверкой и удалением, упала бы на внешнем ключе.
func guardMovementRefs(tx *gorm.DB, column string, id uint) error {
	var refs int64
	if err := tx.Model(&models.MoneyMovement{}).
		Where(column+" = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return errProtectedByMovements
	}
	return nil
}

// List получить список статусов
// @Summary Получить список статусов
// @Description Возвращает все статусы операций, при необходимости отфильтрованные по подстроке названия
// @Tags statuses
// @Produce json
// @Param search query string false "Поиск по названию"
// @Success 200 {array} models.Status
// @Router /api/statuses [get]
func (h *StatusHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Status{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var statuses []models.Status
	if err := query.Order("id ASC").Find(&statuses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}
	OK(c, statuses)
}

// Get получить статус по идентификатору
// @Summary Получить статус по ID
// @Tags statuses
// @Produce json
// @Param id path int true "ID статуса"
// @Success 200 {object} models.Status
// @Failure 404 {object} map[string]string
// @Router /api/statuses/{id} [get]
func (h *StatusHandler) Get(c *gin.Context) {
	status, ok := h.load(c)
	if !ok {
		return
	}
	OK(c, status)
}

// Create создать статус
// @Summary Создать новый статус
// @Tags statuses
// @Accept json
// @Produce json
// @Param request body StatusRequest true "Статус"
// @Success 201 {object} models.Status
// @Failure 400 {object} models.ValidationErrors
// @Router /api/statuses [post]
func (h *StatusHandler) Create(c *gin.Context) {
	var req StatusRequest
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

	var existing models.Status
	if err := database.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		errs.Add("name", msgStatusExists)
		FieldErrors(c, errs)
		return
	}

	status := models.Status{Name: name}
	if req.Description != nil {
		status.Description = *req.Description
	}
	if err := database.DB.Create(&status).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "создание не выполнено"))
		return
	}
	Created(c, status)
}

// Update полностью обновить статус
// @Summary Обновить статус
// @Tags statuses
// @Accept json
// @Produce json
// @Param id path int true "ID статуса"
// @Param request body StatusRequest true "Статус"
// @Success 200 {object} models.Status
// @Failure 400 {object} models.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/statuses/{id} [put]
func (h *StatusHandler) Update(c *gin.Context) {
	h.update(c, false)
}

// Patch частично обновить статус
// @Summary Частично обновить статус
// @Tags statuses
// @Accept json
// @Produce json
// @Param id path int true "ID статуса"
// @Param request body StatusRequest true "Изменяемые поля"
// @Success 200 {object} models.Status
// @Failure 400 {object} models.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/statuses/{id} [patch]
func (h *StatusHandler) Patch(c *gin.Context) {
	h.update(c, true)
}

func (h *StatusHandler) update(c *gin.Context, partial bool) {
	status, ok := h.load(c)
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректное тело запроса"))
		return
	}

	errs := models.ValidationErrors{}
	if !partial || req.Name != nil {
		name := checkDictName(req.Name, errs)
		if errs.Empty() {
			var existing models.Status
			if err := database.DB.Where("name = ? AND id != ?", name, status.ID).
				First(&existing).Error; err == nil {
				errs.Add("name", msgStatusExists)
			} else {
				status.Name = name
			}
		}
	}
	if !errs.Empty() {
		FieldErrors(c, errs)
		return
	}

	if req.Description != nil {
		status.Description = *req.Description
	} else if !partial {
		status.Description = ""
	}

	if err := database.DB.Save(status).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "обновление не выполнено"))
		return
	}
	OK(c, status)
}

// Delete удалить статус
// @Summary Удалить статус
// @Description Удаляет статус. Статус, на который ссылается хотя бы одна операция ДДС, удалить нельзя.
// @Tags statuses
// @Param id path int true "ID статуса"
// @Success 204 "Удалено"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/statuses/{id} [delete]
func (h *StatusHandler) Delete(c *gin.Context) {
	status, ok := h.load(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := guardMovementRefs(tx, "status_id", status.ID); err != nil {
			return err
		}
		return tx.Delete(status).Error
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

func (h *StatusHandler) load(c *gin.Context) (*models.Status, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c)
		return nil, false
	}
	var status models.Status
	if err := database.DB.First(&status, uint(id)).Error; err != nil {
		NotFound(c)
		return nil, false
	}
	return &status, true
}

// checkDictName общая проверка названия справочника: обязательно и непусто
func checkDictName(name *string, errs models.ValidationErrors) string {
	if name == nil {
		errs.Add("name", models.MsgFieldRequired)
		return ""
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		errs.Add("name", models.MsgFieldRequired)
	}
	return trimmed
}
