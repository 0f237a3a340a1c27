package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"dds/config"
	"dds/database"
	"dds/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MovementHandler операции движения денежных средств
type MovementHandler struct{}

// NewMovementHandler создаёт обработчик операций ДДС
func NewMovementHandler() *MovementHandler {
	return &MovementHandler{}
}

// Amount сумма операции в теле запроса. Сам API отдаёт сумму строкой
// с двумя знаками, поэтому на входе принимаются обе формы: число и строка.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.New("некорректное значение суммы: " + raw)
	}
	*a = Amount(v)
	return nil
}

// MovementRequest тело запроса создания/обновления операции.
// Все поля указатели: для PATCH отсутствие поля означает «не менять»,
// для POST/PUT — «не указано» с ошибкой валидации по этому полю.
type MovementRequest struct {
	CreatedDate   *string `json:"created_date"`
	Status        *uint   `json:"status"`
	OperationType *uint   `json:"operation_type"`
	Category      *uint   `json:"category"`
	Subcategory   *uint   `json:"subcategory"`
	Amount        *Amount `json:"amount"`
	Comment       *string `json:"comment"`
}

// MovementListRequest параметры списка операций
type MovementListRequest struct {
	Page              int    `form:"page"`
	PageSize          int    `form:"page_size"`
	CreatedDateAfter  string `form:"created_date_after"`
	CreatedDateBefore string `form:"created_date_before"`
	Status            *uint  `form:"status"`
	OperationType     *uint  `form:"operation_type"`
	Category          *uint  `form:"category"`
	Subcategory       *uint  `form:"subcategory"`
	Search            string `form:"search"`
	Ordering          string `form:"ordering"`
}

// MovementView операция с развёрнутыми названиями справочников,
// чтобы интерфейсу не требовался второй запрос
type MovementView struct {
	ID                uint      `json:"id"`
	CreatedDate       time.Time `json:"created_date"`
	Status            uint      `json:"status"`
	StatusName        string    `json:"status_name"`
	OperationType     uint      `json:"operation_type"`
	OperationTypeName string    `json:"operation_type_name"`
	Category          uint      `json:"category"`
	CategoryName      string    `json:"category_name"`
	Subcategory       uint      `json:"subcategory"`
	SubcategoryName   string    `json:"subcategory_name"`
	Amount            string    `json:"amount"`
	Comment           string    `json:"comment"`
}

type movementRow struct {
	ID                uint
	CreatedDate       time.Time
	StatusID          uint
	OperationTypeID   uint
	CategoryID        uint
	SubcategoryID     uint
	Amount            float64
	Comment           string
	StatusName        string
	OperationTypeName string
	CategoryName      string
	SubcategoryName   string
}

const movementSelect = "money_movements.id, money_movements.created_date, " +
	"money_movements.status_id, money_movements.operation_type_id, " +
	"money_movements.category_id, money_movements.subcategory_id, " +
	"money_movements.amount, money_movements.comment, " +
	"statuses.name AS status_name, operation_types.name AS operation_type_name, " +
	"categories.name AS category_name, subcategories.name AS subcategory_name"

// Разрешённые значения ordering. Всё прочее игнорируется,
// по умолчанию новые записи идут первыми.
var movementOrderings = map[string]string{
	"created_date":  "money_movements.created_date ASC",
	"-created_date": "money_movements.created_date DESC",
	"amount":        "money_movements.amount ASC",
	"-amount":       "money_movements.amount DESC",
}

const defaultMovementOrdering = "money_movements.created_date DESC"

func (r movementRow) view() MovementView {
	return MovementView{
		ID:                r.ID,
		CreatedDate:       r.CreatedDate,
		Status:            r.StatusID,
		StatusName:        r.StatusName,
		OperationType:     r.OperationTypeID,
		OperationTypeName: r.OperationTypeName,
		Category:          r.CategoryID,
		CategoryName:      r.CategoryName,
		Subcategory:       r.SubcategoryID,
		SubcategoryName:   r.SubcategoryName,
		Amount:            strconv.FormatFloat(r.Amount, 'f', 2, 64),
		Comment:           r.Comment,
	}
}

// buildMovementQuery собирает отфильтрованный запрос по журналу операций.
// Все фильтры объединяются через AND, поиск — через OR по трём полям.
func buildMovementQuery(db *gorm.DB, req MovementListRequest) (*gorm.DB, models.ValidationErrors) {
	errs := models.ValidationErrors{}

	query := db.Model(&models.MoneyMovement{}).
		Joins("JOIN statuses ON statuses.id = money_movements.status_id").
		Joins("JOIN operation_types ON operation_types.id = money_movements.operation_type_id").
		Joins("JOIN categories ON categories.id = money_movements.category_id").
		Joins("JOIN subcategories ON subcategories.id = money_movements.subcategory_id")

	if req.CreatedDateAfter != "" {
		after, err := time.ParseInLocation("2006-01-02", req.CreatedDateAfter, time.Local)
		if err != nil {
			errs.Add("created_date_after", "Введите правильную дату.")
		} else {
			query = query.Where("money_movements.created_date >= ?", after)
		}
	}
	if req.CreatedDateBefore != "" {
		before, err := time.ParseInLocation("2006-01-02", req.CreatedDateBefore, time.Local)
		if err != nil {
			errs.Add("created_date_before", "Введите правильную дату.")
		} else {
			// Включая весь день верхней границы
			before = before.Add(24*time.Hour - time.Second)
			query = query.Where("money_movements.created_date <= ?", before)
		}
	}

	if req.Status != nil {
		query = query.Where("money_movements.status_id = ?", *req.Status)
	}
	if req.OperationType != nil {
		query = query.Where("money_movements.operation_type_id = ?", *req.OperationType)
	}
	if req.Category != nil {
		query = query.Where("money_movements.category_id = ?", *req.Category)
	}
	if req.Subcategory != nil {
		query = query.Where("money_movements.subcategory_id = ?", *req.Subcategory)
	}

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		query = query.Where(
			"(money_movements.comment LIKE ? OR categories.name LIKE ? OR subcategories.name LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	if !errs.Empty() {
		return nil, errs
	}
	return query, nil
}

func movementOrdering(ordering string) string {
	if expr, ok := movementOrderings[ordering]; ok {
		return expr
	}
	return defaultMovementOrdering
}

// List получить журнал операций ДДС
// @Summary Получить список операций ДДС
// @Description Журнал движения денежных средств с фильтрацией, поиском, сортировкой и постраничным выводом
// @Tags money_movements
// @Produce json
// @Param created_date_after query string false "Начало периода (YYYY-MM-DD)"
// @Param created_date_before query string false "Конец периода (YYYY-MM-DD)"
// @Param status query int false "Фильтр по статусу"
// @Param operation_type query int false "Фильтр по типу операции"
// @Param category query int false "Фильтр по категории"
// @Param subcategory query int false "Фильтр по подкатегории"
// @Param search query string false "Поиск по комментарию и названиям категорий/подкатегорий"
// @Param ordering query string false "Сортировка: created_date, -created_date, amount, -amount"
// @Param page query int false "Номер страницы"
// @Param page_size query int false "Размер страницы"
// @Success 200 {object} PageResponse{results=[]MovementView}
// @Failure 400 {object} models.ValidationErrors
// @Router /api/money_movements [get]
func (h *MovementHandler) List(c *gin.Context) {
	var req MovementListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректные параметры запроса"))
		return
	}

	query, errs := buildMovementQuery(database.DB, req)
	if errs != nil {
		FieldErrors(c, errs)
		return
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}

	page, pageSize := normalizePage(req.Page, req.PageSize)

	var rows []movementRow
	if err := query.Select(movementSelect).
		Order(movementOrdering(req.Ordering)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}

	views := make([]MovementView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}

	OK(c, PageResponse{
		Count:    total,
		Next:     pageLink(c, page+1, pageSize, total),
		Previous: pageLink(c, page-1, pageSize, total),
		Results:  views,
	})
}

// Get получить операцию по идентификатору
// @Summary Получить операцию ДДС по ID
// @Tags money_movements
// @Produce json
// @Param id path int true "ID операции"
// @Success 200 {object} MovementView
// @Failure 404 {object} map[string]string
// @Router /api/money_movements/{id} [get]
func (h *MovementHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c)
		return
	}
	view, err := fetchMovementView(uint(id))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}
	if view == nil {
		NotFound(c)
		return
	}
	OK(c, view)
}

// Create создать операцию ДДС
// @Summary Создать новую операцию ДДС
// @Description Создаёт запись о движении денежных средств. Бизнес-правила проверяются целиком: в ответе собраны ошибки по всем полям сразу.
// @Tags money_movements
// @Accept json
// @Produce json
// @Param request body MovementRequest true "Операция"
// @Success 201 {object} MovementView
// @Failure 400 {object} models.ValidationErrors
// @Router /api/money_movements [post]
func (h *MovementHandler) Create(c *gin.Context) {
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректное тело запроса"))
		return
	}

	movement := models.MoneyMovement{}
	if req.CreatedDate != nil {
		createdDate, err := parseMovementDate(*req.CreatedDate)
		if err != nil {
			FieldErrors(c, models.ValidationErrors{"created_date": {"Введите правильную дату."}})
			return
		}
		movement.CreatedDate = createdDate
	}
	applyMovementRequest(&movement, req, false)

	if err := database.DB.Create(&movement).Error; err != nil {
		h.writeError(c, req, err)
		return
	}
	h.respondView(c, movement.ID, true)
}

// Update полностью обновить операцию ДДС
// @Summary Обновить операцию ДДС
// @Description Полностью обновляет запись с повторной проверкой бизнес-правил. Дата создания не меняется.
// @Tags money_movements
// @Accept json
// @Produce json
// @Param id path int true "ID операции"
// @Param request body MovementRequest true "Операция"
// @Success 200 {object} MovementView
// @Failure 400 {object} models.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/money_movements/{id} [put]
func (h *MovementHandler) Update(c *gin.Context) {
	h.update(c, false)
}

// Patch частично обновить операцию ДДС
// @Summary Частично обновить операцию ДДС
// @Description Меняет только переданные поля; запись целиком проходит повторную валидацию. Дата создания не меняется.
// @Tags money_movements
// @Accept json
// @Produce json
// @Param id path int true "ID операции"
// @Param request body MovementRequest true "Изменяемые поля"
// @Success 200 {object} MovementView
// @Failure 400 {object} models.ValidationErrors
// @Failure 404 {object} map[string]string
// @Router /api/money_movements/{id} [patch]
func (h *MovementHandler) Patch(c *gin.Context) {
	h.update(c, true)
}

func (h *MovementHandler) update(c *gin.Context, partial bool) {
	movement, ok := h.load(c)
	if !ok {
		return
	}

	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректное тело запроса"))
		return
	}

	applyMovementRequest(movement, req, partial)

	if err := database.DB.Save(movement).Error; err != nil {
		h.writeError(c, req, err)
		return
	}
	h.respondView(c, movement.ID, false)
}

// Delete удалить операцию ДДС
// @Summary Удалить операцию ДДС
// @Tags money_movements
// @Param id path int true "ID операции"
// @Success 204 "Удалено"
// @Failure 404 {object} map[string]string
// @Router /api/money_movements/{id} [delete]
func (h *MovementHandler) Delete(c *gin.Context) {
	movement, ok := h.load(c)
	if !ok {
		return
	}
	if err := database.DB.Delete(movement).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "удаление не выполнено"))
		return
	}
	NoContent(c)
}

func (h *MovementHandler) load(c *gin.Context) (*models.MoneyMovement, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c)
		return nil, false
	}
	var movement models.MoneyMovement
	if err := database.DB.First(&movement, uint(id)).Error; err != nil {
		NotFound(c)
		return nil, false
	}
	return &movement, true
}

// writeError переводит ошибку сохранения в ответ API. Ошибки валидации из
// хука BeforeSave уходят клиенту картой «поле → сообщения».
func (h *MovementHandler) writeError(c *gin.Context, req MovementRequest, err error) {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		// Не переданная сумма — это «обязательное поле», а не «меньше нуля»
		if _, flagged := verrs["amount"]; flagged && req.Amount == nil {
			verrs["amount"] = []string{models.MsgFieldRequired}
		}
		FieldErrors(c, verrs)
		return
	}
	InternalError(c, SafeErrorMessage(err, "сохранение не выполнено"))
}

func (h *MovementHandler) respondView(c *gin.Context, id uint, created bool) {
	view, err := fetchMovementView(id)
	if err != nil || view == nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return
	}
	if created {
		Created(c, view)
		return
	}
	OK(c, view)
}

func applyMovementRequest(m *models.MoneyMovement, req MovementRequest, partial bool) {
	if !partial || req.Status != nil {
		m.StatusID = derefUint(req.Status)
	}
	if !partial || req.OperationType != nil {
		m.OperationTypeID = derefUint(req.OperationType)
	}
	if !partial || req.Category != nil {
		m.CategoryID = derefUint(req.Category)
	}
	if !partial || req.Subcategory != nil {
		m.SubcategoryID = derefUint(req.Subcategory)
	}
	if !partial || req.Amount != nil {
		m.Amount = 0
		if req.Amount != nil {
			m.Amount = float64(*req.Amount)
		}
	}
	if !partial || req.Comment != nil {
		m.Comment = ""
		if req.Comment != nil {
			m.Comment = *req.Comment
		}
	}
}

func derefUint(v *uint) uint {
	if v == nil {
		return 0
	}
	return *v
}

func parseMovementDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("неизвестный формат даты: " + value)
}

func fetchMovementView(id uint) (*MovementView, error) {
	query, _ := buildMovementQuery(database.DB, MovementListRequest{})

	var rows []movementRow
	if err := query.Select(movementSelect).
		Where("money_movements.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	view := rows[0].view()
	return &view, nil
}

func normalizePage(page, pageSize int) (int, int) {
	defaultSize, maxSize := 20, 100
	if cfg := config.GlobalConfig; cfg != nil {
		defaultSize = cfg.API.PageSize
		maxSize = cfg.API.MaxPageSize
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}
