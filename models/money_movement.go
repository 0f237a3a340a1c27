package models

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// MoneyMovement запись о движении денежных средств. Ссылается на статус и на
// все три уровня классификации независимо, поэтому согласованность ссылок
// (категория принадлежит типу операции, подкатегория — категории) проверяется
// при каждом сохранении.
type MoneyMovement struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CreatedDate     time.Time `json:"created_date" gorm:"not null;index"`
	StatusID        uint      `json:"status" gorm:"not null;index"`
	OperationTypeID uint      `json:"operation_type" gorm:"not null;index"`
	CategoryID      uint      `json:"category" gorm:"not null;index"`
	SubcategoryID   uint      `json:"subcategory" gorm:"not null;index"`
	Amount          float64   `json:"amount" gorm:"type:decimal(15,2);not null"`
	Comment         string    `json:"comment" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Справочники защищены от удаления, пока на них ссылается хотя бы
	// одна запись (RESTRICT на уровне схемы).
	Status        Status        `json:"-" gorm:"foreignKey:StatusID;constraint:OnDelete:RESTRICT"`
	OperationType OperationType `json:"-" gorm:"foreignKey:OperationTypeID;constraint:OnDelete:RESTRICT"`
	Category      Category      `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Subcategory   Subcategory   `json:"-" gorm:"foreignKey:SubcategoryID;constraint:OnDelete:RESTRICT"`
}

func (MoneyMovement) TableName() string {
	return "money_movements"
}

// movementDraft кандидат на сохранение с уже разрешёнными ссылками.
// nil означает, что ссылка не указана или не разрешилась.
type movementDraft struct {
	Status        *Status
	OperationType *OperationType
	Category      *Category
	Subcategory   *Subcategory
	Amount        float64
}

// checkMovementRules проверяет бизнес-правила кандидата. Все проверки
// выполняются до конца, ошибки накапливаются по полям — один запрос может
// вернуть сразу несколько нарушений.
func checkMovementRules(d movementDraft) ValidationErrors {
	errs := ValidationErrors{}

	if d.Status == nil {
		errs.Add("status", MsgFieldRequired)
	}
	if d.OperationType == nil {
		errs.Add("operation_type", MsgFieldRequired)
	}
	if d.Category == nil {
		errs.Add("category", MsgFieldRequired)
	}
	if d.Subcategory == nil {
		errs.Add("subcategory", MsgFieldRequired)
	}

	switch {
	case d.Amount <= 0:
		errs.Add("amount", MsgAmountPositive)
	case d.Amount < 0.01:
		// колонка decimal(15,2) округлила бы такую сумму до нуля
		errs.Add("amount", MsgAmountMinimum)
	case decimalPlaces(d.Amount) > 2:
		errs.Add("amount", MsgAmountPrecision)
	}

	if d.Category != nil && d.Subcategory != nil && d.Subcategory.CategoryID != d.Category.ID {
		errs.Add("subcategory", MsgSubcategoryMismatch)
	}
	if d.OperationType != nil && d.Category != nil && d.Category.OperationTypeID != d.OperationType.ID {
		errs.Add("category", MsgCategoryMismatch)
	}

	return errs
}

// decimalPlaces число знаков после запятой в кратчайшей десятичной записи
func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Validate разрешает ссылки записи и прогоняет бизнес-правила.
// Отсутствующая ссылка даёт ошибку "обязательно", неразрешимая —
// "объект не существует"; остальные проверки всё равно выполняются.
func (m *MoneyMovement) Validate(tx *gorm.DB) (ValidationErrors, error) {
	errs := ValidationErrors{}
	draft := movementDraft{Amount: m.Amount}

	if m.StatusID != 0 {
		var status Status
		switch err := tx.First(&status, m.StatusID).Error; {
		case err == nil:
			draft.Status = &status
		case errors.Is(err, gorm.ErrRecordNotFound):
			errs.Add("status", MsgObjectNotFound)
		default:
			return nil, err
		}
	}
	if m.OperationTypeID != 0 {
		var opType OperationType
		switch err := tx.First(&opType, m.OperationTypeID).Error; {
		case err == nil:
			draft.OperationType = &opType
		case errors.Is(err, gorm.ErrRecordNotFound):
			errs.Add("operation_type", MsgObjectNotFound)
		default:
			return nil, err
		}
	}
	if m.CategoryID != 0 {
		var category Category
		switch err := tx.First(&category, m.CategoryID).Error; {
		case err == nil:
			draft.Category = &category
		case errors.Is(err, gorm.ErrRecordNotFound):
			errs.Add("category", MsgObjectNotFound)
		default:
			return nil, err
		}
	}
	if m.SubcategoryID != 0 {
		var subcategory Subcategory
		switch err := tx.First(&subcategory, m.SubcategoryID).Error; {
		case err == nil:
			draft.Subcategory = &subcategory
		case errors.Is(err, gorm.ErrRecordNotFound):
			errs.Add("subcategory", MsgObjectNotFound)
		default:
			return nil, err
		}
	}

	for field, messages := range checkMovementRules(draft) {
		// "не существует" уже описывает проблему поля, "обязательно" не добавляем
		if _, seen := errs[field]; seen && messages[0] == MsgFieldRequired {
			continue
		}
		errs[field] = append(errs[field], messages...)
	}

	return errs, nil
}

// BeforeCreate подставляет дату создания, если клиент её не указал
func (m *MoneyMovement) BeforeCreate(tx *gorm.DB) error {
	if m.CreatedDate.IsZero() {
		m.CreatedDate = time.Now()
	}
	return nil
}

// BeforeSave гарантирует выполнение бизнес-правил на любом пути записи,
// включая прямые вызовы GORM в обход HTTP-обработчиков. Валидация и
// вставка проходят в одной транзакции.
func (m *MoneyMovement) BeforeSave(tx *gorm.DB) error {
	errs, err := m.Validate(tx)
	if err != nil {
		return err
	}
	if !errs.Empty() {
		return errs
	}
	return nil
}
