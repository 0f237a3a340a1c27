package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func expectStatus(mock sqlmock.Sqlmock, id uint, name string) {
	mock.ExpectQuery("SELECT .* FROM `statuses`").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id, name))
}

func expectOperationType(mock sqlmock.Sqlmock, id uint, name string) {
	mock.ExpectQuery("SELECT .* FROM `operation_types`").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id, name))
}

func expectCategory(mock sqlmock.Sqlmock, id uint, name string, opTypeID uint) {
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "operation_type_id"}).
			AddRow(id, name, opTypeID))
}

func expectSubcategory(mock sqlmock.Sqlmock, id uint, name string, categoryID uint) {
	mock.ExpectQuery("SELECT .* FROM `subcategories`").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_id"}).
			AddRow(id, name, categoryID))
}

func TestMoneyMovement_Validate_Consistent(t *testing.T) {
	db, mock := newMockGorm(t)

	expectStatus(mock, 1, "Бизнес")
	expectOperationType(mock, 2, "Списание")
	expectCategory(mock, 3, "Маркетинг", 2)
	expectSubcategory(mock, 4, "Avito", 3)

	m := &MoneyMovement{StatusID: 1, OperationTypeID: 2, CategoryID: 3, SubcategoryID: 4, Amount: 500}
	errs, err := m.Validate(db)
	require.NoError(t, err)
	assert.True(t, errs.Empty())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMoneyMovement_Validate_UnknownStatus(t *testing.T) {
	db, mock := newMockGorm(t)

	mock.ExpectQuery("SELECT .* FROM `statuses`").
		WithArgs(uint(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	expectOperationType(mock, 2, "Списание")
	expectCategory(mock, 3, "Маркетинг", 2)
	expectSubcategory(mock, 4, "Avito", 3)

	m := &MoneyMovement{StatusID: 99, OperationTypeID: 2, CategoryID: 3, SubcategoryID: 4, Amount: 500}
	errs, err := m.Validate(db)
	require.NoError(t, err)
	// именно "не существует", без дублирующего "обязательно"
	assert.Equal(t, []string{MsgObjectNotFound}, errs["status"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// Нулевые ссылки не разрешаются через базу, ошибки ставятся сразу
func TestMoneyMovement_Validate_ZeroRefs(t *testing.T) {
	db, mock := newMockGorm(t)

	m := &MoneyMovement{Amount: 500}
	errs, err := m.Validate(db)
	require.NoError(t, err)
	assert.Equal(t, []string{MsgFieldRequired}, errs["status"])
	assert.Equal(t, []string{MsgFieldRequired}, errs["operation_type"])
	assert.Equal(t, []string{MsgFieldRequired}, errs["category"])
	assert.Equal(t, []string{MsgFieldRequired}, errs["subcategory"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMoneyMovement_Validate_SubcategoryFromOtherCategory(t *testing.T) {
	db, mock := newMockGorm(t)

	expectStatus(mock, 1, "Бизнес")
	expectOperationType(mock, 2, "Списание")
	expectCategory(mock, 3, "Маркетинг", 2)
	expectSubcategory(mock, 4, "VPS", 7)

	m := &MoneyMovement{StatusID: 1, OperationTypeID: 2, CategoryID: 3, SubcategoryID: 4, Amount: 500}
	errs, err := m.Validate(db)
	require.NoError(t, err)
	assert.Equal(t, []string{MsgSubcategoryMismatch}, errs["subcategory"])
	require.NoError(t, mock.ExpectationsWereMet())
}
