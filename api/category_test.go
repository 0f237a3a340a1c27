package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCategoryHandler()
	r.GET("/api/categories", h.List)
	r.POST("/api/categories", h.Create)
	r.GET("/api/categories/:id", h.Get)
	r.PUT("/api/categories/:id", h.Update)
	r.DELETE("/api/categories/:id", h.Delete)
	return r
}

func TestCategoryHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// тип операции существует
	mock.ExpectQuery("SELECT .* FROM `operation_types`").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Списание"))
	// дубликата в рамках типа нет
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs("Маркетинг", uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "operation_type_id", "description", "operation_type_name"}).
			AddRow(3, "Маркетинг", 2, "", "Списание"))

	body := `{"name":"Маркетинг","operation_type":2}`
	req := httptest.NewRequest("POST", "/api/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	categoryRouter().ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Маркетинг", resp["name"])
	assert.Equal(t, "Списание", resp["operation_type_name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_Duplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `operation_types`").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Списание"))
	// такая категория в этом типе уже есть
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs("Маркетинг", uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "operation_type_id"}).
			AddRow(3, "Маркетинг", 2))

	body := `{"name":"Маркетинг","operation_type":2}`
	req := httptest.NewRequest("POST", "/api/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	categoryRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{msgCategoryExists}, resp["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_UnknownOperationType(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `operation_types`").
		WithArgs(uint(99)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	body := `{"name":"Маркетинг","operation_type":99}`
	req := httptest.NewRequest("POST", "/api/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	categoryRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "operation_type")
	require.NoError(t, mock.ExpectationsWereMet())
}

// Категория с операциями защищена от удаления
func TestCategoryHandler_Delete_Protected(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "operation_type_id", "created_at", "updated_at"}).
			AddRow(3, "Маркетинг", 2, now, now))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `money_movements`").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectRollback()

	req := httptest.NewRequest("DELETE", "/api/categories/3", nil)
	w := httptest.NewRecorder()
	categoryRouter().ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
	assert.Contains(t, w.Body.String(), "Невозможно удалить")
	require.NoError(t, mock.ExpectationsWereMet())
}

// Удаление категории каскадно сносит её подкатегории в одной транзакции
func TestCategoryHandler_Delete_Cascades(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "operation_type_id", "created_at", "updated_at"}).
			AddRow(3, "Маркетинг", 2, now, now))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `money_movements`").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM `subcategories`").
		WithArgs(uint(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `categories`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/api/categories/3", nil)
	w := httptest.NewRecorder()
	categoryRouter().ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_List_FilterByType(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "operation_type_id", "description", "operation_type_name"}).
			AddRow(3, "Маркетинг", 2, "", "Списание").
			AddRow(4, "Инфраструктура", 2, "", "Списание"))

	req := httptest.NewRequest("GET", "/api/categories?operation_type=2", nil)
	w := httptest.NewRecorder()
	categoryRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Маркетинг", resp[0]["name"])
	assert.Equal(t, "Списание", resp[0]["operation_type_name"])
	require.NoError(t, mock.ExpectationsWereMet())
}
