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

func operationTypeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewOperationTypeHandler()
	r.GET("/api/operation_types", h.List)
	r.POST("/api/operation_types", h.Create)
	r.GET("/api/operation_types/:id", h.Get)
	r.PUT("/api/operation_types/:id", h.Update)
	r.DELETE("/api/operation_types/:id", h.Delete)
	return r
}

func TestOperationTypeHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `operation_types`").
		WithArgs("Пополнение").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `operation_types`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	body := `{"name":"Пополнение"}`
	req := httptest.NewRequest("POST", "/api/operation_types", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	operationTypeRouter().ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Пополнение", resp["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationTypeHandler_Create_EmptyName(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	body := `{"name":"   "}`
	req := httptest.NewRequest("POST", "/api/operation_types", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	operationTypeRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Это поле обязательно."}, resp["name"])
}

// Удаление типа сносит всё поддерево: подкатегории, категории, сам тип
func TestOperationTypeHandler_Delete_CascadesTree(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `operation_types`").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(2, "Списание", now, now))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `money_movements`").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM subcategories WHERE category_id IN").
		WithArgs(uint(2)).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("DELETE FROM `categories`").
		WithArgs(uint(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `operation_types`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/api/operation_types/2", nil)
	w := httptest.NewRecorder()
	operationTypeRouter().ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationTypeHandler_Delete_Protected(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `operation_types`").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(2, "Списание", now, now))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `money_movements`").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectRollback()

	req := httptest.NewRequest("DELETE", "/api/operation_types/2", nil)
	w := httptest.NewRecorder()
	operationTypeRouter().ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
	assert.Contains(t, w.Body.String(), "Невозможно удалить")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationTypeHandler_Get_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `operation_types`").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{}))

	req := httptest.NewRequest("GET", "/api/operation_types/99", nil)
	w := httptest.NewRecorder()
	operationTypeRouter().ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Страница не найдена.")
	require.NoError(t, mock.ExpectationsWereMet())
}
