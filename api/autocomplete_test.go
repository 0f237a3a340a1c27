package api

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func autocompleteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAutocompleteHandler()
	r.GET("/category-autocomplete", h.Categories)
	r.GET("/subcategory-autocomplete", h.Subcategories)
	return r
}

// Без выбранного родителя список пуст, база не опрашивается
func TestAutocomplete_Categories_NoParent(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/category-autocomplete", nil)
	w := httptest.NewRecorder()
	autocompleteRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"results":[]}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAutocomplete_Categories_BadParent(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/category-autocomplete?operation_type=abc", nil)
	w := httptest.NewRecorder()
	autocompleteRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"results":[]}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAutocomplete_Categories(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `categories`").
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "operation_type_id"}).
			AddRow(4, "Инфраструктура", 2).
			AddRow(3, "Маркетинг", 2))

	req := httptest.NewRequest("GET", "/category-autocomplete?operation_type=2", nil)
	w := httptest.NewRecorder()
	autocompleteRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t,
		`{"results":[{"id":4,"text":"Инфраструктура"},{"id":3,"text":"Маркетинг"}]}`,
		w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAutocomplete_Subcategories_WithQuery(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `subcategories`").
		WithArgs(uint(3), "%av%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category_id"}).
			AddRow(5, "Avito", 3))

	req := httptest.NewRequest("GET", "/subcategory-autocomplete?category=3&q=av", nil)
	w := httptest.NewRecorder()
	autocompleteRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"results":[{"id":5,"text":"Avito"}]}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAutocomplete_Subcategories_NoParent(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/subcategory-autocomplete?q=av", nil)
	w := httptest.NewRecorder()
	autocompleteRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"results":[]}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
