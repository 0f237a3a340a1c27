package api

import (
	"net/http"
	"strconv"

	"dds/models"

	"github.com/gin-gonic/gin"
)

// PageResponse страница списка: общее количество и ссылки на соседние страницы
type PageResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// OK 200 с телом
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 с созданным объектом
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 после успешного удаления
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// FieldErrors 400 с ошибками, сгруппированными по полям
func FieldErrors(c *gin.Context, errs models.ValidationErrors) {
	c.JSON(http.StatusBadRequest, errs)
}

// BadRequest 400 с общим сообщением (нечитаемое тело запроса и т.п.)
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": message})
}

// NotFound 404
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "Страница не найдена."})
}

// Conflict 409: попытка удалить справочник, на который есть ссылки
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"detail": message})
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": message})
}

// pageLink собирает абсолютную ссылку на страницу списка или nil,
// если страницы не существует
func pageLink(c *gin.Context, page, pageSize int, total int64) *string {
	if page < 1 {
		return nil
	}
	last := int((total + int64(pageSize) - 1) / int64(pageSize))
	if page > last {
		return nil
	}

	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	link := scheme + "://" + c.Request.Host + u.String()
	return &link
}
