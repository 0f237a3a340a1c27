package router

import (
	"io/fs"
	"net/http"
	"time"

	"dds/api"
	"dds/config"
	_ "dds/docs"
	"dds/middleware"
	"dds/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter настройка маршрутов
func SetupRouter(cfg *config.Config) *gin.Engine {
	// Режим работы
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS
	r.Use(CORSMiddleware())

	// Ограничение частоты изменяющих запросов
	if cfg.API.RateLimit.Enabled {
		r.Use(middleware.WriteRateLimit(
			cfg.API.RateLimit.MaxRequests,
			time.Duration(cfg.API.RateLimit.WindowSeconds)*time.Second,
		))
	}

	// Встроенная страница управления справочниками и журналом
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "не удалось загрузить страницу")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	apiGroup := r.Group("/api")
	{
		statusHandler := api.NewStatusHandler()
		statuses := apiGroup.Group("/statuses")
		{
			statuses.GET("", statusHandler.List)
			statuses.POST("", statusHandler.Create)
			statuses.GET("/:id", statusHandler.Get)
			statuses.PUT("/:id", statusHandler.Update)
			statuses.PATCH("/:id", statusHandler.Patch)
			statuses.DELETE("/:id", statusHandler.Delete)
		}

		operationTypeHandler := api.NewOperationTypeHandler()
		operationTypes := apiGroup.Group("/operation_types")
		{
			operationTypes.GET("", operationTypeHandler.List)
			operationTypes.POST("", operationTypeHandler.Create)
			operationTypes.GET("/:id", operationTypeHandler.Get)
			operationTypes.PUT("/:id", operationTypeHandler.Update)
			operationTypes.DELETE("/:id", operationTypeHandler.Delete)
		}

		categoryHandler := api.NewCategoryHandler()
		categories := apiGroup.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.GET("/:id", categoryHandler.Get)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		subcategoryHandler := api.NewSubcategoryHandler()
		subcategories := apiGroup.Group("/subcategories")
		{
			subcategories.GET("", subcategoryHandler.List)
			subcategories.POST("", subcategoryHandler.Create)
			subcategories.GET("/:id", subcategoryHandler.Get)
			subcategories.PUT("/:id", subcategoryHandler.Update)
			subcategories.DELETE("/:id", subcategoryHandler.Delete)
		}

		movementHandler := api.NewMovementHandler()
		movements := apiGroup.Group("/money_movements")
		{
			movements.GET("", movementHandler.List)
			movements.POST("", movementHandler.Create)
			movements.GET("/:id", movementHandler.Get)
			movements.PUT("/:id", movementHandler.Update)
			movements.PATCH("/:id", movementHandler.Patch)
			movements.DELETE("/:id", movementHandler.Delete)
		}

		exportHandler := api.NewExportHandler()
		export := apiGroup.Group("/export")
		{
			export.GET("/excel", exportHandler.ExportExcel)
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
		}
	}

	// Подсказки для зависимых выпадающих списков
	autocompleteHandler := api.NewAutocompleteHandler()
	r.GET("/category-autocomplete", autocompleteHandler.Categories)
	r.GET("/subcategory-autocomplete", autocompleteHandler.Subcategories)

	// Swagger документация
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Проверка работоспособности
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware middleware для кросс-доменных запросов
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
