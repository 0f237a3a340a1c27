package main

import (
	"flag"
	"log"
	"strings"

	"dds/config"
	"dds/database"
	"dds/router"
)

// @title ДДС API
// @version 1.0
// @description Сервис учёта движения денежных средств: справочники статусов, типов, категорий и подкатегорий, журнал операций с проверкой ссылочной целостности, выгрузка данных
// @host localhost:8080
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
	seedData    bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "путь к внешнему файлу конфигурации (необязательно)")
	flag.StringVar(&configFile, "c", "", "путь к внешнему файлу конфигурации (сокращённо)")
	flag.StringVar(&port, "port", "", "порт, например: 8080 или :8080")
	flag.StringVar(&port, "p", "", "порт (сокращённо)")
	flag.BoolVar(&showVersion, "version", false, "показать версию")
	flag.BoolVar(&showVersion, "v", false, "показать версию (сокращённо)")
	flag.BoolVar(&seedData, "init", false, "заполнить справочники начальными данными и выйти")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Сервис ДДС v1.0.0")
		return
	}

	// Загрузка конфигурации (встроенная + необязательная внешняя поверх)
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("не удалось загрузить конфигурацию: %v", err)
	}

	// Порт из командной строки имеет приоритет
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("порт задан из командной строки: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("не удалось инициализировать базу данных: %v", err)
	}

	// Начальное наполнение справочников
	if seedData {
		if err := database.Seed(database.DB); err != nil {
			log.Fatalf("не удалось заполнить справочники: %v", err)
		}
		log.Println("справочники заполнены начальными данными")
		return
	}

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  Сервис учёта ДДС запущен")
	log.Printf("==========================================")
	log.Printf("  Управление: http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:    http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:        http://localhost%s/api/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("не удалось запустить сервер: %v", err)
	}
}
