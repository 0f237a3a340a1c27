package database

import (
	"fmt"
	"log"

	"dds/config"
	"dds/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init инициализирует подключение к базе данных и схему
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("подключение к базе данных не удалось: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// Параметры пула соединений
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// Порядок важен: дочерние таблицы ссылаются на родительские
	if err := DB.AutoMigrate(
		&models.Status{},
		&models.OperationType{},
		&models.Category{},
		&models.Subcategory{},
		&models.MoneyMovement{},
	); err != nil {
		return err
	}

	log.Println("база данных инициализирована")
	return nil
}

// GetDB возвращает подключение к базе данных
func GetDB() *gorm.DB {
	return DB
}
