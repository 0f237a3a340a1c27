package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	API      APIConfig      `mapstructure:"api"`
}

// ServerConfig настройки сервера
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig настройки базы данных
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// APIConfig настройки API
type APIConfig struct {
	PageSize    int             `mapstructure:"page_size"`
	MaxPageSize int             `mapstructure:"max_page_size"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig ограничение частоты модифицирующих запросов
type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxRequests   int  `mapstructure:"max_requests"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}

var (
	// GlobalConfig глобальный экземпляр конфигурации
	GlobalConfig *Config
)

// LoadConfig загружает конфигурацию.
// Приоритет: переменные окружения > внешний файл > встроенные значения.
// configPath: необязательный путь к внешнему файлу конфигурации.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Встроенная конфигурация по умолчанию
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("чтение встроенной конфигурации не удалось: %w", err)
	}

	// 2. Внешний файл конфигурации (необязательный, переопределяет значения)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("предупреждение: не удалось прочитать файл конфигурации %s: %v", configPath, err)
		} else {
			log.Printf("подключён внешний файл конфигурации: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/dds")
		externalViper.AddConfigPath("$HOME/.dds")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("предупреждение: объединение внешней конфигурации не удалось: %v", err)
			} else {
				log.Printf("подключён внешний файл конфигурации: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. Переменные окружения, например DDS_SERVER_PORT
	v.SetEnvPrefix("DDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации не удался: %w", err)
	}

	if cfg.API.PageSize <= 0 {
		cfg.API.PageSize = 20
	}
	if cfg.API.MaxPageSize <= 0 {
		cfg.API.MaxPageSize = 100
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

// GetConfig возвращает глобальную конфигурацию
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("конфигурация не инициализирована, вызовите LoadConfig")
	}
	return GlobalConfig
}

// PrintConfig выводит текущую конфигурацию без секретов
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("текущая конфигурация:")
	log.Printf("  сервер: %s (режим: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  база данных: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  страница списка: %d записей", GlobalConfig.API.PageSize)
}
