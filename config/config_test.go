package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "операция не выполнена"
	testErr := errors.New("internal database error")

	// nil err отдаёт запасное сообщение
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// режим release скрывает детали ошибки
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// режим debug отдаёт err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// без конфигурации считаем окружение разработческим
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_EmbeddedDefaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "dds", cfg.Database.DBName)
	assert.Equal(t, 20, cfg.API.PageSize)
	assert.Equal(t, 100, cfg.API.MaxPageSize)
	assert.True(t, cfg.API.RateLimit.Enabled)
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	t.Setenv("DDS_SERVER_PORT", ":9090")
	t.Setenv("DDS_API_PAGE_SIZE", "50")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.API.PageSize)
}

func TestLoadConfig_PageSizeFixups(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	t.Setenv("DDS_API_PAGE_SIZE", "-1")
	t.Setenv("DDS_API_MAX_PAGE_SIZE", "0")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.API.PageSize)
	assert.Equal(t, 100, cfg.API.MaxPageSize)
}
