package config

import _ "embed"

// DefaultConfigYAML встроенная конфигурация по умолчанию
//
//go:embed default.yaml
var DefaultConfigYAML []byte
