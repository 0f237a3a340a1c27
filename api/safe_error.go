package api

import (
	"dds/config"
)

// SafeErrorMessage обёртка над config.SafeErrorMessage для обработчиков
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
