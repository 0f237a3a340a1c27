package config

// SafeErrorMessage в боевом режиме не раскрывает клиенту детали внутренних
// ошибок. В режиме debug (и пока конфигурация не загружена) возвращает
// исходный текст ошибки.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig == nil || GlobalConfig.Server.Mode != "release" {
		return err.Error()
	}
	return fallback
}
