package web

import "embed"

// StaticFS встроенная страница управления
//
//go:embed index.html
var StaticFS embed.FS
