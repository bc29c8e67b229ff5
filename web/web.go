package web

import "embed"

// StaticFS 嵌入的浏览器客户端静态文件
//
//go:embed static
var StaticFS embed.FS
