// Package web holds the embedded frontend files served by the daemon.
package web

import "embed"

//go:embed index.html
var Files embed.FS
