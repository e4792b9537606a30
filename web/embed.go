// Package web holds the embedded single-page client.
package web

import "embed"

//go:embed static
var Static embed.FS
