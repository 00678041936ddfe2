package web

import "embed"

// FS holds the static files served under /static/.
//
//go:embed static/*
var FS embed.FS
