package service

import (
	"context"
	"io"
)

// Archivo is an image file submitted through the panel's forms, decoupled
// from multipart so services stay testable.
type Archivo struct {
	Nombre string
	Datos  io.Reader
}

// Notifier signals subscribers that the catalog changed. Satisfied by
// realtime.Hub; stubbed in tests.
type Notifier interface {
	Notify(ctx context.Context)
}
