package storage

import (
	"context"
	"errors"
)

// Keys for the persisted application state. Each key is read and written
// independently so corruption of one never affects the others.
const (
	KeyUser          = "libraryUser"
	KeyBooks         = "libraryBooks"
	KeyBorrowedBooks = "libraryBorrowedBooks"
)

var ErrKeyNotFound = errors.New("key not found")

// Storage is a string-valued key-value store holding JSON payloads. It is
// the durable backing for the catalog and session stores.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
