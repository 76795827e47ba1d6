// Package storage provides the durable key-value slot the favorites list is
// persisted into. A slot holds one opaque payload; every save overwrites the
// previous value (last writer wins).
package storage

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by Load when nothing has been saved yet. Callers
// treat it as "start from empty", not as a failure.
var ErrSlotEmpty = errors.New("storage: slot is empty")

type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
