package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// translate maps GORM sentinel errors onto the repository sentinels and wraps
// everything else with context.
func translate(err error, format string, args ...interface{}) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Wrapf(ErrNotFound, format, args...)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Wrapf(ErrDuplicateKey, format, args...)
	default:
		return errors.Wrapf(err, format, args...)
	}
}
