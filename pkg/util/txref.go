package util

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewTransactionReference generates a unique payment transaction reference.
// Payments carry a unique index on this value, so collisions surface as a
// constraint violation rather than silent reuse.
func NewTransactionReference() string {
	return fmt.Sprintf("TXN-%s", strings.ToUpper(uuid.NewString()))
}
