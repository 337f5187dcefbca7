package util

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewRunID generates a ULID identifying one generator invocation. It tags
// every log line of the run so repeated local runs can be told apart; it
// never appears in the output files, which must depend only on the seed.
func NewRunID() string {
	t := time.Now()
	entropy := ulid.Monotonic(rand.Reader, 0)

	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
