package utils

import "github.com/google/uuid"

// maxTraceIDLength bounds trace IDs accepted from clients.
const maxTraceIDLength = 128

// UUIDGenerator issues trace IDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4 when
// the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Resolve returns incoming when it is usable as a trace ID and a fresh ID
// otherwise. Usable means non-empty, at most 128 bytes and printable ASCII
// without spaces, which keeps it safe to echo in a header and a log field.
func (g *UUIDGenerator) Resolve(incoming string) string {
	if !validTraceID(incoming) {
		return g.Generate()
	}

	return incoming
}

func validTraceID(s string) bool {
	if s == "" || len(s) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return false
		}
	}

	return true
}
