package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestUUIDGenerator_Resolve(t *testing.T) {
	g := NewUUIDGenerator()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "uuid", incoming: "550e8400-e29b-41d4-a716-446655440000", keep: true},
		{name: "custom token", incoming: "trace-in-log", keep: true},
		{name: "empty", incoming: "", keep: false},
		{name: "space inside", incoming: "two words", keep: false},
		{name: "control character", incoming: "id\x07", keep: false},
		{name: "non ascii", incoming: "трасса", keep: false},
		{name: "too long", incoming: strings.Repeat("a", maxTraceIDLength+1), keep: false},
		{name: "max length", incoming: strings.Repeat("a", maxTraceIDLength), keep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Resolve(tt.incoming)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
				return
			}

			parsed, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), parsed.Version())
		})
	}
}
