package ids

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	var gen Generator = UUID{}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		require.Len(t, id, 36)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSequence(t *testing.T) {
	seq := &Sequence{Prefix: "rec"}
	assert.Equal(t, "rec-000001", seq.NewID())
	assert.Equal(t, "rec-000002", seq.NewID())
	assert.Equal(t, "rec-000003", seq.NewID())
}
