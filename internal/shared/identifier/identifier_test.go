package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := New()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNew_ChronologicalTrend(t *testing.T) {
	a := New()
	b := New()
	// v7 ids embed a millisecond prefix, so later ids never sort below
	// earlier ones.
	assert.LessOrEqual(t, a, b)
}
