package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewSeedsDiffer(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
	assert.NotEqual(t, New(0).Uint64(), New(-1).Uint64())
}
