package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDollars(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in    string
		cents int
	}{
		{"10", 1000},
		{"$10", 1000},
		{" 10 ", 1000},
		{"10.50", 1050},
		{"$0.25", 25},
		{"0", 0},
	}
	for _, tt := range tests {
		got, err := parseDollars(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.cents, got, tt.in)
	}

	for _, in := range []string{"", "ten", "10.5", "10.505", "$", "1.x0"} {
		_, err := parseDollars(in)
		assert.Error(t, err, in)
	}
}

func TestDollars(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "$10", dollars(1000))
	assert.Equal(t, "$10.50", dollars(1050))
	assert.Equal(t, "$0.05", dollars(5))
	assert.Equal(t, "-$2.50", dollars(-250))
	assert.Equal(t, "$0", dollars(0))
}
