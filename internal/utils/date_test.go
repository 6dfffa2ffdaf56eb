package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		got, err := ParseDate("2026-09-01")
		require.NoError(t, err)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, time.September, got.Month())
		assert.Equal(t, 1, got.Day())
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		for _, input := range []string{"", "09/01/2026", "2026-13-01", "2026-09-32", "tomorrow"} {
			_, err := ParseDate(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestToday(t *testing.T) {
	got := Today()
	parsed, err := ParseDate(got)
	require.NoError(t, err)
	assert.Equal(t, got, parsed.Format("2006-01-02"))
}
