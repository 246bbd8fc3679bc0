package civildate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOf_UsesLocation(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skip("tzdata not available")
	}
	instant := time.Date(2026, 3, 9, 20, 30, 0, 0, time.UTC) // 03:30 next day in Jakarta

	assert.Equal(t, New(2026, 3, 9), Of(instant, time.UTC))
	assert.Equal(t, New(2026, 3, 10), Of(instant, jakarta))
}

func TestRangeAndWithin(t *testing.T) {
	days := Range(New(2026, 2, 27), New(2026, 3, 2))
	assert.Len(t, days, 4)
	assert.Equal(t, "2026-03-01", Format(days[2]))

	assert.True(t, Within(New(2026, 3, 1), New(2026, 3, 1), New(2026, 3, 31)))
	assert.False(t, Within(New(2026, 4, 1), New(2026, 3, 1), New(2026, 3, 31)))
}

func TestAt(t *testing.T) {
	got := At(New(2026, 1, 5), 22*60+30, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 5, 22, 30, 0, 0, time.UTC), got)
}
