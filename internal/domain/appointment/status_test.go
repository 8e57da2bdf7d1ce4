package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "canceled"} {
		assert.True(t, IsValidStatus(s), s)
	}
	for _, s := range []string{"", "cancelled", "scheduled", "PENDING"} {
		assert.False(t, IsValidStatus(s), s)
	}
	assert.Equal(t, StatusPending, InitialStatus())
}
