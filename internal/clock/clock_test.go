package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed_ReturnsSameInstant(t *testing.T) {
	at := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)
	c := Fixed(at)

	assert.True(t, at.Equal(c.Now()))
	assert.True(t, c.Now().Equal(c.Now()))
}

func TestReal_Advances(t *testing.T) {
	before := time.Now()
	got := Real{}.Now()
	assert.False(t, got.Before(before))
}
