package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)
	assert.Equal(t, string(a), a.String())
}

func TestID_IsZero(t *testing.T) {
	assert.True(t, ID("").IsZero())
	assert.False(t, ID("x").IsZero())
}

//Personal.AI order the ending
