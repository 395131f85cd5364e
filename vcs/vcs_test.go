package vcs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSignature(t *testing.T) {
	sig := GetSignature()
	assert.True(t, strings.HasPrefix(sig, Product))
	assert.LessOrEqual(t, len(sig), len(Product)+8)
}
