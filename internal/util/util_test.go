package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Stable(t *testing.T) {
	a := Fingerprint("MOVE-REENTRANCY", "vault.move", 5, "")
	b := Fingerprint("MOVE-REENTRANCY", "vault.move", 5, "")
	c := Fingerprint("MOVE-REENTRANCY", "vault.move", 6, "")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestExtractSnippet(t *testing.T) {
	source := strings.Join([]string{"one", "two", "three", "four", "five"}, "\n")

	assert.Equal(t, "one\ntwo\nthree", ExtractSnippet(source, 2, 3))
	// clipped at file start
	assert.Equal(t, "one\ntwo\nthree", ExtractSnippet(source, 1, 3))
	// clipped at file end
	assert.Equal(t, "four\nfive", ExtractSnippet(source, 5, 3))
	// out-of-range line numbers are clamped
	assert.NotEmpty(t, ExtractSnippet(source, 99, 3))
	assert.NotEmpty(t, ExtractSnippet(source, -1, 3))
}
