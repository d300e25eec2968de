/*
File    : ycc/main_test.go
*/
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs_NoFiles(t *testing.T) {
	_, code, done := parseArgs([]string{})
	assert.True(t, done)
	assert.Equal(t, 1, code)
}

func TestParseArgs_OneFile(t *testing.T) {
	input, code, done := parseArgs([]string{"a.c"})
	assert.False(t, done)
	assert.Equal(t, 0, code)
	assert.Equal(t, "a.c", input)
}

func TestParseArgs_TooManyFiles(t *testing.T) {
	_, code, done := parseArgs([]string{"a.c", "b.c"})
	assert.True(t, done)
	assert.Equal(t, 1, code)
}
