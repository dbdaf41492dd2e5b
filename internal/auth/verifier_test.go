package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schooladmin/internal/auth"
)

func TestPlainVerifier(t *testing.T) {
	v := auth.Plain{}

	assert.True(t, v.Verify("EMP-1", "EMP-1"))
	assert.False(t, v.Verify("EMP-1", "emp-1"), "match must be case-sensitive")
	assert.False(t, v.Verify("EMP-1", "EMP-2"))
	assert.False(t, v.Verify("", "EMP-1"))
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := auth.Hash("R42")
	assert.NoError(t, err)

	v := auth.Bcrypt{}
	assert.True(t, v.Verify("R42", hash))
	assert.False(t, v.Verify("R43", hash))
	assert.False(t, v.Verify("R42", "not-a-hash"))
}

func TestFromMode(t *testing.T) {
	assert.IsType(t, auth.Bcrypt{}, auth.FromMode("bcrypt"))
	assert.IsType(t, auth.Plain{}, auth.FromMode("plain"))
	assert.IsType(t, auth.Plain{}, auth.FromMode(""), "unknown modes fall back to plain")
}
