package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgonRoundTrip(t *testing.T) {
	a := New()

	encoded, err := a.GenerateFromPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := a.VerifyPasswd("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgonSaltsDiffer(t *testing.T) {
	a := New()

	h1, err := a.GenerateFromPassword("same password")
	require.NoError(t, err)
	h2, err := a.GenerateFromPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestArgonMalformedHash(t *testing.T) {
	a := New()

	for _, bad := range []string{"", "plain", "$argon2id$v=19$m=bad", "$a$b$c$d$e$f$g"} {
		_, err := a.VerifyPasswd("whatever", bad)
		assert.Error(t, err)
	}
}
