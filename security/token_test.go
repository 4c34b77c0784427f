package security

import (
	"strings"
	"testing"
	"time"

	"fstop/portfolio-api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSecret(t *testing.T) {
	t.Helper()
	viper.Set("jwt.secret", "test-secret-do-not-use")
	viper.Set("jwt.ttl", 7*24*time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	setupSecret(t)

	for _, role := range []model.Role{model.RoleAdmin, model.RoleUser} {
		token, err := IssueToken("user-123", role, time.Hour)
		require.NoError(t, err)

		id, err := ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", id.UserID)
		assert.Equal(t, role, id.Role)
	}
}

func TestTokenDefaultTTL(t *testing.T) {
	setupSecret(t)

	token, err := IssueToken("user-123", model.RoleUser, 0)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.NoError(t, err)
}

func TestTokenExpired(t *testing.T) {
	setupSecret(t)

	token, err := IssueToken("user-123", model.RoleUser, time.Millisecond)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenTampered(t *testing.T) {
	setupSecret(t)

	token, err := IssueToken("user-123", model.RoleAdmin, time.Hour)
	require.NoError(t, err)

	// Flip one character in the middle of the signature. The final
	// character only carries base64 padding bits, so it is not a
	// reliable place to tamper.
	idx := strings.LastIndex(token, ".") + 11
	b := []byte(token)
	if b[idx] == 'A' {
		b[idx] = 'B'
	} else {
		b[idx] = 'A'
	}

	_, err = ValidateToken(string(b))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	setupSecret(t)

	token, err := IssueToken("user-123", model.RoleAdmin, time.Hour)
	require.NoError(t, err)

	viper.Set("jwt.secret", "a-rotated-secret")
	defer setupSecret(t)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenUnsignedRejected(t *testing.T) {
	setupSecret(t)

	// alg=none tokens carry claims but no signature to trust
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "user-123",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	setupSecret(t)

	for _, bad := range []string{"", "x", "a.b", "a.b.c", strings.Repeat("x", 500)} {
		_, err := ValidateToken(bad)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenUnknownRoleRejected(t *testing.T) {
	setupSecret(t)

	claims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-123",
		"role": "superadmin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := claims.SignedString([]byte(viper.GetString("jwt.secret")))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
