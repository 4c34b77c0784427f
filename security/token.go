package security

import (
	"errors"
	"fmt"
	"time"

	"fstop/portfolio-api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// ErrInvalidToken covers every way a token can be bad: garbage input,
// unexpected signing method, bad signature or past expiry. Callers
// only ever need to know that the token can't be trusted.
var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated subject derived from a validated
// token.
type Identity struct {
	UserID string
	Role   model.Role
}

// IssueToken signs a token carrying the user ID and role, valid for
// ttl. A non-positive ttl falls back to the configured jwt.ttl.
func IssueToken(userID string, role model.Role, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = viper.GetDuration("jwt.ttl")
	}

	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

// ValidateToken parses and verifies a token issued by IssueToken. No
// claim is read before the signature checks out.
func ValidateToken(tokenStr string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	role := model.Role(claims.Role)
	if !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: claims.Subject,
		Role:   role,
	}, nil
}
