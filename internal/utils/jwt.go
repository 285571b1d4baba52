package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// stateIssuer is the "iss" claim carried by every OAuth2 state token.
const stateIssuer = "secretwall"

// GenerateStateToken creates the signed HMAC-SHA256 state parameter attached
// to the federated authorization redirect. Verifying it on the callback ties
// the callback to a request this server actually initiated.
//
// The token includes the following standard claims:
//   - Issuer    (iss): fixed application identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// Returns an error if ttl is zero, signKey is empty, or signing fails.
func GenerateStateToken(ttl time.Duration, signKey string) (string, error) {
	if ttl == 0 || signKey == "" {
		return "", errors.New("invalid params for generating state token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    stateIssuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing state token: %w", err)
	}

	return tokenString, nil
}

// ValidateStateToken verifies the signature, issuer, and expiry of a state
// parameter returned on the OAuth2 callback. Any failure means the callback
// did not originate from an authorization this server started (or took too
// long), and the exchange must be rejected.
func ValidateStateToken(tokenString, signKey string) error {
	_, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(stateIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return fmt.Errorf("error occurred validating state token: %w", err)
	}

	return nil
}
