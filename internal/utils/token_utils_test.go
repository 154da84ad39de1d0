package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "prostaff")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "prostaff")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	valid, err := GenerateJWT("user-1", "secret", time.Hour, "prostaff")
	require.NoError(t, err)
	expired, err := GenerateJWT("user-1", "secret", -time.Minute, "prostaff")
	require.NoError(t, err)
	noSubject, err := GenerateJWT("", "secret", time.Hour, "prostaff")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		issuer  string
		wantErr error
	}{
		{name: "wrong secret", token: valid, secret: "other", issuer: "prostaff", wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid, secret: "secret", issuer: "someone-else", wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "expired", token: expired, secret: "secret", issuer: "prostaff", wantErr: jwt.ErrTokenExpired},
		{name: "missing subject", token: noSubject, secret: "secret", issuer: "prostaff", wantErr: jwt.ErrTokenInvalidClaims},
		{name: "garbage", token: "not-a-jwt", secret: "secret", wantErr: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAndValidateJWT(tt.token, tt.secret, tt.issuer)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
