package auth

import (
	"testing"
	"time"

	"crosspromo/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	future := time.Now().Add(15 * time.Minute).Unix()
	past := time.Now().Add(-time.Minute).Unix()

	tests := []struct {
		name      string
		token     string
		wantSub   string
		wantRoles []string
		wantErr   bool
	}{
		{
			name: "valid access token",
			token: signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{
				"sub": "retailer-1", "exp": future, "type": "access", "roles": []string{"retailer"},
			}),
			wantSub:   "retailer-1",
			wantRoles: []string{"retailer"},
		},
		{
			name:    "token without type",
			token:   signToken(t, jwt.SigningMethodHS512, testSecret, jwt.MapClaims{"sub": "retailer-2", "exp": future}),
			wantSub: "retailer-2",
		},
		{
			name:    "expired",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "retailer-1", "exp": past}),
			wantErr: true,
		},
		{
			name:    "missing expiry",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "retailer-1"}),
			wantErr: true,
		},
		{
			name:    "wrong secret",
			token:   signToken(t, jwt.SigningMethodHS256, "another-secret", jwt.MapClaims{"sub": "retailer-1", "exp": future}),
			wantErr: true,
		},
		{
			name:    "refresh token",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "retailer-1", "exp": future, "type": "refresh"}),
			wantErr: true,
		},
		{
			name:    "no subject",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"exp": future}),
			wantErr: true,
		},
		{
			name:    "not a jwt",
			token:   "clearly-not-a-jwt-token-format",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, claims.Subject)
			assert.Equal(t, tt.wantRoles, claims.Roles)
		})
	}
}
