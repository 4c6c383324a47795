// Package auth verifies the access tokens issued by the platform backend.
package auth

import (
	"crosspromo/config"
	"crosspromo/internal/domain/service"
	"crosspromo/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const accessTokenType = "access"

// jwtService validates HMAC-signed access tokens. Tokens are issued by the platform backend;
// this service never signs any.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// accessClaims mirrors the claims the platform puts in its access tokens.
type accessClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type,omitempty"`
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{
				jwt.SigningMethodHS256.Alg(),
				jwt.SigningMethodHS384.Alg(),
				jwt.SigningMethodHS512.Alg(),
			}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks the signature and expiry of an access token and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &accessClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	// refresh tokens carry type=refresh and must not authorize API calls
	if claims.Type != "" && claims.Type != accessTokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &service.Claims{Subject: claims.Subject, Roles: claims.Roles}, nil
}
