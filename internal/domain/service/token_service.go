package service

// Claims are the claims read from a platform access token.
type Claims struct {
	Subject string
	Roles   []string
}

// TokenService validates access tokens issued by the platform backend.
type TokenService interface {
	// ValidateToken checks the token signature and expiry and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
