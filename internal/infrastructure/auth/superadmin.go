package auth

import (
	"crypto/subtle"

	"hoteltec/internal/shared/config"
)

// SuperAdminVerifier authenticates the platform operator against the fixed
// credential pair and shared bearer token from configuration. There is no
// super-admin user row; the whole role is a shared secret.
type SuperAdminVerifier struct {
	email    string
	password string
	token    string
}

func NewSuperAdminVerifier(cfg *config.SuperAdminConfig) *SuperAdminVerifier {
	return &SuperAdminVerifier{
		email:    cfg.Email,
		password: cfg.Password,
		token:    cfg.Token,
	}
}

// VerifyCredentials checks the login credential pair in constant time.
func (v *SuperAdminVerifier) VerifyCredentials(email, password string) bool {
	if v.email == "" || v.password == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return emailOK && passOK
}

// VerifyToken checks the shared bearer token in constant time.
func (v *SuperAdminVerifier) VerifyToken(token string) bool {
	if v.token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(v.token)) == 1
}

// Token returns the shared token handed out after a successful credential login.
func (v *SuperAdminVerifier) Token() string {
	return v.token
}
