package usecases

import (
	"context"

	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type SuperAdminLoginCommand struct {
	Email    string
	Password string
}

type SuperAdminLoginResult struct {
	Token string
}

// SuperAdminVerifier checks operator credentials configured at deploy time.
type SuperAdminVerifier interface {
	VerifyCredentials(email, password string) bool
	Token() string
}

type SuperAdminLoginUseCase struct {
	verifier SuperAdminVerifier
	logger   logger.Interface
}

func NewSuperAdminLoginUseCase(verifier SuperAdminVerifier, logger logger.Interface) *SuperAdminLoginUseCase {
	return &SuperAdminLoginUseCase{verifier: verifier, logger: logger}
}

func (uc *SuperAdminLoginUseCase) Execute(_ context.Context, cmd SuperAdminLoginCommand) (*SuperAdminLoginResult, error) {
	if !uc.verifier.VerifyCredentials(cmd.Email, cmd.Password) {
		uc.logger.Warnw("failed super admin login attempt", "email", cmd.Email)
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	uc.logger.Infow("super admin logged in")
	return &SuperAdminLoginResult{Token: uc.verifier.Token()}, nil
}
