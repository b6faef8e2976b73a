package usecases

import (
	"context"
	"strings"

	"hoteltec/internal/domain/user"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  *user.User
	Token string
}

type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			// Same response as a bad password so emails can't be probed.
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	if !u.IsActive() {
		return nil, apperrors.NewForbiddenError("account is suspended")
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record login time", "error", err, "user_id", u.ID())
	}

	token, err := uc.tokens.Generate(u.ID(), string(u.Role()))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to issue token", err.Error())
	}

	return &LoginResult{User: u, Token: token}, nil
}
