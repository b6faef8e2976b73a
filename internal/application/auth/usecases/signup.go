package usecases

import (
	"context"
	"strings"

	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/domain/subscription"
	"hoteltec/internal/domain/user"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type SignupCommand struct {
	Email     string
	Password  string
	Name      string
	HotelName string
}

type SignupResult struct {
	User         *user.User
	Hotel        *hotel.Hotel
	Subscription *subscription.Subscription
	Token        string
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, role string) (string, error)
}

// SignupUseCase registers an owner, their hotel, and a trial subscription in
// one transaction. The storefront slug is derived from the hotel name.
type SignupUseCase struct {
	userRepo         user.UserRepository
	hotelRepo        hotel.HotelRepository
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	hasher           PasswordHasher
	tokens           TokenIssuer
	txManager        appDB.TxRunner
	logger           logger.Interface
}

func NewSignupUseCase(
	userRepo user.UserRepository,
	hotelRepo hotel.HotelRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	txManager appDB.TxRunner,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo:         userRepo,
		hotelRepo:        hotelRepo,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		hasher:           hasher,
		tokens:           tokens,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	if missing := uc.missingFields(cmd); len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing)
	}
	if len(cmd.Password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("email is already registered")
	} else if !apperrors.IsNotFoundError(err) {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err.Error())
	}

	result := &SignupResult{}
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := user.NewUser(email, cmd.Name, hash, user.RoleHotelOwner)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Save(txCtx, u); err != nil {
			return err
		}

		h, err := hotel.NewHotel(cmd.HotelName, hotel.Slugify(cmd.HotelName), email)
		if err != nil {
			return apperrors.NewValidationError(err.Error())
		}
		if err := h.AssignOwner(u.ID()); err != nil {
			return err
		}
		if err := uc.hotelRepo.Save(txCtx, h); err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.NewConflictError("a hotel with this name already exists")
			}
			return err
		}

		if err := u.AssignHotel(h.ID()); err != nil {
			return err
		}
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}

		sub, err := uc.startTrial(txCtx, h.ID(), u.ID())
		if err != nil {
			return err
		}

		result.User = u
		result.Hotel = h
		result.Subscription = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(result.User.ID(), string(result.User.Role()))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to issue token", err.Error())
	}
	result.Token = token

	uc.logger.Infow("hotel owner signed up",
		"user_id", result.User.ID(),
		"hotel_id", result.Hotel.ID(),
		"slug", result.Hotel.Slug())

	return result, nil
}

func (uc *SignupUseCase) missingFields(cmd SignupCommand) []string {
	var missing []string
	if strings.TrimSpace(cmd.Email) == "" {
		missing = append(missing, "email")
	}
	if cmd.Password == "" {
		missing = append(missing, "password")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(cmd.HotelName) == "" {
		missing = append(missing, "hotel_name")
	}
	return missing
}

// startTrial begins the trial on the cheapest active paid plan, falling back
// to the free tier when no plan rows exist yet.
func (uc *SignupUseCase) startTrial(ctx context.Context, hotelID, userID uint) (*subscription.Subscription, error) {
	plans, err := uc.planRepo.ListActive(ctx)
	if err != nil || len(plans) == 0 {
		uc.logger.Warnw("no active plans for trial, skipping subscription", "error", err, "hotel_id", hotelID)
		return nil, nil
	}

	trialPlan := plans[0]
	for _, p := range plans {
		if !p.IsFree() {
			trialPlan = p
			break
		}
	}

	sub, err := subscription.NewTrialSubscription(hotelID, userID, trialPlan.ID())
	if err != nil {
		return nil, err
	}
	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
