package usecases

import (
	"context"
	"time"

	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/domain/order"
	"hoteltec/internal/domain/subscription"
	vo "hoteltec/internal/domain/subscription/valueobjects"
	"hoteltec/internal/domain/ticket"
	"hoteltec/internal/domain/user"
	"hoteltec/internal/shared/biztime"
	"hoteltec/internal/shared/logger"
)

type AnalyticsResult struct {
	TotalHotels         int64
	TotalUsers          int64
	ActiveSubscriptions int64
	TrialSubscriptions  int64
	OpenTickets         int64
	OrdersToday         int64
	OrdersThisMonth     int64
	RevenueAllTime      float64
}

// GetAnalyticsUseCase aggregates the platform dashboard counters.
type GetAnalyticsUseCase struct {
	hotelRepo        hotel.HotelRepository
	userRepo         user.UserRepository
	subscriptionRepo subscription.SubscriptionRepository
	ticketRepo       ticket.TicketRepository
	orderRepo        order.OrderRepository
	logger           logger.Interface
}

func NewGetAnalyticsUseCase(
	hotelRepo hotel.HotelRepository,
	userRepo user.UserRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	ticketRepo ticket.TicketRepository,
	orderRepo order.OrderRepository,
	logger logger.Interface,
) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		hotelRepo:        hotelRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		ticketRepo:       ticketRepo,
		orderRepo:        orderRepo,
		logger:           logger,
	}
}

func (uc *GetAnalyticsUseCase) Execute(ctx context.Context) (*AnalyticsResult, error) {
	result := &AnalyticsResult{}

	var err error
	if result.TotalHotels, err = uc.hotelRepo.Count(ctx); err != nil {
		return nil, err
	}
	if _, result.TotalUsers, err = uc.userRepo.List(ctx, user.UserFilter{PageSize: 1}); err != nil {
		return nil, err
	}
	if result.ActiveSubscriptions, err = uc.subscriptionRepo.CountByStatus(ctx, vo.StatusActive); err != nil {
		return nil, err
	}
	if result.TrialSubscriptions, err = uc.subscriptionRepo.CountByStatus(ctx, vo.StatusTrial); err != nil {
		return nil, err
	}
	if result.OpenTickets, err = uc.ticketRepo.CountOpen(ctx); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	if result.OrdersToday, err = uc.orderRepo.CountSince(ctx, nil, biztime.StartOfDayUTC(now)); err != nil {
		return nil, err
	}
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if result.OrdersThisMonth, err = uc.orderRepo.CountSince(ctx, nil, startOfMonth); err != nil {
		return nil, err
	}

	if result.RevenueAllTime, err = uc.subscriptionRepo.SumAmountPaid(ctx,
		[]vo.SubscriptionStatus{vo.StatusActive, vo.StatusExpired, vo.StatusCancelled}); err != nil {
		return nil, err
	}

	return result, nil
}
