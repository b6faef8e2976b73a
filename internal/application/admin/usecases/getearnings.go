package usecases

import (
	"context"
	"time"

	"hoteltec/internal/domain/order"
	"hoteltec/internal/shared/biztime"
	apperrors "hoteltec/internal/shared/errors"
)

type EarningsPeriod string

const (
	PeriodToday     EarningsPeriod = "today"
	PeriodYesterday EarningsPeriod = "yesterday"
	PeriodWeek      EarningsPeriod = "week"
	PeriodYear      EarningsPeriod = "year"
	PeriodCustom    EarningsPeriod = "custom"
	PeriodAll       EarningsPeriod = "all"
)

type GetEarningsCommand struct {
	Period EarningsPeriod
	// StartDate and EndDate bound a custom window, as YYYY-MM-DD in the
	// business timezone.
	StartDate string
	EndDate   string
	// HotelID narrows the report to one hotel; nil covers the platform.
	HotelID *uint
}

type EarningsResult struct {
	Period     EarningsPeriod
	From       *time.Time
	To         *time.Time
	OrderTotal float64
	OrderCount int64
}

// GetEarningsUseCase sums order revenue over a reporting window.
type GetEarningsUseCase struct {
	orderRepo order.OrderRepository
}

func NewGetEarningsUseCase(orderRepo order.OrderRepository) *GetEarningsUseCase {
	return &GetEarningsUseCase{orderRepo: orderRepo}
}

func (uc *GetEarningsUseCase) Execute(ctx context.Context, cmd GetEarningsCommand) (*EarningsResult, error) {
	from, to, err := uc.window(cmd)
	if err != nil {
		return nil, err
	}

	total, err := uc.orderRepo.SumTotals(ctx, cmd.HotelID, from, to)
	if err != nil {
		return nil, err
	}

	count, err := uc.orderRepo.CountBetween(ctx, cmd.HotelID, from, to)
	if err != nil {
		return nil, err
	}

	return &EarningsResult{
		Period:     cmd.Period,
		From:       from,
		To:         to,
		OrderTotal: total,
		OrderCount: count,
	}, nil
}

func (uc *GetEarningsUseCase) window(cmd GetEarningsCommand) (*time.Time, *time.Time, error) {
	now := biztime.NowUTC()

	switch cmd.Period {
	case PeriodToday:
		from := biztime.StartOfDayUTC(now)
		return &from, nil, nil
	case PeriodYesterday:
		yesterday := now.AddDate(0, 0, -1)
		from := biztime.StartOfDayUTC(yesterday)
		to := biztime.EndOfDayUTC(yesterday)
		return &from, &to, nil
	case PeriodWeek:
		from := biztime.StartOfDayUTC(now.AddDate(0, 0, -7))
		return &from, nil, nil
	case PeriodYear:
		from := biztime.StartOfYearUTC(now.Year())
		return &from, nil, nil
	case PeriodCustom:
		if cmd.StartDate == "" || cmd.EndDate == "" {
			return nil, nil, apperrors.NewValidationError("custom period requires start and end dates")
		}
		from, err := biztime.ParseDateInBizTimezone(cmd.StartDate)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid start date, expected YYYY-MM-DD")
		}
		end, err := biztime.ParseDateInBizTimezone(cmd.EndDate)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid end date, expected YYYY-MM-DD")
		}
		to := biztime.EndOfDayUTC(end)
		if to.Before(from) {
			return nil, nil, apperrors.NewValidationError("end date must not precede start date")
		}
		return &from, &to, nil
	case PeriodAll, "":
		return nil, nil, nil
	default:
		return nil, nil, apperrors.NewValidationError("invalid period, expected today, yesterday, week, year, custom, or all")
	}
}
