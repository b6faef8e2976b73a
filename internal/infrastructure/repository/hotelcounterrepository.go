package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
)

// HotelCounterRepository claims per-hotel order numbers. The increment runs
// as a single UPDATE against the counter row, so concurrent orders for the
// same hotel serialize on the row lock and each gets a distinct number.
type HotelCounterRepository struct {
	db *gorm.DB
}

func NewHotelCounterRepository(db *gorm.DB) *HotelCounterRepository {
	return &HotelCounterRepository{db: db}
}

func (r *HotelCounterRepository) NextOrderNumber(ctx context.Context, hotelID uint) (int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)

	// Ensure the counter row exists. The conflict clause makes this a no-op
	// when another request created it first.
	seed := models.HotelCounterModel{HotelID: hotelID, LastOrderNumber: 0}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error
	if err != nil {
		return 0, fmt.Errorf("failed to ensure counter for hotel %d: %w", hotelID, err)
	}

	result := db.WithContext(ctx).
		Model(&models.HotelCounterModel{}).
		Where("hotel_id = ?", hotelID).
		UpdateColumn("last_order_number", gorm.Expr("last_order_number + 1"))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to increment counter for hotel %d: %w", hotelID, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("counter row missing for hotel %d", hotelID)
	}

	var counter models.HotelCounterModel
	err = db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		First(&counter).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read counter for hotel %d: %w", hotelID, err)
	}

	return counter.LastOrderNumber, nil
}
