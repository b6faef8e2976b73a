package usecases

import (
	"context"
	"fmt"
	"strconv"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/domain/hotel"
	"hoteltec/internal/infrastructure/persistence/seeds"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/logger"
)

type ResolveHotelCommand struct {
	Slug string
}

// ResolveHotelResult carries the storefront payload. Capabilities tell the
// client what is actually available instead of fabricating placeholder data.
type ResolveHotelResult struct {
	Hotel           *hotel.Hotel
	Products        []*catalog.Product
	Maintenance     bool
	OrderingEnabled bool
	CatalogSeeded   bool
}

// ResolveHotelUseCase resolves a storefront slug to its hotel tenant. Lookup
// walks a fallback chain: exact slug, then the name derived from the slug,
// then a slug prefix match, then the slug read as a numeric primary key. On
// the first visit to a hotel with an empty menu the default catalog is
// provisioned inside the same transaction that flips the seeded flag.
type ResolveHotelUseCase struct {
	hotelRepo   hotel.HotelRepository
	productRepo catalog.ProductRepository
	txManager   appDB.TxRunner
	logger      logger.Interface
}

func NewResolveHotelUseCase(
	hotelRepo hotel.HotelRepository,
	productRepo catalog.ProductRepository,
	txManager appDB.TxRunner,
	logger logger.Interface,
) *ResolveHotelUseCase {
	return &ResolveHotelUseCase{
		hotelRepo:   hotelRepo,
		productRepo: productRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *ResolveHotelUseCase) Execute(ctx context.Context, cmd ResolveHotelCommand) (*ResolveHotelResult, error) {
	slug := hotel.Slugify(cmd.Slug)
	if slug == "" {
		return nil, apperrors.NewValidationError("storefront slug is required")
	}

	h, err := uc.lookup(ctx, slug)
	if err != nil {
		return nil, err
	}

	if !h.CatalogSeeded() {
		if err := uc.seedCatalog(ctx, h); err != nil {
			// Seeding is retried on the next visit; the storefront still
			// renders with whatever catalog exists.
			uc.logger.Errorw("failed to seed default catalog", "error", err, "hotel_id", h.ID())
		}
	}

	products, _, err := uc.productRepo.GetByHotelID(ctx, h.ID(), catalog.ProductFilter{AvailableOnly: true, PageSize: 200})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return &ResolveHotelResult{
		Hotel:           h,
		Products:        products,
		Maintenance:     h.MaintenanceMode(),
		OrderingEnabled: h.IsActive() && !h.MaintenanceMode(),
		CatalogSeeded:   h.CatalogSeeded(),
	}, nil
}

// lookup walks the slug fallback chain and returns the first match: exact
// slug, derived-name exact match, derived-name substring match, slug prefix,
// and finally the slug read as a numeric primary key.
func (uc *ResolveHotelUseCase) lookup(ctx context.Context, slug string) (*hotel.Hotel, error) {
	h, err := uc.hotelRepo.GetBySlug(ctx, slug)
	if err == nil {
		return h, nil
	}
	if !apperrors.IsNotFoundError(err) {
		return nil, err
	}

	name := hotel.NameFromSlug(slug)
	h, err = uc.hotelRepo.GetByName(ctx, name)
	if err == nil {
		uc.logger.Debugw("storefront slug matched by derived name", "slug", slug, "name", name, "hotel_id", h.ID())
		return h, nil
	}
	if !apperrors.IsNotFoundError(err) {
		return nil, err
	}

	h, err = uc.hotelRepo.SearchByName(ctx, name)
	if err == nil {
		uc.logger.Debugw("storefront slug matched by name fragment", "slug", slug, "name", name, "hotel_id", h.ID())
		return h, nil
	}
	if !apperrors.IsNotFoundError(err) {
		return nil, err
	}

	h, err = uc.hotelRepo.GetBySlugPrefix(ctx, slug)
	if err == nil {
		uc.logger.Debugw("storefront slug matched by prefix", "slug", slug, "hotel_id", h.ID())
		return h, nil
	}
	if !apperrors.IsNotFoundError(err) {
		return nil, err
	}

	if hotelID, convErr := strconv.ParseUint(slug, 10, 32); convErr == nil {
		h, err = uc.hotelRepo.GetByID(ctx, uint(hotelID))
		if err == nil {
			uc.logger.Debugw("storefront slug matched as hotel id", "slug", slug, "hotel_id", h.ID())
			return h, nil
		}
		if !apperrors.IsNotFoundError(err) {
			return nil, err
		}
	}

	return nil, apperrors.NewNotFoundError("hotel not found")
}

func (uc *ResolveHotelUseCase) seedCatalog(ctx context.Context, h *hotel.Hotel) error {
	products, err := seeds.DefaultCatalog(h.ID())
	if err != nil {
		return err
	}

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Re-read inside the transaction so two concurrent first visits
		// don't both seed.
		current, err := uc.hotelRepo.GetByID(txCtx, h.ID())
		if err != nil {
			return err
		}
		if current.CatalogSeeded() {
			return nil
		}

		// Defaults only apply to an empty menu. An owner who built their
		// catalog before the first guest visit keeps it untouched; the
		// flag is still flipped so later visits skip this path.
		count, err := uc.productRepo.CountByHotelID(txCtx, h.ID())
		if err != nil {
			return err
		}
		if count > 0 {
			current.MarkCatalogSeeded()
			if err := uc.hotelRepo.Update(txCtx, current); err != nil {
				return err
			}
			h.MarkCatalogSeeded()
			return nil
		}

		if err := uc.productRepo.SaveBatch(txCtx, products); err != nil {
			return err
		}

		current.MarkCatalogSeeded()
		if err := uc.hotelRepo.Update(txCtx, current); err != nil {
			return err
		}

		h.MarkCatalogSeeded()
		uc.logger.Infow("default catalog seeded", "hotel_id", h.ID(), "products", len(products))
		return nil
	})
}
