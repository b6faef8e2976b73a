package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hoteltec/internal/domain/catalog"
	"hoteltec/internal/infrastructure/persistence/mappers"
	"hoteltec/internal/infrastructure/persistence/models"
	appDB "hoteltec/internal/shared/db"
	apperrors "hoteltec/internal/shared/errors"
	"hoteltec/internal/shared/utils"
)

type ProductRepository struct {
	db     *gorm.DB
	mapper *mappers.ProductMapper
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	model := r.mapper.ToModel(p)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}

	if p.ID() == 0 {
		return p.SetID(model.ID)
	}
	return nil
}

func (r *ProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	if len(products) == 0 {
		return nil
	}

	productModels := make([]*models.ProductModel, 0, len(products))
	for _, p := range products {
		productModels = append(productModels, r.mapper.ToModel(p))
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Create(&productModels).Error; err != nil {
		return fmt.Errorf("failed to save product batch: %w", err)
	}

	for i, p := range products {
		if p.ID() == 0 {
			if err := p.SetID(productModels[i].ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	model := r.mapper.ToModel(p)

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update product %d: %w", p.ID(), err)
	}
	return nil
}

// UpdateFields applies a partial update scoped to the hotel so one tenant
// can never touch another tenant's product.
func (r *ProductRepository) UpdateFields(ctx context.Context, hotelID, productID uint, update *appDB.PartialUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	db := appDB.GetTxFromContext(ctx, r.db)
	result := db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ? AND hotel_id = ?", productID, hotelID).
		Updates(update.Assignments())
	if result.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", productID, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID uint) error {
	db := appDB.GetTxFromContext(ctx, r.db)
	result := db.WithContext(ctx).Delete(&models.ProductModel{}, productID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", productID, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, productID uint) (*catalog.Product, error) {
	var model models.ProductModel

	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).First(&model, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		return nil, fmt.Errorf("failed to get product %d: %w", productID, err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProductRepository) GetByHotelID(ctx context.Context, hotelID uint, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
	db := appDB.GetTxFromContext(ctx, r.db)
	query := db.WithContext(ctx).Model(&models.ProductModel{}).Where("hotel_id = ?", hotelID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	p := utils.Pagination{Page: filter.Page, PageSize: filter.PageSize}
	var productModels []models.ProductModel
	if err := query.Order("category ASC, name ASC").Offset(p.Offset()).Limit(p.Limit()).Find(&productModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*catalog.Product, 0, len(productModels))
	for i := range productModels {
		product, err := r.mapper.ToDomain(&productModels[i])
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}
	return products, total, nil
}

func (r *ProductRepository) GetByIDs(ctx context.Context, hotelID uint, productIDs []uint) ([]*catalog.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	var productModels []models.ProductModel
	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Where("hotel_id = ? AND id IN ?", hotelID, productIDs).
		Find(&productModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products by IDs: %w", err)
	}

	products := make([]*catalog.Product, 0, len(productModels))
	for i := range productModels {
		product, err := r.mapper.ToDomain(&productModels[i])
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *ProductRepository) CountByHotelID(ctx context.Context, hotelID uint) (int64, error) {
	var total int64
	db := appDB.GetTxFromContext(ctx, r.db)
	err := db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("hotel_id = ?", hotelID).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products for hotel %d: %w", hotelID, err)
	}
	return total, nil
}

func (r *ProductRepository) DeleteByHotelID(ctx context.Context, hotelID uint) error {
	db := appDB.GetTxFromContext(ctx, r.db)
	if err := db.WithContext(ctx).Where("hotel_id = ?", hotelID).Delete(&models.ProductModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete products for hotel %d: %w", hotelID, err)
	}
	return nil
}
