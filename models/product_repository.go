package models

import (
	"context"
	"errors"

	"github.com/spf13/cast"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// Create inserts a new row from a validated column->value map and
// returns the stored record with its generated id and timestamp.
func (r *ProductsRepository) Create(ctx context.Context, fields map[string]interface{}) (*Product, error) {
	p := Product{
		Name:        cast.ToString(fields["name"]),
		Price:       cast.ToFloat64(fields["price"]),
		Description: cast.ToString(fields["description"]),
		Image:       cast.ToString(fields["image"]),
		Category:    cast.ToString(fields["category"]),
		Color:       cast.ToString(fields["color"]),
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// All returns every product in insertion order.
func (r *ProductsRepository) All(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) ByID(ctx context.Context, id int) (*Product, error) {
	var p Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update applies a validated partial-update map to an existing row.
// Columns absent from the map keep their stored values.
func (r *ProductsRepository) Update(ctx context.Context, id int, fields map[string]interface{}) (*Product, error) {
	p, err := r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(p).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *ProductsRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
