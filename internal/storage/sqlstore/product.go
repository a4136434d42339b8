package sqlstore

import (
	"context"
	"fmt"

	"github.com/aanand-mishra/records-console/internal/storage"
	"github.com/aanand-mishra/records-console/internal/storage/dberrors"
	"github.com/aanand-mishra/records-console/internal/types"
)

// CreateProduct inserts product under its own ProductID.
// A duplicate ProductID yields an error wrapping storage.ErrAlreadyExists.
func (s *Store) CreateProduct(ctx context.Context, product types.Product) (int64, error) {
	rows, err := s.products.Insert(ctx, product)
	if err != nil {
		if dberrors.IsDuplicateKey(err) {
			return 0, fmt.Errorf("CreateProduct: %w: %w", storage.ErrAlreadyExists, err)
		}
		return 0, fmt.Errorf("CreateProduct: %w", err)
	}
	return rows, nil
}

// GetProducts returns every product row.
func (s *Store) GetProducts(ctx context.Context) ([]types.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetProducts: %w", err)
	}
	return products, nil
}

// UpdateProduct replaces name, price and quantity of the product with
// product.ProductID. Zero rows means no such product.
func (s *Store) UpdateProduct(ctx context.Context, product types.Product) (int64, error) {
	rows, err := s.products.Update(ctx, product)
	if err != nil {
		return 0, fmt.Errorf("UpdateProduct: %w", err)
	}
	return rows, nil
}

// DeleteProduct removes the product with id. Zero rows means no such product.
func (s *Store) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	rows, err := s.products.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("DeleteProduct: %w", err)
	}
	return rows, nil
}
