package sqlstore

import (
	"context"
	"fmt"

	"github.com/aanand-mishra/records-console/internal/types"
)

// GetEmployees returns every employee row.
func (s *Store) GetEmployees(ctx context.Context) ([]types.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetEmployees: %w", err)
	}
	return employees, nil
}
