package sqlstore

import (
	"context"
	"fmt"

	"github.com/aanand-mishra/records-console/internal/storage"
	"github.com/aanand-mishra/records-console/internal/storage/dberrors"
	"github.com/aanand-mishra/records-console/internal/types"
)

// CreateStudent inserts student under its own StudentID.
// A duplicate StudentID yields an error wrapping storage.ErrAlreadyExists.
func (s *Store) CreateStudent(ctx context.Context, student types.Student) (int64, error) {
	rows, err := s.students.Insert(ctx, student)
	if err != nil {
		if dberrors.IsDuplicateKey(err) {
			return 0, fmt.Errorf("CreateStudent: %w: %w", storage.ErrAlreadyExists, err)
		}
		return 0, fmt.Errorf("CreateStudent: %w", err)
	}
	return rows, nil
}

// GetStudents returns every student row.
func (s *Store) GetStudents(ctx context.Context) ([]types.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: %w", err)
	}
	return students, nil
}

// UpdateStudent replaces name, department and marks of the student with
// student.StudentID. Zero rows means no such student.
func (s *Store) UpdateStudent(ctx context.Context, student types.Student) (int64, error) {
	rows, err := s.students.Update(ctx, student)
	if err != nil {
		return 0, fmt.Errorf("UpdateStudent: %w", err)
	}
	return rows, nil
}

// DeleteStudent removes the student with id. Zero rows means no such student.
func (s *Store) DeleteStudent(ctx context.Context, id int64) (int64, error) {
	rows, err := s.students.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("DeleteStudent: %w", err)
	}
	return rows, nil
}
