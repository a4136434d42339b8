// Package student contains the console handlers for the Student table.
package student

import (
	"context"
	"errors"
	"strconv"

	"github.com/aanand-mishra/records-console/internal/console"
	"github.com/aanand-mishra/records-console/internal/storage"
	"github.com/aanand-mishra/records-console/internal/types"
	"github.com/aanand-mishra/records-console/internal/utils/response"
)

// Header is the column line printed above the student table.
var Header = []string{"ID", "Name", "Department", "Marks"}

// Menu returns the Student Management menu.
func Menu(store storage.StudentStore) *console.Menu {
	return &console.Menu{
		Title: "Student Management",
		Items: []console.Item{
			{Label: "Add Student", Handler: Add(store)},
			{Label: "View All Students", Handler: List(store)},
			{Label: "Update Student", Handler: Update(store)},
			{Label: "Delete Student", Handler: Delete(store)},
		},
	}
}

// Add prompts for a new student and inserts it.
func Add(store storage.StudentStore) console.HandlerFunc {
	return func(ctx context.Context, t *console.Terminal) error {
		s, err := readStudent(t, "Enter StudentID: ", "Enter ")
		if err != nil {
			return err
		}

		rows, err := store.CreateStudent(ctx, s)
		if err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				t.Printf("StudentID %d already exists.\n", s.StudentID)
			}
			return err
		}

		t.Printf("%d student added successfully.\n", rows)
		return nil
	}
}

// List prints every student as a tab-delimited table.
func List(store storage.StudentStore) console.HandlerFunc {
	return func(ctx context.Context, t *console.Terminal) error {
		students, err := store.GetStudents(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(students))
		for _, s := range students {
			rows = append(rows, []string{
				strconv.FormatInt(s.StudentID, 10),
				s.Name,
				s.Department,
				strconv.Itoa(s.Marks),
			})
		}
		return response.WriteTable(t.Out, Header, rows)
	}
}

// Update replaces name, department and marks of an existing student.
func Update(store storage.StudentStore) console.HandlerFunc {
	return func(ctx context.Context, t *console.Terminal) error {
		s, err := readStudent(t, "Enter StudentID to update: ", "Enter new ")
		if err != nil {
			return err
		}

		rows, err := store.UpdateStudent(ctx, s)
		if err != nil {
			return err
		}
		if rows == 0 {
			t.Println("StudentID not found.")
			return nil
		}

		t.Printf("%d student updated successfully.\n", rows)
		return nil
	}
}

// Delete removes a student by ID.
func Delete(store storage.StudentStore) console.HandlerFunc {
	return func(ctx context.Context, t *console.Terminal) error {
		id, err := t.Int64("Enter StudentID to delete: ")
		if err != nil {
			return err
		}

		rows, err := store.DeleteStudent(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			t.Println("StudentID not found.")
			return nil
		}

		t.Printf("%d student deleted successfully.\n", rows)
		return nil
	}
}

func readStudent(t *console.Terminal, idPrompt, verb string) (types.Student, error) {
	var s types.Student
	var err error

	if s.StudentID, err = t.Int64(idPrompt); err != nil {
		return s, err
	}
	if s.Name, err = t.Line(verb + "Name: "); err != nil {
		return s, err
	}
	if s.Department, err = t.Line(verb + "Department: "); err != nil {
		return s, err
	}
	if s.Marks, err = t.Int(verb + "Marks: "); err != nil {
		return s, err
	}
	return s, nil
}
