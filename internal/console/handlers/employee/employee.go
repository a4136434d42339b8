// Package employee contains the read-only console handler for the
// Employee table.
package employee

import (
	"context"
	"strconv"

	"github.com/aanand-mishra/records-console/internal/console"
	"github.com/aanand-mishra/records-console/internal/storage"
	"github.com/aanand-mishra/records-console/internal/utils/response"
)

// Header is the column line printed above the employee table.
var Header = []string{"EmpID", "Name", "Salary"}

// Menu returns the Employee Directory menu. It has no write actions.
func Menu(store storage.EmployeeStore) *console.Menu {
	return &console.Menu{
		Title: "Employee Directory",
		Items: []console.Item{
			{Label: "View All Employees", Handler: List(store)},
		},
	}
}

// List prints every employee as a tab-delimited table.
func List(store storage.EmployeeStore) console.HandlerFunc {
	return func(ctx context.Context, t *console.Terminal) error {
		employees, err := store.GetEmployees(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(employees))
		for _, e := range employees {
			rows = append(rows, []string{
				strconv.FormatInt(e.EmpID, 10),
				e.Name,
				e.Salary.StringFixed(2),
			})
		}
		return response.WriteTable(t.Out, Header, rows)
	}
}
