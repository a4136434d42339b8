package sqlstore

import (
	"github.com/aanand-mishra/records-console/internal/storage/record"
	"github.com/aanand-mishra/records-console/internal/types"
)

var employeeTable = record.Table[types.Employee]{
	Name:    "Employee",
	Columns: []string{"EmpID", "Name", "Salary"},
	Values: func(e types.Employee) []any {
		return []any{e.EmpID, e.Name, e.Salary}
	},
	Fields: func(e *types.Employee) []any {
		return []any{&e.EmpID, &e.Name, &e.Salary}
	},
}

var productTable = record.Table[types.Product]{
	Name:    "Product",
	Columns: []string{"ProductID", "ProductName", "Price", "Quantity"},
	Values: func(p types.Product) []any {
		return []any{p.ProductID, p.ProductName, p.Price, p.Quantity}
	},
	Fields: func(p *types.Product) []any {
		return []any{&p.ProductID, &p.ProductName, &p.Price, &p.Quantity}
	},
}

var studentTable = record.Table[types.Student]{
	Name:    "Student",
	Columns: []string{"StudentID", "Name", "Department", "Marks"},
	Values: func(s types.Student) []any {
		return []any{s.StudentID, s.Name, s.Department, s.Marks}
	},
	Fields: func(s *types.Student) []any {
		return []any{&s.StudentID, &s.Name, &s.Department, &s.Marks}
	},
}
