// Package types holds the record structures shared across the
// application. Keeping them in one place prevents import cycles:
// handlers, storage, and utils can all import types without depending
// on each other.
package types

import "github.com/shopspring/decimal"

// Employee is one row of the Employee table.
// It is read-only in this application.
type Employee struct {
	EmpID  int64
	Name   string
	Salary decimal.Decimal
}

// Product is one row of the Product table.
//
// Price is a decimal rather than a float64 so that values such as 9.99
// are not subject to binary rounding in the program. What the database
// keeps depends on the column type the store creates for it.
type Product struct {
	ProductID   int64
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

// Student is one row of the Student table.
type Student struct {
	StudentID  int64
	Name       string
	Department string
	Marks      int
}
