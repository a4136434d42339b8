package response

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/records-console/internal/storage"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer

	err := WriteTable(&buf,
		[]string{"ProductID", "ProductName", "Price", "Quantity"},
		[][]string{
			{"1", "Widget", "9.99", "10"},
			{"2", "Gadget", "0.50", "3"},
		})
	require.NoError(t, err)

	assert.Equal(t,
		"ProductID\tProductName\tPrice\tQuantity\n"+
			"1\tWidget\t9.99\t10\n"+
			"2\tGadget\t0.50\t3\n",
		buf.String())
}

func TestWriteTableHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, []string{"EmpID", "Name", "Salary"}, nil))
	assert.Equal(t, "EmpID\tName\tSalary\n", buf.String())
}

func TestWriteErrorPlain(t *testing.T) {
	var buf bytes.Buffer
	WriteError(&buf, errors.New("connection refused"))
	assert.Equal(t, "Error: connection refused\n", buf.String())
}

func TestWriteErrorRolledBack(t *testing.T) {
	driverErr := errors.New("UNIQUE constraint failed: Product.ProductID")
	err := fmt.Errorf("%w: %w", storage.ErrRolledBack, driverErr)

	var buf bytes.Buffer
	WriteError(&buf, err)

	assert.Equal(t,
		"Transaction rolled back due to error.\n"+
			"Error: transaction rolled back: UNIQUE constraint failed: Product.ProductID\n"+
			"  caused by: UNIQUE constraint failed: Product.ProductID\n",
		buf.String())
}
