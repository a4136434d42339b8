// Package product contains the console handlers for the Product table.
//
// Each exported function is a factory: it receives the store once, when
// the menu is built, and returns the handler the menu calls on every
// selection of that item.
package product

import (
	"context"
	"strconv"

	"github.com/aanand-mishra/records-console/internal/console"
	"github.com/aanand-mishra/records-console/internal/storage"
	"github.com/aanand-mishra/records-console/internal/types"
	"github.com/aanand-mishra/records-console/internal/utils/response"
)

// Header is the column line printed above the product table.
var Header = []string{"ProductID", "ProductName", "Price", "Quantity"}

// Menu returns the Product Management menu.
func Menu(store storage.ProductStore) *console.Menu {
	return &console.Menu{
		Title: "Product Management",
		Items: []console.Item{
			{Label: "Create Product", Handler: Create(store)},
			{Label: "Read Products", Handler: List(store)},
			{Label: "Update Product", Handler: Update(store)},
			{Label: "Delete Product", Handler: Delete(store)},
		},
	}
}

// Create prompts for every field and inserts the product.
func Create(store storage.ProductStore) console.HandlerFunc {
	return func(ctx context.Context, t *console.Terminal) error {
		id, err := t.Int64("Enter ProductID: ")
		if err != nil {
			return err
		}
		p, err := readFields(t, "Enter ")
		if err != nil {
			return err
		}
		p.ProductID = id

		rows, err := store.CreateProduct(ctx, p)
		if err != nil {
			return err
		}

		t.Printf("%d product inserted successfully.\n", rows)
		return nil
	}
}

// List prints every product as a tab-delimited table.
func List(store storage.ProductStore) console.HandlerFunc {
	return func(ctx context.Context, t *console.Terminal) error {
		products, err := store.GetProducts(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(products))
		for _, p := range products {
			rows = append(rows, row(p))
		}
		return response.WriteTable(t.Out, Header, rows)
	}
}

// Update prompts for an ID and the new field values.
func Update(store storage.ProductStore) console.HandlerFunc {
	return func(ctx context.Context, t *console.Terminal) error {
		id, err := t.Int64("Enter ProductID to update: ")
		if err != nil {
			return err
		}
		p, err := readFields(t, "Enter new ")
		if err != nil {
			return err
		}
		p.ProductID = id

		rows, err := store.UpdateProduct(ctx, p)
		if err != nil {
			return err
		}

		if rows == 0 {
			t.Println("No product found with the given ID.")
			return nil
		}
		t.Printf("%d product updated successfully.\n", rows)
		return nil
	}
}

// Delete prompts for an ID and removes that product.
func Delete(store storage.ProductStore) console.HandlerFunc {
	return func(ctx context.Context, t *console.Terminal) error {
		id, err := t.Int64("Enter ProductID to delete: ")
		if err != nil {
			return err
		}

		rows, err := store.DeleteProduct(ctx, id)
		if err != nil {
			return err
		}

		if rows == 0 {
			t.Println("No product found with the given ID.")
			return nil
		}
		t.Printf("%d product deleted successfully.\n", rows)
		return nil
	}
}

// row formats p as table columns. Prices always show two decimals.
func row(p types.Product) []string {
	return []string{
		strconv.FormatInt(p.ProductID, 10),
		p.ProductName,
		p.Price.StringFixed(2),
		strconv.Itoa(p.Quantity),
	}
}

func readFields(t *console.Terminal, verb string) (types.Product, error) {
	var p types.Product
	var err error

	if p.ProductName, err = t.Line(verb + "ProductName: "); err != nil {
		return p, err
	}
	if p.Price, err = t.Decimal(verb + "Price: "); err != nil {
		return p, err
	}
	if p.Quantity, err = t.Int(verb + "Quantity: "); err != nil {
		return p, err
	}
	return p, nil
}
