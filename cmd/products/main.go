// Command products is the console program for the Product table.
//
//	go run ./cmd/products --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/products
package main

import (
	"github.com/aanand-mishra/records-console/internal/app"
	"github.com/aanand-mishra/records-console/internal/console"
	"github.com/aanand-mishra/records-console/internal/console/handlers/product"
	"github.com/aanand-mishra/records-console/internal/storage/sqlstore"
)

func main() {
	app.Run("products", func(store *sqlstore.Store) *console.Menu {
		return product.Menu(store)
	})
}
