// Command employees is the console program for the Employee table.
//
//	go run ./cmd/employees --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/employees
package main

import (
	"github.com/aanand-mishra/records-console/internal/app"
	"github.com/aanand-mishra/records-console/internal/console"
	"github.com/aanand-mishra/records-console/internal/console/handlers/employee"
	"github.com/aanand-mishra/records-console/internal/storage/sqlstore"
)

func main() {
	app.Run("employees", func(store *sqlstore.Store) *console.Menu {
		return employee.Menu(store)
	})
}
