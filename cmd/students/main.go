// Command students is the console program for the Student table.
//
//	go run ./cmd/students --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/students
package main

import (
	"github.com/aanand-mishra/records-console/internal/app"
	"github.com/aanand-mishra/records-console/internal/console"
	"github.com/aanand-mishra/records-console/internal/console/handlers/student"
	"github.com/aanand-mishra/records-console/internal/storage/sqlstore"
)

func main() {
	app.Run("students", func(store *sqlstore.Store) *console.Menu {
		return student.Menu(store)
	})
}
