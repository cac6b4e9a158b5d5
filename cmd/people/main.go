// filepath: cmd/people/main.go
package main

import (
	"people/internal/cli"

	// Import docs for Swagger
	_ "people/docs"
)

// @title People-API
// @version 1.0.0
// @description REST service to create, read, update and delete people records.
// @BasePath /
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
