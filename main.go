package main

import (
	"os"

	"github.com/rmartinez-dev/todos-api/app"
)

func getPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else {
		port = ":" + port
	}

	return port
}

// @title Todos API
// @version 0.1
// @description Token-authenticated todo list service backed by MongoDB.
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	err := app.SetupAndRunApp(getPort())
	if err != nil {
		panic(err)
	}
}
