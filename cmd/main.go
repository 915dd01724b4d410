package main

import (
	"kursapi/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Kurs API
// @version 1.0
// @description REST API that scrapes the public BCA exchange-rate table once per day and serves CRUD access to the stored records.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		logrus.Fatalf("Application stopped with error: %v", err)
	}
}
