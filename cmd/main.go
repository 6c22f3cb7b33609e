package main

import (
	"go.uber.org/fx"

	"wanderbook/cmd/bootstrap"
	"wanderbook/cmd/bootstrap/components"
)

// @title        Wanderbook API
// @version      1.0
// @description  Booking engine for guides, vehicles, and hotel rooms.
// @BasePath     /
func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		components.UsecaseModule,
		components.HandlerModule,
		bootstrap.ServerModule,
	)
	app.Run()
}
