package main

import (
	"context"
	"log"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/server"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
