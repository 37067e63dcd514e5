package main

import (
	"context"
	"os"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/buildinfo"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/client/cli"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)
}
