package main

import (
	"os"

	"github.com/spacesedan/texture/config"
	"github.com/spacesedan/texture/internal/cli"
	"github.com/spacesedan/texture/internal/clients"
	"github.com/spacesedan/texture/internal/logging"
)

const version = "1.0.0"

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()
	defer clients.CloseValkey()

	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
