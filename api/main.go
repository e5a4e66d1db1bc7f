package main

import (
	"os"

	"cryptomine/api/internal/app"
	"cryptomine/api/internal/config"
	"cryptomine/api/internal/infra/nats"
	"cryptomine/api/internal/infra/postgres"
	"cryptomine/api/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	if envpath := os.Getenv("ENVPATH"); envpath != "" {
		if err := godotenv.Load(envpath); err != nil {
			panic("Can't load .env file: " + err.Error())
		}
	}

	config := config.ReadConfig()
	config.DB = postgres.Init(config)

	unixLogger := logger.Init(config)

	natsinfra := nats.Init(config, unixLogger)

	app := &app.App{
		Config:    config,
		Db:        config.DB,
		NatsInfra: natsinfra,
		Log:       unixLogger,
	}

	app.Start()
}
