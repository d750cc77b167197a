package main

import (
	"os"

	_ "vepara_gateway/docs"
	"vepara_gateway/internal/adapter/http/routes"
	"vepara_gateway/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Vepara Gateway API
// @version         1.0
// @description     HTTP front for Vepara 2D card payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.LoadFromEnv()
	setupLogger(cfg.LogLevel)

	if err := routes.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "vepara-gateway").Logger()
	zerolog.DefaultContextLogger = &log.Logger
}
