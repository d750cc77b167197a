package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "vepara_gateway/docs"
	"vepara_gateway/internal/adapter/http/handlers"
	"vepara_gateway/internal/adapter/http/middleware"
	"vepara_gateway/internal/infrastructure/config"
	"vepara_gateway/internal/infrastructure/payments"
	"vepara_gateway/internal/infrastructure/tracing"
	"vepara_gateway/internal/usecase"
	"vepara_gateway/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server and block until SIGINT/SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.CollectorHost != "" {
		tp, err := tracing.InitTracing(ctx, cfg.CollectorHost)
		if err != nil {
			log.Error().Err(err).Msg("tracing disabled")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := tp.Shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("tracer provider shutdown failed")
				}
			}()
		}
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           tracing.Handler(NewRouter(cfg)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to startup the application")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info().Msg("shutting down HTTP server")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires the gateway, use case and handlers into a gin engine.
func NewRouter(cfg config.Config) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg)
	return router
}

func getRoutes(router *gin.Engine, cfg config.Config) {
	var paymentGateway interfaces.IPaymentGateway
	veparaGateway, err := payments.NewVeparaGateway(payments.VeparaConfig{
		MerchantKey: cfg.VeparaMerchantKey,
		Sandbox:     cfg.VeparaSandbox,
		Timeout:     cfg.VeparaHTTPTimeout,
		Logger:      log.Logger,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Vepara gateway not configured")
	} else {
		paymentGateway = veparaGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentGateway, cfg.VeparaMerchantKey)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
}
