package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"myeagle/cfg"
	"myeagle/internal/flight"
	"myeagle/internal/health"
	"myeagle/internal/hotel"
	"myeagle/internal/middleware"
	"myeagle/internal/payment"
	"myeagle/pkg/amadeus"
	"myeagle/pkg/cache"
	"myeagle/pkg/idgen"
	"myeagle/pkg/logger"
	"myeagle/pkg/observability"
	"myeagle/pkg/stripe"

	_ "myeagle/cmd/server/docs" // swagger docs

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           MyEagle Travel Booking API
// @version         1.0
// @description     Travel search and payment API with live-provider fallback to deterministic mock data.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	if config.Observability.OTLPEndpoint != "" {
		shutdownOtel, err := observability.Init(context.Background(), config.Observability, config.AppEnv)
		if err != nil {
			zlogger.Warn("failed to initialize OpenTelemetry, continuing without tracing",
				logger.Field{Key: "err", Value: err})
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownOtel(ctx); err != nil {
					zlogger.Warn("failed to shutdown OpenTelemetry", logger.Field{Key: "err", Value: err})
				}
			}()
		}
	}

	// ============
	// Cache
	// ============
	var searchCache cache.Cache
	if config.HasRedis() {
		redisAddr := config.RedisConfig.Host + ":" + config.RedisConfig.Port
		searchCache = cache.NewRedisCache(redisAddr, config.RedisConfig.Password)
		zlogger.Info("redis cache configured", logger.Field{Key: "addr", Value: redisAddr})
	}

	// ============
	// External Services
	// ============
	httpClient := &http.Client{
		Timeout: 5 * time.Second,
	}

	var flightOffers flight.OffersClient
	var hotelOffers hotel.OffersClient
	if config.HasAmadeus() {
		offersClient := amadeus.NewClient(httpClient, config.AmadeusConfig.BaseURL,
			config.AmadeusConfig.ClientID, config.AmadeusConfig.ClientSecret, zlogger)
		flightOffers = offersClient
		hotelOffers = offersClient
		zlogger.Info("search provider configured")
	} else {
		zlogger.Warn("search provider credentials not found, serving mock data")
	}

	var intents payment.IntentClient
	if config.HasStripe() {
		intents = stripe.NewClient(httpClient, config.StripeConfig.BaseURL, config.StripeConfig.APIKey, zlogger)
		zlogger.Info("payment provider configured")
	} else {
		zlogger.Warn("payment provider key not found, payment creation will return an error")
	}

	// ============
	// Internal Services
	// ============
	flightSvc := flight.NewService(flightOffers, searchCache, config.CacheTTLMinutes, zlogger)
	hotelSvc := hotel.NewService(hotelOffers, searchCache, config.CacheTTLMinutes, zlogger)
	paymentSvc := payment.NewService(intents, zlogger)

	flightHandler := flight.NewHandler(flightSvc, zlogger)
	hotelHandler := hotel.NewHandler(hotelSvc, zlogger)
	paymentHandler := payment.NewHandler(paymentSvc, zlogger)
	healthHandler := health.NewHandler(config.HasAmadeus(), config.HasStripe())

	ids, err := idgen.NewSnowflakeGenerator(1)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(zlogger, config.AppEnv))
	r.Use(middleware.RequestLogger(ids, zlogger))
	r.Use(middleware.NewCORS(config.CORSConfig))
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.NoRoute(middleware.NotFound(zlogger))

	healthHandler.RegisterRoutes(r)
	flightHandler.RegisterRoutes(r)
	hotelHandler.RegisterRoutes(r)
	paymentHandler.RegisterRoutes(r)
	initSwagger(r)

	addr := ":" + config.AppPort
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
