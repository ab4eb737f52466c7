package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ImperialKoi/Candit/config"
	"github.com/ImperialKoi/Candit/internal/controller"
	"github.com/ImperialKoi/Candit/internal/domain"
	circuitbreaker "github.com/ImperialKoi/Candit/internal/infrastructure/circuit-breaker"
	"github.com/ImperialKoi/Candit/internal/infrastructure/message-queue/kafka"
	objectstorage "github.com/ImperialKoi/Candit/internal/infrastructure/object-storage"
	paymentgateway "github.com/ImperialKoi/Candit/internal/infrastructure/payment-gateway"
	"github.com/ImperialKoi/Candit/internal/infrastructure/tracing"
	localmiddleware "github.com/ImperialKoi/Candit/internal/middleware"
	"github.com/ImperialKoi/Candit/internal/repository"
	"github.com/ImperialKoi/Candit/internal/service"
	"github.com/ImperialKoi/Candit/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("storefront-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	storage, err := objectstorage.CreateCloudinaryStorage(app.Config.CloudinaryConfig.URL, app.Config.CloudinaryConfig.UploadFolder)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize object storage")
	}

	kafkaProducer := kafka.CreateKafkaProducer(app.Config)

	cb := circuitbreaker.CreateCircuitBreaker[paymentgateway.CaptureResult]("storefront-service")

	paypalProcessor, err := paymentgateway.CreatePayPalProcessor(app.Config, cb)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PayPal client")
	}

	processors := map[string]paymentgateway.Processor{
		domain.PaymentMethodCard:     paymentgateway.CreateStripeProcessor(app.Config, cb),
		domain.PaymentMethodPayPal:   paypalProcessor,
		domain.PaymentMethodTransfer: paymentgateway.CreateTransferProcessor(app.Config.CheckoutConfig.TransferEmail),
	}

	isLoggedIn := localmiddleware.CreateAuthMiddleware(app.Config.JWTSecret)

	productRepo := repository.CreateProductRepository(app.DB)
	cartRepo := repository.CreateCartRepository(app.DB)
	userRepo := repository.CreateUserRepository(app.DB)
	orderRepo := repository.CreateOrderRepository(app.DB)

	productSvc := service.CreateProductService(productRepo, storage)
	cartSvc := service.CreateCartService(cartRepo, productRepo, app.Config.CheckoutConfig.CartTTLDays)
	userSvc := service.CreateUserService(userRepo, app.Config)
	orderSvc := service.CreateOrderService(orderRepo, cartRepo, userRepo, processors, kafkaProducer, app.Config)

	controller.CreateProductController(g, productSvc, isLoggedIn, localmiddleware.AdminOnly)
	controller.CreateCartController(g, cartSvc, isLoggedIn)
	controller.CreateUserController(g, userSvc, isLoggedIn)
	controller.CreateOrderController(g, orderSvc, isLoggedIn)

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	// add a job to the scheduler
	_, err = s.NewJob(
		gocron.DurationJob(
			1*time.Hour,
		),
		gocron.NewTask(
			cartSvc.RemoveStaleCartItems,
		),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))

	app.Server = e
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
