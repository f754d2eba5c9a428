package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"
	"laundry/internal/generated/servers"
	"laundry/internal/notifier"
	"laundry/internal/pkg/metrics"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrderFields  commands.UpdateOrderFieldsCommandHandler
	AttemptTransition  commands.AttemptTransitionCommandHandler
	OverrideStatus     commands.OverrideStatusCommandHandler
	CreateActor        commands.CreateActorCommandHandler
	ListStageOrders    queries.ListStageOrdersQueryHandler
	GetStageCounts     queries.GetStageCountsQueryHandler
	GetOrder           queries.GetOrderQueryHandler
	ListDeliveryActors queries.ListDeliveryActorsQueryHandler
	ResolveScan        queries.ResolveScanQueryHandler
}

// Options carries the optional collaborators of a Server.
type Options struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

var _ servers.ServerInterface = (*Server)(nil)

// Server maps HTTP requests onto the workflow use cases.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers      Handlers
	router        services.StageRouter
	notifications *notifier.Manager
	metrics       *metrics.Metrics
	gatherer      prometheus.Gatherer
	logger        *slog.Logger
	upgrader      websocket.Upgrader
	contract      *contract
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	ctx context.Context,
	handlers Handlers,
	router services.StageRouter,
	notifications *notifier.Manager,
	opts Options,
) (*Server, error) {
	c, err := loadContract(ctx)
	if err != nil {
		return nil, err
	}
	c.register()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &Server{
		handlers:      handlers,
		router:        router,
		notifications: notifications,
		metrics:       opts.Metrics,
		gatherer:      gatherer,
		logger:        logger.With("component", "http"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		contract: c,
	}, nil
}

// Echo builds the router with every route registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.INFO)
	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	if s.metrics != nil {
		e.Use(s.instrument)
	}
	e.Use(s.contract.validate(s.respondError))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	e.GET("/openapi.json", s.contract.serveJSON)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, s)

	return e
}

func (s *Server) instrument(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method
		code := strconv.Itoa(c.Response().Status)
		s.metrics.HTTPRequests.WithLabelValues(method, route, code).Inc()
		s.metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		return nil
	}
}
