// Package http exposes the order back-office over HTTP with echo. Handlers
// translate requests into commands and queries and map domain errors to
// status codes; they hold no business logic.
package http

import (
	"context"

	"nailorders/internal/core/application/usecases/commands"
	"nailorders/internal/core/application/usecases/queries"
	"nailorders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	EditOrderHandler interface {
		Handle(ctx context.Context, cmd commands.EditOrderCommand) (*order.Order, error)
	}
	AdvanceOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (order.Status, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	GetOrdersByStatusHandler interface {
		Handle(ctx context.Context, q queries.GetOrdersByStatusQuery) (queries.GetOrdersByStatusQueryResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, q queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	GetMonthlyStatsHandler interface {
		Handle(ctx context.Context, q queries.GetMonthlyStatsQuery) (queries.MonthlyStats, error)
	}
	GetCustomerStatsHandler interface {
		Handle(ctx context.Context, q queries.GetCustomerStatsQuery) (queries.CustomerStats, error)
	}
	GetDashboardHandler interface {
		Handle(ctx context.Context, q queries.GetDashboardQuery) (queries.Dashboard, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder        CreateOrderHandler
	EditOrder          EditOrderHandler
	AdvanceOrderStatus AdvanceOrderStatusHandler
	DeleteOrder        DeleteOrderHandler
	GetOrdersByStatus  GetOrdersByStatusHandler
	GetOrder           GetOrderHandler
	GetMonthlyStats    GetMonthlyStatsHandler
	GetCustomerStats   GetCustomerStatsHandler
	GetDashboard       GetDashboardHandler
}

// Server implements the HTTP endpoints of the back-office.
type Server struct {
	handlers       Handlers
	maxUploadBytes int64
}

// NewServer builds a server rejecting image files larger than maxUploadBytes.
// A non-positive limit disables the check.
func NewServer(handlers Handlers, maxUploadBytes int64) *Server {
	return &Server{
		handlers:       handlers,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes mounts every endpoint on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")
	v1.GET("/openapi.json", s.OpenAPI)
	v1.GET("/orders", s.GetOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/edit", s.EditOrder)
	v1.POST("/orders/:id/next-status", s.AdvanceOrderStatus)
	v1.DELETE("/orders/:id", s.DeleteOrder)
	v1.POST("/orders/:id/delete", s.DeleteOrder)
	v1.GET("/stats/monthly", s.GetMonthlyStats)
	v1.GET("/customers", s.GetCustomerStats)
	v1.GET("/dashboard", s.GetDashboard)
}
