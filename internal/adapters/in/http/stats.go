package http

import (
	"net/http"
	"time"

	"nailorders/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetMonthlyStats handles GET /api/v1/stats/monthly?year=&month=.
func (s *Server) GetMonthlyStats(c echo.Context) error {
	var year, month int
	if err := runtime.BindQueryParameter("form", true, true, "year", c.QueryParams(), &year); err != nil {
		return invalidParameter("year", err)
	}
	if err := runtime.BindQueryParameter("form", true, true, "month", c.QueryParams(), &month); err != nil {
		return invalidParameter("month", err)
	}

	query, err := queries.NewGetMonthlyStatsQuery(year, month)
	if err != nil {
		return err
	}

	stats, err := s.handlers.GetMonthlyStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: toMonthlyStatsResponse(stats)})
}

// GetCustomerStats handles GET /api/v1/customers.
func (s *Server) GetCustomerStats(c echo.Context) error {
	stats, err := s.handlers.GetCustomerStats.Handle(c.Request().Context(), queries.NewGetCustomerStatsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: toCustomerStatsResponse(stats)})
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	query, err := queries.NewGetDashboardQuery(time.Now())
	if err != nil {
		return err
	}

	d, err := s.handlers.GetDashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: toDashboardResponse(d)})
}
