package http

import (
	"net/http"

	"nailorders/internal/adapters/in/http/docs"
	"nailorders/internal/core/application/usecases/commands"
	"nailorders/internal/core/application/usecases/queries"
	"nailorders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetOrders handles GET /api/v1/orders?status=<tab>. The tab defaults to
// deposit_paid.
func (s *Server) GetOrders(c echo.Context) error {
	var status *string
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &status); err != nil {
		return invalidParameter("status", err)
	}

	tab := order.DepositPaid
	if status != nil && *status != "" {
		tab = order.ParseStatus(*status)
	}

	query, err := queries.NewGetOrdersByStatusQuery(tab)
	if err != nil {
		return err
	}

	resp, err := s.handlers.GetOrdersByStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listResponse{
		Success: true,
		Cached:  resp.Cached,
		Data:    toOrderResponses(resp.Orders),
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(c.Param("id"))
	if err != nil {
		return err
	}

	resp, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, singleResponse{
		Success: true,
		Cached:  resp.Cached,
		Data:    toOrderResponse(resp.Order),
	})
}

// CreateOrder handles POST /api/v1/orders (multipart: data, images).
func (s *Server) CreateOrder(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart form expected")
	}

	details, err := readOrderPayload(c, form)
	if err != nil {
		return err
	}
	blobs, err := readImageBlobs(form, "images", s.maxUploadBytes)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(details, blobs)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, singleResponse{Success: true, Data: toOrderResponse(created)})
}

// EditOrder handles POST /api/v1/orders/:id/edit
// (multipart: data, oldImages repeated, newImages files).
func (s *Server) EditOrder(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart form expected")
	}

	details, err := readOrderPayload(c, form)
	if err != nil {
		return err
	}
	blobs, err := readImageBlobs(form, "newImages", s.maxUploadBytes)
	if err != nil {
		return err
	}

	cmd, err := commands.NewEditOrderCommand(c.Param("id"), details, form.Value["oldImages"], blobs)
	if err != nil {
		return err
	}

	updated, err := s.handlers.EditOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, singleResponse{Success: true, Data: toOrderResponse(updated)})
}

// AdvanceOrderStatus handles POST /api/v1/orders/:id/next-status.
func (s *Server) AdvanceOrderStatus(c echo.Context) error {
	cmd, err := commands.NewAdvanceOrderStatusCommand(c.Param("id"))
	if err != nil {
		return err
	}

	status, err := s.handlers.AdvanceOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Success: true, Status: status.String()})
}

// DeleteOrder handles DELETE /api/v1/orders/:id and POST /api/v1/orders/:id/delete.
func (s *Server) DeleteOrder(c echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(c.Param("id"))
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true})
}

// OpenAPI handles GET /api/v1/openapi.json.
func (s *Server) OpenAPI(c echo.Context) error {
	doc, err := docs.OpenAPI3()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}
