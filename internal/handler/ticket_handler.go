package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"festadmin/internal/apierr"
	"festadmin/internal/model"
	"festadmin/internal/session"
	"festadmin/internal/upstream"
)

// TicketHandler serves the ticket JSON API.
type TicketHandler struct {
	store       *session.Store
	client      *upstream.Client
	controllers *Controllers
}

// NewTicketHandler creates a new ticket handler.
func NewTicketHandler(store *session.Store, client *upstream.Client, controllers *Controllers) *TicketHandler {
	return &TicketHandler{store: store, client: client, controllers: controllers}
}

// List godoc
// @Summary List tickets (paginated envelope)
// @Tags tickets
// @Produce json
// @Param offset query int false "Records to skip"
// @Param limit query int false "Page size"
// @Param search query string false "Ticket ID or comment prefix"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} apierr.ErrorResponse
// @Failure 502 {object} apierr.ErrorResponse
// @Router /tickets/list [get]
func (h *TicketHandler) List(c echo.Context) error {
	state := h.controllers.Tickets.GetList(c.Request().Context(), listQuery(c))
	if state.Err != "" {
		return listError(c, h.store, state.Err, state.ErrStatus)
	}
	return c.JSON(http.StatusOK, ListResponse[model.Ticket]{
		Items: state.Items,
		Count: state.TotalCount,
	})
}

// Create godoc
// @Summary Issue a new ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body upstream.TicketPayload true "Ticket data"
// @Success 201 {object} model.Ticket
// @Failure 400 {object} apierr.ErrorResponse
// @Failure 502 {object} apierr.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	var payload upstream.TicketPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: "invalid request body", Code: "INVALID_BODY",
		})
	}
	if err := c.Validate(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: err.Error(), Code: "VALIDATION_FAILED",
		})
	}
	t, err := h.client.CreateTicket(c.Request().Context(), payload)
	if err != nil {
		return upstreamError(c, err, h.store.Locale())
	}
	return c.JSON(http.StatusCreated, t)
}

// Update godoc
// @Summary Update a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body upstream.TicketPayload true "Ticket data"
// @Success 200 {object} model.Ticket
// @Failure 400 {object} apierr.ErrorResponse
// @Failure 502 {object} apierr.ErrorResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: "invalid ticket id", Code: "INVALID_ID",
		})
	}
	var payload upstream.TicketPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: "invalid request body", Code: "INVALID_BODY",
		})
	}
	if err := c.Validate(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: err.Error(), Code: "VALIDATION_FAILED",
		})
	}
	t, err := h.client.UpdateTicket(c.Request().Context(), id, payload)
	if err != nil {
		return upstreamError(c, err, h.store.Locale())
	}
	return c.JSON(http.StatusOK, t)
}

// Delete godoc
// @Summary Soft-delete a ticket
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apierr.ErrorResponse
// @Failure 502 {object} apierr.ErrorResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: "invalid ticket id", Code: "INVALID_ID",
		})
	}
	if err := h.client.DeleteTicket(c.Request().Context(), id); err != nil {
		return upstreamError(c, err, h.store.Locale())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "ticket deleted"})
}
