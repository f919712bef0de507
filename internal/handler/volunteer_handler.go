package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"festadmin/internal/model"
	"festadmin/internal/session"
)

// VolunteerHandler serves the volunteer JSON API.
type VolunteerHandler struct {
	store       *session.Store
	controllers *Controllers
}

// NewVolunteerHandler creates a new volunteer handler.
func NewVolunteerHandler(store *session.Store, controllers *Controllers) *VolunteerHandler {
	return &VolunteerHandler{store: store, controllers: controllers}
}

// List godoc
// @Summary List volunteer applications
// @Tags volunteers
// @Produce json
// @Param offset query int false "Records to skip"
// @Param limit query int false "Page size"
// @Param search query string false "Free-text search"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} apierr.ErrorResponse
// @Failure 502 {object} apierr.ErrorResponse
// @Router /volunteers/list [get]
func (h *VolunteerHandler) List(c echo.Context) error {
	state := h.controllers.Volunteers.GetList(c.Request().Context(), listQuery(c))
	if state.Err != "" {
		return listError(c, h.store, state.Err, state.ErrStatus)
	}
	return c.JSON(http.StatusOK, ListResponse[model.Volunteer]{
		Items: state.Items,
		Count: state.TotalCount,
	})
}
