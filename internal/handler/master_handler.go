package handler

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"festadmin/internal/apierr"
	"festadmin/internal/model"
	"festadmin/internal/session"
	"festadmin/internal/upstream"
)

// MasterHandler serves the master JSON/multipart API.
type MasterHandler struct {
	store       *session.Store
	client      *upstream.Client
	controllers *Controllers
}

// NewMasterHandler creates a new master handler.
func NewMasterHandler(store *session.Store, client *upstream.Client, controllers *Controllers) *MasterHandler {
	return &MasterHandler{store: store, client: client, controllers: controllers}
}

// List godoc
// @Summary List master applications
// @Tags masters
// @Produce json
// @Param offset query int false "Records to skip"
// @Param limit query int false "Page size"
// @Param search query string false "Free-text search"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} apierr.ErrorResponse
// @Failure 502 {object} apierr.ErrorResponse
// @Router /masters/list [get]
func (h *MasterHandler) List(c echo.Context) error {
	state := h.controllers.Masters.GetList(c.Request().Context(), listQuery(c))
	if state.Err != "" {
		return listError(c, h.store, state.Err, state.ErrStatus)
	}
	return c.JSON(http.StatusOK, ListResponse[model.Master]{
		Items: state.Items,
		Count: state.TotalCount,
	})
}

// Get godoc
// @Summary Get one master
// @Tags masters
// @Produce json
// @Param id path int true "Master ID"
// @Success 200 {object} model.Master
// @Failure 400 {object} apierr.ErrorResponse
// @Failure 404 {object} apierr.ErrorResponse
// @Router /masters/{id} [get]
func (h *MasterHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: "invalid master id", Code: "INVALID_ID",
		})
	}
	m, err := h.client.GetMaster(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, err, h.store.Locale())
	}
	return c.JSON(http.StatusOK, m)
}

// Create godoc
// @Summary Create a master (multipart)
// @Tags masters
// @Accept mpfd
// @Produce json
// @Success 201 {object} model.Master
// @Failure 400 {object} apierr.ErrorResponse
// @Failure 502 {object} apierr.ErrorResponse
// @Router /masters [post]
func (h *MasterHandler) Create(c echo.Context) error {
	fields, files, cleanup, err := h.multipartBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: "invalid multipart body", Code: "INVALID_BODY",
		})
	}
	defer cleanup()
	m, err := h.client.CreateMaster(c.Request().Context(), fields, files)
	if err != nil {
		return upstreamError(c, err, h.store.Locale())
	}
	return c.JSON(http.StatusCreated, m)
}

// Update godoc
// @Summary Update a master (multipart)
// @Tags masters
// @Accept mpfd
// @Produce json
// @Param id path int true "Master ID"
// @Success 200 {object} model.Master
// @Failure 400 {object} apierr.ErrorResponse
// @Failure 502 {object} apierr.ErrorResponse
// @Router /masters/{id} [put]
func (h *MasterHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: "invalid master id", Code: "INVALID_ID",
		})
	}
	fields, files, cleanup, err := h.multipartBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: "invalid multipart body", Code: "INVALID_BODY",
		})
	}
	defer cleanup()
	m, err := h.client.UpdateMaster(c.Request().Context(), id, fields, files)
	if err != nil {
		return upstreamError(c, err, h.store.Locale())
	}
	return c.JSON(http.StatusOK, m)
}

// Delete godoc
// @Summary Soft-delete a master
// @Tags masters
// @Produce json
// @Param id path int true "Master ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apierr.ErrorResponse
// @Failure 502 {object} apierr.ErrorResponse
// @Router /masters/{id} [delete]
func (h *MasterHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierr.ErrorResponse{
			Error: "invalid master id", Code: "INVALID_ID",
		})
	}
	if err := h.client.DeleteMaster(c.Request().Context(), id); err != nil {
		return upstreamError(c, err, h.store.Locale())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "master deleted"})
}

// multipartBody re-packs an incoming multipart form for the upstream:
// field values pass through verbatim, attachments stream from their
// temporary files. The handles must outlive this function because the
// client reads them during the upstream call; the caller runs cleanup
// once that call has returned. Parts past the in-memory threshold are
// backed by temp files, so closing early would hand the client a closed
// *os.File.
func (h *MasterHandler) multipartBody(c echo.Context) (url.Values, []upstream.File, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, nil, err
	}
	fields := url.Values(form.Value)
	var files []upstream.File
	var opened []io.Closer
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	for _, headers := range form.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				cleanup()
				return nil, nil, nil, err
			}
			opened = append(opened, f)
			files = append(files, upstream.File{Name: fh.Filename, Content: f})
		}
	}
	return fields, files, cleanup, nil
}
