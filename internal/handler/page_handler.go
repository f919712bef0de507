package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"festadmin/internal/apierr"
	"festadmin/internal/list"
	"festadmin/internal/model"
	"festadmin/internal/session"
	"festadmin/internal/upstream"
)

// flatListLimit caps how many records the flat-array endpoints are asked
// for; volunteers and masters are paginated client-side over that window.
const flatListLimit = 1000

// PageHandler renders the protected HTML views. One list controller per
// entity, as each list page owns its loading/error/result state.
type PageHandler struct {
	store       *session.Store
	client      *upstream.Client
	controllers *Controllers
	pageSize    int
}

// NewPageHandler renders pages over the shared controllers.
func NewPageHandler(store *session.Store, client *upstream.Client, controllers *Controllers, pageSize int) *PageHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &PageHandler{store: store, client: client, controllers: controllers, pageSize: pageSize}
}

type listPageData[T any] struct {
	Username  string
	Role      model.Role
	Items     []T
	Err       string
	Page      int
	PageCount int
	Total     int
	Search    string
}

// Dashboard renders the landing page. The session may vanish between the
// gate check and this handler when a concurrent upstream 401 forces a
// logout, so the fields are read through the nil-safe helpers.
func (h *PageHandler) Dashboard(c echo.Context) error {
	sess := h.store.Session()
	return c.Render(http.StatusOK, "dashboard.html", map[string]interface{}{
		"Username": usernameOf(sess),
		"Role":     roleOf(sess),
	})
}

// Volunteers lists volunteer applications, paginated client-side.
func (h *PageHandler) Volunteers(c echo.Context) error {
	page, search := pageParams(c)
	state := h.controllers.Volunteers.GetList(c.Request().Context(),
		upstream.Query{Offset: 0, Limit: flatListLimit, Search: search})
	return c.Render(http.StatusOK, "volunteers.html",
		flatPageData(h.store.Session(), state, page, h.pageSize, search))
}

// Masters lists master applications, paginated client-side.
func (h *PageHandler) Masters(c echo.Context) error {
	page, search := pageParams(c)
	state := h.controllers.Masters.GetList(c.Request().Context(),
		upstream.Query{Offset: 0, Limit: flatListLimit, Search: search})
	return c.Render(http.StatusOK, "masters.html",
		flatPageData(h.store.Session(), state, page, h.pageSize, search))
}

// MasterDetail renders one master, fetched by id when not already listed.
func (h *PageHandler) MasterDetail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.NotFound(c)
	}
	sess := h.store.Session()
	m, err := h.client.GetMaster(c.Request().Context(), id)
	if err != nil {
		return c.Render(http.StatusOK, "master_detail.html", map[string]interface{}{
			"Username": usernameOf(sess),
			"Error":    h.normalize(err),
		})
	}
	return c.Render(http.StatusOK, "master_detail.html", map[string]interface{}{
		"Username": usernameOf(sess),
		"Master":   m,
	})
}

// DeleteMaster handles the detail-view delete form, then returns to the
// list so it reconciles against the server state.
func (h *PageHandler) DeleteMaster(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.NotFound(c)
	}
	if err := h.client.DeleteMaster(c.Request().Context(), id); err != nil {
		sess := h.store.Session()
		return c.Render(http.StatusOK, "master_detail.html", map[string]interface{}{
			"Username": usernameOf(sess),
			"Error":    h.normalize(err),
		})
	}
	return c.Redirect(http.StatusFound, "/masters")
}

// Tickets lists tickets with true server-side pagination (?page=N).
func (h *PageHandler) Tickets(c echo.Context) error {
	page, search := pageParams(c)
	sess := h.store.Session()
	state := h.controllers.Tickets.GetList(c.Request().Context(),
		upstream.PageQuery(page, h.pageSize, search))
	return c.Render(http.StatusOK, "tickets.html", listPageData[model.Ticket]{
		Username:  usernameOf(sess),
		Role:      roleOf(sess),
		Items:     state.Items,
		Err:       state.Err,
		Page:      page,
		PageCount: list.PageCount(state.TotalCount, h.pageSize),
		Total:     state.TotalCount,
		Search:    search,
	})
}

// NotFound renders the catch-all page, which sends the browser home after
// a fixed 3 second delay.
func (h *PageHandler) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "notfound.html", nil)
}

func (h *PageHandler) normalize(err error) string {
	return apierr.Normalize(err, h.store.Locale())
}

// flatPageData slices one view page out of a flat-array result.
func flatPageData[T any](sess *model.Session, state list.State[T], page, pageSize int, search string) listPageData[T] {
	var username string
	var role model.Role
	if sess != nil {
		// a 401 during the fetch may have forced a logout already
		username = sess.Username
		role = sess.Role
	}
	return listPageData[T]{
		Username:  username,
		Role:      role,
		Items:     pageSlice(state.Items, page, pageSize),
		Err:       state.Err,
		Page:      page,
		PageCount: list.PageCount(state.TotalCount, pageSize),
		Total:     state.TotalCount,
		Search:    search,
	}
}

func pageParams(c echo.Context) (page int, search string) {
	page = 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	return page, c.QueryParam("search")
}

func usernameOf(sess *model.Session) string {
	if sess == nil {
		return ""
	}
	return sess.Username
}

func roleOf(sess *model.Session) model.Role {
	if sess == nil {
		return ""
	}
	return sess.Role
}

// pageSlice returns the items belonging to a 1-based page.
func pageSlice[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
