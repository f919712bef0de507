package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"festadmin/internal/apierr"
	"festadmin/internal/session"
	"festadmin/internal/upstream"
)

// ListResponse is the JSON envelope of the dashboard's own list API.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// listQuery reads the wire pagination contract off a request. Unknown or
// missing numbers fall back to the first page of ten.
func listQuery(c echo.Context) upstream.Query {
	q := upstream.Query{Limit: 10}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
		q.Offset = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		q.Limit = v
	}
	q.Search = c.QueryParam("search")
	return q
}

// listError answers a failed list fetch. When the fetch forced a logout
// the caller gets 401 so the page JS can bounce to login; otherwise the
// upstream status passes through, falling back to 502 for transport
// failures that never produced one.
func listError(c echo.Context, store *session.Store, msg string, status int) error {
	if !store.IsLoggedIn() {
		return c.JSON(http.StatusUnauthorized, apierr.ErrorResponse{
			Error: msg,
			Code:  "UNAUTHORIZED",
		})
	}
	if status == 0 {
		status = http.StatusBadGateway
	}
	return c.JSON(status, apierr.ErrorResponse{
		Error: msg,
		Code:  "UPSTREAM_ERROR",
	})
}

// upstreamError converts a failed upstream call into the dashboard's JSON
// error shape, keeping the upstream status where one exists.
func upstreamError(c echo.Context, err error, locale string) error {
	status := http.StatusBadGateway
	code := "UPSTREAM_ERROR"
	var e *apierr.Error
	if errors.As(err, &e) {
		if e.Status != 0 {
			status = e.Status
		}
		code = strings.ToUpper(string(e.Kind))
	}
	return c.JSON(status, apierr.ErrorResponse{
		Error: apierr.Normalize(err, locale),
		Code:  code,
	})
}
