package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"festadmin/internal/gate"
	"festadmin/internal/handler"
	"festadmin/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	g *gate.Gate,
	authHandler *handler.AuthHandler,
	pageHandler *handler.PageHandler,
	volunteerHandler *handler.VolunteerHandler,
	masterHandler *handler.MasterHandler,
	ticketHandler *handler.TicketHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.StaticFS("/static", handler.StaticFS())

	// Public routes
	e.GET(gate.LoginPath, authHandler.LoginPage)
	e.POST(gate.LoginPath, authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.POST("/locale", authHandler.SetLocale)

	// Page routes behind the session gate
	pages := e.Group("", g.Cookie(), g.Session())
	pages.GET("/", pageHandler.Dashboard)
	pages.GET("/volunteers", pageHandler.Volunteers)
	pages.GET("/masters", pageHandler.Masters)
	pages.GET("/masters/:id", pageHandler.MasterDetail)
	pages.POST("/masters/:id/delete", pageHandler.DeleteMaster)
	pages.GET("/tickets", pageHandler.Tickets, g.RequireRole(model.RoleTicket))

	// Secured JSON routes (require a valid session cookie)
	api := e.Group("/api", g.Cookie(), g.Session())

	// Volunteer routes
	api.GET("/volunteers/list", volunteerHandler.List)

	// Master routes
	api.GET("/masters/list", masterHandler.List)
	api.GET("/masters/:id", masterHandler.Get)
	api.POST("/masters/create", masterHandler.Create)
	api.PUT("/masters/:id", masterHandler.Update)
	api.DELETE("/masters/:id", masterHandler.Delete)

	// Ticket routes, narrowed to ticket staff (admin always passes)
	tickets := api.Group("/tickets", g.RequireRole(model.RoleTicket))
	tickets.GET("/list", ticketHandler.List)
	tickets.POST("/add", ticketHandler.Create)
	tickets.PUT("/:id", ticketHandler.Update)
	tickets.DELETE("/:id", ticketHandler.Delete)

	// Unknown paths render the not-found view.
	e.RouteNotFound("/*", pageHandler.NotFound)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
