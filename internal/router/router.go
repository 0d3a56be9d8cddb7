package router

import (
	"net/http"

	"github.com/stpnv0/LibraryBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListBooks(c *ginext.Context)
	GetBook(c *ginext.Context)
	CreateBook(c *ginext.Context)
	UpdateBook(c *ginext.Context)
	DeleteBook(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	MyReservations(c *ginext.Context)
	ListReservations(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	CompleteReservation(c *ginext.Context)
	UpdateReservationStatus(c *ginext.Context)
}

// InitRouter mounts the API. auth authenticates the caller on every
// protected route; admin routes additionally pass AdminOnly.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalogue
		api.GET("/books", h.ListBooks)
		api.GET("/books/:id", h.GetBook)

		authed := api.Group("", auth)
		authed.POST("/reservations", h.CreateReservation)
		authed.GET("/reservations/my", h.MyReservations)
		authed.POST("/reservations/:id/cancel", h.CancelReservation)
		authed.POST("/reservations/:id/complete", h.CompleteReservation)

		admin := api.Group("", auth, middleware.AdminOnly())
		admin.POST("/books", h.CreateBook)
		admin.PATCH("/books/:id", h.UpdateBook)
		admin.DELETE("/books/:id", h.DeleteBook)
		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
		admin.GET("/reservations", h.ListReservations)
		admin.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
