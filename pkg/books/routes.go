package books

import (
	"github.com/labstack/echo/v4"
	"github.com/mateuszwwwrobel/bookstore/pkg/authors"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers the book REST routes on a pre-configured
// group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB) {
	h := newHandler(db)

	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create)
	g.POST("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// RegisterPageRoutes registers the search and manual-entry endpoints that back
// the find-book and add-book pages.
func RegisterPageRoutes(e *echo.Echo, db *bun.DB) {
	h := newHandler(db)

	e.GET("/find-book", h.find)
	e.POST("/add-book", h.addBook)
}

func newHandler(db *bun.DB) *handler {
	return &handler{
		bookService:   NewService(db),
		authorService: authors.NewService(db),
	}
}
