package importer

import (
	"github.com/labstack/echo/v4"
	"github.com/mateuszwwwrobel/bookstore/pkg/googlebooks"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the import page route on the echo instance.
func RegisterRoutes(e *echo.Echo, db *bun.DB, client *googlebooks.Client) {
	h := &handler{importService: NewService(db, client)}

	e.GET("/import-book", h.importBooks)
}
