package importer

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mateuszwwwrobel/bookstore/pkg/books"
	"github.com/mateuszwwwrobel/bookstore/pkg/notices"
	"github.com/pkg/errors"
)

type handler struct {
	importService *Service
}

type importResponse struct {
	Books   []*books.Book `json:"books"`
	Notices notices.List  `json:"notices"`
}

func (h *handler) importBooks(c echo.Context) error {
	ctx := c.Request().Context()

	var query ImportQuery
	if err := c.Bind(&query); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.importService.ImportByPhrase(ctx, query.SearchPhrase)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, importResponse{
		Books:   result.Books,
		Notices: result.Notices,
	}))
}
