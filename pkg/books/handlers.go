package books

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mateuszwwwrobel/bookstore/pkg/authors"
	"github.com/mateuszwwwrobel/bookstore/pkg/errcodes"
	"github.com/mateuszwwwrobel/bookstore/pkg/notices"
	"github.com/pkg/errors"
)

// Notice strings emitted by the manual-entry form. Their exact wording is part
// of the API contract.
const (
	NoticeWrongDateFormat = "Wrong date format, please try again."
	NoticeWrongISBNLength = "ISBN number must have 13 digits. Please try again."
	NoticeBookAdded       = "Book successfully added to database!"
)

type handler struct {
	bookService   *Service
	authorService *authors.Service
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := ListBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	books, total, err := h.bookService.ListBooksWithTotal(ctx, ListBooksOptions{
		Limit:    &params.Limit,
		Offset:   &params.Offset,
		AuthorID: params.AuthorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Books []*Book `json:"books"`
		Total int     `json:"total"`
	}{books, total}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) find(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := FindBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.bookService.FindBooks(ctx, FindBooksOptions{
		Title:      &params.Title,
		AuthorName: &params.Author,
		Language:   &params.Language,
		FromDate:   &params.FromDate,
		ToDate:     &params.ToDate,
		Page:       params.Page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Books   []*Book      `json:"books"`
		Total   int          `json:"total"`
		Page    int          `json:"page"`
		Pages   int          `json:"pages"`
		Notices notices.List `json:"notices"`
	}{result.Books, result.Total, result.Page, result.Pages, result.Notices}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) addBook(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := AddBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	msgs := notices.New()

	// Length problems in the date and ISBN fields come back as notices with
	// the form echoed, so the caller can re-render it with the prior input.
	if len(params.PubDate) != len(DateFormat) {
		msgs.Add(NoticeWrongDateFormat)
	} else if len(params.ISBN) != 13 {
		msgs.Add(NoticeWrongISBNLength)
	}
	if len(msgs) > 0 {
		resp := struct {
			Form    AddBookPayload `json:"form"`
			Notices notices.List   `json:"notices"`
		}{params, msgs}
		return errors.WithStack(c.JSON(http.StatusOK, resp))
	}

	author, err := h.authorService.FindOrCreateAuthor(ctx, params.Author)
	if err != nil {
		return errors.WithStack(err)
	}

	book := &Book{
		Title:    params.Title,
		AuthorID: author.ID,
		PubDate:  params.PubDate,
		ISBN:     params.ISBN,
		Pages:    params.Pages,
		CoverURL: params.CoverURL,
		Language: params.Language,
	}
	if err := h.bookService.CreateBook(ctx, book); err != nil {
		return errors.WithStack(err)
	}
	book.Author = author

	msgs.Add(NoticeBookAdded)

	resp := struct {
		Book    *Book        `json:"book"`
		Notices notices.List `json:"notices"`
	}{book, msgs}

	return errors.WithStack(c.JSON(http.StatusCreated, resp))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	author, err := h.authorService.FindOrCreateAuthor(ctx, params.Author)
	if err != nil {
		return errors.WithStack(err)
	}

	book := &Book{
		Title:    params.Title,
		AuthorID: author.ID,
		PubDate:  params.PubDate,
		ISBN:     params.ISBN,
		Pages:    params.Pages,
		CoverURL: params.CoverURL,
		Language: params.Language,
	}
	if err := h.bookService.CreateBook(ctx, book); err != nil {
		return errors.WithStack(err)
	}
	book.Author = author

	return errors.WithStack(c.JSON(http.StatusCreated, book))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	// Bind params.
	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	// Fetch the book.
	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Keep track of what's been changed.
	opts := UpdateBookOptions{Columns: []string{}}

	if params.Title != nil && *params.Title != book.Title {
		book.Title = *params.Title
		opts.Columns = append(opts.Columns, "title")
	}
	if params.PubDate != nil && *params.PubDate != book.PubDate {
		book.PubDate = *params.PubDate
		opts.Columns = append(opts.Columns, "pub_date")
	}
	if params.Pages != nil && *params.Pages != book.Pages {
		book.Pages = *params.Pages
		opts.Columns = append(opts.Columns, "pages")
	}
	if params.CoverURL != nil && *params.CoverURL != book.CoverURL {
		book.CoverURL = *params.CoverURL
		opts.Columns = append(opts.Columns, "cover_url")
	}
	if params.Language != nil && *params.Language != book.Language {
		book.Language = *params.Language
		opts.Columns = append(opts.Columns, "language")
	}

	// Update the model.
	err = h.bookService.UpdateBook(ctx, book, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	// Reload the model.
	book, err = h.bookService.RetrieveBook(ctx, RetrieveBookOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	if err := h.bookService.DeleteBook(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.NoContent(http.StatusNoContent))
}
