package books

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mateuszwwwrobel/bookstore/pkg/binder"
	"github.com/mateuszwwwrobel/bookstore/pkg/errcodes"
	"github.com/mateuszwwwrobel/bookstore/pkg/notices"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func setupTestServer(t *testing.T, db *bun.DB) *echo.Echo {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	RegisterRoutesWithGroup(e.Group("/books"), db)
	RegisterPageRoutes(e, db)

	return e
}

func postForm(t *testing.T, e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	return rr
}

func TestAddBookHandler(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	e := setupTestServer(t, db)

	form := url.Values{}
	form.Set("title", "Solaris")
	form.Set("author", "Stanislaw Lem")
	form.Set("pub_date", "1961-01-01")
	form.Set("isbn", "9788308067304")
	form.Set("pages", "204")
	form.Set("language", "pl")

	rr := postForm(t, e, "/add-book", form)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Book    *Book        `json:"book"`
		Notices notices.List `json:"notices"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Book)
	assert.NotZero(t, resp.Book.ID)
	assert.Equal(t, "Solaris", resp.Book.Title)
	require.NotNil(t, resp.Book.Author)
	assert.Equal(t, "Stanislaw Lem", resp.Book.Author.Name)
	assert.Equal(t, []string{NoticeBookAdded}, []string(resp.Notices))
}

func TestAddBookHandler_WrongDateLength(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	e := setupTestServer(t, db)

	form := url.Values{}
	form.Set("title", "Solaris")
	form.Set("author", "Stanislaw Lem")
	form.Set("pub_date", "1961")
	form.Set("isbn", "9788308067304")
	form.Set("language", "pl")

	rr := postForm(t, e, "/add-book", form)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Form    AddBookPayload `json:"form"`
		Notices notices.List   `json:"notices"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{NoticeWrongDateFormat}, []string(resp.Notices))
	// The submitted form comes back so it can be re-rendered.
	assert.Equal(t, "Solaris", resp.Form.Title)
	assert.Equal(t, "1961", resp.Form.PubDate)

	// Nothing was persisted.
	_, total, err := NewService(db).ListBooksWithTotal(context.Background(), ListBooksOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestAddBookHandler_WrongISBNLength(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	e := setupTestServer(t, db)

	form := url.Values{}
	form.Set("title", "Solaris")
	form.Set("author", "Stanislaw Lem")
	form.Set("pub_date", "1961-01-01")
	form.Set("isbn", "123456")
	form.Set("language", "pl")

	rr := postForm(t, e, "/add-book", form)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Notices notices.List `json:"notices"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{NoticeWrongISBNLength}, []string(resp.Notices))

	// Nothing was persisted.
	_, total, err := NewService(db).ListBooksWithTotal(context.Background(), ListBooksOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestAddBookHandler_DateCheckedBeforeISBN(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	e := setupTestServer(t, db)

	form := url.Values{}
	form.Set("title", "Solaris")
	form.Set("author", "Stanislaw Lem")
	form.Set("pub_date", "1961")
	form.Set("isbn", "123456")
	form.Set("language", "pl")

	rr := postForm(t, e, "/add-book", form)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Notices notices.List `json:"notices"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	// Only the date notice shows when both fields are wrong.
	assert.Equal(t, []string{NoticeWrongDateFormat}, []string(resp.Notices))
}

func TestFindBooksHandler(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	e := setupTestServer(t, db)
	author := setupTestAuthor(t, db, "Stanislaw Lem")

	setupTestBook(t, db, &Book{Title: "Solaris", AuthorID: author.ID, ISBN: "9788308067304", Language: "pl"})

	req := httptest.NewRequest(http.MethodGet, "/find-book", nil)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Books   []*Book      `json:"books"`
		Total   int          `json:"total"`
		Page    int          `json:"page"`
		Pages   int          `json:"pages"`
		Notices notices.List `json:"notices"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, []string{NoticeShowingAll}, []string(resp.Notices))
	require.Len(t, resp.Books, 1)
}

func TestFindBooksHandler_BadDateParam(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	e := setupTestServer(t, db)

	req := httptest.NewRequest(http.MethodGet, "/find-book?from_date=01-01-1961", nil)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCreateBookHandler(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	e := setupTestServer(t, db)

	body := `{
		"title": "Solaris",
		"author": "Stanislaw Lem",
		"pub_date": "1961-01-01",
		"isbn": "9788308067304",
		"pages": 204,
		"language": "pl"
	}`
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var book Book
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &book))
	assert.NotZero(t, book.ID)
	require.NotNil(t, book.Author)
	assert.Equal(t, "Stanislaw Lem", book.Author.Name)
}

func TestCreateBookHandler_ShortISBN(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	e := setupTestServer(t, db)

	body := `{
		"title": "Solaris",
		"author": "Stanislaw Lem",
		"isbn": "123456",
		"language": "pl"
	}`
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestUpdateBookHandler(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	e := setupTestServer(t, db)
	author := setupTestAuthor(t, db, "Stanislaw Lem")
	book := setupTestBook(t, db, &Book{Title: "Solaris", AuthorID: author.ID, ISBN: "9788308067304", Language: "pl"})

	body := `{"title": "Solaris (Revised)", "pages": 224}`
	req := httptest.NewRequest(http.MethodPost, "/books/"+strconv.Itoa(book.ID), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var updated Book
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Solaris (Revised)", updated.Title)
	assert.Equal(t, 224, updated.Pages)
}

func TestDeleteBookHandler(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	e := setupTestServer(t, db)
	author := setupTestAuthor(t, db, "Stanislaw Lem")
	book := setupTestBook(t, db, &Book{Title: "Solaris", AuthorID: author.ID, ISBN: "9788308067304", Language: "pl"})

	req := httptest.NewRequest(http.MethodDelete, "/books/"+strconv.Itoa(book.ID), nil)
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	req = httptest.NewRequest(http.MethodDelete, "/books/"+strconv.Itoa(book.ID), nil)
	rr = httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
