package books

import (
	"context"
	"database/sql"

	"github.com/mateuszwwwrobel/bookstore/pkg/authors"
	"github.com/mateuszwwwrobel/bookstore/pkg/notices"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Notice strings emitted while building a search. Their exact wording is part
// of the API contract.
const (
	NoticeAuthorNotFound = "Author has not been found."
	NoticeShowingAll     = "Please find list of all books down below."
)

// FindPageSize is the fixed window size of the search endpoint.
const FindPageSize = 10

type FindBooksOptions struct {
	Title      *string
	AuthorName *string
	Language   *string
	FromDate   *string
	ToDate     *string
	Page       int
}

type FindBooksResult struct {
	Books   []*Book
	Total   int
	Page    int
	Pages   int
	Notices notices.List
}

// FindBooks translates the optional search parameters into a single
// conjunctive predicate and returns one fixed-size page of the matching set.
//
// An author name that doesn't resolve to an existing author drops the author
// constraint instead of matching nothing, with a notice explaining why. When
// no parameter constrained the search at all, a second notice announces that
// the whole catalog is being shown.
func (svc *Service) FindBooks(ctx context.Context, opts FindBooksOptions) (*FindBooksResult, error) {
	msgs := notices.New()
	filtered := false

	var authorID *int
	if present(opts.AuthorName) {
		author := &authors.Author{}
		err := svc.db.
			NewSelect().
			Model(author).
			Where("a.name = ?", *opts.AuthorName).
			Scan(ctx)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			msgs.Add(NoticeAuthorNotFound)
		case err != nil:
			return nil, errors.WithStack(err)
		default:
			authorID = &author.ID
			filtered = true
		}
	}

	applyFilters := func(q *bun.SelectQuery) *bun.SelectQuery {
		if present(opts.Title) {
			q = q.Where("b.title = ?", *opts.Title)
		}
		if authorID != nil {
			q = q.Where("b.author_id = ?", *authorID)
		}
		if present(opts.Language) {
			q = q.Where("b.language = ?", *opts.Language)
		}
		if present(opts.FromDate) {
			q = q.Where("b.pub_date >= ?", *opts.FromDate)
		}
		if present(opts.ToDate) {
			q = q.Where("b.pub_date < ?", *opts.ToDate)
		}
		return q
	}

	filtered = filtered || present(opts.Title) || present(opts.Language) ||
		present(opts.FromDate) || present(opts.ToDate)
	if !filtered {
		msgs.Add(NoticeShowingAll)
	}

	total, err := applyFilters(svc.db.NewSelect().Model((*Book)(nil))).Count(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pages := (total + FindPageSize - 1) / FindPageSize
	if pages == 0 {
		pages = 1
	}

	// Out-of-range pages clamp to the nearest valid page.
	page := opts.Page
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	result := []*Book{}
	q := applyFilters(svc.db.NewSelect().Model(&result)).
		Relation("Author").
		Order("b.id ASC").
		Limit(FindPageSize).
		Offset((page - 1) * FindPageSize)
	if err := q.Scan(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	return &FindBooksResult{
		Books:   result,
		Total:   total,
		Page:    page,
		Pages:   pages,
		Notices: msgs,
	}, nil
}

// present reports whether an optional search parameter should contribute a
// constraint. Empty strings count as absent.
func present(s *string) bool {
	return s != nil && *s != ""
}
