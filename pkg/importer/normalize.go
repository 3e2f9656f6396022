package importer

import (
	"strings"

	"github.com/mateuszwwwrobel/bookstore/pkg/authors"
	"github.com/mateuszwwwrobel/bookstore/pkg/books"
	"github.com/mateuszwwwrobel/bookstore/pkg/googlebooks"
	"github.com/pkg/errors"
)

// errNoIdentifier rejects a record that carries no industry identifiers at
// all. There is nothing to de-duplicate on, so the record is unusable.
var errNoIdentifier = errors.New("record has no industry identifiers")

// candidate is one normalized provider record, ready to persist once its
// author name has been resolved to a row.
type candidate struct {
	Title      string
	AuthorName string
	PubDate    string
	ISBN       string
	Pages      int
	CoverURL   string
	Language   string
}

// normalize maps one provider record into a candidate book, or rejects it when
// it carries no identifier.
func normalize(info googlebooks.VolumeInfo) (*candidate, error) {
	isbn, ok := selectIdentifier(info.IndustryIdentifiers)
	if !ok {
		return nil, errNoIdentifier
	}

	// A missing list and a blank first name both fall back to the sentinel,
	// so one malformed record can't fail the whole batch downstream.
	authorName := authors.UnknownAuthorName
	if len(info.Authors) > 0 {
		if name := strings.TrimSpace(info.Authors[0]); name != "" {
			authorName = name
		}
	}

	coverURL := books.DefaultCoverURL
	if info.ImageLinks != nil && info.ImageLinks.Thumbnail != "" {
		coverURL = info.ImageLinks.Thumbnail
	}

	return &candidate{
		Title:      info.Title,
		AuthorName: authorName,
		PubDate:    expandDate(info.PublishedDate),
		ISBN:       isbn,
		Pages:      info.PageCount,
		CoverURL:   coverURL,
		Language:   info.Language,
	}, nil
}

// selectIdentifier scans the identifier list in input order and picks the one
// to use as the book's ISBN:
//
//   - an ISBN_13 is selected immediately and ends the scan
//   - an ISBN_10 always takes over the fallback slot and the scan continues
//   - an OTHER fills the fallback slot only while it is still empty
//
// When no ISBN_13 showed up, whatever holds the fallback slot wins. An empty
// list selects nothing.
func selectIdentifier(ids []googlebooks.IndustryIdentifier) (string, bool) {
	fallback := ""
	for _, id := range ids {
		switch id.Type {
		case googlebooks.IdentifierISBN13:
			return id.Identifier, true
		case googlebooks.IdentifierISBN10:
			fallback = id.Identifier
		case googlebooks.IdentifierOther:
			if fallback == "" {
				fallback = id.Identifier
			}
		}
	}
	if fallback == "" {
		return "", false
	}
	return fallback, true
}

// expandDate pads a year-only or year-month date out to a full date. Full
// dates and unrecognized shapes pass through untouched, and the empty string
// stays empty so the store can fill in today's date.
func expandDate(s string) string {
	switch len(s) {
	case 4:
		return s + "-01-01"
	case 7:
		return s + "-01"
	default:
		return s
	}
}
