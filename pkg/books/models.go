package books

import (
	"time"

	"github.com/mateuszwwwrobel/bookstore/pkg/authors"
	"github.com/uptrace/bun"
)

// DateFormat is the wire and storage format for publication dates.
const DateFormat = "2006-01-02"

// DefaultCoverURL is substituted when a record has no cover image of its own.
const DefaultCoverURL = "http://www.hallens.co.uk/wp-content/themes/consultix/images/no-image-found-360x260.png"

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID        int             `bun:",pk,nullzero" json:"id"`
	Title     string          `bun:",nullzero" json:"title"`
	AuthorID  int             `bun:",nullzero" json:"author_id"`
	Author    *authors.Author `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	PubDate   string          `bun:",nullzero" json:"pub_date"`
	ISBN      string          `bun:",nullzero" json:"isbn"`
	Pages     int             `json:"pages"`
	CoverURL  string          `bun:",nullzero" json:"cover_url"`
	Language  string          `bun:",nullzero" json:"language"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
