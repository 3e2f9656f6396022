package authors

import (
	"time"

	"github.com/uptrace/bun"
)

// UnknownAuthorName is the sentinel author that imported records fall back to
// when the provider has no author information.
const UnknownAuthorName = "Unknown"

type Author struct {
	bun.BaseModel `bun:"table:authors,alias:a"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	Name      string    `bun:",nullzero" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
