package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/mateuszwwwrobel/bookstore/pkg/authors"
	"github.com/mateuszwwwrobel/bookstore/pkg/books"
	"github.com/mateuszwwwrobel/bookstore/pkg/errcodes"
	"github.com/mateuszwwwrobel/bookstore/pkg/googlebooks"
	"github.com/mateuszwwwrobel/bookstore/pkg/notices"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
)

// Notice strings emitted by the import pipeline. Their exact wording is part
// of the API contract.
const (
	NoticeNoResults  = "No books with the searched phrase."
	NoticeBooksAdded = "Books have been added to database."
	NoticeNoNewBooks = "No new books have been added to database."
)

type Service struct {
	bookService   *books.Service
	authorService *authors.Service
	client        *googlebooks.Client
}

func NewService(db *bun.DB, client *googlebooks.Client) *Service {
	return &Service{
		bookService:   books.NewService(db),
		authorService: authors.NewService(db),
		client:        client,
	}
}

type ImportResult struct {
	Books   []*books.Book
	Notices notices.List
}

// ImportByPhrase queries the provider for records matching the phrase,
// normalizes each one, and persists the usable ones. Records without an
// identifier, with a duplicate ISBN, or with an invalid field are skipped
// without per-record reporting; only the final summary notice distinguishes
// "something was added" from "nothing was added".
func (svc *Service) ImportByPhrase(ctx context.Context, phrase string) (*ImportResult, error) {
	msgs := notices.New()
	imported := []*books.Book{}

	if phrase == "" {
		return &ImportResult{Books: imported, Notices: msgs}, nil
	}

	log := logger.FromContext(ctx)
	batchID := uuid.NewString()

	volumes, err := svc.client.SearchVolumes(ctx, phrase)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(volumes) == 0 {
		msgs.Add(NoticeNoResults)
	}

	skipped := 0
	for _, volume := range volumes {
		cand, err := normalize(volume.VolumeInfo)
		if err != nil {
			skipped++
			continue
		}

		author, err := svc.authorService.FindOrCreateAuthor(ctx, cand.AuthorName)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		book := &books.Book{
			Title:    cand.Title,
			AuthorID: author.ID,
			PubDate:  cand.PubDate,
			ISBN:     cand.ISBN,
			Pages:    cand.Pages,
			CoverURL: cand.CoverURL,
			Language: cand.Language,
		}
		err = svc.bookService.CreateBook(ctx, book)
		if err != nil {
			// Duplicate ISBNs and invalid fields are skips, not failures.
			var ec *errcodes.Error
			if errors.As(err, &ec) {
				skipped++
				continue
			}
			return nil, errors.WithStack(err)
		}
		book.Author = author

		imported = append(imported, book)
	}

	if len(imported) > 0 {
		msgs.Add(NoticeBooksAdded)
	} else {
		msgs.Add(NoticeNoNewBooks)
	}

	log.Info("import finished", logger.Data{
		"batch_id": batchID,
		"phrase":   phrase,
		"imported": len(imported),
		"skipped":  skipped,
	})

	return &ImportResult{Books: imported, Notices: msgs}, nil
}
