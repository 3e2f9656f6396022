package importer

// ImportQuery is the query for the import page.
type ImportQuery struct {
	SearchPhrase string `query:"search_phrase" validate:"max=255"`
}
