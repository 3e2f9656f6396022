package books

type ListBooksQuery struct {
	Limit    int  `query:"limit" json:"limit,omitempty" default:"24" validate:"min=1,max=100"`
	Offset   int  `query:"offset" json:"offset,omitempty" validate:"min=0"`
	AuthorID *int `query:"author_id" json:"author_id,omitempty" validate:"omitempty,min=1"`
}

type FindBooksQuery struct {
	Title    string `query:"title" json:"title,omitempty"`
	Author   string `query:"author" json:"author,omitempty"`
	Language string `query:"language" json:"language,omitempty"`
	FromDate string `query:"from_date" json:"from_date,omitempty" validate:"omitempty,date"`
	ToDate   string `query:"to_date" json:"to_date,omitempty" validate:"omitempty,date"`
	Page     int    `query:"page" json:"page,omitempty" default:"1" validate:"min=1"`
}

// AddBookPayload is the manual-entry form. The pub_date and isbn length rules
// are deliberately not expressed as validate tags: the form contract answers
// bad lengths with a notice and the echoed form rather than a validation
// error.
type AddBookPayload struct {
	Title    string `form:"title" json:"title" mod:"trim" validate:"required,max=256"`
	Author   string `form:"author" json:"author" mod:"trim" validate:"required,max=256"`
	PubDate  string `form:"pub_date" json:"pub_date" validate:"required"`
	ISBN     string `form:"isbn" json:"isbn" mod:"trim" validate:"required"`
	Pages    int    `form:"pages" json:"pages" validate:"min=0"`
	CoverURL string `form:"cover_url" json:"cover_url" validate:"omitempty,url,max=500"`
	Language string `form:"language" json:"language" validate:"required,language"`
}

type CreateBookPayload struct {
	Title    string `json:"title" mod:"trim" validate:"required,max=256"`
	Author   string `json:"author" mod:"trim" validate:"required,max=256"`
	PubDate  string `json:"pub_date" validate:"omitempty,date"`
	ISBN     string `json:"isbn" mod:"trim" validate:"required,isbn13"`
	Pages    int    `json:"pages" validate:"min=0"`
	CoverURL string `json:"cover_url" validate:"omitempty,url,max=500"`
	Language string `json:"language" validate:"required,language"`
}

type UpdateBookPayload struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=256"`
	PubDate  *string `json:"pub_date,omitempty" validate:"omitempty,date"`
	Pages    *int    `json:"pages,omitempty" validate:"omitempty,min=0"`
	CoverURL *string `json:"cover_url,omitempty" validate:"omitempty,url,max=500"`
	Language *string `json:"language,omitempty" validate:"omitempty,language"`
}
