package model

// Book represents one row of the `books` table, exposed verbatim through the
// listing API.  No field is computed; everything is copied from the row at
// query time.  This struct corresponds to a row in the `books` table.
//
// Fields:
//  ID        – primary key identifier.
//  Title     – book title.
//  Author    – author name.
//  Publisher – publisher name.
//  ISBN      – ISBN identifier; uniqueness is an external convention and
//              is not enforced by this service.
//  Comment   – free-text comment.
//  CreatedAt – timestamp when the row was created.
//  UpdatedAt – timestamp of last update.
type Book struct {
	ID        int64    `json:"id"`         // books.id
	Title     string   `json:"title"`      // books.title
	Author    string   `json:"author"`     // books.author
	Publisher string   `json:"publisher"`  // books.publisher
	ISBN      string   `json:"isbn"`       // books.isbn
	Comment   string   `json:"comment"`    // books.comment
	CreatedAt DateTime `json:"created_at"` // books.created_at
	UpdatedAt DateTime `json:"updated_at"` // books.updated_at
}

// BookList is an ordered collection of books.  Ordering is whatever the
// storage engine returned; the listing query carries no ORDER BY, so it is
// not guaranteed stable between calls.  It serializes as a plain JSON array.
type BookList []Book
