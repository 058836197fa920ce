// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for the `books` table.  The service is
// a read-only client of that table: there is no create, update or delete path.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers

	"github.com/iliyamo/book-manager/internal/model"
)

// BookRepo encapsulates all database queries related to books.  It depends
// on a sql.DB connection pool which should be configured elsewhere.
type BookRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewBookRepo constructs a BookRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.  There is no initialization logic beyond assigning the field.
func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

// ListAll returns every row of the books table.  The query carries no ORDER
// BY, so row order is storage-engine-defined.  The connection borrowed from
// the pool is returned when the rows are closed, on success and failure
// alike.  An empty table yields an empty, non-nil list.
func (r *BookRepo) ListAll(ctx context.Context) (model.BookList, error) {
	const q = `SELECT id, title, author, publisher, isbn, comment, created_at, updated_at
	           FROM books`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(model.BookList, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Publisher, &b.ISBN, &b.Comment, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
