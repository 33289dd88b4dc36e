package storage

import (
	"context"

	"library/internal/models"
)

// Storage defines the interface for loading and persisting catalog records.
// Every record type lives in its own backing store; loads return the full
// collection in insertion order and saves rewrite it wholesale.
type Storage interface {
	// Book operations
	LoadBooks(ctx context.Context) ([]*models.Book, error)
	SaveBooks(ctx context.Context, books []*models.Book) error

	// Author operations
	LoadAuthors(ctx context.Context) ([]*models.Author, error)
	SaveAuthors(ctx context.Context, authors []*models.Author) error

	// Student operations
	LoadStudents(ctx context.Context) ([]*models.Student, error)
	SaveStudents(ctx context.Context, students []*models.Student) error

	// Loan operations
	LoadLoans(ctx context.Context) ([]*models.Loan, error)
	SaveLoans(ctx context.Context, loans []*models.Loan) error

	// Book-author link operations
	LoadLinks(ctx context.Context) ([]models.BookAuthorLink, error)
	SaveLinks(ctx context.Context, links []models.BookAuthorLink) error

	// Lifecycle
	Close() error
}
