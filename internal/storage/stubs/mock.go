package stubs

import (
	"context"
	"sync"

	"library/internal/models"
)

// MockStore is an in-memory implementation of the Storage interface for
// tests and the dev entry point. Loads hand out deep copies so callers can
// mutate freely; saves replace the held collections wholesale.
type MockStore struct {
	mu       sync.RWMutex
	books    []*models.Book
	authors  []*models.Author
	students []*models.Student
	loans    []*models.Loan
	links    []models.BookAuthorLink
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Seed replaces the store's contents with the given collections.
func (m *MockStore) Seed(books []*models.Book, authors []*models.Author, students []*models.Student, loans []*models.Loan, links []models.BookAuthorLink) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.books = copyBooks(books)
	m.authors = copyAuthors(authors)
	m.students = copyStudents(students)
	m.loans = copyLoans(loans)
	m.links = append([]models.BookAuthorLink(nil), links...)
}

func copyBooks(books []*models.Book) []*models.Book {
	out := make([]*models.Book, 0, len(books))
	for _, b := range books {
		cp := *b
		cp.Copies = append([]models.Copy(nil), b.Copies...)
		out = append(out, &cp)
	}
	return out
}

func copyAuthors(authors []*models.Author) []*models.Author {
	out := make([]*models.Author, 0, len(authors))
	for _, a := range authors {
		cp := *a
		out = append(out, &cp)
	}
	return out
}

func copyStudents(students []*models.Student) []*models.Student {
	out := make([]*models.Student, 0, len(students))
	for _, s := range students {
		cp := *s
		out = append(out, &cp)
	}
	return out
}

func copyLoans(loans []*models.Loan) []*models.Loan {
	out := make([]*models.Loan, 0, len(loans))
	for _, l := range loans {
		cp := *l
		out = append(out, &cp)
	}
	return out
}

// LoadBooks returns the stored books with all copies reset to the shelf,
// mirroring the flat-file store: copy statuses are never persisted.
func (m *MockStore) LoadBooks(ctx context.Context) ([]*models.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	books := copyBooks(m.books)
	for _, b := range books {
		for i := range b.Copies {
			b.Copies[i].Status = models.StatusOnShelf
		}
	}
	return books, nil
}

func (m *MockStore) SaveBooks(ctx context.Context, books []*models.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.books = copyBooks(books)
	return nil
}

func (m *MockStore) LoadAuthors(ctx context.Context) ([]*models.Author, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copyAuthors(m.authors), nil
}

func (m *MockStore) SaveAuthors(ctx context.Context, authors []*models.Author) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.authors = copyAuthors(authors)
	return nil
}

func (m *MockStore) LoadStudents(ctx context.Context) ([]*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copyStudents(m.students), nil
}

func (m *MockStore) SaveStudents(ctx context.Context, students []*models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.students = copyStudents(students)
	return nil
}

func (m *MockStore) LoadLoans(ctx context.Context) ([]*models.Loan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copyLoans(m.loans), nil
}

func (m *MockStore) SaveLoans(ctx context.Context, loans []*models.Loan) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loans = copyLoans(loans)
	return nil
}

func (m *MockStore) LoadLinks(ctx context.Context) ([]models.BookAuthorLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]models.BookAuthorLink(nil), m.links...), nil
}

func (m *MockStore) SaveLinks(ctx context.Context, links []models.BookAuthorLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.links = append([]models.BookAuthorLink(nil), links...)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MockStore) Close() error {
	return nil
}
