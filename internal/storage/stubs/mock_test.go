package stubs

import (
	"context"
	"testing"

	"library/internal/models"
)

func TestMockStore_SaveLoadIsolation(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	books := []*models.Book{
		{ID: 1, Name: "Dune", ISBN: "123", Copies: []models.Copy{{Index: 1}}},
	}
	if err := store.SaveBooks(ctx, books); err != nil {
		t.Fatalf("Failed to save books: %v", err)
	}

	// Mutating the caller's slice after saving must not leak into the store.
	books[0].Name = "Changed"

	loaded, err := store.LoadBooks(ctx)
	if err != nil {
		t.Fatalf("Failed to load books: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("Expected 1 book, got %d", len(loaded))
	}
	if loaded[0].Name != "Dune" {
		t.Errorf("Expected stored name 'Dune', got %q", loaded[0].Name)
	}

	// Mutating loaded data must not leak back either.
	loaded[0].ISBN = "999"
	again, err := store.LoadBooks(ctx)
	if err != nil {
		t.Fatalf("Failed to load books: %v", err)
	}
	if again[0].ISBN != "123" {
		t.Errorf("Expected stored ISBN '123', got %q", again[0].ISBN)
	}
}

func TestMockStore_LoadBooksResetsCopyStatuses(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	books := []*models.Book{
		{ID: 1, Name: "Dune", Copies: []models.Copy{
			{Index: 1, Status: models.StatusBorrowed},
			{Index: 2, Status: models.StatusOnShelf},
		}},
	}
	if err := store.SaveBooks(ctx, books); err != nil {
		t.Fatalf("Failed to save books: %v", err)
	}

	loaded, err := store.LoadBooks(ctx)
	if err != nil {
		t.Fatalf("Failed to load books: %v", err)
	}
	for _, cp := range loaded[0].Copies {
		if cp.Status != models.StatusOnShelf {
			t.Errorf("Expected copy %d on shelf after load, got %v", cp.Index, cp.Status)
		}
	}
}

func TestMockStore_Seed(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()

	store.Seed(
		[]*models.Book{{ID: 1, Name: "Dune"}},
		[]*models.Author{{ID: 1, Name: "Frank Herbert"}},
		[]*models.Student{{ID: 1, Name: "Ada"}},
		[]*models.Loan{{ID: 1, BookID: 1, CopyIndex: 1, StudentID: 1}},
		[]models.BookAuthorLink{{BookID: 1, AuthorID: 1}},
	)

	authors, err := store.LoadAuthors(ctx)
	if err != nil {
		t.Fatalf("Failed to load authors: %v", err)
	}
	if len(authors) != 1 || authors[0].Name != "Frank Herbert" {
		t.Errorf("Unexpected authors after seed: %+v", authors)
	}

	loans, err := store.LoadLoans(ctx)
	if err != nil {
		t.Fatalf("Failed to load loans: %v", err)
	}
	if len(loans) != 1 {
		t.Fatalf("Expected 1 loan, got %d", len(loans))
	}
}
