package catalog

import (
	"fmt"

	"library/internal/models"
)

// AddBook creates a book with copyCount copies, indexed 1..copyCount and
// all on the shelf, and returns the new record.
func (c *Catalog) AddBook(name, isbn string, copyCount int) (*models.Book, error) {
	if copyCount < 0 {
		return nil, fmt.Errorf("copy count must not be negative, got %d", copyCount)
	}

	book := &models.Book{
		ID:   c.nextBookID(),
		Name: name,
		ISBN: isbn,
	}
	for i := 1; i <= copyCount; i++ {
		book.Copies = append(book.Copies, models.Copy{Index: i, Status: models.StatusOnShelf})
	}
	c.books = append(c.books, book)
	return book, nil
}

// DeleteBook removes a book and its copies. It refuses while any copy is
// borrowed. Link-table rows referencing the book are left in place; only
// author deletion cascades into the link table.
func (c *Catalog) DeleteBook(id int) error {
	idx := -1
	for i, b := range c.books {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}

	for _, cp := range c.books[idx].Copies {
		if cp.Status == models.StatusBorrowed {
			return fmt.Errorf("book %d has borrowed copies: %w", id, ErrConflict)
		}
	}

	c.books = append(c.books[:idx], c.books[idx+1:]...)
	return nil
}

// UpdateBook overwrites a book's name and ISBN. A blank value keeps the
// current one.
func (c *Catalog) UpdateBook(id int, name, isbn string) error {
	book := c.FindBookByID(id)
	if book == nil {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	if name != "" {
		book.Name = name
	}
	if isbn != "" {
		book.ISBN = isbn
	}
	return nil
}

// FindBookByID returns the book with the given id, or nil.
func (c *Catalog) FindBookByID(id int) *models.Book {
	for _, b := range c.books {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// FindBookByName returns the first book whose name matches exactly, or nil.
func (c *Catalog) FindBookByName(name string) *models.Book {
	for _, b := range c.books {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// FindBookByISBN returns the first book whose ISBN matches exactly, or nil.
func (c *Catalog) FindBookByISBN(isbn string) *models.Book {
	for _, b := range c.books {
		if b.ISBN == isbn {
			return b
		}
	}
	return nil
}

// Books returns all books in insertion order.
func (c *Catalog) Books() []*models.Book {
	return c.books
}

// SetCopyStatus overwrites the status of one copy. The copy's prior state
// is not checked; loan creation and return are responsible for calling
// this only when their own preconditions hold.
func (c *Catalog) SetCopyStatus(bookID, copyIndex int, status models.CopyStatus) error {
	book := c.FindBookByID(bookID)
	if book == nil {
		return fmt.Errorf("book %d: %w", bookID, ErrNotFound)
	}
	for i := range book.Copies {
		if book.Copies[i].Index == copyIndex {
			book.Copies[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("copy %d of book %d: %w", copyIndex, bookID, ErrNotFound)
}
