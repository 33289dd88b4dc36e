package catalog

import (
	"fmt"

	"library/internal/models"
)

// LinkBookAuthor appends a (book, author) association. The exact pair may
// appear only once; duplicates are refused.
func (c *Catalog) LinkBookAuthor(bookID, authorID int) error {
	for _, l := range c.links {
		if l.BookID == bookID && l.AuthorID == authorID {
			return fmt.Errorf("link between book %d and author %d already exists: %w", bookID, authorID, ErrConflict)
		}
	}
	c.links = append(c.links, models.BookAuthorLink{BookID: bookID, AuthorID: authorID})
	return nil
}

// RemoveLinksByAuthor drops every link row referencing the author.
// Author deletion calls this to keep the link table consistent.
func (c *Catalog) RemoveLinksByAuthor(authorID int) {
	kept := c.links[:0]
	for _, l := range c.links {
		if l.AuthorID != authorID {
			kept = append(kept, l)
		}
	}
	c.links = kept
}

// RemoveLinksByBook drops every link row referencing the book. Book
// deletion does not call this, so rows for a deleted book linger in the
// table until the author side is removed.
func (c *Catalog) RemoveLinksByBook(bookID int) {
	kept := c.links[:0]
	for _, l := range c.links {
		if l.BookID != bookID {
			kept = append(kept, l)
		}
	}
	c.links = kept
}

// Links returns all book-author links in insertion order.
func (c *Catalog) Links() []models.BookAuthorLink {
	return c.links
}
