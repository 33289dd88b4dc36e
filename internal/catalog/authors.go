package catalog

import (
	"fmt"

	"library/internal/models"
)

// AddAuthor creates an author and returns the new record.
func (c *Catalog) AddAuthor(name string) *models.Author {
	author := &models.Author{ID: c.nextAuthorID(), Name: name}
	c.authors = append(c.authors, author)
	return author
}

// DeleteAuthor removes an author and purges every link-table row that
// references them.
func (c *Catalog) DeleteAuthor(id int) error {
	idx := -1
	for i, a := range c.authors {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("author %d: %w", id, ErrNotFound)
	}

	c.authors = append(c.authors[:idx], c.authors[idx+1:]...)
	c.RemoveLinksByAuthor(id)
	return nil
}

// UpdateAuthor overwrites an author's name; a blank value keeps the
// current one.
func (c *Catalog) UpdateAuthor(id int, name string) error {
	author := c.FindAuthorByID(id)
	if author == nil {
		return fmt.Errorf("author %d: %w", id, ErrNotFound)
	}
	if name != "" {
		author.Name = name
	}
	return nil
}

// FindAuthorByID returns the author with the given id, or nil.
func (c *Catalog) FindAuthorByID(id int) *models.Author {
	for _, a := range c.authors {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// FindAuthorByName returns the first author whose name matches exactly, or nil.
func (c *Catalog) FindAuthorByName(name string) *models.Author {
	for _, a := range c.authors {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Authors returns all authors in insertion order.
func (c *Catalog) Authors() []*models.Author {
	return c.authors
}
