package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/internal/models"
)

func TestAddBook(t *testing.T) {
	cat := newTestCatalog(t)

	book, err := cat.AddBook("Dune", "123", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, book.ID)
	require.Len(t, book.Copies, 3)
	for i, cp := range book.Copies {
		assert.Equal(t, i+1, cp.Index)
		assert.Equal(t, models.StatusOnShelf, cp.Status)
	}

	// Zero copies is allowed.
	book, err = cat.AddBook("Pamphlet", "456", 0)
	require.NoError(t, err)
	assert.Empty(t, book.Copies)

	_, err = cat.AddBook("Bad", "789", -1)
	assert.Error(t, err)
}

func TestDeleteBook_BlockedWhileBorrowed(t *testing.T) {
	cat := newTestCatalog(t)

	book, err := cat.AddBook("Dune", "123", 2)
	require.NoError(t, err)
	_, err = cat.LendBook(1, book.ID, 2)
	require.NoError(t, err)

	err = cat.DeleteBook(book.ID)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotNil(t, cat.FindBookByID(book.ID), "a refused delete must leave the book in place")
	assert.Len(t, cat.Books(), 1)
}

func TestDeleteBook_NotFound(t *testing.T) {
	cat := newTestCatalog(t)
	assert.ErrorIs(t, cat.DeleteBook(42), ErrNotFound)
}

func TestUpdateBook_BlankPreservesFields(t *testing.T) {
	testCases := []struct {
		name         string
		newName      string
		newISBN      string
		expectedName string
		expectedISBN string
		description  string
	}{
		{
			name:         "both blank",
			newName:      "",
			newISBN:      "",
			expectedName: "Dune",
			expectedISBN: "123",
			description:  "blank input keeps both fields",
		},
		{
			name:         "name only",
			newName:      "Dune Messiah",
			newISBN:      "",
			expectedName: "Dune Messiah",
			expectedISBN: "123",
			description:  "blank ISBN keeps the current ISBN",
		},
		{
			name:         "isbn only",
			newName:      "",
			newISBN:      "999",
			expectedName: "Dune",
			expectedISBN: "999",
			description:  "blank name keeps the current name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cat := newTestCatalog(t)
			book, err := cat.AddBook("Dune", "123", 1)
			require.NoError(t, err)

			require.NoError(t, cat.UpdateBook(book.ID, tc.newName, tc.newISBN))
			assert.Equal(t, tc.expectedName, book.Name, tc.description)
			assert.Equal(t, tc.expectedISBN, book.ISBN, tc.description)
		})
	}
}

func TestFindBook(t *testing.T) {
	cat := newTestCatalog(t)
	_, err := cat.AddBook("Dune", "123", 1)
	require.NoError(t, err)
	_, err = cat.AddBook("Foundation", "456", 1)
	require.NoError(t, err)

	assert.Equal(t, "Foundation", cat.FindBookByID(2).Name)
	assert.Equal(t, 1, cat.FindBookByName("Dune").ID)
	assert.Equal(t, 2, cat.FindBookByISBN("456").ID)

	// Exact, case-sensitive matches only.
	assert.Nil(t, cat.FindBookByName("dune"))
	assert.Nil(t, cat.FindBookByName("Dun"))
	assert.Nil(t, cat.FindBookByISBN("4567"))
	assert.Nil(t, cat.FindBookByID(99))
}

func TestSetCopyStatus(t *testing.T) {
	cat := newTestCatalog(t)
	book, err := cat.AddBook("Dune", "123", 2)
	require.NoError(t, err)

	require.NoError(t, cat.SetCopyStatus(book.ID, 2, models.StatusBorrowed))
	assert.Equal(t, models.StatusBorrowed, book.Copies[1].Status)

	// The overwrite is unconditional: no prior-state check.
	require.NoError(t, cat.SetCopyStatus(book.ID, 2, models.StatusBorrowed))

	err = cat.SetCopyStatus(99, 1, models.StatusOnShelf)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "book 99")

	err = cat.SetCopyStatus(book.ID, 3, models.StatusOnShelf)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "copy 3")
}
