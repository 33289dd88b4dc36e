package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library/internal/models"
	"library/internal/storage/stubs"
)

// testDate is the pinned "today" for every catalog test: 01.06.2024.
var testDate = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	cat := New(stubs.NewMockStore(), zap.NewNop(), WithClock(func() time.Time { return testDate }))
	require.NoError(t, cat.Load(context.Background()))
	return cat
}

func TestNextIDAllocation(t *testing.T) {
	cat := newTestCatalog(t)

	// Empty collection starts at 1.
	book, err := cat.AddBook("First", "111", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, book.ID)

	book, err = cat.AddBook("Second", "222", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, book.ID)

	// Deleting a non-max id leaves the allocator on max+1.
	require.NoError(t, cat.DeleteBook(1))
	book, err = cat.AddBook("Third", "333", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, book.ID)

	// Deleting the max id frees it for reuse: the allocator scans live
	// records only.
	require.NoError(t, cat.DeleteBook(3))
	book, err = cat.AddBook("Fourth", "444", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, book.ID)
}

func TestNextIDAllocation_SparseIDs(t *testing.T) {
	store := stubs.NewMockStore()
	store.Seed(
		[]*models.Book{{ID: 2, Name: "A"}, {ID: 5, Name: "B"}},
		nil, nil, nil, nil,
	)
	cat := New(store, zap.NewNop())
	require.NoError(t, cat.Load(context.Background()))

	book, err := cat.AddBook("C", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 6, book.ID, "allocator should yield max+1, not fill gaps")
}

func TestSaveAndReload_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := stubs.NewMockStore()
	cat := New(store, zap.NewNop(), WithClock(func() time.Time { return testDate }))
	require.NoError(t, cat.Load(ctx))

	book, err := cat.AddBook("Dune", "123", 2)
	require.NoError(t, err)
	author := cat.AddAuthor("Frank Herbert")
	student := cat.AddStudent("Ada")
	require.NoError(t, cat.LinkBookAuthor(book.ID, author.ID))
	_, err = cat.LendBook(student.ID, book.ID, 1)
	require.NoError(t, err)
	require.NoError(t, cat.Save(ctx))

	reloaded := New(store, zap.NewNop())
	require.NoError(t, reloaded.Load(ctx))

	require.Len(t, reloaded.Books(), 1)
	assert.Equal(t, "Dune", reloaded.Books()[0].Name)
	assert.Len(t, reloaded.Books()[0].Copies, 2)
	require.Len(t, reloaded.Authors(), 1)
	require.Len(t, reloaded.Students(), 1)
	require.Len(t, reloaded.Loans(), 1)
	require.Len(t, reloaded.Links(), 1)
	assert.False(t, reloaded.Loans()[0].Returned)
}

func TestReload_ResetsCopyStatuses(t *testing.T) {
	// Copy statuses are not persisted. After a reload every copy is back
	// on the shelf even though its loan is still active, until the next
	// mutation touches the copy.
	ctx := context.Background()
	store := stubs.NewMockStore()
	cat := New(store, zap.NewNop(), WithClock(func() time.Time { return testDate }))
	require.NoError(t, cat.Load(ctx))

	book, err := cat.AddBook("Dune", "123", 1)
	require.NoError(t, err)
	_, err = cat.LendBook(1, book.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBorrowed, cat.FindBookByID(book.ID).Copies[0].Status)
	require.NoError(t, cat.Save(ctx))

	reloaded := New(store, zap.NewNop())
	require.NoError(t, reloaded.Load(ctx))

	assert.Equal(t, models.StatusOnShelf, reloaded.FindBookByID(book.ID).Copies[0].Status)
	assert.False(t, reloaded.Loans()[0].Returned, "the loan itself stays active")
	assert.False(t, reloaded.IsCopyAvailable(book.ID, 1), "the loans file still knows the copy is out")
}

func TestClose_ReleasesSession(t *testing.T) {
	cat := newTestCatalog(t)
	_, err := cat.AddBook("Dune", "123", 1)
	require.NoError(t, err)

	require.NoError(t, cat.Close())
	assert.Empty(t, cat.Books())
	assert.Empty(t, cat.Loans())
}

func TestEndToEnd_LoanLifecycle(t *testing.T) {
	cat := newTestCatalog(t)

	book, err := cat.AddBook("Dune", "123", 2)
	require.NoError(t, err)
	student := cat.AddStudent("S1")

	require.Equal(t, models.StatusOnShelf, book.Copies[0].Status)
	require.Equal(t, models.StatusOnShelf, book.Copies[1].Status)

	loan, err := cat.LendBook(student.ID, book.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBorrowed, book.Copies[0].Status)
	assert.Equal(t, "01.06.2024", loan.LoanDate)
	assert.Equal(t, "15.06.2024", loan.DueDate)

	// The same copy cannot go out twice.
	_, err = cat.LendBook(student.ID, book.ID, 1)
	assert.ErrorIs(t, err, ErrUnavailable)

	require.NoError(t, cat.ReturnBook(loan.ID))
	assert.Equal(t, models.StatusOnShelf, book.Copies[0].Status)
	assert.True(t, loan.Returned)

	// With no borrowed copies the book can now be deleted.
	require.NoError(t, cat.DeleteBook(book.ID))
	assert.Nil(t, cat.FindBookByID(book.ID))
}

func TestBorrowedCopiesMatchActiveLoans(t *testing.T) {
	cat := newTestCatalog(t)

	book, err := cat.AddBook("Dune", "123", 3)
	require.NoError(t, err)

	loan1, err := cat.LendBook(1, book.ID, 1)
	require.NoError(t, err)
	_, err = cat.LendBook(2, book.ID, 3)
	require.NoError(t, err)
	require.NoError(t, cat.ReturnBook(loan1.ID))

	for _, cp := range book.Copies {
		active := 0
		for _, l := range cat.Loans() {
			if l.BookID == book.ID && l.CopyIndex == cp.Index && !l.Returned {
				active++
			}
		}
		if cp.Status == models.StatusBorrowed {
			assert.Equal(t, 1, active, "borrowed copy %d must have exactly one active loan", cp.Index)
		} else {
			assert.Equal(t, 0, active, "shelved copy %d must have no active loan", cp.Index)
		}
	}
}
