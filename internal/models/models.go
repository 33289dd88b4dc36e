package models

// CopyStatus is the shelf state of a single physical copy of a book.
type CopyStatus int

const (
	StatusOnShelf  CopyStatus = 0
	StatusBorrowed CopyStatus = 1
)

// String returns the operator-facing label for a copy status.
func (s CopyStatus) String() string {
	if s == StatusBorrowed {
		return "Borrowed"
	}
	return "On Shelf"
}

// Copy represents one physical copy of a book, identified by a 1-based
// index local to its owning book. Copies have no identity of their own.
type Copy struct {
	Index  int
	Status CopyStatus
}

// Book represents a catalogued title and its physical copies
type Book struct {
	ID     int
	Name   string
	ISBN   string
	Copies []Copy
}

// Author represents a book author
type Author struct {
	ID   int
	Name string
}

// BookAuthorLink associates a book with an author (many-to-many).
type BookAuthorLink struct {
	BookID   int
	AuthorID int
}

// Student represents a registered borrower.
// PenaltyDays is carried in the persisted record but nothing in the
// current operation set ever increments it.
type Student struct {
	ID          int
	Name        string
	PenaltyDays int
}

// Loan records one copy of a book being lent to a student.
// Dates use the DD.MM.YYYY format throughout.
type Loan struct {
	ID        int
	BookID    int
	CopyIndex int
	StudentID int
	LoanDate  string
	DueDate   string
	Returned  bool
}
