package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"library/internal/models"
)

// LendBook lends one copy of a book to a student and returns the new
// loan. The book and copy must exist and the copy must be on the shelf.
// The student id is recorded as given; no student lookup is performed.
func (c *Catalog) LendBook(studentID, bookID, copyIndex int) (*models.Loan, error) {
	book := c.FindBookByID(bookID)
	if book == nil {
		return nil, fmt.Errorf("book %d: %w", bookID, ErrNotFound)
	}

	var cp *models.Copy
	for i := range book.Copies {
		if book.Copies[i].Index == copyIndex {
			cp = &book.Copies[i]
			break
		}
	}
	if cp == nil {
		return nil, fmt.Errorf("copy %d of book %d: %w", copyIndex, bookID, ErrNotFound)
	}
	if cp.Status == models.StatusBorrowed {
		return nil, fmt.Errorf("copy %d of book %d: %w", copyIndex, bookID, ErrUnavailable)
	}

	today := c.now()
	loan := &models.Loan{
		ID:        c.nextLoanID(),
		BookID:    bookID,
		CopyIndex: copyIndex,
		StudentID: studentID,
		LoanDate:  FormatDate(today),
		DueDate:   FormatDate(today.AddDate(0, 0, c.loanPeriodDays)),
	}
	c.loans = append(c.loans, loan)
	cp.Status = models.StatusBorrowed

	c.logger.Info("Book lent",
		zap.Int("loan_id", loan.ID),
		zap.Int("book_id", bookID),
		zap.Int("copy_index", copyIndex),
		zap.Int("student_id", studentID),
		zap.String("due_date", loan.DueDate),
	)
	return loan, nil
}

// ReturnBook marks a loan returned and puts the copy back on the shelf.
// Returning an already-returned loan is reported and changes nothing.
func (c *Catalog) ReturnBook(loanID int) error {
	var loan *models.Loan
	for _, l := range c.loans {
		if l.ID == loanID {
			loan = l
			break
		}
	}
	if loan == nil {
		return fmt.Errorf("loan %d: %w", loanID, ErrNotFound)
	}
	if loan.Returned {
		return fmt.Errorf("loan %d: %w", loanID, ErrAlreadyReturned)
	}

	loan.Returned = true
	if err := c.SetCopyStatus(loan.BookID, loan.CopyIndex, models.StatusOnShelf); err != nil {
		// The book may have been deleted out from under the loan; the
		// loan itself is still closed.
		c.logger.Warn("Returned loan references missing copy",
			zap.Int("loan_id", loanID),
			zap.Error(err),
		)
	}

	c.logger.Info("Book returned", zap.Int("loan_id", loanID))
	return nil
}

// Loans returns all loans in insertion order.
func (c *Catalog) Loans() []*models.Loan {
	return c.loans
}

// OverdueLoans returns every active loan whose due date lies strictly in
// the past. Loans with unparseable dates are skipped with a warning.
func (c *Catalog) OverdueLoans() []*models.Loan {
	today := c.Today()
	var out []*models.Loan
	for _, l := range c.loans {
		if l.Returned {
			continue
		}
		days, err := DaysBetween(l.DueDate, today)
		if err != nil {
			c.logger.Warn("Skipping loan with bad due date",
				zap.Int("loan_id", l.ID),
				zap.String("due_date", l.DueDate),
				zap.Error(err),
			)
			continue
		}
		if days > 0 {
			out = append(out, l)
		}
	}
	return out
}

// LoanDuration returns the number of days the loan has been out, counted
// from its loan date to today, or -1 when the loan does not exist or its
// loan date cannot be parsed.
func (c *Catalog) LoanDuration(loanID int) int {
	for _, l := range c.loans {
		if l.ID == loanID {
			days, err := DaysBetween(l.LoanDate, c.Today())
			if err != nil {
				return -1
			}
			return days
		}
	}
	return -1
}

// ActiveLoanCount returns how many non-returned loans the student has.
func (c *Catalog) ActiveLoanCount(studentID int) int {
	count := 0
	for _, l := range c.loans {
		if l.StudentID == studentID && !l.Returned {
			count++
		}
	}
	return count
}

// ActiveLoansForStudent returns the student's non-returned loans.
func (c *Catalog) ActiveLoansForStudent(studentID int) []*models.Loan {
	var out []*models.Loan
	for _, l := range c.loans {
		if l.StudentID == studentID && !l.Returned {
			out = append(out, l)
		}
	}
	return out
}

// IsCopyAvailable reports whether no active loan names the given
// (book, copy) pair.
func (c *Catalog) IsCopyAvailable(bookID, copyIndex int) bool {
	for _, l := range c.loans {
		if l.BookID == bookID && l.CopyIndex == copyIndex && !l.Returned {
			return false
		}
	}
	return true
}
