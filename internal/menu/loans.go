package menu

import (
	"errors"
	"fmt"
	"io"

	"library/internal/catalog"
)

func (m *Menu) runLoanMenu() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Book Loan Operations ---")
		fmt.Fprintln(m.out, "1. Borrow Book")
		fmt.Fprintln(m.out, "2. Return Book")
		fmt.Fprintln(m.out, "3. List All Book Loans")
		fmt.Fprintln(m.out, "4. List Overdue Loans")
		fmt.Fprintln(m.out, "5. Back to Main Menu")

		choice, err := m.readInt("Enter your choice: ")
		if err != nil {
			if err == io.EOF {
				return io.EOF
			}
			fmt.Fprintln(m.out, "Invalid choice.")
			continue
		}

		switch choice {
		case 1:
			return m.borrowBook()
		case 2:
			return m.returnBook()
		case 3:
			m.printLoans()
			return nil
		case 4:
			m.printOverdueLoans()
			return nil
		case 5:
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) borrowBook() error {
	studentID, err := m.readInt("Enter Student ID: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}
	bookID, err := m.readInt("Enter Book ID: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}
	copyIndex, err := m.readInt("Enter Copy Number: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	loan, err := m.catalog.LendBook(studentID, bookID, copyIndex)
	switch {
	case errors.Is(err, catalog.ErrUnavailable):
		fmt.Fprintln(m.out, "Book copy not available for loan.")
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintf(m.out, "%v\n", err)
	case err != nil:
		fmt.Fprintf(m.out, "Could not lend book: %v\n", err)
	default:
		fmt.Fprintf(m.out, "Book loaned successfully. Loan ID %d, due %s.\n", loan.ID, loan.DueDate)
	}
	return nil
}

func (m *Menu) returnBook() error {
	loanID, err := m.readInt("Enter Loan ID to return: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	switch err := m.catalog.ReturnBook(loanID); {
	case errors.Is(err, catalog.ErrAlreadyReturned):
		fmt.Fprintf(m.out, "Book for Loan ID %d has already been returned.\n", loanID)
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintf(m.out, "Loan with ID %d not found.\n", loanID)
	case err == nil:
		fmt.Fprintln(m.out, "Book returned successfully.")
	}
	return nil
}

func (m *Menu) printLoans() {
	loans := m.catalog.Loans()
	if len(loans) == 0 {
		fmt.Fprintln(m.out, "No book loans recorded.")
		return
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Book Loans ---")
	fmt.Fprintln(m.out, "ID | Book ID | Copy | Student ID | Loan Date | Due Date | Returned")
	for _, l := range loans {
		returned := 0
		if l.Returned {
			returned = 1
		}
		fmt.Fprintf(m.out, "%d | %d | %d | %d | %s | %s | %d\n",
			l.ID, l.BookID, l.CopyIndex, l.StudentID, l.LoanDate, l.DueDate, returned)
	}
	fmt.Fprintln(m.out, "-------------------")
}

func (m *Menu) printOverdueLoans() {
	loans := m.catalog.OverdueLoans()
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Overdue Book Loans ---")
	if len(loans) == 0 {
		fmt.Fprintln(m.out, "No overdue book loans.")
		return
	}
	fmt.Fprintln(m.out, "ID | Book ID | Copy | Student ID | Loan Date | Due Date")
	for _, l := range loans {
		fmt.Fprintf(m.out, "%d | %d | %d | %d | %s | %s\n",
			l.ID, l.BookID, l.CopyIndex, l.StudentID, l.LoanDate, l.DueDate)
	}
}
