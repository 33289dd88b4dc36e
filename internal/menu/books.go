package menu

import (
	"errors"
	"fmt"
	"io"

	"library/internal/catalog"
)

func (m *Menu) runBookMenu() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Book Operations ---")
		fmt.Fprintln(m.out, "1. Add Book")
		fmt.Fprintln(m.out, "2. Delete Book")
		fmt.Fprintln(m.out, "3. Update Book")
		fmt.Fprintln(m.out, "4. List All Books")
		fmt.Fprintln(m.out, "5. List Book Copies (All Books)")
		fmt.Fprintln(m.out, "6. List Book Copies (By Book Name)")
		fmt.Fprintln(m.out, "7. Find Book by Name")
		fmt.Fprintln(m.out, "8. Find Book by ISBN")
		fmt.Fprintln(m.out, "9. Back to Main Menu")

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
			return m.addBook()
		case 2:
			return m.deleteBook()
		case 3:
			return m.updateBook()
		case 4:
			m.printBooks()
			return nil
		case 5:
			m.printAllCopies()
			return nil
		case 6:
			return m.printCopiesByBookName()
		case 7:
			return m.findBookByName()
		case 8:
			return m.findBookByISBN()
		case 9:
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) addBook() error {
	name, err := m.readLine("Enter Book Name: ")
	if err != nil {
		return err
	}
	isbn, err := m.readLine("Enter ISBN: ")
	if err != nil {
		return err
	}
	count, err := m.readInt("Enter Number of Copies: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	book, err := m.catalog.AddBook(name, isbn, count)
	if err != nil {
		fmt.Fprintf(m.out, "Could not add book: %v\n", err)
		return nil
	}
	fmt.Fprintf(m.out, "Book added successfully with ID %d.\n", book.ID)
	return nil
}

func (m *Menu) deleteBook() error {
	id, err := m.readInt("Enter Book ID to delete: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	switch err := m.catalog.DeleteBook(id); {
	case errors.Is(err, catalog.ErrConflict):
		fmt.Fprintln(m.out, "Cannot delete book. Some copies are currently borrowed.")
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintf(m.out, "Book with ID %d not found.\n", id)
	case err == nil:
		fmt.Fprintf(m.out, "Book with ID %d deleted successfully.\n", id)
	}
	return nil
}

func (m *Menu) updateBook() error {
	id, err := m.readInt("Enter Book ID to update: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	book := m.catalog.FindBookByID(id)
	if book == nil {
		fmt.Fprintf(m.out, "Book with ID %d not found.\n", id)
		return nil
	}

	name, err := m.readLine(fmt.Sprintf("Enter new Book Name (leave blank to keep current '%s'): ", book.Name))
	if err != nil {
		return err
	}
	isbn, err := m.readLine(fmt.Sprintf("Enter new ISBN (leave blank to keep current '%s'): ", book.ISBN))
	if err != nil {
		return err
	}

	if err := m.catalog.UpdateBook(id, name, isbn); err != nil {
		fmt.Fprintf(m.out, "Could not update book: %v\n", err)
		return nil
	}
	fmt.Fprintf(m.out, "Book with ID %d updated successfully.\n", id)
	return nil
}

func (m *Menu) printBooks() {
	books := m.catalog.Books()
	if len(books) == 0 {
		fmt.Fprintln(m.out, "No books in the library.")
		return
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Books ---")
	fmt.Fprintln(m.out, "ID | Book Name | ISBN | Copies")
	for _, b := range books {
		fmt.Fprintf(m.out, "%d | %s | %s | %d\n", b.ID, b.Name, b.ISBN, len(b.Copies))
	}
	fmt.Fprintln(m.out, "-------------")
}

func (m *Menu) printAllCopies() {
	books := m.catalog.Books()
	if len(books) == 0 {
		fmt.Fprintln(m.out, "No books in the library to show copies.")
		return
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Book Copies ---")
	for _, b := range books {
		fmt.Fprintf(m.out, "Book: %s (ID: %d)\n", b.Name, b.ID)
		for _, cp := range b.Copies {
			fmt.Fprintf(m.out, "  Copy %d: %s\n", cp.Index, cp.Status)
		}
	}
	fmt.Fprintln(m.out, "-------------------")
}

func (m *Menu) printCopiesByBookName() error {
	name, err := m.readLine("Enter Book Name to show copies: ")
	if err != nil {
		return err
	}
	book := m.catalog.FindBookByName(name)
	if book == nil {
		fmt.Fprintf(m.out, "Book '%s' not found.\n", name)
		return nil
	}
	fmt.Fprintf(m.out, "\n--- Copies of '%s' ---\n", book.Name)
	if len(book.Copies) == 0 {
		fmt.Fprintln(m.out, "  No copies available for this book.")
	}
	for _, cp := range book.Copies {
		fmt.Fprintf(m.out, "  Copy %d: %s\n", cp.Index, cp.Status)
	}
	return nil
}

func (m *Menu) findBookByName() error {
	name, err := m.readLine("Enter Book Name to find: ")
	if err != nil {
		return err
	}
	book := m.catalog.FindBookByName(name)
	if book == nil {
		fmt.Fprintf(m.out, "Book '%s' not found.\n", name)
		return nil
	}
	fmt.Fprintf(m.out, "Book Found: ID %d, Name: %s, ISBN: %s\n", book.ID, book.Name, book.ISBN)
	return nil
}

func (m *Menu) findBookByISBN() error {
	isbn, err := m.readLine("Enter ISBN to find: ")
	if err != nil {
		return err
	}
	book := m.catalog.FindBookByISBN(isbn)
	if book == nil {
		fmt.Fprintf(m.out, "Book with ISBN '%s' not found.\n", isbn)
		return nil
	}
	fmt.Fprintf(m.out, "Book Found: ID %d, Name: %s, ISBN: %s\n", book.ID, book.Name, book.ISBN)
	return nil
}
