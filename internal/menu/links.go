package menu

import (
	"errors"
	"fmt"
	"io"

	"library/internal/catalog"
)

func (m *Menu) runLinkMenu() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Book-Author Link Operations ---")
		fmt.Fprintln(m.out, "1. Add Book-Author Link")
		fmt.Fprintln(m.out, "2. List All Book-Author Links")
		fmt.Fprintln(m.out, "3. Back to Main Menu")

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
			return m.addLink()
		case 2:
			m.printLinks()
			return nil
		case 3:
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) addLink() error {
	bookID, err := m.readInt("Enter Book ID: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}
	authorID, err := m.readInt("Enter Author ID: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	if err := m.catalog.LinkBookAuthor(bookID, authorID); err != nil {
		if errors.Is(err, catalog.ErrConflict) {
			fmt.Fprintln(m.out, "This book-author link already exists.")
			return nil
		}
		fmt.Fprintf(m.out, "Could not add link: %v\n", err)
		return nil
	}
	fmt.Fprintln(m.out, "Book-author link added successfully.")
	return nil
}

func (m *Menu) printLinks() {
	links := m.catalog.Links()
	if len(links) == 0 {
		fmt.Fprintln(m.out, "No book-author links recorded.")
		return
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Book-Author Links ---")
	fmt.Fprintln(m.out, "Book ID | Author ID")
	for _, l := range links {
		fmt.Fprintf(m.out, "%d | %d\n", l.BookID, l.AuthorID)
	}
	fmt.Fprintln(m.out, "-------------------------")
}
