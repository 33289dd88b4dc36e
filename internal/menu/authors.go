package menu

import (
	"errors"
	"fmt"
	"io"

	"library/internal/catalog"
)

func (m *Menu) runAuthorMenu() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Author Operations ---")
		fmt.Fprintln(m.out, "1. Add Author")
		fmt.Fprintln(m.out, "2. Delete Author")
		fmt.Fprintln(m.out, "3. Update Author")
		fmt.Fprintln(m.out, "4. List All Authors")
		fmt.Fprintln(m.out, "5. Find Author by Name")
		fmt.Fprintln(m.out, "6. Back to Main Menu")

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
			return m.addAuthor()
		case 2:
			return m.deleteAuthor()
		case 3:
			return m.updateAuthor()
		case 4:
			m.printAuthors()
			return nil
		case 5:
			return m.findAuthorByName()
		case 6:
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) addAuthor() error {
	name, err := m.readLine("Enter Author Name: ")
	if err != nil {
		return err
	}
	author := m.catalog.AddAuthor(name)
	fmt.Fprintf(m.out, "Author added successfully with ID %d.\n", author.ID)
	return nil
}

func (m *Menu) deleteAuthor() error {
	id, err := m.readInt("Enter Author ID to delete: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	if err := m.catalog.DeleteAuthor(id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			fmt.Fprintf(m.out, "Author with ID %d not found.\n", id)
			return nil
		}
		fmt.Fprintf(m.out, "Could not delete author: %v\n", err)
		return nil
	}
	fmt.Fprintf(m.out, "Author with ID %d deleted successfully.\n", id)
	return nil
}

func (m *Menu) updateAuthor() error {
	id, err := m.readInt("Enter Author ID to update: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	author := m.catalog.FindAuthorByID(id)
	if author == nil {
		fmt.Fprintf(m.out, "Author with ID %d not found.\n", id)
		return nil
	}

	name, err := m.readLine(fmt.Sprintf("Enter new Author Name (leave blank to keep current '%s'): ", author.Name))
	if err != nil {
		return err
	}
	if err := m.catalog.UpdateAuthor(id, name); err != nil {
		fmt.Fprintf(m.out, "Could not update author: %v\n", err)
		return nil
	}
	fmt.Fprintf(m.out, "Author with ID %d updated successfully.\n", id)
	return nil
}

func (m *Menu) printAuthors() {
	authors := m.catalog.Authors()
	if len(authors) == 0 {
		fmt.Fprintln(m.out, "No authors in the system.")
		return
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Authors ---")
	fmt.Fprintln(m.out, "ID | Author Name")
	for _, a := range authors {
		fmt.Fprintf(m.out, "%d | %s\n", a.ID, a.Name)
	}
	fmt.Fprintln(m.out, "---------------")
}

func (m *Menu) findAuthorByName() error {
	name, err := m.readLine("Enter Author Name to find: ")
	if err != nil {
		return err
	}
	author := m.catalog.FindAuthorByName(name)
	if author == nil {
		fmt.Fprintf(m.out, "Author '%s' not found.\n", name)
		return nil
	}
	fmt.Fprintf(m.out, "Author Found: ID %d, Name: %s\n", author.ID, author.Name)
	return nil
}
