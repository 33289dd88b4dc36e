package menu

import (
	"errors"
	"fmt"
	"io"

	"library/internal/catalog"
)

func (m *Menu) runStudentMenu() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Student Operations ---")
		fmt.Fprintln(m.out, "1. Add Student")
		fmt.Fprintln(m.out, "2. Delete Student by ID")
		fmt.Fprintln(m.out, "3. Delete Student by Name")
		fmt.Fprintln(m.out, "4. Update Student")
		fmt.Fprintln(m.out, "5. List All Students")
		fmt.Fprintln(m.out, "6. Find Student by Name")
		fmt.Fprintln(m.out, "7. View Student Info (including loans)")
		fmt.Fprintln(m.out, "8. List Students with Penalty")
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
			return m.addStudent()
		case 2:
			return m.deleteStudentByID()
		case 3:
			return m.deleteStudentByName()
		case 4:
			return m.updateStudent()
		case 5:
			m.printStudents()
			return nil
		case 6:
			return m.findStudentByName()
		case 7:
			return m.printStudentInfo()
		case 8:
			m.printStudentsWithPenalty()
			return nil
		case 9:
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) addStudent() error {
	name, err := m.readLine("Enter Student Name: ")
	if err != nil {
		return err
	}
	student := m.catalog.AddStudent(name)
	fmt.Fprintf(m.out, "Student added successfully with ID %d.\n", student.ID)
	return nil
}

func (m *Menu) deleteStudentByID() error {
	id, err := m.readInt("Enter Student ID to delete: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	switch err := m.catalog.DeleteStudentByID(id); {
	case errors.Is(err, catalog.ErrConflict):
		fmt.Fprintln(m.out, "Cannot delete student with active book loans.")
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintf(m.out, "Student with ID %d not found.\n", id)
	case err == nil:
		fmt.Fprintf(m.out, "Student with ID %d deleted successfully.\n", id)
	}
	return nil
}

func (m *Menu) deleteStudentByName() error {
	name, err := m.readLine("Enter Student Name to delete: ")
	if err != nil {
		return err
	}

	switch err := m.catalog.DeleteStudentByName(name); {
	case errors.Is(err, catalog.ErrConflict):
		fmt.Fprintln(m.out, "Cannot delete student with active book loans.")
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintf(m.out, "Student with name '%s' not found.\n", name)
	case err == nil:
		fmt.Fprintf(m.out, "Student with name '%s' deleted successfully.\n", name)
	}
	return nil
}

func (m *Menu) updateStudent() error {
	id, err := m.readInt("Enter Student ID to update: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	student := m.catalog.FindStudentByID(id)
	if student == nil {
		fmt.Fprintf(m.out, "Student with ID %d not found.\n", id)
		return nil
	}

	name, err := m.readLine(fmt.Sprintf("Enter new Student Name (leave blank to keep current '%s'): ", student.Name))
	if err != nil {
		return err
	}
	if err := m.catalog.UpdateStudent(id, name); err != nil {
		fmt.Fprintf(m.out, "Could not update student: %v\n", err)
		return nil
	}
	fmt.Fprintf(m.out, "Student with ID %d updated successfully.\n", id)
	return nil
}

func (m *Menu) printStudents() {
	students := m.catalog.Students()
	if len(students) == 0 {
		fmt.Fprintln(m.out, "No students in the system.")
		return
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Students ---")
	fmt.Fprintln(m.out, "ID | Student Name | Penalty Days")
	for _, s := range students {
		fmt.Fprintf(m.out, "%d | %s | %d\n", s.ID, s.Name, s.PenaltyDays)
	}
	fmt.Fprintln(m.out, "----------------")
}

func (m *Menu) findStudentByName() error {
	name, err := m.readLine("Enter Student Name to find: ")
	if err != nil {
		return err
	}
	student := m.catalog.FindStudentByName(name)
	if student == nil {
		fmt.Fprintf(m.out, "Student '%s' not found.\n", name)
		return nil
	}
	fmt.Fprintf(m.out, "Student Found: ID %d, Name: %s, Penalty Days: %d\n", student.ID, student.Name, student.PenaltyDays)
	return nil
}

func (m *Menu) printStudentInfo() error {
	id, err := m.readInt("Enter Student ID to view info: ")
	if err != nil {
		if err == io.EOF {
			return err
		}
		fmt.Fprintln(m.out, "Invalid number.")
		return nil
	}

	student := m.catalog.FindStudentByID(id)
	if student == nil {
		fmt.Fprintf(m.out, "Student with ID %d not found.\n", id)
		return nil
	}

	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Student Information ---")
	fmt.Fprintf(m.out, "ID: %d\n", student.ID)
	fmt.Fprintf(m.out, "Name: %s\n", student.Name)
	fmt.Fprintf(m.out, "Penalty Days: %d\n", student.PenaltyDays)

	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Active Loans:")
	loans := m.catalog.ActiveLoansForStudent(id)
	if len(loans) == 0 {
		fmt.Fprintln(m.out, "  No active loans for this student.")
		return nil
	}
	fmt.Fprintln(m.out, "  Loan ID | Book ID | Copy | Loan Date | Due Date")
	for _, l := range loans {
		fmt.Fprintf(m.out, "  %d | %d | %d | %s | %s\n", l.ID, l.BookID, l.CopyIndex, l.LoanDate, l.DueDate)
	}
	return nil
}

func (m *Menu) printStudentsWithPenalty() {
	students := m.catalog.StudentsWithPenalty()
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Students with Penalty ---")
	if len(students) == 0 {
		fmt.Fprintln(m.out, "No students currently have penalty days.")
		return
	}
	fmt.Fprintln(m.out, "ID | Student Name | Penalty Days")
	for _, s := range students {
		fmt.Fprintf(m.out, "%d | %s | %d\n", s.ID, s.Name, s.PenaltyDays)
	}
}
