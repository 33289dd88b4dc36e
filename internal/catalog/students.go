package catalog

import (
	"fmt"

	"library/internal/models"
)

// AddStudent registers a student with zero penalty days and returns the
// new record.
func (c *Catalog) AddStudent(name string) *models.Student {
	student := &models.Student{ID: c.nextStudentID(), Name: name}
	c.students = append(c.students, student)
	return student
}

// DeleteStudentByID removes a student. It refuses while the student has
// any active loan.
func (c *Catalog) DeleteStudentByID(id int) error {
	if c.ActiveLoanCount(id) > 0 {
		return fmt.Errorf("student %d has active loans: %w", id, ErrConflict)
	}

	for i, s := range c.students {
		if s.ID == id {
			c.students = append(c.students[:i], c.students[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("student %d: %w", id, ErrNotFound)
}

// DeleteStudentByName removes the first student whose name matches
// exactly, subject to the same active-loan guard.
func (c *Catalog) DeleteStudentByName(name string) error {
	for i, s := range c.students {
		if s.Name == name {
			if c.ActiveLoanCount(s.ID) > 0 {
				return fmt.Errorf("student %q has active loans: %w", name, ErrConflict)
			}
			c.students = append(c.students[:i], c.students[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("student %q: %w", name, ErrNotFound)
}

// UpdateStudent overwrites a student's name; a blank value keeps the
// current one.
func (c *Catalog) UpdateStudent(id int, name string) error {
	student := c.FindStudentByID(id)
	if student == nil {
		return fmt.Errorf("student %d: %w", id, ErrNotFound)
	}
	if name != "" {
		student.Name = name
	}
	return nil
}

// FindStudentByID returns the student with the given id, or nil.
func (c *Catalog) FindStudentByID(id int) *models.Student {
	for _, s := range c.students {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// FindStudentByName returns the first student whose name matches exactly, or nil.
func (c *Catalog) FindStudentByName(name string) *models.Student {
	for _, s := range c.students {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Students returns all students in insertion order.
func (c *Catalog) Students() []*models.Student {
	return c.students
}

// StudentsWithPenalty returns students whose penalty counter is positive.
// Nothing in the operation set increments the counter, so this only
// reports values seeded directly in the persisted file.
func (c *Catalog) StudentsWithPenalty() []*models.Student {
	var out []*models.Student
	for _, s := range c.students {
		if s.PenaltyDays > 0 {
			out = append(out, s)
		}
	}
	return out
}
