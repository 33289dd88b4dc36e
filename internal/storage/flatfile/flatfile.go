package flatfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"library/internal/models"
)

const (
	booksFile    = "books.csv"
	authorsFile  = "authors.csv"
	studentsFile = "students.csv"
	loansFile    = "loans.csv"
	linksFile    = "book_authors.csv"
)

// Store persists catalog records as delimited text files, one file per
// record type, each with a header row. Fields are written verbatim with no
// quoting or escaping, so values must not contain the delimiter character.
type Store struct {
	dir    string
	delim  string
	logger *zap.Logger
}

// NewStore creates a flat-file store rooted at dir, creating the directory
// if needed. The delimiter must be a single character.
func NewStore(dir, delim string, logger *zap.Logger) (*Store, error) {
	if len(delim) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", delim)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, delim: delim, logger: logger}, nil
}

// Close is a no-op; every load and save opens and closes its own file.
func (s *Store) Close() error {
	return nil
}

// readRecords reads the file's data rows, skipping the header. A missing
// file yields no rows and no error, matching a first run with no data yet.
func (s *Store) readRecords(name string, fn func(fields []string) error) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	first := true
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		if err := fn(strings.Split(line, s.delim)); err != nil {
			s.logger.Warn("Skipping malformed record",
				zap.String("file", name),
				zap.Int("line", lineNo),
				zap.Error(err),
			)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

// writeRecords rewrites the file wholesale: header row first, then one
// delimited line per record.
func (s *Store) writeRecords(name, header string, rows [][]string) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, strings.ReplaceAll(header, ",", s.delim))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, s.delim))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// LoadBooks reads the books file. Copy statuses are not persisted: every
// book comes back with all of its copies on the shelf.
func (s *Store) LoadBooks(ctx context.Context) ([]*models.Book, error) {
	var books []*models.Book
	err := s.readRecords(booksFile, func(fields []string) error {
		if len(fields) != 4 {
			return fmt.Errorf("expected 4 fields, got %d", len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("bad book id %q: %w", fields[0], err)
		}
		count, err := strconv.Atoi(fields[3])
		if err != nil {
			return fmt.Errorf("bad copy count %q: %w", fields[3], err)
		}
		book := &models.Book{ID: id, Name: fields[1], ISBN: fields[2]}
		for i := 1; i <= count; i++ {
			book.Copies = append(book.Copies, models.Copy{Index: i, Status: models.StatusOnShelf})
		}
		books = append(books, book)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}

// SaveBooks writes the books file. Only the copy count survives; which
// copies were borrowed is recoverable solely from the loans file.
func (s *Store) SaveBooks(ctx context.Context, books []*models.Book) error {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			strconv.Itoa(b.ID), b.Name, b.ISBN, strconv.Itoa(len(b.Copies)),
		})
	}
	return s.writeRecords(booksFile, "bookId,bookName,ISBN,exampleCount", rows)
}

// LoadAuthors reads the authors file. The name is everything after the
// first delimiter, so author names may contain the delimiter character.
func (s *Store) LoadAuthors(ctx context.Context) ([]*models.Author, error) {
	var authors []*models.Author
	err := s.readRecords(authorsFile, func(fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("expected 2 fields, got %d", len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("bad author id %q: %w", fields[0], err)
		}
		authors = append(authors, &models.Author{
			ID:   id,
			Name: strings.Join(fields[1:], s.delim),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return authors, nil
}

func (s *Store) SaveAuthors(ctx context.Context, authors []*models.Author) error {
	rows := make([][]string, 0, len(authors))
	for _, a := range authors {
		rows = append(rows, []string{strconv.Itoa(a.ID), a.Name})
	}
	return s.writeRecords(authorsFile, "authorId,authorName", rows)
}

func (s *Store) LoadStudents(ctx context.Context) ([]*models.Student, error) {
	var students []*models.Student
	err := s.readRecords(studentsFile, func(fields []string) error {
		if len(fields) != 3 {
			return fmt.Errorf("expected 3 fields, got %d", len(fields))
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("bad student id %q: %w", fields[0], err)
		}
		penalty, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("bad penalty days %q: %w", fields[2], err)
		}
		students = append(students, &models.Student{ID: id, Name: fields[1], PenaltyDays: penalty})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (s *Store) SaveStudents(ctx context.Context, students []*models.Student) error {
	rows := make([][]string, 0, len(students))
	for _, st := range students {
		rows = append(rows, []string{
			strconv.Itoa(st.ID), st.Name, strconv.Itoa(st.PenaltyDays),
		})
	}
	return s.writeRecords(studentsFile, "studentId,studentName,penaltyDays", rows)
}

func (s *Store) LoadLoans(ctx context.Context) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := s.readRecords(loansFile, func(fields []string) error {
		if len(fields) != 7 {
			return fmt.Errorf("expected 7 fields, got %d", len(fields))
		}
		ints := make([]int, 4)
		for i := 0; i < 4; i++ {
			v, err := strconv.Atoi(fields[i])
			if err != nil {
				return fmt.Errorf("bad numeric field %q: %w", fields[i], err)
			}
			ints[i] = v
		}
		returned, err := strconv.Atoi(fields[6])
		if err != nil {
			return fmt.Errorf("bad returned flag %q: %w", fields[6], err)
		}
		loans = append(loans, &models.Loan{
			ID:        ints[0],
			BookID:    ints[1],
			CopyIndex: ints[2],
			StudentID: ints[3],
			LoanDate:  fields[4],
			DueDate:   fields[5],
			Returned:  returned != 0,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *Store) SaveLoans(ctx context.Context, loans []*models.Loan) error {
	rows := make([][]string, 0, len(loans))
	for _, l := range loans {
		returned := "0"
		if l.Returned {
			returned = "1"
		}
		rows = append(rows, []string{
			strconv.Itoa(l.ID),
			strconv.Itoa(l.BookID),
			strconv.Itoa(l.CopyIndex),
			strconv.Itoa(l.StudentID),
			l.LoanDate,
			l.DueDate,
			returned,
		})
	}
	return s.writeRecords(loansFile, "loanId,bookId,copyIndex,studentId,loanDate,dueDate,returned", rows)
}

func (s *Store) LoadLinks(ctx context.Context) ([]models.BookAuthorLink, error) {
	var links []models.BookAuthorLink
	err := s.readRecords(linksFile, func(fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("expected 2 fields, got %d", len(fields))
		}
		bookID, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("bad book id %q: %w", fields[0], err)
		}
		authorID, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("bad author id %q: %w", fields[1], err)
		}
		links = append(links, models.BookAuthorLink{BookID: bookID, AuthorID: authorID})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (s *Store) SaveLinks(ctx context.Context, links []models.BookAuthorLink) error {
	rows := make([][]string, 0, len(links))
	for _, l := range links {
		rows = append(rows, []string{strconv.Itoa(l.BookID), strconv.Itoa(l.AuthorID)})
	}
	return s.writeRecords(linksFile, "bookId,authorId", rows)
}
