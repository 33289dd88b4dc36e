package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"library/internal/models"
	"library/internal/storage"
)

// DefaultLoanPeriodDays is how long a copy may stay out before a loan
// becomes overdue.
const DefaultLoanPeriodDays = 14

// Catalog is the in-memory session state of the whole catalog: every
// record collection loaded wholesale from storage, mutated in place by
// operations, and written back wholesale on Save. It is not safe for
// concurrent use; the application is single-threaded by design.
type Catalog struct {
	store          storage.Storage
	logger         *zap.Logger
	now            func() time.Time
	loanPeriodDays int

	books    []*models.Book
	authors  []*models.Author
	students []*models.Student
	loans    []*models.Loan
	links    []models.BookAuthorLink
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock overrides the wall clock, used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// WithLoanPeriod overrides the loan period in days.
func WithLoanPeriod(days int) Option {
	return func(c *Catalog) { c.loanPeriodDays = days }
}

// New creates an empty catalog session backed by the given store.
func New(store storage.Storage, logger *zap.Logger, opts ...Option) *Catalog {
	c := &Catalog{
		store:          store,
		logger:         logger,
		now:            time.Now,
		loanPeriodDays: DefaultLoanPeriodDays,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load populates every collection from storage. A failing load aborts the
// remaining loads and leaves the session unusable.
func (c *Catalog) Load(ctx context.Context) error {
	books, err := c.store.LoadBooks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}
	authors, err := c.store.LoadAuthors(ctx)
	if err != nil {
		return fmt.Errorf("failed to load authors: %w", err)
	}
	students, err := c.store.LoadStudents(ctx)
	if err != nil {
		return fmt.Errorf("failed to load students: %w", err)
	}
	loans, err := c.store.LoadLoans(ctx)
	if err != nil {
		return fmt.Errorf("failed to load loans: %w", err)
	}
	links, err := c.store.LoadLinks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load book-author links: %w", err)
	}

	c.books = books
	c.authors = authors
	c.students = students
	c.loans = loans
	c.links = links

	c.logger.Info("Catalog loaded",
		zap.Int("books", len(books)),
		zap.Int("authors", len(authors)),
		zap.Int("students", len(students)),
		zap.Int("loans", len(loans)),
		zap.Int("links", len(links)),
	)
	return nil
}

// Save writes every collection back to storage.
func (c *Catalog) Save(ctx context.Context) error {
	if err := c.store.SaveBooks(ctx, c.books); err != nil {
		return fmt.Errorf("failed to save books: %w", err)
	}
	if err := c.store.SaveAuthors(ctx, c.authors); err != nil {
		return fmt.Errorf("failed to save authors: %w", err)
	}
	if err := c.store.SaveStudents(ctx, c.students); err != nil {
		return fmt.Errorf("failed to save students: %w", err)
	}
	if err := c.store.SaveLoans(ctx, c.loans); err != nil {
		return fmt.Errorf("failed to save loans: %w", err)
	}
	if err := c.store.SaveLinks(ctx, c.links); err != nil {
		return fmt.Errorf("failed to save book-author links: %w", err)
	}

	c.logger.Info("Catalog saved",
		zap.Int("books", len(c.books)),
		zap.Int("authors", len(c.authors)),
		zap.Int("students", len(c.students)),
		zap.Int("loans", len(c.loans)),
		zap.Int("links", len(c.links)),
	)
	return nil
}

// Close releases the session state and closes the backing store. The
// catalog must not be used afterwards.
func (c *Catalog) Close() error {
	c.books = nil
	c.authors = nil
	c.students = nil
	c.loans = nil
	c.links = nil
	return c.store.Close()
}

// Today returns the current date in DD.MM.YYYY form.
func (c *Catalog) Today() string {
	return FormatDate(c.now())
}

// nextBookID returns one past the highest live book id. Ids of deleted
// records are not reused.
func (c *Catalog) nextBookID() int {
	max := 0
	for _, b := range c.books {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}

func (c *Catalog) nextAuthorID() int {
	max := 0
	for _, a := range c.authors {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

func (c *Catalog) nextStudentID() int {
	max := 0
	for _, s := range c.students {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

func (c *Catalog) nextLoanID() int {
	max := 0
	for _, l := range c.loans {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}
