package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"library/internal/catalog"
)

// Menu drives the interactive console session: nested numbered menus read
// from in, results and prompts written to out. It owns no state beyond
// the catalog session it dispatches into.
type Menu struct {
	catalog *catalog.Catalog
	in      *bufio.Reader
	out     io.Writer
	logger  *zap.Logger
}

// New creates a menu over the given reader/writer pair. Tests pass a
// scripted reader and a buffer.
func New(cat *catalog.Catalog, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	return &Menu{
		catalog: cat,
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger,
	}
}

// Run loops on the main menu until the operator chooses Exit or the input
// stream ends. Saving is the caller's responsibility once Run returns.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Library Management System ---")
		fmt.Fprintln(m.out, "1. Book Operations")
		fmt.Fprintln(m.out, "2. Author Operations")
		fmt.Fprintln(m.out, "3. Student Operations")
		fmt.Fprintln(m.out, "4. Book Loan Operations")
		fmt.Fprintln(m.out, "5. Book-Author Link Operations")
		fmt.Fprintln(m.out, "0. Exit")
		fmt.Fprintln(m.out, "----------------------------------")

		choice, err := m.readInt("Enter your choice: ")
		if err != nil {
			if err == io.EOF {
				m.logger.Info("Input stream closed, exiting")
				return nil
			}
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}

		switch choice {
		case 1:
			err = m.runBookMenu()
		case 2:
			err = m.runAuthorMenu()
		case 3:
			err = m.runStudentMenu()
		case 4:
			err = m.runLoanMenu()
		case 5:
			err = m.runLinkMenu()
		case 0:
			fmt.Fprintln(m.out, "Exiting program. Saving data...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
		if err == io.EOF {
			m.logger.Info("Input stream closed, exiting")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readLine prompts and reads one full line, trimmed of the trailing
// newline. Returns io.EOF when the input stream is exhausted.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readInt prompts and reads one integer on a line of its own.
func (m *Menu) readInt(prompt string) (int, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", line)
	}
	return n, nil
}
