package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goserg/elodiff/internal/domain"
)

var ErrBadNumber = errors.New("not a whole number")

// Read asks for wins, draws and losses one line at a time.
func Read(r io.Reader, w io.Writer) (domain.Tally, error) {
	scanner := bufio.NewScanner(r)
	var t domain.Tally
	fields := []struct {
		name string
		dst  *int
	}{
		{"wins", &t.Wins},
		{"draws", &t.Draws},
		{"losses", &t.Losses},
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "Enter number of %s: ", f.name); err != nil {
			return domain.Tally{}, err
		}
		n, err := readInt(scanner)
		if err != nil {
			return domain.Tally{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}
	return t, nil
}

func readInt(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	text := strings.TrimSpace(scanner.Text())
	digits, ok := stripUnderscores(text)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, text)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, text)
	}
	return n, nil
}

// stripUnderscores removes digit group separators such as "1_000".
// An underscore must sit between two digits.
func stripUnderscores(text string) (string, bool) {
	if !strings.Contains(text, "_") {
		return text, true
	}
	for i := 0; i < len(text); i++ {
		if text[i] != '_' {
			continue
		}
		if i == 0 || i == len(text)-1 || !isDigit(text[i-1]) || !isDigit(text[i+1]) {
			return "", false
		}
	}
	return strings.ReplaceAll(text, "_", ""), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
