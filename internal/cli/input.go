package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// tokenScanner splits a reader into whitespace-separated tokens.
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenScanner{sc: sc}
}

// next returns the next token, or io.EOF when the input is exhausted.
func (t *tokenScanner) next() (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// nextInt returns the next token as an integer, or io.EOF.
func (t *tokenScanner) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return parseInt("input", tok)
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrUsage, name, s)
	}
	return v, nil
}
