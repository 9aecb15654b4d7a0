package pair

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vitalvas/radpair/pkg/token"
)

// Reader reads groups of pairs from a text stream. Groups are separated by
// empty lines.
type Reader struct {
	parser  *Parser
	scanner *bufio.Scanner
	line    int
}

// NewReader returns a reader parsing r with p.
func NewReader(r io.Reader, p *Parser) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, p.maxLine+2)), p.maxLine+2)

	return &Reader{
		parser:  p,
		scanner: scanner,
	}
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

// ReadList appends the next group of pairs to out.
//
// It returns done=false after an empty line that ends a non-empty group, and
// done=true at the end of the stream. On error everything appended to out by
// this call is removed.
func (r *Reader) ReadList(out *List) (bool, error) {
	if out == nil {
		return false, ErrNilList
	}

	var (
		found  bool
		anchor *Pair
	)
	mark := out.Len()

	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()

		if line == "" {
			if found {
				return false, nil
			}
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		before := out.Len()
		res, err := r.parser.ParseLine(line, out, anchor)
		if err != nil {
			return false, r.fail(out, mark, err)
		}
		anchor = res.Anchor

		if out.Len() == before {
			switch {
			case res.Last == token.EOL:
				continue
			case anchor != nil && res.Last == token.Comma:
				found = true
				continue
			}
			return false, r.fail(out, mark, ErrFormat)
		}

		found = true
	}

	if err := r.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = ErrLineTooLong
		}
		r.line++
		return false, r.fail(out, mark, err)
	}

	return true, nil
}

func (r *Reader) fail(out *List, mark int, err error) error {
	out.truncate(mark)
	r.parser.logger.Warnf("discarding pair group at line %d: %v", r.line, err)
	return fmt.Errorf("line %d: %w", r.line, err)
}
