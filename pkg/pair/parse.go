package pair

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vitalvas/radpair/pkg/dictionary"
	"github.com/vitalvas/radpair/pkg/log"
	"github.com/vitalvas/radpair/pkg/token"
	"github.com/vitalvas/radpair/pkg/value"
)

// ErrLineTooLong is returned for lines longer than the configured maximum.
var ErrLineTooLong = errors.New("line too long")

// Parser parses lines of attribute-value pair text into pair lists.
// It is safe for concurrent use; the lists passed to it are not.
type Parser struct {
	dict     *dictionary.Dictionary
	internal *dictionary.Dictionary
	maker    *Maker
	maxDepth int
	maxLine  int
	logger   log.Logger
}

// Result describes a successfully parsed line.
type Result struct {
	// Consumed is the number of bytes of the line that were parsed.
	Consumed int

	// Last is the token that ended the line: EOL, Comma, or RCBrace.
	Last token.Token

	// Anchor is the group pair that relative references on the following
	// line resolve against, or nil.
	Anchor *Pair
}

// NewParser creates a parser resolving attributes in dict.
func NewParser(dict *dictionary.Dictionary, opts ...Option) *Parser {
	p := &Parser{
		dict:     dict,
		maxDepth: DefaultMaxDepth,
		maxLine:  DefaultMaxLineLength,
		logger:   log.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.maker = NewMaker(p.dict, p.internal)
	return p
}

// Dictionary returns the dictionary the parser resolves names in.
func (p *Parser) Dictionary() *dictionary.Dictionary {
	return p.dict
}

// Maker returns a maker sharing the parser's dictionaries.
func (p *Parser) Maker() *Maker {
	return p.maker
}

// ParseString parses one line of text into list with a fresh anchor.
func ParseString(dict *dictionary.Dictionary, text string, list *List, opts ...Option) (token.Token, error) {
	res, err := NewParser(dict, opts...).ParseLine(text, list, nil)
	return res.Last, err
}

// ParseLine parses the records of one line and appends them to list.
//
// Records separated by commas are parsed until the end of the line, a
// comment, or a closing brace. A record whose name starts with '.' is
// appended to the children of anchor instead of list. The new anchor is
// returned in the result.
//
// On error nothing is appended: list and the children of anchor are restored
// to their state at entry, and the error is a *ParseError. A nil list fails
// with ErrNilList.
func (p *Parser) ParseLine(line string, list *List, anchor *Pair) (Result, error) {
	if list == nil {
		return Result{Last: token.Invalid, Anchor: anchor}, &ParseError{Err: ErrNilList}
	}
	if len(line) > p.maxLine {
		return Result{Last: token.Invalid, Anchor: anchor}, &ParseError{Offset: p.maxLine, Err: ErrLineTooLong}
	}

	mark := list.Len()
	anchorMark := -1
	if anchor != nil && anchor.Children() != nil {
		anchorMark = anchor.Children().Len()
	}

	s := &lineState{parser: p, line: line}
	last, newAnchor, err := s.parseList(list, p.dict.Root(), 0, anchor)
	if err != nil {
		list.truncate(mark)
		if anchorMark >= 0 {
			anchor.Children().truncate(anchorMark)
		}
		return Result{Last: token.Invalid, Anchor: anchor}, err
	}

	p.logger.Debugf("parsed %d records from %d bytes, last token %s", list.Len()-mark, s.pos, last)

	return Result{Consumed: s.pos, Last: last, Anchor: newAnchor}, nil
}

// lineState is the cursor over one line.
type lineState struct {
	parser *Parser
	line   string
	pos    int
}

func (s *lineState) atEnd() bool {
	return s.pos >= len(s.line) || s.line[s.pos] == '\n' || s.line[s.pos] == '#'
}

func (s *lineState) parseList(list *List, parent *dictionary.Attribute, depth int, anchor *Pair) (token.Token, *Pair, error) {
	s.pos = token.SkipSpace(s.line, s.pos)
	if s.atEnd() {
		return token.EOL, anchor, nil
	}

	for {
		if depth > 0 && s.line[s.pos] == '}' {
			return token.RCBrace, anchor, nil
		}

		var err error
		anchor, err = s.parseRecord(list, parent, depth, anchor)
		if err != nil {
			return token.Invalid, nil, err
		}

		s.pos = token.SkipSpace(s.line, s.pos)
		switch {
		case s.atEnd():
			return token.EOL, anchor, nil
		case depth > 0 && s.line[s.pos] == '}':
			return token.RCBrace, anchor, nil
		case s.line[s.pos] != ',':
			return token.Invalid, nil, &ParseError{
				Offset: s.pos,
				Err:    fmt.Errorf("%w, got '%c' at offset %d", ErrExpectedComma, s.line[s.pos], s.pos),
			}
		}

		s.pos = token.SkipSpace(s.line, s.pos+1)
		if s.atEnd() {
			return token.Comma, anchor, nil
		}
	}
}

// parseRecord parses "name op value" at the cursor and returns the new anchor.
func (s *lineState) parseRecord(list *List, parent *dictionary.Attribute, depth int, anchor *Pair) (*Pair, error) {
	start := s.pos
	relative := s.line[s.pos] == '.'
	if relative {
		if anchor == nil {
			return nil, &ParseError{Offset: start, Err: ErrNoRelativeAnchor}
		}
		s.pos++
	}

	nameStart := s.pos
	name, next := token.ScanName(s.line, s.pos, token.NameTerminators)
	if len(name) >= dictionary.MaxNameLength {
		return nil, &ParseError{Offset: nameStart, Err: ErrNameTooLong}
	}
	if name == "" {
		return nil, &ParseError{Offset: nameStart, Err: fmt.Errorf("%w: missing attribute name", ErrUnknownAttribute)}
	}

	target := list
	if relative {
		target = anchor.Children()
		parent = anchor.Attr
	}

	attr, err := s.resolve(parent, name, relative)
	if err != nil {
		var oidErr *dictionary.OIDError
		offset := nameStart
		if errors.As(err, &oidErr) {
			offset += oidErr.Offset
		}
		return nil, &ParseError{Offset: offset, Err: fmt.Errorf("%w: %w", ErrUnknownAttribute, err)}
	}
	s.pos = next

	opPos := token.SkipSpace(s.line, s.pos)
	op, _, next, err := token.Next(s.line, s.pos)
	if err != nil || !op.IsOperator() {
		return nil, &ParseError{Offset: opPos, Err: ErrExpectingOperator}
	}
	s.pos = next

	var vp *Pair
	if attr.IsLeaf() {
		vp, err = s.parseValue(attr, op)
	} else {
		vp, err = s.parseGroup(attr, op, depth)
	}
	if err != nil {
		return nil, err
	}

	target.Append(vp)

	if !attr.IsLeaf() {
		return vp, nil
	}
	if anchor != nil && vp != anchor && !relative {
		return nil, nil
	}
	return anchor, nil
}

// resolve finds the attribute for name below parent. Relative names must
// resolve among the children of the anchor; other names fall back to the
// internal dictionary and then to an unknown attribute.
func (s *lineState) resolve(parent *dictionary.Attribute, name string, relative bool) (*dictionary.Attribute, error) {
	if relative {
		return parent.Resolve(name)
	}

	if attr, err := resolveName(s.parser.dict, s.parser.internal, parent, name); err == nil {
		return attr, nil
	}
	return dictionary.UnknownFromOID(parent, name)
}

func (s *lineState) parseGroup(attr *dictionary.Attribute, op token.Token, depth int) (*Pair, error) {
	s.pos = token.SkipSpace(s.line, s.pos)
	if s.pos >= len(s.line) || s.line[s.pos] != '{' {
		return nil, &ParseError{Offset: s.pos, Err: fmt.Errorf("%w: %s", ErrGroupStart, attr.Name)}
	}
	if depth+1 > s.parser.maxDepth {
		return nil, &ParseError{Offset: s.pos, Err: ErrTooDeep}
	}
	s.pos++

	vp := New(attr, op)
	last, _, err := s.parseList(vp.Children(), attr, depth+1, nil)
	if err != nil {
		return nil, err
	}

	s.pos = token.SkipSpace(s.line, s.pos)
	if last != token.RCBrace || s.pos >= len(s.line) || s.line[s.pos] != '}' {
		return nil, &ParseError{Offset: s.pos, Err: ErrUnterminatedGroup}
	}
	s.pos++

	return vp, nil
}

func (s *lineState) parseValue(attr *dictionary.Attribute, op token.Token) (*Pair, error) {
	valuePos := token.SkipSpace(s.line, s.pos)
	quote, text, next, err := token.Next(s.line, s.pos)
	if err != nil {
		return nil, &ParseError{Offset: valuePos, Err: err}
	}
	if quote == token.EOL || quote == token.Hash {
		return nil, &ParseError{Offset: valuePos, Err: ErrNoValue}
	}
	if !quote.IsQuote() {
		return nil, &ParseError{Offset: valuePos, Err: fmt.Errorf("%w in %s", ErrExpectedValue, attr.Name)}
	}
	s.pos = next

	vp := New(attr, op)
	xlat := quote == token.DoubleQuoted && strings.Contains(text, "%{")

	switch vp.Op {
	case token.OpCmpTrue, token.OpCmpFalse:
		return vp, nil

	case token.OpRegEq, token.OpRegNE:
		if xlat {
			return vp, MarkXlat(vp, text)
		}
		box, err := value.String(text)
		if err != nil {
			return nil, &ParseError{Offset: valuePos, Err: fmt.Errorf("failed to parse value for %s: %w", attr.Name, err)}
		}
		vp.Value = &Scalar{Box: box}
		return vp, nil
	}

	if xlat {
		return vp, MarkXlat(vp, text)
	}

	if attr.Unknown && !hasHexPrefix(text) {
		return nil, &ParseError{
			Offset: valuePos,
			Err:    fmt.Errorf("%w %q requires a hex string, not %q", ErrUnknownAttribute, attr.OIDString(), text),
		}
	}

	box, err := value.Parse(attr, token.Unescape(quote, text))
	if err != nil {
		return nil, &ParseError{Offset: valuePos, Err: fmt.Errorf("failed to parse value for %s: %w", attr.Name, err)}
	}
	vp.Value = &Scalar{Box: box}

	return vp, nil
}
