package pair

import (
	"io"
	"strings"

	"github.com/vitalvas/radpair/pkg/dictionary"
	"github.com/vitalvas/radpair/pkg/token"
	"github.com/vitalvas/radpair/pkg/value"
)

// String renders the pair in the text notation accepted by Parser.
func (p *Pair) String() string {
	var b strings.Builder
	writePair(&b, p, p.Attr.Dictionary().Root())
	return b.String()
}

// String renders the pairs separated by ", ".
func (l *List) String() string {
	var b strings.Builder
	writeList(&b, l, nil)
	return b.String()
}

// Fprint writes list to w as a single line.
func Fprint(w io.Writer, list *List) error {
	_, err := io.WriteString(w, list.String()+"\n")
	return err
}

func writeList(b *strings.Builder, l *List, parent *dictionary.Attribute) {
	for i, p := range l.pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		ctx := parent
		if ctx == nil {
			ctx = p.Attr.Dictionary().Root()
		}
		writePair(b, p, ctx)
	}
}

func writePair(b *strings.Builder, p *Pair, parent *dictionary.Attribute) {
	b.WriteString(displayName(p.Attr, parent))
	b.WriteByte(' ')
	b.WriteString(p.Op.String())
	b.WriteByte(' ')

	switch v := p.Value.(type) {
	case nil:
		b.WriteString("ANY")

	case *Group:
		if v.Children.Len() == 0 {
			b.WriteString("{ }")
			return
		}
		b.WriteString("{ ")
		writeList(b, &v.Children, p.Attr)
		b.WriteString(" }")

	case *Xlat:
		// Regular expressions built by Maker are Xlat values. Without "%{"
		// they parse back as a Scalar holding the same text, which prints
		// the same way.
		b.WriteString(verbatim(v.Source))

	case *Scalar:
		b.WriteString(formatScalar(p, v.Box))
	}
}

func formatScalar(p *Pair, box value.Box) string {
	if p.Op == token.OpRegEq || p.Op == token.OpRegNE {
		return verbatim(box.String())
	}

	if p.Attr.Unknown {
		return box.String()
	}

	if box.Type == dictionary.DataTypeString {
		s := box.String()
		switch {
		case strings.Contains(s, "%{"):
			return token.Quote(s, token.SingleQuoted)
		default:
			return token.Quote(s, token.DoubleQuoted)
		}
	}

	s := value.Format(p.Attr, box)
	if token.NeedsQuote(s) {
		return token.Quote(s, token.DoubleQuoted)
	}
	return s
}

// verbatim quotes s without escaping it. Expansions and regular expressions
// keep their escapes for whoever evaluates them.
func verbatim(s string) string {
	if hasBareQuote(s) {
		return "'" + s + "'"
	}
	return `"` + s + `"`
}

func hasBareQuote(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return true
		}
	}
	return false
}

// displayName returns a name for attr that resolves back to it below parent.
func displayName(attr, parent *dictionary.Attribute) string {
	if attr.Unknown {
		oid, ok := attr.RelativeOID(parent)
		if !ok {
			oid = attr.OIDString()
		}
		return dictionary.RawPrefix + oid
	}

	if found, err := parent.Resolve(attr.Name); err == nil && found == attr {
		return attr.Name
	}

	if path, ok := namePath(attr, parent); ok {
		return path
	}

	root := attr.Dictionary().Root()
	path, _ := namePath(attr, root)
	return attr.Dictionary().Name() + "." + path
}

func namePath(attr, ancestor *dictionary.Attribute) (string, bool) {
	var names []string
	for n := attr; n != nil; n = n.Parent {
		if n == ancestor {
			for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
				names[i], names[j] = names[j], names[i]
			}
			return strings.Join(names, "."), true
		}
		names = append(names, n.Name)
	}
	return "", false
}
