package pair

import (
	"github.com/vitalvas/radpair/pkg/token"
)

// Move moves pairs from from into to according to each pair's own operator:
//
//	=   added only when to has no pair for the attribute
//	:=  replaces every pair for the attribute in to
//	+=  appended
//	^=  prepended
//
// Pairs with any other operator stay in from, in their original order. The
// Fall-Through attribute is never moved.
//
// op only decides where the appended pairs go: with token.OpPrepend they are
// placed before the existing contents of to, otherwise after them.
func Move(to, from *List, op token.Token) {
	if to == nil || from.Len() == 0 {
		return
	}

	var staged, prepend []*Pair
	kept := make([]*Pair, 0, len(from.pairs))

	for _, p := range from.pairs {
		if p.IsFallThrough() {
			kept = append(kept, p)
			continue
		}

		switch p.Op {
		case token.OpEq:
			if to.Find(p.Attr) != nil {
				kept = append(kept, p)
				continue
			}
			staged = append(staged, p)

		case token.OpSet:
			to.DeleteByAttr(p.Attr)
			staged = append(staged, p)

		case token.OpAdd:
			staged = append(staged, p)

		case token.OpPrepend:
			prepend = append([]*Pair{p}, prepend...)

		default:
			kept = append(kept, p)
		}
	}

	from.pairs = kept

	if op == token.OpPrepend {
		to.PrependList(&List{pairs: staged})
	}
	to.PrependList(&List{pairs: prepend})
	if op != token.OpPrepend {
		to.AppendList(&List{pairs: staged})
	}
}
