package token

import "fmt"

// Token identifies a lexical token of the attribute-value pair notation.
type Token int

const (
	Invalid Token = iota
	EOL
	LCBrace   // {
	RCBrace   // }
	LBrace    // (
	RBrace    // )
	Comma     // ,
	Semicolon // ;
	Hash      // #

	OpAdd      // +=
	OpSub      // -=
	OpPrepend  // ^=
	OpSet      // :=
	OpEq       // =
	OpNE       // !=
	OpGE       // >=
	OpGT       // >
	OpLE       // <=
	OpLT       // <
	OpRegEq    // =~
	OpRegNE    // !~
	OpCmpTrue  // =*
	OpCmpFalse // !*
	OpCmpEq    // ==

	BareWord
	DoubleQuoted
	SingleQuoted
	BackQuoted
)

// Operators occupy the contiguous range [OpEqStart, OpEqEnd].
const (
	OpEqStart = OpAdd
	OpEqEnd   = OpCmpEq
)

var tokenNames = map[Token]string{
	Invalid:      "INVALID",
	EOL:          "EOL",
	LCBrace:      "{",
	RCBrace:      "}",
	LBrace:       "(",
	RBrace:       ")",
	Comma:        ",",
	Semicolon:    ";",
	Hash:         "#",
	OpAdd:        "+=",
	OpSub:        "-=",
	OpPrepend:    "^=",
	OpSet:        ":=",
	OpEq:         "=",
	OpNE:         "!=",
	OpGE:         ">=",
	OpGT:         ">",
	OpLE:         "<=",
	OpLT:         "<",
	OpRegEq:      "=~",
	OpRegNE:      "!~",
	OpCmpTrue:    "=*",
	OpCmpFalse:   "!*",
	OpCmpEq:      "==",
	BareWord:     "bare word",
	DoubleQuoted: "double-quoted string",
	SingleQuoted: "single-quoted string",
	BackQuoted:   "back-quoted string",
}

// String returns the lexeme of punctuation and operators, or a descriptive name.
func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Token(%d)", int(t))
}

// IsOperator reports whether t is an assignment or comparison operator.
func (t Token) IsOperator() bool {
	return t >= OpEqStart && t <= OpEqEnd
}

// IsQuote reports whether t is a string token of any quoting kind.
func (t Token) IsQuote() bool {
	return t >= BareWord && t <= BackQuoted
}

// ParseOperator returns the operator for its lexeme, e.g. ":=".
func ParseOperator(s string) (Token, bool) {
	for _, e := range table {
		if e.text == s && e.tok.IsOperator() {
			return e.tok, true
		}
	}
	return Invalid, false
}
