// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package lzokay

import "fmt"

// TokenKind is the kind of a decoded stream token.
type TokenKind uint8

// Stream token kinds.
const (
	// TokenLiteral copies Length bytes verbatim from the stream.
	TokenLiteral TokenKind = iota + 1
	// TokenMatch copies Length bytes starting Distance bytes behind the write cursor.
	TokenMatch
	// TokenEnd is the end marker.
	TokenEnd
)

// String returns the kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenMatch:
		return "match"
	case TokenEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Token is one logical unit of a decoded stream.
// Literals packed into the state bits of a match are reported as their own
// TokenLiteral, with InputPos at the first payload byte.
type Token struct {
	Kind      TokenKind
	Length    int // literal count or match length; 0 for TokenEnd
	Distance  int // match distance; 0 for other kinds
	InputPos  int // offset of the token's first byte in the compressed stream
	OutputPos int // write cursor before the token was applied
}

// String formats the token for dumps.
func (t Token) String() string {
	switch t.Kind {
	case TokenMatch:
		return fmt.Sprintf("@%d->%d match len=%d dist=%d", t.InputPos, t.OutputPos, t.Length, t.Distance)
	case TokenLiteral:
		return fmt.Sprintf("@%d->%d literal len=%d", t.InputPos, t.OutputPos, t.Length)
	default:
		return fmt.Sprintf("@%d->%d %s", t.InputPos, t.OutputPos, t.Kind)
	}
}

// Inspect decodes src like Decompress with output capacity outLen and calls
// visit for every token in stream order. visit may be nil.
// Tokens reported before a failure were fully applied.
func Inspect(src []byte, outLen int, visit func(Token)) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrOptionsRequired
	}

	if len(src) == 0 {
		return nil, newDecodeError(ErrInputOverrun, 0, 0)
	}

	return decompressExact(src, make([]byte, outLen), visit)
}
