package expr

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
)

type token struct {
	kind tokenKind
	text string
	pos  int // 1-based column in the source
}

var superscripts = map[rune]rune{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	'⁻': '-', '⁺': '+',
}

var operatorAliases = map[rune]string{
	'·': "*", '×': "*", '⋅': "*", '÷': "/", '−': "-",
}

// lex splits src into tokens. Superscript runs become "^" followed by the
// plain exponent, so "m²" reads as "m^2".
func lex(src string) ([]token, error) {
	var toks []token
	col := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		col++
		switch {
		case unicode.IsSpace(r):
			i += size

		case isDigit(r) || (r == '.' && i+1 < len(src) && isDigit(rune(src[i+1]))):
			n := scanNumber(src[i:])
			toks = append(toks, token{kind: tokNumber, text: src[i : i+n], pos: col})
			col += utf8.RuneCountInString(src[i:i+n]) - 1
			i += n

		case isIdentRune(r):
			start, startCol := i, col
			i += size
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				if !isIdentRune(r) {
					break
				}
				i += size
				col++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: startCol})

		case superscripts[r] != 0:
			startCol := col
			var b strings.Builder
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				plain, ok := superscripts[r]
				if !ok {
					break
				}
				b.WriteRune(plain)
				i += size
				col++
			}
			col--
			toks = append(toks, token{kind: tokOp, text: "^", pos: startCol})
			exp := b.String()
			if sign := exp[0]; sign == '-' || sign == '+' {
				toks = append(toks, token{kind: tokOp, text: string(sign), pos: startCol})
				exp = exp[1:]
			}
			if exp == "" {
				return nil, &SyntaxError{Pos: startCol, Msg: "superscript sign without digits"}
			}
			toks = append(toks, token{kind: tokNumber, text: exp, pos: startCol})

		case strings.ContainsRune("+-*/^()", r):
			toks = append(toks, token{kind: tokOp, text: string(r), pos: col})
			i += size

		case operatorAliases[r] != "":
			toks = append(toks, token{kind: tokOp, text: operatorAliases[r], pos: col})
			i += size

		default:
			return nil, &SyntaxError{Pos: col, Msg: "unexpected character " + strconv.QuoteRune(r)}
		}
	}
	return append(toks, token{kind: tokEOF, pos: col + 1}), nil
}

// scanNumber returns the length of the float literal at the start of s.
// An exponent marker only counts when digits follow it.
func scanNumber(s string) int {
	i := 0
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(rune(s[i])) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(rune(s[j])) {
			for j < len(s) && isDigit(rune(s[j])) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '°'
}
