package scanner

// layoutResult carries what the whitespace/comment/continuation walk in
// scanLayout found, for the emission decision that follows it in Scan.
type layoutResult struct {
	foundNewline       bool
	indentLength       int
	firstCommentIndent int // -1 if no comment seen yet
	malformed          bool // stray backslash or other dead end: emit nothing, stop
}

// scanLayout consumes runs of spaces, tabs (8 columns), CR/FF, newlines,
// full-line comments, and backslash-newline continuations.
// A comment seen before any newline is NOT consumed; the caller must leave
// it for the grammar's own COMMENT rule (e.g. "foo = bar # comment").
//
// MarkEnd is recorded once, before any character is consumed, so that any
// NEWLINE/INDENT/DEDENT subsequently emitted is a zero-width synthetic token
// positioned at the call's starting offset rather than spanning the
// whitespace it walked past.
func scanLayout(l Lexer, valid ValidSymbols) layoutResult {
	l.MarkEnd()

	r := layoutResult{firstCommentIndent: -1}

	for {
		switch la := l.Lookahead(); {
		case la == '\n':
			r.foundNewline = true
			r.indentLength = 0
			skip(l)

		case la == ' ':
			r.indentLength++
			skip(l)

		case la == '\r' || la == '\f':
			r.indentLength = 0
			skip(l)

		case la == '\t':
			r.indentLength += 8
			skip(l)

		case la == '#' && (valid[INDENT] || valid[DEDENT] || valid[NEWLINE] || valid[EXCEPT]):
			if !r.foundNewline {
				r.malformed = true
				return r
			}
			if r.firstCommentIndent == -1 {
				r.firstCommentIndent = r.indentLength
			}
			for la := l.Lookahead(); la != 0 && la != '\n'; la = l.Lookahead() {
				skip(l)
			}
			skip(l) // the newline itself (or a no-op skip past EOF)
			r.indentLength = 0

		case la == '\\':
			skip(l)
			if l.Lookahead() == '\r' {
				skip(l)
			}
			if l.Lookahead() == '\n' || l.EOF() {
				skip(l)
			} else {
				r.malformed = true
				return r
			}

		case l.EOF():
			r.indentLength = 0
			r.foundNewline = true
			return r

		default:
			return r
		}
	}
}

// layoutToken decides whether the layout walk just performed should emit
// INDENT, DEDENT, or NEWLINE. At most one is emitted per Scan
// call; the host will call Scan again to drain further pending DEDENTs.
func (s *Scanner) layoutToken(r layoutResult, lookahead rune, valid ValidSymbols, errorRecovery bool) (Symbol, bool) {
	if !r.foundNewline {
		return 0, false
	}

	current := s.currentIndent()

	if valid[INDENT] && r.indentLength > current {
		s.pushIndent(r.indentLength)
		return INDENT, true
	}

	nextIsStringStart := lookahead == '"' || lookahead == '\'' || lookahead == '`'

	dedentEligible := valid[DEDENT] ||
		(!valid[NEWLINE] && !(valid[STRING_START] && nextIsStringStart) && !valid.withinBrackets())

	if dedentEligible && r.indentLength < current && !s.insideFString &&
		r.firstCommentIndent < current {
		s.popIndent()
		return DEDENT, true
	}

	if valid[NEWLINE] && !errorRecovery {
		return NEWLINE, true
	}

	return 0, false
}
