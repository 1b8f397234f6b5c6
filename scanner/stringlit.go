package scanner

// scanBraceEscape handles `{{` / `}}` inside a format string. A lone
// unmatched brace is left for the grammar to see as an interpolation
// opener/closer; this function aborts (and any advance it made is
// discarded by the host) rather than emitting anything.
func (s *Scanner) scanBraceEscape(l Lexer, valid ValidSymbols, errorRecovery bool) (Symbol, bool) {
	if !valid[ESCAPE_INTERPOLATION] || errorRecovery {
		return 0, false
	}
	d, ok := s.topDelimiter()
	if !ok {
		return 0, false
	}
	la := l.Lookahead()
	if la != '{' && la != '}' {
		return 0, false
	}
	if !d.isFormat() {
		return 0, false
	}

	l.MarkEnd()
	isLeftBrace := la == '{'
	advance(l)
	next := l.Lookahead()
	if (next == '{' && isLeftBrace) || (next == '}' && !isLeftBrace) {
		advance(l)
		l.MarkEnd()
		return ESCAPE_INTERPOLATION, true
	}
	return 0, false
}

// scanStringContent walks the body of the innermost open string literal one
// content run at a time. It stops at a brace in a format string, an
// escape the grammar must see, the closing quote, or an unescaped newline in
// a non-triple string.
func (s *Scanner) scanStringContent(l Lexer, valid ValidSymbols, errorRecovery bool) (Symbol, bool) {
	if !valid[STRING_CONTENT] || errorRecovery {
		return 0, false
	}
	d, ok := s.topDelimiter()
	if !ok {
		return 0, false
	}
	endChar := d.endCharacter()
	hasContent := false

	for {
		la := l.Lookahead()
		if la == 0 {
			return 0, false
		}

		if (la == '{' || la == '}') && d.isFormat() {
			l.MarkEnd()
			return STRING_CONTENT, hasContent
		}

		switch {
		case la == '\\':
			if d.isRaw() {
				advance(l) // the backslash
				if l.Lookahead() == endChar || l.Lookahead() == '\\' {
					advance(l)
				}
				if l.Lookahead() == '\r' {
					advance(l)
					if l.Lookahead() == '\n' {
						advance(l)
					}
				} else if l.Lookahead() == '\n' {
					advance(l)
				}
				continue
			}
			if d.isBytes() {
				l.MarkEnd()
				advance(l) // the backslash
				if next := l.Lookahead(); next == 'N' || next == 'u' || next == 'U' {
					advance(l) // \N, \u, \U are not escapes in bytes strings
				} else {
					return STRING_CONTENT, hasContent
				}
			} else {
				l.MarkEnd()
				return STRING_CONTENT, hasContent
			}

		case la == endChar:
			if d.isTriple() {
				l.MarkEnd()
				advance(l)
				if l.Lookahead() == endChar {
					advance(l)
					if l.Lookahead() == endChar {
						if hasContent {
							return STRING_CONTENT, true
						}
						advance(l)
						l.MarkEnd()
						s.popDelimiter()
						return STRING_END, true
					}
					l.MarkEnd()
					return STRING_CONTENT, true
				}
				l.MarkEnd()
				return STRING_CONTENT, true
			}
			if !hasContent {
				advance(l)
				s.popDelimiter()
			}
			l.MarkEnd()
			if hasContent {
				return STRING_CONTENT, true
			}
			return STRING_END, true

		case la == '\n' && hasContent && !d.isTriple():
			return 0, false
		}

		advance(l)
		hasContent = true
	}
}

// consumeOpeningQuote consumes the quote character(s) opening a string,
// completing a partially-built Delimiter (prefix flags already set by the
// caller). Reports false, without consuming anything, if lookahead isn't a
// recognized quote character.
func consumeOpeningQuote(l Lexer, d *Delimiter) bool {
	q := l.Lookahead()
	if q != '\'' && q != '"' {
		return false
	}
	d.setEndCharacter(q)
	advance(l)
	l.MarkEnd()
	if l.Lookahead() == q {
		advance(l)
		if l.Lookahead() == q {
			advance(l)
			l.MarkEnd()
			d.setTriple()
		}
	}
	return true
}

// scanStringStart parses an optional run of prefix letters ({f,F,r,R,b,B,
// u,U}) followed by an opening quote, pushing a new Delimiter and
// emitting STRING_START on success. Unprefixed backticks are left alone;
// they're grammar-level glob syntax, not scanner strings.
func (s *Scanner) scanStringStart(l Lexer, valid ValidSymbols, firstCommentIndent int) (Symbol, bool) {
	if firstCommentIndent != -1 || !valid[STRING_START] {
		return 0, false
	}

	var d Delimiter
loop:
	for {
		switch l.Lookahead() {
		case 'f', 'F':
			d.setFormat()
		case 'r', 'R':
			d.setRaw()
		case 'b', 'B':
			d.setBytes()
		case 'u', 'U':
			// 'u'/'U' marks a plain unicode string; no flag to set.
		default:
			break loop
		}
		advance(l)
	}

	if l.Lookahead() == '`' {
		return 0, false
	}

	if consumeOpeningQuote(l, &d) && d.endCharacter() != 0 {
		s.pushDelimiter(d)
		return STRING_START, true
	}
	return 0, false
}

// scanPathPrefix recognizes a bare path-string prefix: p|P optionally
// followed by f|F|r|R, immediately before a quote. Must run
// before scanStringStart so that e.g. "p" or "pf" isn't swallowed as a
// plain identifier lead-in.
func scanPathPrefix(l Lexer, valid ValidSymbols, firstCommentIndent int) (Symbol, bool) {
	if firstCommentIndent != -1 || !valid[PATH_PREFIX] {
		return 0, false
	}
	la := l.Lookahead()
	if la != 'p' && la != 'P' {
		return 0, false
	}
	advance(l)

	if q := l.Lookahead(); q == '\'' || q == '"' {
		l.MarkEnd()
		return PATH_PREFIX, true
	}
	if next := l.Lookahead(); next == 'f' || next == 'F' || next == 'r' || next == 'R' {
		advance(l)
		if q := l.Lookahead(); q == '\'' || q == '"' {
			l.MarkEnd()
			return PATH_PREFIX, true
		}
	}
	return 0, false
}
