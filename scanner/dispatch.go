package scanner

// Scan is the external scanner's single entry point, called by the
// host parser once per token whenever the generated lexer can't resolve
// the next token on its own. It tries, in order: brace-escape inside a
// format string, a run of string content, whitespace/comment/indentation
// layout, the &/| operator disambiguation, then bare-subprocess/macro/
// path-prefix/string-start detection. The first step that both applies
// and is requested by valid produces the token; everything else leaves
// the lexer untouched and reports false so the host's generated lexer can
// take over.
//
// The returned Symbol is only meaningful when ok is true; callers bind
// it to whatever result-symbol mechanism their host lexer binding uses.
func Scan(s *Scanner, l Lexer, valid ValidSymbols) (Symbol, bool) {
	errorRecovery := valid.errorRecoveryMode()
	withinBrackets := valid.withinBrackets()

	// A brace in a format string is decided by scanBraceEscape alone: a lone
	// brace ends the call with no token.
	if valid[ESCAPE_INTERPOLATION] && !errorRecovery {
		if d, ok := s.topDelimiter(); ok && d.isFormat() {
			if la := l.Lookahead(); la == '{' || la == '}' {
				return s.scanBraceEscape(l, valid, errorRecovery)
			}
		}
	}

	if sym, ok := s.scanStringContent(l, valid, errorRecovery); ok {
		return sym, true
	}

	layout := scanLayout(l, valid)
	if layout.malformed {
		return 0, false
	}

	if sym, ok := s.layoutToken(layout, l.Lookahead(), valid, errorRecovery); ok {
		return sym, true
	}

	if sym, ok := scanOperator(l, valid); ok {
		return sym, true
	}

	looksLikeString := l.Lookahead() == '"' || l.Lookahead() == '\''
	checkSubprocess := (valid[SUBPROCESS_START] || valid[SUBPROCESS_MACRO_START] || valid[BLOCK_MACRO_START]) &&
		!withinBrackets && !errorRecovery &&
		layout.firstCommentIndent == -1 &&
		l.Lookahead() != '#' &&
		!looksLikeString

	if checkSubprocess {
		result, delim := detectSubprocessLine(l)

		switch {
		case result == detectBlockMacro && valid[BLOCK_MACRO_START]:
			l.MarkEnd()
			return BLOCK_MACRO_START, true

		case result == detectSubprocessMacro && valid[SUBPROCESS_MACRO_START]:
			l.MarkEnd()
			return SUBPROCESS_MACRO_START, true

		case result == detectSubprocess && valid[SUBPROCESS_START]:
			return SUBPROCESS_START, true

		case result == detectPathPrefix && valid[PATH_PREFIX]:
			l.MarkEnd()
			return PATH_PREFIX, true

		case result == detectString && valid[STRING_START]:
			if consumeOpeningQuote(l, &delim) && delim.endCharacter() != 0 {
				s.pushDelimiter(delim)
				return STRING_START, true
			}
		}
	}

	if sym, ok := scanPathPrefix(l, valid, layout.firstCommentIndent); ok {
		return sym, true
	}

	if sym, ok := s.scanStringStart(l, valid, layout.firstCommentIndent); ok {
		return sym, true
	}

	return 0, false
}
