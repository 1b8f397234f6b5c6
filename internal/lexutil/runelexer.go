package lexutil

// RuneLexer adapts an in-memory rune slice to the scanner.Lexer interface
// (github.com/xonshlang/tsxonsh/scanner), the way a real host parser adapts
// its own source buffer. It's the concrete cursor a standalone CLI driver
// uses in place of the host's TSLexer.
type RuneLexer struct {
	Input []rune
	Pos   int
	end   int
}

// NewRuneLexer returns a RuneLexer positioned at the start of src.
func NewRuneLexer(src []rune) *RuneLexer {
	return &RuneLexer{Input: src}
}

// Lookahead returns the next code point, or 0 at EOF.
func (r *RuneLexer) Lookahead() rune {
	if r.Pos >= len(r.Input) {
		return 0
	}
	return r.Input[r.Pos]
}

// Advance consumes the current Lookahead rune.
func (r *RuneLexer) Advance(skip bool) {
	if r.Pos < len(r.Input) {
		r.Pos++
	}
}

// MarkEnd records the current position as the end of the in-progress token.
func (r *RuneLexer) MarkEnd() { r.end = r.Pos }

// EOF reports whether the cursor has reached the end of input.
func (r *RuneLexer) EOF() bool { return r.Pos >= len(r.Input) }

// Commit applies the rewind contract a real tree-sitter host applies after
// a scan call returns: on success the cursor snaps to wherever MarkEnd last
// landed; on failure it snaps back to where the call started.
func (r *RuneLexer) Commit(start int, ok bool) {
	if ok {
		r.Pos = r.end
	} else {
		r.Pos = start
	}
}

// Text returns the runes between start and the last MarkEnd call, the span
// that would be attributed to whatever token was (or wasn't) just emitted.
func (r *RuneLexer) Text(start int) string {
	return string(r.Input[start:r.end])
}
