package scanner

// Scanner holds the persistent state threaded between Scan calls: the
// open-indent-width stack, the open-string-delimiter stack, and the
// inside-format-string flag. It is created empty, mutated only by Scan, and
// serialized/deserialized whole across the host's speculative reparses,
// mirroring how go-rst's Scanner keeps an indents []int stack alongside its
// token-peeking state.
type Scanner struct {
	indents       []int
	delimiters    []Delimiter
	insideFString bool
}

// New returns a Scanner in its initial state: indent stack = [0], no open
// delimiters, not inside a format string.
func New() *Scanner {
	s := &Scanner{}
	s.reset()
	return s
}

func (s *Scanner) reset() {
	s.indents = append(s.indents[:0], 0)
	s.delimiters = s.delimiters[:0]
	s.insideFString = false
}

// currentIndent returns the width of the innermost open indentation block.
func (s *Scanner) currentIndent() int {
	return s.indents[len(s.indents)-1]
}

func (s *Scanner) pushIndent(width int) {
	s.indents = append(s.indents, width)
}

func (s *Scanner) popIndent() {
	s.indents = s.indents[:len(s.indents)-1]
}

// topDelimiter returns the innermost open string delimiter and true, or the
// zero Delimiter and false if no string is currently open.
func (s *Scanner) topDelimiter() (Delimiter, bool) {
	if len(s.delimiters) == 0 {
		return Delimiter{}, false
	}
	return s.delimiters[len(s.delimiters)-1], true
}

func (s *Scanner) pushDelimiter(d Delimiter) {
	s.delimiters = append(s.delimiters, d)
	s.insideFString = d.isFormat()
}

func (s *Scanner) popDelimiter() {
	s.delimiters = s.delimiters[:len(s.delimiters)-1]
	s.insideFString = false
}
