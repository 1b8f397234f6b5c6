package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/renameio"

	"github.com/xonshlang/tsxonsh/internal/lexutil"
	"github.com/xonshlang/tsxonsh/scanner"
)

func main() {
	var (
		in      = os.Stdin
		out     = &lexutil.ErrWriter{Writer: os.Stdout}
		verbose bool
		record  string
	)

	flag.BoolVar(&verbose, "v", false, "enable verbose output")
	flag.StringVar(&record, "record", "", "atomically write the token dump to this file as well")
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("open error: %v", err)
		}
		defer f.Close()
		in = f
	}

	logOut := lexutil.PrefixWriter("> log: ", out)
	defer logOut.Close()
	log.SetOutput(logOut)
	log.SetFlags(0)

	src, err := io.ReadAll(in)
	if err != nil {
		log.Fatalf("read error: %v", err)
	}

	var dump lexutil.WriteBuffer
	dump.To = out
	dests := []io.Writer{&dump}

	if record != "" {
		pf, err := renameio.TempFile("", record)
		if err != nil {
			log.Fatalf("record error: %v", err)
		}
		defer func() {
			if err := pf.CloseAtomicallyReplace(); err != nil {
				log.Fatalf("record close error: %v", err)
			}
			pf.Cleanup()
		}()
		dests = append(dests, pf)
	}

	w := io.MultiWriter(dests...)

	n := walk([]rune(string(src)), w, verbose)
	dump.Flush()

	if verbose {
		fmt.Fprintf(logOut, "%d tokens\n", n)
	}
}

// drv tracks just enough of a host parser's state (whether we're at the
// start of a logical line, how many string literals are currently open, and
// whether we're inside a format-string interpolation expression) to decide
// which symbols to offer scanner.Scan at each position. It is a deliberately
// simplified stand-in for a real tree-sitter grammar: a standalone CLI
// driver has no parse tree to consult, so it infers context from the token
// stream the scanner itself has just produced. braceDepth is shared across
// the whole input rather than kept per open string, so a string literal
// nested inside another string's interpolation (e.g. f"{f'{x}'}") isn't
// modeled correctly; real grammars track this per nesting level.
type drv struct {
	atLineStart bool
	formatDepth []bool // one entry per open string literal; true if format
	braceDepth  int    // > 0 while inside a "{expr}" interpolation body
}

func newDrv() *drv {
	return &drv{atLineStart: true}
}

func (d *drv) insideStringContent() bool {
	return len(d.formatDepth) > 0 && d.braceDepth == 0
}

func (d *drv) validSymbols() scanner.ValidSymbols {
	var v scanner.ValidSymbols

	if d.insideStringContent() {
		v[scanner.STRING_CONTENT] = true
		if d.formatDepth[len(d.formatDepth)-1] {
			v[scanner.ESCAPE_INTERPOLATION] = true
		}
		return v
	}

	v[scanner.NEWLINE] = true
	v[scanner.STRING_START] = true
	v[scanner.PATH_PREFIX] = true
	v[scanner.LOGICAL_AND] = true
	v[scanner.LOGICAL_OR] = true
	v[scanner.BACKGROUND_AMP] = true
	v[scanner.KEYWORD_AND] = true
	v[scanner.KEYWORD_OR] = true

	if d.atLineStart && len(d.formatDepth) == 0 {
		v[scanner.INDENT] = true
		v[scanner.DEDENT] = true
		v[scanner.SUBPROCESS_START] = true
		v[scanner.SUBPROCESS_MACRO_START] = true
		v[scanner.BLOCK_MACRO_START] = true
	}

	return v
}

// observe updates driver state from one emitted token, inferring whether a
// string literal opened in format mode from its captured text (an "f"/"F"
// prefix letter) since the driver has no access to the scanner's internal
// Delimiter flags; only a real grammar wiring carries that out of band.
func (d *drv) observe(sym scanner.Symbol, text string) {
	switch sym {
	case scanner.STRING_START:
		isFormat := strings.ContainsAny(text[:len(text)-1], "fF")
		d.formatDepth = append(d.formatDepth, isFormat)
		d.atLineStart = false
	case scanner.STRING_END:
		if n := len(d.formatDepth); n > 0 {
			d.formatDepth = d.formatDepth[:n-1]
		}
		d.atLineStart = false
	case scanner.NEWLINE, scanner.INDENT, scanner.DEDENT:
		d.atLineStart = true
	default:
		d.atLineStart = false
	}
}

// observeGrammarRune updates driver state for a rune the scanner declined
// to handle, which walk falls back to consuming directly. Its only job is
// tracking interpolation-brace nesting while inside a format string, so
// insideStringContent turns back on once the matching "}" is seen.
func (d *drv) observeGrammarRune(c rune) {
	if len(d.formatDepth) == 0 {
		if c == '\n' {
			d.atLineStart = true
		}
		return
	}
	switch c {
	case '{':
		d.braceDepth++
	case '}':
		if d.braceDepth > 0 {
			d.braceDepth--
		}
	}
}

// walk drives scanner.Scan over src from start to finish, printing one line
// per token (and, when verbose, one per grammar-level rune the scanner
// declines). It returns the number of scanner-emitted tokens seen.
func walk(src []rune, w io.Writer, verbose bool) int {
	s := scanner.New()
	l := lexutil.NewRuneLexer(src)
	d := newDrv()

	count := 0
	// Layout tokens are zero-width, so the cursor has not moved after one;
	// NEWLINE is not offered again at that position, as a grammar would not
	// ask for it before consuming something.
	noNewlineAt := -1
	for !l.EOF() {
		start := l.Pos
		valid := d.validSymbols()
		if start == noNewlineAt {
			valid[scanner.NEWLINE] = false
		}

		sym, ok := scanner.Scan(s, l, valid)
		l.Commit(start, ok)

		if ok {
			count++
			text := l.Text(start)
			d.observe(sym, text)
			switch sym {
			case scanner.NEWLINE, scanner.INDENT, scanner.DEDENT:
				noNewlineAt = start
			}
			fmt.Fprintf(w, "%v[%d..%d] %q\n", sym, start, l.Pos, text)
			continue
		}

		// The scanner declined: a real grammar's own generated lexer would
		// take the next token itself. We don't have one, so fall back to
		// consuming one rune at a time, purely to keep the walk moving and
		// to show what the scanner was asked to look past.
		c := l.Lookahead()
		l.Advance(false)
		if verbose {
			fmt.Fprintf(w, "(grammar)[%d..%d] %q\n", start, l.Pos, string(c))
		}
		d.observeGrammarRune(c)
	}

	return count
}
