package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSubprocessLineKnownCommandAlone(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("ls\n"))
	assert.Equal(t, detectSubprocess, result)
}

func TestDetectSubprocessLineFlagSignal(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("grep -r foo\n"))
	assert.Equal(t, detectSubprocess, result)
}

func TestDetectSubprocessLinePythonAssignment(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("x = 1\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLinePythonCallParens(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("foo(1, 2)\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLinePythonKeyword(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("if x:\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLineExplicitDollarParenExcluded(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("$(cmd)\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLineExplicitBangBracketExcluded(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("![cmd]\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLinePythonListExcluded(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("[1, 2]\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLineLeadingPath(t *testing.T) {
	for _, src := range []string{"/usr/bin/ls\n", "./run.sh\n", "~/bin/go\n"} {
		result, _ := detectSubprocessLine(newFakeLexer(src))
		assert.Equal(t, detectSubprocess, result, src)
	}
}

func TestDetectSubprocessLineHelpExpressionExcluded(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("foo?\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLineCommaOnly(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer(",\n"))
	assert.Equal(t, detectSubprocess, result)
}

func TestDetectSubprocessLineSubprocessMacro(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("echo! hi\n"))
	assert.Equal(t, detectSubprocessMacro, result)
}

func TestDetectSubprocessLineBlockMacro(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("with! foo:\n"))
	assert.Equal(t, detectBlockMacro, result)
}

func TestDetectSubprocessLineStringPrefix(t *testing.T) {
	result, delim := detectSubprocessLine(newFakeLexer(`f"hi"` + "\n"))
	assert.Equal(t, detectString, result)
	assert.True(t, delim.isFormat())
}

func TestDetectSubprocessLinePathPrefixShortIdent(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer(`p"/tmp"` + "\n"))
	assert.Equal(t, detectPathPrefix, result)
}

// TestDetectSubprocessLineFlagEqualsChainRetained exercises a deliberately
// retained quirk: a flag's "=" never clears prev_was_flag, so a later "="
// in the same token (e.g. --key=value=extra) is also treated as shell syntax
// rather than a Python assignment. The documented decision is to replicate
// this rather than "fix" it.
func TestDetectSubprocessLineFlagEqualsChainRetained(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("mycommand --key=value=extra\n"))
	assert.Equal(t, detectSubprocess, result)
}

// TestDetectSubprocessLineDecoratorKnownCommand covers the "@modifier
// known_command" branch: a decorator-shaped line whose tail word is a
// recognized shell command is treated as a modified subprocess call.
func TestDetectSubprocessLineDecoratorKnownCommand(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("@modifier ls\n"))
	assert.Equal(t, detectSubprocess, result)
}

// TestDetectSubprocessLineDecoratorAmbiguousIsConservative covers a
// deliberately conservative case: "@ident <non-command-non-path-non-flag>"
// has no decisive signal, and the documented decision is to stay
// conservative and return detectNone rather than guess.
func TestDetectSubprocessLineDecoratorAmbiguousIsConservative(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("@modifier somefunc\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLineBareDecoratorIsExcluded(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("@property\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLinePipeSignal(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("cmd1 | cmd2\n"))
	assert.Equal(t, detectSubprocess, result)
}

func TestDetectSubprocessLineRedirectSignal(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("sometool > out.txt\n"))
	assert.Equal(t, detectSubprocess, result)
}

func TestDetectSubprocessLineComparisonIsPython(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("a == b\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLineSubscriptIsPython(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("arr[0]\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLineAttributeIsPython(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("obj.field\n"))
	assert.Equal(t, detectNone, result)
}

func TestDetectSubprocessLineEnvArgSignal(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("sometool $HOME\n"))
	assert.Equal(t, detectSubprocess, result)
}

func TestDetectSubprocessLineTrailingBackgroundAmpSignal(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("sometool &\n"))
	assert.Equal(t, detectSubprocess, result)
}

func TestDetectSubprocessLineUnknownBareIdentNoSignal(t *testing.T) {
	result, _ := detectSubprocessLine(newFakeLexer("frobnicate\n"))
	assert.Equal(t, detectNone, result)
}
