package patcher

import (
	"regexp"
	"strings"
)

// OutputName is the fixed destination for the patched Makefile, relative to
// the current working directory.
const OutputName = "Makefile.ci"

const (
	guardMarker   = "METACHARACTERS"
	guardEndKw    = "endif"
	errorPhrase   = "cowardly refusing to build"
	quotedInvoker = `python -c "`
)

// pythonInvocationRegex captures the inline code argument of a `python -c`
// call, through the end of the line.
var pythonInvocationRegex = regexp.MustCompile(`python -c (.+)$`)

// Stats counts what one transform pass changed.
type Stats struct {
	GuardLinesDropped int
	ErrorLinesDropped int
	InvocationsQuoted int
}

// isGuardStart reports whether a line opens the path metacharacter check
// block that the official Makefile aborts CI builds with.
func isGuardStart(line string) bool {
	return strings.Contains(line, guardMarker)
}

// isGuardEnd reports whether a line closes the check block.
func isGuardEnd(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), guardEndKw)
}

func isErrorLine(line string) bool {
	return strings.Contains(line, errorPhrase)
}

// quotePythonInvocation wraps the inline code of a `python -c` call in double
// quotes. Lines without an invocation, and invocations whose code already
// starts with a quote character, come back unchanged.
func quotePythonInvocation(line string) (string, bool) {
	loc := pythonInvocationRegex.FindStringSubmatchIndex(line)
	if loc == nil {
		return line, false
	}
	code := strings.TrimSpace(line[loc[2]:loc[3]])
	if strings.HasPrefix(code, `"`) || strings.HasPrefix(code, "'") {
		return line, false
	}
	// Splice by index instead of regex replacement: Makefile code arguments
	// routinely contain `$(...)`, which replacement templates would expand.
	return line[:loc[0]] + quotedInvoker + code + `"`, true
}

// Transform applies the CI patches to a Makefile in one forward pass:
// the metacharacter guard block is dropped wholesale, lines erroring out
// with "cowardly refusing to build" are dropped, and unquoted `python -c`
// invocations get their code argument wrapped in double quotes.
//
// Guard blocks do not nest; the first trimmed line starting with "endif"
// closes the block. An unterminated block drops every remaining line.
func Transform(lines []string) ([]string, Stats) {
	out := make([]string, 0, len(lines))
	var stats Stats

	insideGuard := false
	for _, line := range lines {
		if insideGuard {
			if isGuardEnd(line) {
				insideGuard = false
			}
			stats.GuardLinesDropped++
			continue
		}
		if isGuardStart(line) {
			insideGuard = true
			stats.GuardLinesDropped++
			continue
		}
		if isErrorLine(line) {
			stats.ErrorLinesDropped++
			continue
		}
		line, quoted := quotePythonInvocation(line)
		if quoted {
			stats.InvocationsQuoted++
		}
		out = append(out, line)
	}
	return out, stats
}
