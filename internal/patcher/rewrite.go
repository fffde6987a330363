// Package patcher inserts a result type assertion after API call assignments
// in TypeScript sources. It holds the rewrite rule itself and the per-file
// read, rewrite and write pipeline built on top of it.
package patcher

import (
	"regexp"
	"strings"
)

// DefaultTypeAssertion is appended after each matched call expression.
const DefaultTypeAssertion = " as { success: boolean; error?: string }"

// callPattern matches `const result = await fooAPI(...)` followed by trailing
// whitespace through a line break. Group 1 is the call, group 2 the whitespace.
// Only one level of nested parentheses is recognised inside the argument list.
var callPattern = regexp.MustCompile(`(const result = await \w+API\([^)]*(?:\([^)]*\)[^)]*)*\))(\s*\n)`)

// Rewrite inserts suffix after every matched call expression that does not
// already carry it. It returns the new content and the number of insertions.
func Rewrite(content, suffix string) (string, int) {
	matches := callPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content) + len(matches)*len(suffix))

	inserted := 0
	last := 0
	for _, m := range matches {
		call := content[m[2]:m[3]]
		whitespace := content[m[4]:m[5]]

		b.WriteString(content[last:m[0]])
		if suffix != "" && strings.Contains(call, suffix) {
			b.WriteString(content[m[0]:m[1]])
		} else {
			b.WriteString(call)
			b.WriteString(suffix)
			b.WriteString(whitespace)
			inserted++
		}
		last = m[1]
	}
	b.WriteString(content[last:])

	return b.String(), inserted
}

// Pending reports how many call expressions in content still need suffix.
func Pending(content, suffix string) int {
	_, n := Rewrite(content, suffix)
	return n
}
