/*
Package list rebuilds nested lists from a flat sequence of list lines.

Every line carries a prefix of marker characters and its content. The prefix
encodes the nesting path of the line:

	#   ordered list item
	*   unordered list item
	;   description term
	:   description detail

Lines "#", "##", "##", "#" describe an ordered list of two items, where the
first item holds a nested ordered list of two items. Nesting is reconstructed
with an explicit stack of open list containers; depth changes are driven by
comparing the prefix of a line with the prefix of the line before.

Nested containers are linked into their parent container at creation time.
Only top-level containers are collected as results.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rotext.list'.
func tracer() tracing.Trace {
	return tracing.Select("rotext.list")
}
