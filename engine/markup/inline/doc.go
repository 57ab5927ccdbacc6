/*
Package inline coalesces runs of inline text.

Serializing an inline or mixed slot element by element yields a sequence of
pieces, each of which is either an output node or a raw text fragment.
Before emission, adjacent text fragments are merged into maximal runs, and
every run has its character entity references decoded exactly once. Decoding
must not happen before a run is complete: an entity may be split across
fragment boundaries ("…&" followed by "amp;…").

Joining lines of inline content is a variant of the same operation: lines are
interspersed with either a line break or a single space and then coalesced
without decoding, as every line has already been decoded.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rotext.inline'.
func tracer() tracing.Trace {
	return tracing.Select("rotext.inline")
}
