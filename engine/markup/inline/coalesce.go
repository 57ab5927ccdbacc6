package inline

import (
	"github.com/npillmayer/cords"
	"github.com/umajho/rotext-sub001/core"
	"github.com/umajho/rotext-sub001/core/parameters"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Mode controls how a finished text run is finalized.
type Mode struct {
	Decode    bool // decode character entity references
	Normalize bool // NFC-normalize the run
}

// ModeFrom reads the coalescing mode from rendering registers.
// A nil regs yields the default mode.
func ModeFrom(regs *parameters.Registers) Mode {
	if regs == nil {
		regs = parameters.NewRegisters()
	}
	return Mode{
		Decode:    regs.B(parameters.P_DECODE),
		Normalize: regs.B(parameters.P_NORMALIZE),
	}
}

// Coalesce merges adjacent text fragments of pieces into maximal runs.
// If decode is set, every run has its character entities decoded once the
// run is complete. Node pieces are passed through unchanged and in order.
// The result is never longer than pieces.
func Coalesce[T any](pieces []Piece[T], decode bool) []Piece[T] {
	return CoalesceMode(pieces, Mode{Decode: decode})
}

// CoalesceMode is Coalesce with full control over run finalization.
func CoalesceMode[T any](pieces []Piece[T], mode Mode) []Piece[T] {
	out := make([]Piece[T], 0, len(pieces))
	var run *textRun
	for _, p := range pieces {
		if p.isText {
			if run == nil {
				run = newTextRun()
			}
			if err := run.add(p.text); err != nil {
				// runs are appended to only before they are finalized
				panic(err)
			}
			continue
		}
		if run != nil {
			if s, ok := run.finalize(mode); ok {
				out = append(out, TextPiece[T](s))
			}
			run = nil
		}
		out = append(out, p)
	}
	if run != nil {
		if s, ok := run.finalize(mode); ok {
			out = append(out, TextPiece[T](s))
		}
	}
	tracer().Debugf("coalesced %d pieces into %d", len(pieces), len(out))
	return out
}

// --- Text runs -------------------------------------------------------------

// textRun collects the fragments of a run of text as leaves of a cord.
// A run is finalized at most once; it does not accept fragments afterwards.
type textRun struct {
	b     *cords.Builder
	count int
	done  bool
}

func newTextRun() *textRun {
	return &textRun{b: cords.NewBuilder()}
}

// add appends a fragment to the run. Empty fragments are skipped.
func (r *textRun) add(s string) error {
	if r.done {
		return core.Error(core.EINTERNAL, "text run already finalized")
	}
	if s == "" {
		return nil
	}
	if err := r.b.Append(fragment(s)); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot append text fragment")
	}
	r.count++
	return nil
}

// finalize concatenates the fragments of the run and applies mode.
// A run without any characters yields false.
func (r *textRun) finalize(mode Mode) (string, bool) {
	r.done = true
	if r.count == 0 {
		return "", false
	}
	text := r.b.Cord()
	if text.IsVoid() {
		return "", false
	}
	s := text.String()
	if mode.Decode {
		s = html.UnescapeString(s)
	}
	if mode.Normalize {
		s = norm.NFC.String(s)
	}
	return s, true
}

// fragment is the leaf type of text runs.
type fragment string

// Weight of a fragment is its string length in bytes.
func (f fragment) Weight() uint64 {
	return uint64(len(f))
}

func (f fragment) String() string {
	return string(f)
}

// Split splits a fragment at position i, resulting in 2 new fragments.
func (f fragment) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return f[:i], f[i:]
}

// Substring returns a segment of the fragment.
func (f fragment) Substring(i, j uint64) []byte {
	return []byte(f[i:j])
}

var _ cords.Leaf = fragment("")
