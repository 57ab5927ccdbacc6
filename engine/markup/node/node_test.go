package node

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umajho/rotext-sub001/core"
	"github.com/umajho/rotext-sub001/core/option"
)

func TestHeadingLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotext.markup")
	defer teardown()
	//
	for level := 1; level <= 6; level++ {
		h, err := NewHeading(level, Text("x"))
		require.NoError(t, err)
		assert.Equal(t, level, h.Level())
	}
	for _, level := range []int{0, 7, -1} {
		_, err := NewHeading(level)
		assert.Error(t, err)
		assert.Equal(t, core.EINVALID, core.Code(err))
	}
}

func TestConstructorsCopySlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotext.markup")
	defer teardown()
	//
	content := []Inline{Text("a"), Text("b")}
	p := NewParagraph(content...)
	content[0] = Text("changed")
	assert.Equal(t, Text("a"), p.Content()[0])
	//
	row := []Cell{TD(Text("1")), TD(Text("2"))}
	tbl := NewTable(option.Nothing[[]Inline](), row)
	row[1] = TH(Text("x"))
	assert.Equal(t, DataCell, tbl.Rows()[0][1].Kind)
	assert.True(t, tbl.Caption().IsNone())
}

func TestKinds(t *testing.T) {
	inlines := []Inline{
		Text("t"), NewLineBreak(), NewEmphasis(EmphasisDotted), NewUnderline(),
		NewStrikethrough(), NewRuby(nil, nil, [2]string{"(", ")"}), NewCode("c"),
		NewRefLink("TP.1"), NewScript("1+1", option.Nothing[string]()),
	}
	for _, n := range inlines {
		assert.True(t, n.Kind().IsInline(), "%s should be inline", n.Kind())
		assert.False(t, n.Kind().IsBlock())
	}
	h, _ := NewHeading(2)
	blocks := []Block{
		NewParagraph(), NewThematicBreak(), h, NewBlockQuote(), NewOrderedList(),
		NewUnorderedList(), NewDescriptionList(), NewTable(option.Nothing[[]Inline]()),
	}
	for _, n := range blocks {
		assert.True(t, n.Kind().IsBlock(), "%s should be block", n.Kind())
	}
	assert.Equal(t, "description-list", KindDescriptionList.String())
	assert.Equal(t, "root", NewRoot().Kind().String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestWalkPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotext.markup")
	defer teardown()
	//
	h, _ := NewHeading(1, Text("Title"))
	root := NewRoot(
		h,
		NewParagraph(Text("a "), NewEmphasis(EmphasisStrong, Text("b")), NewCode("c")),
		NewTable(option.Something([]Inline{Text("cap")}),
			[]Cell{TH(Text("h"))},
			[]Cell{TD(NewParagraph(Text("d")))},
		),
	)
	var kinds []Kind
	var depths []int
	err := Walk(root, func(n Node, depth int) error {
		kinds = append(kinds, n.Kind())
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []Kind{
		KindRoot,
		KindHeading, KindText,
		KindParagraph, KindText, KindEmphasis, KindText, KindCode,
		KindTable, KindText, KindText, KindParagraph, KindText,
	}, kinds)
	assert.Equal(t, []int{0, 1, 2, 1, 2, 2, 3, 2, 1, 2, 2, 2, 3}, depths)
}

func TestWalkSkipChildren(t *testing.T) {
	root := NewRoot(NewBlockQuote(NewParagraph(Text("deep"))), NewThematicBreak())
	var kinds []Kind
	_ = Walk(root, func(n Node, depth int) error {
		kinds = append(kinds, n.Kind())
		if n.Kind() == KindBlockQuote {
			return SkipChildren
		}
		return nil
	})
	assert.Equal(t, []Kind{KindRoot, KindBlockQuote, KindThematicBreak}, kinds)
}

func TestRubyParens(t *testing.T) {
	r := NewRuby([]Inline{Text("漢")}, []Inline{Text("kan")}, [2]string{"（", "）"})
	opening, closing := r.Parens()
	assert.Equal(t, "（", opening)
	assert.Equal(t, "）", closing)
	assert.Len(t, Children(r), 2)
}

func TestWalkNilNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotext.markup")
	defer teardown()
	//
	visit := func(Node, int) error { return nil }
	err := Walk(nil, visit)
	assert.True(t, core.IsContractViolation(err))
	var p *Paragraph
	assert.True(t, IsNil(p))
	err = Walk(p, visit)
	assert.True(t, core.IsContractViolation(err))
	var e *Emphasis
	err = Walk(NewRoot(NewParagraph(Text("a"), e)), visit)
	assert.True(t, core.IsContractViolation(err))
	assert.Nil(t, Children(p))
	assert.False(t, IsNil(Text("")))
	assert.False(t, IsNil(NewThematicBreak()))
}
