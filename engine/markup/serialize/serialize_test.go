package serialize_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umajho/rotext-sub001/core"
	"github.com/umajho/rotext-sub001/core/option"
	"github.com/umajho/rotext-sub001/core/parameters"
	"github.com/umajho/rotext-sub001/engine/markup/inline"
	"github.com/umajho/rotext-sub001/engine/markup/list"
	"github.com/umajho/rotext-sub001/engine/markup/node"
	"github.com/umajho/rotext-sub001/engine/markup/serialize"
	"github.com/umajho/rotext-sub001/engine/markup/serialize/memtree"
)

type T = node.Text

func mixed(s ...string) []node.Mixed {
	m := make([]node.Mixed, len(s))
	for i, x := range s {
		m[i] = node.Text(x)
	}
	return m
}

func heading(t *testing.T, level int, content ...node.Inline) *node.Heading {
	h, err := node.NewHeading(level, content...)
	require.NoError(t, err)
	return h
}

func serializeString(t *testing.T, n node.Node) string {
	out, err := memtree.NewSerializer(nil).Serialize(n)
	require.NoError(t, err)
	return out.String()
}

func TestInlineMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotext.serialize")
	defer teardown()
	//
	cases := []struct {
		n    node.Node
		want string
	}{
		{node.NewEmphasis(node.EmphasisPlain, T("x")), `em("x")`},
		{node.NewEmphasis(node.EmphasisStrong, T("x")), `strong("x")`},
		{node.NewUnderline(T("u")), `u("u")`},
		{node.NewStrikethrough(T("s")), `s("s")`},
		{node.NewCode("a &amp; <b>"), `code("a &amp; <b>")`},
		{node.NewRefLink("TP.42"), `x-ref-link[address="TP.42"]`},
		{node.NewLineBreak(), `br`},
		{node.NewRuby([]node.Inline{T("漢字")}, []node.Inline{T("かんじ")}, [2]string{"(", ")"}),
			`ruby(rb("漢字"), rp("("), rt("かんじ"), rp(")"))`},
		{node.NewParagraph(T("a "), node.NewEmphasis(node.EmphasisStrong, T("b")), T(" &amp;"), T(" c")),
			`p("a ", strong("b"), " & c")`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, serializeString(t, c.n))
	}
}

func TestDottedEmphasisStyleHook(t *testing.T) {
	out, err := memtree.NewSerializer(nil).Serialize(node.NewEmphasis(node.EmphasisDotted, T("dot")))
	require.NoError(t, err)
	assert.Equal(t, "em", out.Tag)
	style, ok := out.Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, "text-emphasis")
}

func TestBlockMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotext.serialize")
	defer teardown()
	//
	root := node.NewRoot(
		heading(t, 3, T("Title")),
		node.NewThematicBreak(),
		node.NewBlockQuote(node.NewParagraph(T("q")), T("tail")),
		node.NewOrderedList(mixed("a"), mixed("b", "c")),
		node.NewUnorderedList(mixed("x"), nil),
		node.NewDescriptionList(node.TermItem(mixed("t")...), node.DetailItem(mixed("d")...)),
	)
	want := `(h3("Title"), hr, blockquote(p("q"), "tail"), ol(li("a"), li("bc")), ` +
		`ul(li("x"), li), dl(dt("t"), dd("d")))`
	assert.Equal(t, want, serializeString(t, root))
}

func TestTableRaggedness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotext.serialize")
	defer teardown()
	//
	tbl := node.NewTable(option.Something([]node.Inline{T("cap")}),
		[]node.Cell{node.TH(T("a")), node.TH(T("b")), node.TH(T("c"))},
		[]node.Cell{node.TD(T("1")), node.TD(T("2"))},
		[]node.Cell{node.TD(T("3")), node.TH(T("4")), node.TD(T("5"))},
	)
	out, err := memtree.NewSerializer(nil).Serialize(tbl)
	require.NoError(t, err)
	assert.Equal(t, "table", out.Tag)
	require.Len(t, out.Children, 4)
	assert.Equal(t, "caption", out.Children[0].Tag)
	var counts []int
	for _, tr := range out.Children[1:] {
		assert.Equal(t, "tr", tr.Tag)
		counts = append(counts, len(tr.Children))
	}
	assert.Equal(t, []int{3, 2, 3}, counts)
	assert.Equal(t, "th", out.Children[3].Children[1].Tag)
	//
	bare := node.NewTable(option.Nothing[[]node.Inline](), []node.Cell{node.TD()})
	assert.Equal(t, `table(tr(td))`, serializeString(t, bare))
}

func TestExhaustiveness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotext.serialize")
	defer teardown()
	//
	all := []node.Node{
		node.NewLineBreak(),
		node.NewEmphasis(node.EmphasisPlain), node.NewEmphasis(node.EmphasisStrong),
		node.NewEmphasis(node.EmphasisDotted),
		node.NewUnderline(), node.NewStrikethrough(),
		node.NewRuby(nil, nil, [2]string{"(", ")"}),
		node.NewCode(""), node.NewRefLink("x"),
		node.NewParagraph(), node.NewThematicBreak(), heading(t, 6), node.NewBlockQuote(),
		node.NewOrderedList(), node.NewUnorderedList(), node.NewDescriptionList(),
		node.NewTable(option.Nothing[[]node.Inline]()),
		node.NewRoot(),
	}
	s := memtree.NewSerializer(nil)
	for _, n := range all {
		_, err := s.Serialize(n)
		assert.NoError(t, err, "variant %s", n.Kind())
	}
	_, err := s.Serialize(node.NewScript("1+1", option.Something("x")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, serialize.ErrUnimplemented))
	assert.True(t, core.IsUnimplemented(err))
}

func TestScriptInsideSlotFails(t *testing.T) {
	root := node.NewRoot(node.NewParagraph(T("a"), node.NewScript("x", option.Nothing[string]())))
	_, err := memtree.NewSerializer(nil).SerializeRoot(root)
	assert.True(t, errors.Is(err, serialize.ErrUnimplemented))
}

func TestNilNode(t *testing.T) {
	s := memtree.NewSerializer(nil)
	_, err := s.Serialize(nil)
	assert.True(t, core.IsContractViolation(err))
	var p *node.Paragraph
	_, err = s.Serialize(p)
	assert.True(t, core.IsContractViolation(err))
	var u *node.Underline
	_, err = s.SerializeRoot(node.NewRoot(node.NewParagraph(T("a"), u)))
	assert.True(t, core.IsContractViolation(err))
}

func TestDecodeSwitch(t *testing.T) {
	p := node.NewParagraph(T("&am"), T("p;"))
	assert.Equal(t, `p("&")`, serializeString(t, p))
	regs := parameters.NewRegisters()
	regs.Push(parameters.P_DECODE, false)
	out, err := memtree.NewSerializer(regs).Serialize(p)
	require.NoError(t, err)
	assert.Equal(t, `p("&amp;")`, out.String())
}

func TestListsFromBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotext.serialize")
	defer teardown()
	//
	cases := []struct {
		lines []list.Line
		want  string
	}{
		{ // a top-level reset starts a description list
			[]list.Line{
				list.TextLine("#", "1"), list.TextLine("##", "2"), list.TextLine("##", "3"),
				list.TextLine(";", "t"), list.TextLine(":", "d"),
			},
			`(ol(li("1", ol(li("2"), li("3")))), dl(dt("t"), dd("d")))`,
		},
		{ // '#' followed by ';' stays in the ordered container
			[]list.Line{
				list.TextLine("#", "1"), list.TextLine("##", "2"), list.TextLine("##", "3"),
				list.TextLine("#", "4"), list.TextLine(";", "t"), list.TextLine(":", "d"),
			},
			`(ol(li("1", ol(li("2"), li("3"))), li("4"), li("t"), li("d")))`,
		},
	}
	for _, c := range cases {
		r, err := list.Build(c.lines)
		require.NoError(t, err)
		assert.Equal(t, c.want, serializeString(t, node.NewRoot(r.Lists()...)))
	}
}

// --- A target producing strings --------------------------------------------

type markupTarget struct{}

func (markupTarget) Element(tag string, attrs []serialize.Attr, children []inline.Piece[string]) string {
	var b strings.Builder
	b.WriteString("<" + tag)
	for _, a := range attrs {
		b.WriteString(" " + a.Key + "=" + a.Val)
	}
	b.WriteString(">")
	for _, c := range children {
		if c.IsText() {
			b.WriteString(c.Text())
		} else {
			b.WriteString(c.Node())
		}
	}
	b.WriteString("</" + tag + ">")
	return b.String()
}

func (markupTarget) Fragment(nodes []string) string {
	return strings.Join(nodes, "")
}

func TestStringTarget(t *testing.T) {
	s := serialize.New[string](markupTarget{}, nil)
	out, err := s.SerializeRoot(node.NewRoot(
		node.NewParagraph(T("a"), node.NewUnderline(T("b"))),
		node.NewThematicBreak(),
	))
	require.NoError(t, err)
	assert.Equal(t, "<p>a<u>b</u></p><hr></hr>", out)
	//
	_, err = s.Serialize(T("bare"))
	assert.True(t, core.IsContractViolation(err))
	text, err := memtree.NewSerializer(nil).Serialize(T("a &lt; b"))
	require.NoError(t, err)
	assert.Equal(t, "a < b", text.Text)
}
