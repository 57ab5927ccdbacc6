package memtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umajho/rotext-sub001/engine/markup/inline"
	"github.com/umajho/rotext-sub001/engine/markup/list"
	"github.com/umajho/rotext-sub001/engine/markup/node"
	"github.com/umajho/rotext-sub001/engine/markup/serialize"
)

func buildListTree(t *testing.T) *Elem {
	r, err := list.Build([]list.Line{
		list.TextLine(";", "term"), list.TextLine(":", "detail"),
		list.TextLine("#", "1"), list.TextLine("##", "2"), list.TextLine("##", "3"),
		list.TextLine("#", "4"),
	})
	require.NoError(t, err)
	tree, err := NewSerializer(nil).SerializeRoot(node.NewRoot(r.Lists()...))
	require.NoError(t, err)
	return tree
}

func TestElemBasics(t *testing.T) {
	tgt := Target{}
	p := tgt.Element("p", []serialize.Attr{{Key: "id", Val: "x"}}, []inline.Piece[*Elem]{
		inline.TextPiece[*Elem]("a"),
		inline.NodePiece(tgt.Element("em", nil, inline.Texts[*Elem]("b"))),
	})
	assert.Equal(t, `p[id="x"]("a", em("b"))`, p.String())
	assert.Equal(t, "ab", p.InnerText())
	id, ok := p.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "x", id)
	_, ok = p.Attr("class")
	assert.False(t, ok)
	assert.Same(t, p, p.Children[1].Parent())
	assert.True(t, p.Children[0].IsText())
	//
	f := tgt.Fragment([]*Elem{tgt.Fragment([]*Elem{p}), tgt.Text("t")})
	assert.True(t, f.IsFragment())
	assert.Len(t, f.Children, 2)
	assert.Equal(t, `(p[id="x"]("a", em("b")), "t")`, f.String())
	assert.Equal(t, "()", tgt.Fragment(nil).String())
}

func TestXPathQuery(t *testing.T) {
	tree := buildListTree(t)
	items, err := Query(tree, "/ol/li")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "123", items[0].InnerText())
	assert.Equal(t, "4", items[1].InnerText())
	//
	nested, err := Query(tree, "//li/ol/li")
	require.NoError(t, err)
	require.Len(t, nested, 2)
	assert.Equal(t, "2", nested[0].InnerText())
	//
	dd, err := Query(tree, "//dl/dd")
	require.NoError(t, err)
	require.Len(t, dd, 1)
	assert.Equal(t, "detail", dd[0].InnerText())
	//
	terms, err := Query(tree, "/dl/*")
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, "dt", terms[0].Tag)
	//
	second, err := Query(tree, "//ol/li[2]")
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.ElementsMatch(t, []string{"3", "4"},
		[]string{second[0].InnerText(), second[1].InnerText()})
}

func TestXPathAttributes(t *testing.T) {
	tree, err := NewSerializer(nil).Serialize(node.NewParagraph(node.NewRefLink("TP.7"), node.NewRefLink("TP.8")))
	require.NoError(t, err)
	links, err := Query(tree, `//x-ref-link[@address="TP.8"]`)
	require.NoError(t, err)
	require.Len(t, links, 1)
	addr, _ := links[0].Attr("address")
	assert.Equal(t, "TP.8", addr)
	//
	_, err = Query(tree, "//[")
	assert.Error(t, err)
}

func TestNavigatorMoves(t *testing.T) {
	tree := buildListTree(t)
	nav := NewNavigator(tree)
	assert.False(t, nav.MoveToParent())
	require.True(t, nav.MoveToChild()) // dl
	assert.Equal(t, "dl", nav.LocalName())
	assert.False(t, nav.MoveToPrevious())
	assert.False(t, nav.MoveToFirst())
	require.True(t, nav.MoveToNext()) // ol
	assert.Equal(t, "ol", nav.LocalName())
	assert.False(t, nav.MoveToNext())
	cp := nav.Copy().(*NodeNavigator)
	require.True(t, nav.MoveToFirst())
	assert.Equal(t, "dl", nav.LocalName())
	assert.Equal(t, "ol", cp.LocalName())
	require.True(t, nav.MoveTo(cp))
	assert.Equal(t, "ol", nav.LocalName())
	require.True(t, nav.MoveToChild()) // li
	require.True(t, nav.MoveToChild()) // "1"
	assert.Equal(t, "1", nav.Value())
	nav.MoveToRoot()
	assert.Equal(t, "", nav.LocalName())
	other := NewNavigator(tree)
	other.MoveToChild()
	require.True(t, nav.MoveTo(other)) // fragments are their own document node
	assert.Equal(t, "dl", nav.LocalName())
	p := NewNavigator(tree.Children[0])
	assert.False(t, nav.MoveTo(p))
}
