/*
Package markupdbg draws rotext document trees for debugging.

ToGraphViz produces input for Graphviz:

	dot -Tsvg -odoc.svg doc.dot

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package markupdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/schuko/tracing"
	"github.com/umajho/rotext-sub001/engine/markup/node"
)

// tracer traces with key 'rotext.markup'.
func tracer() tracing.Trace {
	return tracing.Select("rotext.markup")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// ToGraphViz creates a graphical representation of a document tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root node.Node, w io.Writer) error {
	header, err := template.New("docTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	if _, err = nodes(root, w, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// dnode is a node of the drawing.
type dnode struct {
	Name   string
	Label  string
	IsText bool
}

type dedge struct {
	N1, N2 string
}

func nodes(n node.Node, w io.Writer, gparams *graphParamsType) (string, error) {
	gparams.cnt++
	name := fmt.Sprintf("node%05d", gparams.cnt)
	_, isText := n.(node.Text)
	d := dnode{Name: name, Label: Label(n), IsText: isText}
	if err := gparams.NodeTmpl.Execute(w, d); err != nil {
		return "", err
	}
	tracer().Debugf("dot: %s = %s", name, d.Label)
	for _, child := range node.Children(n) {
		cname, err := nodes(child, w, gparams)
		if err != nil {
			return "", err
		}
		if err := gparams.EdgeTmpl.Execute(w, dedge{name, cname}); err != nil {
			return "", err
		}
	}
	return name, nil
}

// Label returns a short description of a node, as a quoted DOT string.
func Label(n node.Node) string {
	var s string
	switch x := n.(type) {
	case node.Text:
		s = "T " + shortText(string(x))
	case *node.Emphasis:
		s = fmt.Sprintf("%s (%s)", x.Kind(), x.Style())
	case *node.Heading:
		s = fmt.Sprintf("h%d", x.Level())
	case *node.Code:
		s = "code " + shortText(x.Text())
	case *node.RefLink:
		s = "ref " + shortText(x.Address())
	case *node.Table:
		s = fmt.Sprintf("table %d rows", len(x.Rows()))
	default:
		s = n.Kind().String()
	}
	return dotQuote(s)
}

// dotQuote quotes s as a DOT string. DOT knows only the escapes \" and \\.
func dotQuote(s string) string {
	s = strings.Replace(s, `\`, `\\`, -1)
	s = strings.Replace(s, `"`, `\"`, -1)
	return `"` + s + `"`
}

func shortText(txt string) string {
	r := []rune(txt)
	if len(r) > 10 {
		txt = string(r[:10]) + "…"
	}
	txt = strings.Replace(txt, "\n", `\n`, -1)
	txt = strings.Replace(txt, "\t", `\t`, -1)
	txt = strings.Replace(txt, " ", "␣", -1)
	return txt
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ if .IsText }}{{ .Name }}	[ label={{ .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}{{ .Name }}	[ label={{ .Label }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
