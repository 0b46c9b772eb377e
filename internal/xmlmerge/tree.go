package xmlmerge

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// The merge targets are rewritten in place, and server operators annotate
// them heavily. A conventional unmarshal/marshal round trip loses comment
// nodes and whitespace, so documents are kept as a token-level tree in
// which comments and text are ordinary positioned siblings of the entry
// elements.

// Node is one node of a parsed XML document.
type Node interface {
	node()
}

// Text is character data, stored decoded. Surrounding indentation is kept
// verbatim so untouched regions of a rewritten document keep their shape.
type Text struct {
	Data string
}

// Comment is a comment node, stored without the <!-- --> markers.
type Comment struct {
	Data string
}

// ProcInst is a processing instruction such as the XML declaration.
type ProcInst struct {
	Target string
	Inst   string
}

// Directive is a <!...> directive such as DOCTYPE.
type Directive struct {
	Data string
}

// Attr is one element attribute in document order.
type Attr struct {
	Name  string
	Value string
}

// Element is an XML element with its children in document order.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

func (*Text) node()      {}
func (*Comment) node()   {}
func (*ProcInst) node()  {}
func (*Directive) node() {}
func (*Element) node()   {}

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Elements returns the element children with the given tag, in order.
func (e *Element) Elements(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Name == tag {
			out = append(out, el)
		}
	}
	return out
}

// Document is a full XML document: the root element plus whatever
// surrounds it (declaration, comments, trailing newline).
type Document struct {
	// Prolog holds the nodes before the root element.
	Prolog []Node
	// Root is the document element.
	Root *Element
	// Epilog holds the nodes after the root element.
	Epilog []Node
}

// NewDocument builds an empty document with an XML declaration and the
// given root tag, the shape written when a configured target file does not
// exist yet.
func NewDocument(rootTag string) *Document {
	return &Document{
		Prolog: []Node{
			&ProcInst{Target: "xml", Inst: `version="1.0" encoding="UTF-8"`},
			&Text{Data: "\n"},
		},
		Root:   &Element{Name: rootTag},
		Epilog: []Node{&Text{Data: "\n"}},
	}
}

// Parse reads a complete document from raw bytes.
func Parse(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	doc := &Document{}
	var stack []*Element

	appendNode := func(n Node) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, n)
			return
		}
		if doc.Root == nil {
			doc.Prolog = append(doc.Prolog, n)
		} else {
			doc.Epilog = append(doc.Epilog, n)
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 && doc.Root == nil {
				doc.Root = el
			} else {
				appendNode(el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			appendNode(&Text{Data: string(t)})
		case xml.Comment:
			appendNode(&Comment{Data: string(t)})
		case xml.ProcInst:
			appendNode(&ProcInst{Target: t.Target, Inst: string(t.Inst)})
		case xml.Directive:
			appendNode(&Directive{Data: string(t)})
		}
	}
	return doc, nil
}

// Serialize writes the document back to bytes. When keepComments is false,
// comment nodes are dropped.
func (doc *Document) Serialize(keepComments bool) []byte {
	var buf bytes.Buffer
	for _, n := range doc.Prolog {
		writeNode(&buf, n, keepComments)
	}
	if doc.Root != nil {
		writeNode(&buf, doc.Root, keepComments)
	}
	for _, n := range doc.Epilog {
		writeNode(&buf, n, keepComments)
	}
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n Node, keepComments bool) {
	switch t := n.(type) {
	case *Text:
		buf.WriteString(escapeText(t.Data))
	case *Comment:
		if keepComments {
			buf.WriteString("<!--")
			buf.WriteString(t.Data)
			buf.WriteString("-->")
		}
	case *ProcInst:
		buf.WriteString("<?")
		buf.WriteString(t.Target)
		if t.Inst != "" {
			buf.WriteString(" ")
			buf.WriteString(t.Inst)
		}
		buf.WriteString("?>")
	case *Directive:
		buf.WriteString("<!")
		buf.WriteString(t.Data)
		buf.WriteString(">")
	case *Element:
		buf.WriteString("<")
		buf.WriteString(t.Name)
		for _, a := range t.Attrs {
			buf.WriteString(" ")
			buf.WriteString(a.Name)
			buf.WriteString(`="`)
			buf.WriteString(escapeAttr(a.Value))
			buf.WriteString(`"`)
		}
		if len(t.Children) == 0 {
			buf.WriteString("/>")
			return
		}
		buf.WriteString(">")
		for _, c := range t.Children {
			writeNode(buf, c, keepComments)
		}
		buf.WriteString("</")
		buf.WriteString(t.Name)
		buf.WriteString(">")
	}
}

// escapeText escapes character data without touching whitespace.
// xml.EscapeText is not usable here: it rewrites tabs and newlines as
// character references, destroying the document's indentation.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// nodesEqual deep-compares two nodes. Used to recognize that an overwrite
// would replace an entry with an identical copy, which keeps repeated
// merges idempotent under the overwrite policy.
func nodesEqual(a, b Node) bool {
	switch x := a.(type) {
	case *Text:
		y, ok := b.(*Text)
		return ok && x.Data == y.Data
	case *Comment:
		y, ok := b.(*Comment)
		return ok && x.Data == y.Data
	case *ProcInst:
		y, ok := b.(*ProcInst)
		return ok && x.Target == y.Target && x.Inst == y.Inst
	case *Directive:
		y, ok := b.(*Directive)
		return ok && x.Data == y.Data
	case *Element:
		y, ok := b.(*Element)
		if !ok || x.Name != y.Name || len(x.Attrs) != len(y.Attrs) || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Attrs {
			if x.Attrs[i] != y.Attrs[i] {
				return false
			}
		}
		for i := range x.Children {
			if !nodesEqual(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	}
	return false
}
