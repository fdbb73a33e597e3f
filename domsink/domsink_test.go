package domsink

import (
	"testing"

	"github.com/kestrel-parse/html5core/dom"
	"github.com/kestrel-parse/html5core/sink"
)

func TestAppendMergesAdjacentText(t *testing.T) {
	s := New()
	doc := s.GetDocument()

	html := s.CreateElement(sink.QualName{Namespace: dom.NamespaceHTML, Local: "html"}, nil, sink.ElementFlags{})
	s.Append(doc, sink.NodeRef(html))

	s.Append(html, sink.Text("hello "))
	s.Append(html, sink.Text("world"))

	children := toElement(html).Children()
	if len(children) != 1 {
		t.Fatalf("expected text nodes to merge, got %d children", len(children))
	}
	text, ok := children[0].(*dom.Text)
	if !ok {
		t.Fatalf("expected text child, got %T", children[0])
	}
	if text.Data != "hello world" {
		t.Errorf("merged text = %q, want %q", text.Data, "hello world")
	}
}

func TestCreateElementAllocatesTemplateContent(t *testing.T) {
	s := New()
	h := s.CreateElement(sink.QualName{Namespace: dom.NamespaceHTML, Local: "template"}, nil, sink.ElementFlags{Template: true})
	e := toElement(h)
	if e.TemplateContent == nil {
		t.Fatal("expected template element to get a content fragment")
	}
}

func TestAddAttrsIfMissingSkipsExisting(t *testing.T) {
	s := New()
	h := s.CreateElement(sink.QualName{Namespace: dom.NamespaceHTML, Local: "div"},
		[]sink.Attribute{{Name: sink.QualName{Local: "id"}, Value: "a"}}, sink.ElementFlags{})

	s.AddAttrsIfMissing(h, []sink.Attribute{
		{Name: sink.QualName{Local: "id"}, Value: "b"},
		{Name: sink.QualName{Local: "class"}, Value: "new"},
	})

	e := toElement(h)
	if v := e.Attr("id"); v != "a" {
		t.Errorf("id = %q, want existing value %q preserved", v, "a")
	}
	if v := e.Attr("class"); v != "new" {
		t.Errorf("class = %q, want %q", v, "new")
	}
}

func TestSameNode(t *testing.T) {
	s := New()
	a := s.CreateElement(sink.QualName{Local: "a"}, nil, sink.ElementFlags{})
	b := s.CreateElement(sink.QualName{Local: "b"}, nil, sink.ElementFlags{})
	if !s.SameNode(a, a) {
		t.Error("SameNode(a, a) = false, want true")
	}
	if s.SameNode(a, b) {
		t.Error("SameNode(a, b) = true, want false")
	}
}

func TestParseErrorCollection(t *testing.T) {
	s := New()
	s.CollectErrors = true
	s.SetCurrentLine(3)
	s.ParseError("unexpected token")

	if len(s.Errors) != 1 {
		t.Fatalf("expected 1 collected error, got %d", len(s.Errors))
	}
	if s.Errors[0].Line != 3 {
		t.Errorf("error line = %d, want 3", s.Errors[0].Line)
	}
}
