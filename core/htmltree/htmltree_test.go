package htmltree

import (
	"strings"
	"testing"
)

func TestParseNesting(t *testing.T) {
	root, err := Parse(`<body><p>Hello <strong>there</strong></p></body>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	body, err := root.Body()
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	if len(body.Kids) != 1 {
		t.Fatalf("body kids: got %d want 1", len(body.Kids))
	}

	p, ok := body.Kids[0].(*Node)
	if !ok || p.Name != "p" {
		t.Fatalf("first child: got %#v want <p>", body.Kids[0])
	}
	if len(p.Kids) != 2 {
		t.Fatalf("p kids: got %d want 2", len(p.Kids))
	}
	if text, ok := p.Kids[0].(Text); !ok || text != "Hello " {
		t.Fatalf("text run: got %#v want %q", p.Kids[0], "Hello ")
	}
	strong, ok := p.Kids[1].(*Node)
	if !ok || strong.Name != "strong" {
		t.Fatalf("second child: got %#v want <strong>", p.Kids[1])
	}
}

func TestParseAttributes(t *testing.T) {
	root, err := Parse(`<body><a href="https://example.org" title="x">link</a></body>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	body, _ := root.Body()
	a := body.Kids[0].(*Node)
	if a.Attr["href"] != "https://example.org" {
		t.Errorf("href: got %q", a.Attr["href"])
	}
	if a.Attr["title"] != "x" {
		t.Errorf("title: got %q", a.Attr["title"])
	}
}

func TestParseMismatchedTags(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"wrong close", `<body><p>text</div></body>`},
		{"surplus close", `<body></p></body>`},
		{"unclosed at EOF", `<body><p>text`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.in); err == nil {
				t.Fatalf("Parse(%q): want error, got nil", tc.in)
			}
		})
	}
}

func TestParseAcceptsUnknownTags(t *testing.T) {
	// Unknown tag names are rejected at model conversion, not here.
	root, err := Parse(`<body><marquee>hi</marquee></body>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	body, _ := root.Body()
	if n := body.Kids[0].(*Node); n.Name != "marquee" {
		t.Fatalf("got %q want marquee", n.Name)
	}
}

func TestParseVoidTags(t *testing.T) {
	for _, in := range []string{`<body>a<br>b</body>`, `<body>a<br/>b</body>`} {
		root, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		body, _ := root.Body()
		if len(body.Kids) != 3 {
			t.Fatalf("Parse(%q): got %d kids want 3", in, len(body.Kids))
		}
		if br := body.Kids[1].(*Node); br.Name != "br" {
			t.Fatalf("middle child: got %q want br", br.Name)
		}
	}
}

func TestParseSkipsCommentsAndDoctype(t *testing.T) {
	root, err := Parse("<!DOCTYPE html><body><!-- note --><p>x</p></body>")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	body, _ := root.Body()
	if len(body.Kids) != 1 {
		t.Fatalf("body kids: got %d want 1", len(body.Kids))
	}
}

func TestBodyMissing(t *testing.T) {
	root, err := Parse(`<div>no body here</div>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := root.Body(); err == nil {
		t.Fatal("Body: want error for document without <body>")
	}
}

func TestBodyFirstEncountered(t *testing.T) {
	root, err := Parse(`<html><head><title>t</title></head><body>one</body></html>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	body, err := root.Body()
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	if text, ok := body.Kids[0].(Text); !ok || !strings.Contains(string(text), "one") {
		t.Fatalf("body content: got %#v", body.Kids[0])
	}
}
