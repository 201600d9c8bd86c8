package textify

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/newsmail/core/format"
)

func TestConvertHeadingAndAnchor(t *testing.T) {
	in := `<body><h1>Title</h1><p>Hello <a href="https://x">world</a>!</p></body>`

	got, err := Convert(in)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := strings.Join([]string{
		"Title",
		"=====",
		"",
		"Hello world [1] !",
		"",
		"[1]: https://x",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("output mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestConvertBulletList(t *testing.T) {
	in := `<body><ul><li>one</li><li>two</li></ul></body>`

	got, err := Convert(in)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := strings.Join([]string{
		"* one",
		"",
		"* two",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("output mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestConvertListHangingIndent(t *testing.T) {
	item := strings.Repeat("wrap me please ", 8)
	in := "<body><ul><li>" + item + "</li></ul></body>"

	got, err := Convert(in)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped item, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "* wrap") {
		t.Errorf("first line: got %q", lines[0])
	}
	for i, line := range lines[1:] {
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("continuation %d missing 4-column indent: %q", i+2, line)
		}
		if len(line) > 80 {
			t.Errorf("line %d exceeds 80 columns: %q", i+2, line)
		}
	}
}

func TestConvertPlainTextRoundTrip(t *testing.T) {
	in := `<body><p>Just a short plain paragraph of ASCII text.</p></body>`

	got, err := Convert(in)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "Just a short plain paragraph of ASCII text.\n" {
		t.Fatalf("got %q", got)
	}
}

func TestConvertCollapsesWhitespace(t *testing.T) {
	in := "<body><p>spread\n\tover\n  several   lines</p></body>"

	got, err := Convert(in)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "spread over several lines\n" {
		t.Fatalf("got %q", got)
	}
}

func TestConvertRepeatedAnchor(t *testing.T) {
	in := `<body><p><a href="https://x">one</a> and <a href="https://y">two</a> and <a href="https://x">one again</a></p></body>`

	got, err := Convert(in)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(got, "one [1]") || !strings.Contains(got, "two [2]") || !strings.Contains(got, "one again [1]") {
		t.Fatalf("reference numbers not stable:\n%s", got)
	}
	if strings.Contains(got, "[3]") {
		t.Fatalf("duplicate target got a fresh number:\n%s", got)
	}
}

func TestConvertInlineRefs(t *testing.T) {
	in := `<body><p>See <a href="https://x">docs</a>.</p><p>Then <a href="https://y">more</a>.</p></body>`

	got, err := New(Options{Anchors: format.AfterFirstUse}).Convert(in)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := strings.Join([]string{
		"See docs [1] .",
		"[1]: https://x",
		"",
		"Then more [2] .",
		"[2]: https://y",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("output mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestConvertErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"mismatched tags", `<body><p>text</div></body>`},
		{"no body", `<div>text</div>`},
		{"unsupported tag", `<body><blockquote>q</blockquote></body>`},
		{"anchor without href", `<body><p><a>x</a></p></body>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Convert(tc.in); err == nil {
				t.Fatalf("Convert(%q): want error, got nil", tc.in)
			}
		})
	}
}

func TestConvertBreakSplitsParagraph(t *testing.T) {
	in := `<body><p>first line<br>second line</p></body>`

	got, err := Convert(in)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := "first line\n\nsecond line\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
