package extract

import (
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html>
<head><title>Release 1.0</title><style>p { color: red }</style></head>
<body>
<nav><a href="/">home</a></nav>
<h1>Release 1.0</h1>
<p>We shipped <strong>something</strong>.</p>
<script>track()</script>
</body>
</html>`

func TestExtractTitleAndBody(t *testing.T) {
	title, body, err := New().Extract(page)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if title != "Release 1.0" {
		t.Errorf("title: got %q", title)
	}
	if !strings.HasPrefix(body, "<body>") {
		t.Errorf("body fragment must start with <body>, got %q", body[:20])
	}
	if !strings.Contains(body, "<strong>something</strong>") {
		t.Errorf("body lost content: %q", body)
	}
}

func TestExtractRemovesNoise(t *testing.T) {
	_, body, err := New().Extract(page)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for _, tag := range []string{"<nav", "<script", "<style"} {
		if strings.Contains(body, tag) {
			t.Errorf("noise element %s survived extraction", tag)
		}
	}
}

func TestExtractTitleFallsBackToH1(t *testing.T) {
	title, _, err := New().Extract(`<html><body><h1>From Heading</h1><p>x</p></body></html>`)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if title != "From Heading" {
		t.Errorf("title: got %q", title)
	}
}

func TestExtractEmptyTitle(t *testing.T) {
	title, _, err := New().Extract(`<html><body><p>no headings</p></body></html>`)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if title != "" {
		t.Errorf("title: got %q want empty", title)
	}
}
