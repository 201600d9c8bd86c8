// Package core defines the pipeline interfaces for newsmail.
// Each stage of the announcement pipeline is a clean, testable interface.
package core

import "context"

// Page holds one built news page: where it came from and what it says.
type Page struct {
	Path  string // path relative to the site root, the sent-log identifier
	Title string
	HTML  string // body fragment, sent as the text/html alternative
}

// Announcement is a page paired with its plain-text rendering.
type Announcement struct {
	Page Page
	Text string
}

// MailConfig carries the envelope settings for outgoing announcements.
type MailConfig struct {
	From          string
	To            string
	SubjectPrefix string
	SendmailPath  string
}

// Extractor pulls the title and body fragment from a raw HTML page.
type Extractor interface {
	Extract(html string) (title, body string, err error)
}

// Converter renders an HTML document as wrapped plain text.
type Converter interface {
	Convert(html string) (string, error)
}

// Renderer converts an announcement into an alternate preview format.
type Renderer interface {
	Render(a Announcement) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}

// Sender delivers one composed message.
type Sender interface {
	Send(ctx context.Context, msg []byte) error
}

// SentLog records which pages have already been announced.
type SentLog interface {
	Contains(path string) bool
	Append(path string) error
}
