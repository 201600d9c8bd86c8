// Package mail composes and delivers announcement email. Messages
// are multipart/alternative: the converted plain text first, the
// original body HTML second, both quoted-printable encoded.
package mail

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"

	"github.com/gaurav-prasanna/newsmail/core"
)

// Compose builds the full RFC 5322 message for one announcement.
func Compose(cfg core.MailConfig, a core.Announcement) ([]byte, error) {
	subject := a.Page.Title
	if cfg.SubjectPrefix != "" {
		subject = cfg.SubjectPrefix + " " + subject
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", cfg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary())
	fmt.Fprintf(&buf, "\r\n")

	if err := writePart(mw, "text/plain; charset=utf-8", a.Text); err != nil {
		return nil, err
	}
	if err := writePart(mw, "text/html; charset=utf-8", a.Page.HTML); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}
	return buf.Bytes(), nil
}

// writePart adds one quoted-printable alternative part.
func writePart(mw *multipart.Writer, contentType, body string) error {
	header := textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"quoted-printable"},
	}
	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("creating %s part: %w", contentType, err)
	}
	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(body)); err != nil {
		return fmt.Errorf("encoding %s part: %w", contentType, err)
	}
	if err := qp.Close(); err != nil {
		return fmt.Errorf("flushing %s part: %w", contentType, err)
	}
	return nil
}
