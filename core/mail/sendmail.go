package mail

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

const defaultSendmail = "/usr/sbin/sendmail"

// SendmailSender pipes composed messages to the local sendmail
// binary. Recipients come from the message headers (-t).
type SendmailSender struct {
	Path string
}

// NewSender creates a SendmailSender. An empty path uses the
// conventional /usr/sbin/sendmail.
func NewSender(path string) *SendmailSender {
	if path == "" {
		path = defaultSendmail
	}
	return &SendmailSender{Path: path}
}

// Send writes the message to sendmail's stdin and waits for it to
// exit.
func (s *SendmailSender) Send(ctx context.Context, msg []byte) error {
	cmd := exec.CommandContext(ctx, s.Path, "-t", "-oi")
	cmd.Stdin = bytes.NewReader(msg)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("running %s: %w (%s)", s.Path, err, bytes.TrimSpace(out))
	}
	return nil
}
