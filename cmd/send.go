// Package cmd — send command.
// Orchestrates the announcement pipeline:
// discover → skip already-sent → extract → convert → compose →
// confirm → sendmail → record.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/newsmail/core"
	"github.com/gaurav-prasanna/newsmail/core/extract"
	"github.com/gaurav-prasanna/newsmail/core/mail"
	"github.com/gaurav-prasanna/newsmail/core/output"
	"github.com/gaurav-prasanna/newsmail/core/render"
	"github.com/gaurav-prasanna/newsmail/core/sentlog"
	"github.com/gaurav-prasanna/newsmail/news"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Flag variables.
var (
	flagSite          string
	flagNewsDir       string
	flagLog           string
	flagFrom          string
	flagTo            string
	flagSubjectPrefix string
	flagSendmail      string
	flagArchiveDir    string
	flagDryRun        bool
	flagYes           bool
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send unannounced news pages as email",
	Long: `Send scans the built site for news pages, skips the ones already in
the sent log, and mails each remaining page as a multipart message:
the converted plain text plus the original HTML. Each page is
confirmed interactively before it goes out.

Examples:
  newsmail send --site ./_site --from news@example.org --to announce@example.org
  newsmail send --site ./_site --from n@e.org --to a@e.org --dry-run
  newsmail send --site ./_site --from n@e.org --to a@e.org --yes --archive-dir ./sent`,
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringVar(&flagSite, "site", "", "Built site directory (required)")
	sendCmd.Flags().StringVar(&flagNewsDir, "news", "news", "News subdirectory inside the site")
	sendCmd.Flags().StringVar(&flagLog, "log", "sent.log", "Sent-log file path")
	sendCmd.Flags().StringVar(&flagFrom, "from", "", "From address (required)")
	sendCmd.Flags().StringVar(&flagTo, "to", "", "To address (required)")
	sendCmd.Flags().StringVar(&flagSubjectPrefix, "subject-prefix", "", "Prefix for mail subjects")
	sendCmd.Flags().StringVar(&flagSendmail, "sendmail", "", "Path to sendmail (default /usr/sbin/sendmail)")
	sendCmd.Flags().StringVar(&flagArchiveDir, "archive-dir", "", "Write a PDF copy of each sent announcement here")
	sendCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print messages instead of sending")
	sendCmd.Flags().BoolVar(&flagYes, "yes", false, "Send without interactive confirmation")
}

func runSend(cmd *cobra.Command, args []string) error {
	if flagSite == "" {
		return fmt.Errorf("--site is required")
	}
	if !flagDryRun && (flagFrom == "" || flagTo == "") {
		return fmt.Errorf("--from and --to are required unless --dry-run")
	}
	if !flagYes && !flagDryRun && !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal; pass --yes to send without confirmation")
	}

	pages, err := news.Discover(flagSite, flagNewsDir)
	if err != nil {
		return fmt.Errorf("discovering news pages: %w", err)
	}

	log, err := sentlog.Load(flagLog)
	if err != nil {
		return err
	}

	var pending []string
	for _, page := range pages {
		if !log.Contains(page) {
			pending = append(pending, page)
		}
	}
	fmt.Fprintf(os.Stdout, "Found %d news pages, %d unsent\n", len(pages), len(pending))
	if len(pending) == 0 {
		return nil
	}

	var archive *output.Writer
	if flagArchiveDir != "" {
		archive, err = output.New(flagArchiveDir)
		if err != nil {
			return fmt.Errorf("initializing archive writer: %w", err)
		}
	}

	cfg := core.MailConfig{
		From:          flagFrom,
		To:            flagTo,
		SubjectPrefix: flagSubjectPrefix,
		SendmailPath:  flagSendmail,
	}
	extractor := extract.New()
	converter := newConverter()
	sender := mail.NewSender(cfg.SendmailPath)
	ctx := context.Background()

	var errCount int
	for i, page := range pending {
		fmt.Fprintf(os.Stdout, "[%d/%d] %s\n", i+1, len(pending), page)

		a, err := buildAnnouncement(page, extractor, converter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		msg, err := mail.Compose(cfg, a)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Compose error: %v\n", err)
			errCount++
			continue
		}

		if flagDryRun {
			fmt.Fprintf(os.Stdout, "--- %s ---\n%s\n", a.Page.Title, a.Text)
			continue
		}

		if !flagYes && !confirm(a) {
			fmt.Fprintf(os.Stdout, "  skipped\n")
			continue
		}

		if err := sender.Send(ctx, msg); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Send error: %v\n", err)
			errCount++
			continue
		}
		if err := log.Append(page); err != nil {
			return fmt.Errorf("recording %s as sent: %w", page, err)
		}
		if archive != nil {
			data, err := render.NewPDFRenderer().Render(a)
			if err == nil {
				if path, err := archive.Write(page, data, ".pdf"); err == nil {
					fmt.Fprintf(os.Stdout, "  ✓ Archived: %s\n", path)
				}
			}
		}
		fmt.Fprintf(os.Stdout, "  ✓ Sent: %s\n", a.Page.Title)
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d pages failed", errCount, len(pending))
	}
	return nil
}

// buildAnnouncement reads one page and runs it through extraction and
// conversion.
func buildAnnouncement(page string, extractor core.Extractor, converter core.Converter) (core.Announcement, error) {
	raw, err := os.ReadFile(filepath.Join(flagSite, filepath.FromSlash(page)))
	if err != nil {
		return core.Announcement{}, fmt.Errorf("reading page: %w", err)
	}

	title, body, err := extractor.Extract(string(raw))
	if err != nil {
		return core.Announcement{}, fmt.Errorf("extract: %w", err)
	}
	if title == "" {
		return core.Announcement{}, fmt.Errorf("page has no title")
	}

	text, err := converter.Convert(body)
	if err != nil {
		return core.Announcement{}, fmt.Errorf("convert: %w", err)
	}

	return core.Announcement{
		Page: core.Page{Path: page, Title: title, HTML: body},
		Text: text,
	}, nil
}

// confirm shows the announcement text and asks before sending.
func confirm(a core.Announcement) bool {
	fmt.Fprintf(os.Stdout, "--- %s ---\n%s\n", a.Page.Title, a.Text)
	fmt.Fprintf(os.Stdout, "Send this announcement? [y/N] ")

	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	return answer == "y" || answer == "yes"
}
