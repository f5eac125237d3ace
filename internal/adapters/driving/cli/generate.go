package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/smarthomej/release-tools/internal/adapters/driving/cli/styles"
	"github.com/smarthomej/release-tools/internal/core/domain"
	"github.com/smarthomej/release-tools/internal/core/ports/driving"
)

// runGenerate renders artifacts for the release tag in args[0].
// The tag has already been checked by releaseTagArg.
func runGenerate(cmd *cobra.Command, args []string, artifacts ...domain.Artifact) error {
	tag, err := domain.ParseReleaseTag(args[0])
	if err != nil {
		return err
	}

	if newReleaseService == nil {
		return errors.New("release service not configured")
	}

	ctx := cmd.Context()
	svc, err := newReleaseService(ctx, currentSettings())
	if err != nil {
		return fmt.Errorf("set up release: %w", err)
	}

	report, err := svc.Generate(ctx, tag, artifacts...)
	if report != nil {
		out := cmd.OutOrStdout()
		printSummary(out, report, stylesFor(out))
	}
	return err
}

// stylesFor colours output only when it goes to a terminal.
func stylesFor(w io.Writer) *styles.Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return styles.NewStyles(nil)
	}
	return styles.Plain()
}

func printSummary(w io.Writer, r *driving.RunReport, s *styles.Styles) {
	fmt.Fprintln(w, s.Title.Render("Release "+r.Tag)+" "+s.Muted.Render("(run "+r.RunID+")"))

	if r.Pages > 0 {
		fmt.Fprintf(w, "  fetched %d pull requests in %d pages: %d included, %d rejected\n",
			r.Fetched, r.Pages, r.Included, r.RejectedTotal())
	}
	if len(r.Rejected) > 0 {
		fmt.Fprintln(w, "  "+s.Muted.Render("rejected: "+formatRejected(r.Rejected)))
	}

	for _, location := range r.Written {
		fmt.Fprintln(w, "  "+s.Success.Render("wrote "+location))
	}
	for _, warning := range r.Warnings {
		fmt.Fprintln(w, "  "+s.Warning.Render("warning: "+warning))
	}
	for _, failure := range r.Failed {
		fmt.Fprintln(w, "  "+s.Error.Render(fmt.Sprintf("failed %s: %v", failure.Name, failure.Err)))
	}
}

// formatRejected lists rejection counts as "reason=n" sorted by reason.
func formatRejected(rejected map[domain.RejectReason]int) string {
	reasons := make([]string, 0, len(rejected))
	for reason := range rejected {
		reasons = append(reasons, string(reason))
	}
	slices.Sort(reasons)

	parts := make([]string, len(reasons))
	for i, reason := range reasons {
		parts[i] = fmt.Sprintf("%s=%d", reason, rejected[domain.RejectReason(reason)])
	}
	return strings.Join(parts, ", ")
}
