package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-import/models"
)

// RenderSummary renders the final report of an import run.
func RenderSummary(result models.ImportResult) string {
	var b strings.Builder
	outcome := result.Outcome

	switch {
	case !result.OK():
		b.WriteString(errorStyle.Render("Import failed"))
		fmt.Fprintf(&b, " in phase %q\n", result.FailedPhase)
		b.WriteString(humanizeVaultError(result.Err()))
		b.WriteString("\n")
	case result.Partial():
		b.WriteString(warnStyle.Render("Import finished with errors"))
		b.WriteString("\n")
	default:
		b.WriteString(okStyle.Render("Import finished"))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Processed: %d/%d\n", outcome.Processed, outcome.Total)
	if n := len(outcome.TagIDs); n > 0 {
		fmt.Fprintf(&b, "Tags mapped: %d\n", n)
	}
	if n := len(outcome.FolderIDs); n > 0 {
		fmt.Fprintf(&b, "Folders mapped: %d\n", n)
	}
	if n := len(outcome.PasswordIDs); n > 0 {
		fmt.Fprintf(&b, "Passwords mapped: %d\n", n)
	}

	if len(outcome.Errors) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("Errors (%d):", len(outcome.Errors))))
		b.WriteString("\n")
		for _, msg := range outcome.Errors {
			b.WriteString("  - ")
			b.WriteString(msg)
			b.WriteString("\n")
		}
	}

	return summaryStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderBuildInfo renders the version banner of a command.
func RenderBuildInfo(name string, info models.AppBuildInfo) string {
	return fmt.Sprintf("%s %s\n%s",
		titleStyle.Render(name),
		valueOrNA(info.BuildVersion()),
		helpStyle.Render(fmt.Sprintf("date: %s, commit: %s", valueOrNA(info.BuildDate()), valueOrNA(info.BuildCommit()))),
	)
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
