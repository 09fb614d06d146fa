package term

import (
	"fmt"
	"log"
	"os"
	"strings"

	"socialnet-cli/shared"

	"github.com/fatih/color"
)

// OutputSimpleError prints a one-line error without exiting, used for form
// errors the user can fix and retry.
func OutputSimpleError(msg string, args ...interface{}) {
	StopSpinner()
	msg = fmt.Sprintf(msg, args...)
	log.Println("error shown:", msg)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

// OutputErrorAndExit prints an error and exits 1. Wrapped errors
// ("loading posts: request failed: ...") are shown one cause per line.
func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()

	msg = fmt.Sprintf(msg, args...)
	log.Println("exiting with error:", msg)

	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint(formatErrorChain(msg)))
	os.Exit(1)
}

func formatErrorChain(msg string) string {
	var lines []string
	seen := map[string]bool{}

	for _, part := range strings.Split(msg, ": ") {
		part = strings.TrimSpace(part)
		key := strings.ToLower(part)
		if part == "" || seen[key] {
			continue
		}
		seen[key] = true

		if len(lines) == 0 {
			lines = append(lines, "🚨 "+shared.Capitalize(part))
			continue
		}
		lines = append(lines, strings.Repeat("  ", len(lines))+"→ "+shared.Capitalize(part))
	}

	return strings.Join(lines, "\n")
}

// Alert interrupts with an error from a background action (a reaction or a
// deletion) without exiting.
func Alert(msg string, args ...interface{}) {
	StopSpinner()
	msg = fmt.Sprintf(msg, args...)
	log.Println("alert:", msg)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, color.New(color.Bold, color.FgHiWhite, color.BgRed).Sprint(" ⚠️  "+shared.Capitalize(msg)+" "))
	fmt.Fprintln(os.Stderr)
}
