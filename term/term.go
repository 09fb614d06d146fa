package term

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type cmdHelp struct {
	alias string
	desc  string
}

// CmdDesc is the short help shown after a command to suggest what to run
// next.
var CmdDesc = map[string]cmdHelp{
	"sign-in":     {"", "sign in to your account"},
	"sign-up":     {"", "create an account"},
	"sign-out":    {"", "sign out and forget tokens"},
	"feed":        {"f", "show the feed"},
	"like":        {"", "like or un-like a post"},
	"dislike":     {"", "dislike or un-dislike a post"},
	"post":        {"p", "share a new photo"},
	"profile":     {"pr", "show your profile and posts"},
	"delete-post": {"", "delete one of your posts"},
}

func PrintCmds(prefix string, cmds ...string) {
	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd))
	}

	for _, cmd := range cmds {
		help, ok := CmdDesc[cmd]
		if !ok {
			log.Printf("no help for command %q", cmd)
			continue
		}

		label := cmd
		if help.alias != "" && strings.HasPrefix(cmd, help.alias) {
			label = "(" + help.alias + ")" + cmd[len(help.alias):]
		}
		pad := strings.Repeat(" ", width-len(cmd))
		styled := color.New(color.Bold, color.FgHiWhite, color.BgCyan).Sprintf(" socialnet %s ", label)

		fmt.Printf("%s%s%s 👉 %s\n", prefix, styled, pad, help.desc)
	}
}

// IsInteractive reports whether we can prompt the user.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func ClearCurrentLine() {
	fmt.Fprint(os.Stderr, "\r\033[2K")
}

func GetDivisionLine() string {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 50
	}
	return strings.Repeat("─", min(width, 100))
}
