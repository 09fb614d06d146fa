package term

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cqroot/prompt"
	"github.com/cqroot/prompt/input"
	"github.com/eiannone/keyboard"
	"github.com/fatih/color"
)

var ErrNotInteractive = errors.New("can't prompt without a terminal")

// ask runs one text prompt. Ctrl+C quits the program outright, like it
// does everywhere else in the CLI.
func ask(msg, def string, opts ...input.Option) (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}

	res, err := prompt.New().Ask(msg).Input(def, opts...)
	if errors.Is(err, prompt.ErrUserQuit) {
		fmt.Println()
		os.Exit(0)
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(res), nil
}

// GetRequiredUserStringInput asks until a non-blank answer is given.
func GetRequiredUserStringInput(msg string) (string, error) {
	for {
		res, err := ask(msg, "")
		if err != nil {
			return "", fmt.Errorf("failed to get user input: %w", err)
		}
		if res != "" {
			return res, nil
		}
		color.New(color.Bold, ColorHiRed).Println("🚨 This field is required")
	}
}

func GetUserStringInputWithDefault(msg, def string) (string, error) {
	return ask(msg, def)
}

// GetUserPasswordInput reads a secret without echoing it. The value is not
// trimmed.
func GetUserPasswordInput(msg string) (string, error) {
	if !IsInteractive() {
		return "", ErrNotInteractive
	}

	res, err := prompt.New().Ask(msg).Input("", input.WithEchoMode(input.EchoPassword))
	if errors.Is(err, prompt.ErrUserQuit) {
		fmt.Println()
		os.Exit(0)
	}
	return res, err
}

// ConfirmYesNo reads a single y or n keypress, asking again on anything
// else. Esc and Ctrl+C count as no.
func ConfirmYesNo(fmtStr string, fmtArgs ...interface{}) (bool, error) {
	if !IsInteractive() {
		return false, ErrNotInteractive
	}

	if err := keyboard.Open(); err != nil {
		return false, fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer func() {
		_ = keyboard.Close()
	}()

	question := color.New(ColorHiMagenta, color.Bold).Sprintf(fmtStr, fmtArgs...)
	for {
		fmt.Printf("%s %s ", question, color.New(color.FgHiBlack).Sprint("(y/n)"))

		char, key, err := keyboard.GetKey()
		if err != nil {
			return false, fmt.Errorf("failed to read keypress: %w", err)
		}

		switch {
		case char == 'y' || char == 'Y':
			fmt.Println("yes")
			return true, nil
		case char == 'n' || char == 'N' || key == keyboard.KeyEsc || key == keyboard.KeyCtrlC:
			fmt.Println("no")
			return false, nil
		}

		fmt.Println()
		color.New(ColorHiRed, color.Bold).Println("Press 'y' for yes or 'n' for no.")
	}
}
