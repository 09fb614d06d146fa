package auth

import (
	"context"
	"errors"
	"fmt"

	"socialnet-cli/shared"
	"socialnet-cli/term"

	"github.com/fatih/color"
)

// PromptSignIn asks for credentials until sign in succeeds or fails with
// something other than a form error.
func (a *Auth) PromptSignIn(ctx context.Context) error {
	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		return fmt.Errorf("error prompting username: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	term.StartSpinner("")
	err = a.SignIn(ctx, username, password)
	term.StopSpinner()

	if err != nil {
		var validationErr *shared.ValidationError
		var apiErr *shared.ApiError
		if errors.As(err, &validationErr) {
			term.OutputSimpleError(validationErr.Msg)
			return a.PromptSignIn(ctx)
		}
		if errors.As(err, &apiErr) && apiErr.Type == shared.ApiErrorTypeValidation {
			term.OutputSimpleError(apiErr.Msg)
			return a.PromptSignIn(ctx)
		}
		return err
	}

	fmt.Printf("✅ Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(username))
	fmt.Println()

	return nil
}

// PromptSignUp collects the sign up form. Field errors from the server are
// shown and the form is asked again.
func (a *Auth) PromptSignUp(ctx context.Context) error {
	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		return fmt.Errorf("error prompting username: %v", err)
	}

	email, err := term.GetRequiredUserStringInput("Email:")
	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	confirm, err := term.GetUserPasswordInput("Confirm password:")
	if err != nil {
		return fmt.Errorf("error prompting password confirmation: %v", err)
	}

	term.StartSpinner("🌟 Creating account...")
	err = a.SignUp(ctx, shared.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, confirm)
	term.StopSpinner()

	if err != nil {
		var validationErr *shared.ValidationError
		var apiErr *shared.ApiError
		if errors.As(err, &validationErr) {
			term.OutputSimpleError(validationErr.Msg)
			return a.PromptSignUp(ctx)
		}
		if errors.As(err, &apiErr) && apiErr.Type == shared.ApiErrorTypeValidation {
			term.OutputSimpleError(apiErr.Msg)
			return a.PromptSignUp(ctx)
		}
		return err
	}

	fmt.Printf("✅ Account created. Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(username))
	fmt.Println()

	return nil
}
