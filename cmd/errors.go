package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"socialnet-cli/lib"
	"socialnet-cli/shared"
	"socialnet-cli/term"
)

// mustHandleErr reports a failed foreground action (a load or a form
// submission) and exits. Rejected tokens always end in sign out and a
// redirect to sign in.
func mustHandleErr(ctx context.Context, err error, action string) {
	if err == nil {
		return
	}

	mustHandleInvalidToken(ctx, err)

	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		term.OutputSimpleError(validationErr.Msg)
		os.Exit(1)
	}

	term.OutputErrorAndExit("%s", describeErr(err, action))
}

// mustAlertErr is mustHandleErr for background actions like reactions and
// deletions, which get an interrupting alert instead of an inline error.
func mustAlertErr(ctx context.Context, err error, action string) {
	if err == nil {
		return
	}

	mustHandleInvalidToken(ctx, err)

	term.Alert("%s", describeAlert(err, action))
	os.Exit(1)
}

func mustHandleInvalidToken(ctx context.Context, err error) {
	var apiErr *shared.ApiError
	if errors.As(err, &apiErr) && apiErr.Type == shared.ApiErrorTypeInvalidToken {
		session.MustHandleInvalidToken(ctx, apiErr)
	}
}

// describeErr is the message for a failed foreground action. A profile
// reload failure says so, since the save itself went through.
func describeErr(err error, action string) string {
	var reloadErr *lib.ProfileReloadError
	if errors.As(err, &reloadErr) {
		return fmt.Sprintf("Profile saved, but reloading it failed: %s", errMsg(reloadErr.Err))
	}

	return fmt.Sprintf("Error %s: %s", action, errMsg(err))
}

func describeAlert(err error, action string) string {
	return fmt.Sprintf("Failed to %s: %s", action, errMsg(err))
}

// errMsg prefers the server's own message over the status-decorated one.
func errMsg(err error) string {
	var validationErr *shared.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Msg
	}

	var apiErr *shared.ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Msg
	}

	return err.Error()
}
