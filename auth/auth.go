package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"socialnet-cli/shared"
	"socialnet-cli/term"
	"socialnet-cli/types"
)

// Allow reports whether a protected view may be shown. Only the presence of
// the access token counts; expiry is left to the server.
func Allow(session shared.Session) bool {
	return session.AccessToken != ""
}

// Auth owns the session lifecycle: it is the only writer of the store and
// the guard every protected command goes through.
type Auth struct {
	store  Store
	client types.ApiClient

	// overridable in tests
	interactive  func() bool
	promptSignIn func(ctx context.Context) error
}

func New(store Store, client types.ApiClient) *Auth {
	a := &Auth{
		store:       store,
		client:      client,
		interactive: term.IsInteractive,
	}
	a.promptSignIn = a.PromptSignIn
	return a
}

func (a *Auth) Store() Store {
	return a.store
}

// Check re-reads the store on every call.
func (a *Auth) Check() (bool, error) {
	session, err := a.store.Read()
	if err != nil {
		return false, err
	}
	return Allow(session), nil
}

// MustResolveAuth gates a protected command. When there is no access token
// the user is sent to the sign in flow; the command continues only if that
// flow succeeds.
func (a *Auth) MustResolveAuth(ctx context.Context) {
	err := a.resolveAuth(ctx)
	if err != nil {
		mustExitDenied(err)
	}
}

// MustAllow is the page-level check used by views that must never render
// without a session, even when reached without the route guard.
func (a *Auth) MustAllow(ctx context.Context) {
	a.MustResolveAuth(ctx)
}

// MustHandleInvalidToken runs when the server rejected the access token:
// the session is cleared and the user is sent to sign in. The rejected
// operation is not retried.
func (a *Auth) MustHandleInvalidToken(ctx context.Context, apiErr *shared.ApiError) {
	err := a.invalidate(apiErr)
	if err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	err = a.redirectToSignIn(ctx, "Your session is no longer valid. Please sign in again.")
	if err != nil {
		mustExitDenied(err)
	}
	term.OutputErrorAndExit("The last action was not completed. Please run it again.")
}

// errSignInRequired means the user must sign in but can't be prompted here.
var errSignInRequired = errors.New("sign in required")

func (a *Auth) resolveAuth(ctx context.Context) error {
	allowed, err := a.Check()
	if err != nil {
		return fmt.Errorf("error resolving auth: %v", err)
	}
	if allowed {
		return nil
	}

	log.Println("no access token, redirecting to sign in")
	return a.redirectToSignIn(ctx, "You're not signed in.")
}

// invalidate signs out after the server rejected the stored token.
func (a *Auth) invalidate(apiErr *shared.ApiError) error {
	log.Printf("access token rejected: %v", apiErr)

	err := a.SignOut()
	if err != nil {
		return fmt.Errorf("error clearing session: %v", err)
	}
	return nil
}

// redirectToSignIn runs the sign in prompt when there's a terminal to ask
// on. Otherwise it shows the sign in commands and returns errSignInRequired.
func (a *Auth) redirectToSignIn(ctx context.Context, msg string) error {
	term.OutputSimpleError(msg)

	if !a.interactive() {
		term.PrintCmds("", "sign-in", "sign-up")
		return errSignInRequired
	}

	err := a.promptSignIn(ctx)
	if err != nil {
		return fmt.Errorf("error signing in: %v", err)
	}
	return nil
}

func mustExitDenied(err error) {
	if errors.Is(err, errSignInRequired) {
		os.Exit(1)
	}
	term.OutputErrorAndExit("%v", err)
}

// SignIn validates the form, exchanges the credentials for tokens and
// persists them.
func (a *Auth) SignIn(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return shared.NewValidationError("", "Username and password are required.")
	}

	res, apiErr := a.client.Login(ctx, shared.LoginRequest{
		Username: username,
		Password: password,
	})
	if apiErr != nil {
		return credentialsError(apiErr)
	}

	return a.setSession(res)
}

// SignUp validates the form, creates the account and persists the tokens.
func (a *Auth) SignUp(ctx context.Context, req shared.SignupRequest, passwordConfirm string) error {
	if strings.TrimSpace(req.Username) == "" {
		return shared.NewValidationError("username", "Username is required.")
	}
	if strings.TrimSpace(req.Email) == "" {
		return shared.NewValidationError("email", "Email is required.")
	}
	if req.Password == "" {
		return shared.NewValidationError("password", "Password is required.")
	}
	if req.Password != passwordConfirm {
		return shared.NewValidationError("password2", "Passwords do not match.")
	}

	res, apiErr := a.client.Signup(ctx, req)
	if apiErr != nil {
		return credentialsError(apiErr)
	}

	return a.setSession(res)
}

// SignOut removes both tokens. There is no server call and no confirmation.
func (a *Auth) SignOut() error {
	err := a.store.Clear()
	if err != nil {
		return fmt.Errorf("error clearing auth: %v", err)
	}
	return nil
}

// credentialsError keeps a rejected login from looking like an expired
// session; nothing is stored yet, so there's nothing to sign out of.
func credentialsError(apiErr *shared.ApiError) *shared.ApiError {
	if apiErr.Type == shared.ApiErrorTypeInvalidToken {
		apiErr.Type = shared.ApiErrorTypeValidation
	}
	if apiErr.Type == shared.ApiErrorTypeValidation && apiErr.Msg == "" {
		apiErr.Msg = "Invalid credentials. Please check username/password."
	}
	return apiErr
}

func (a *Auth) setSession(res *shared.SessionResponse) error {
	if res == nil || res.Access == "" {
		return fmt.Errorf("server returned no access token")
	}

	err := a.store.Save(res.Session())
	if err != nil {
		return fmt.Errorf("error saving session: %v", err)
	}

	return nil
}
