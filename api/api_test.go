package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"socialnet-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSessions struct {
	session shared.Session
	err     error
}

func (s *staticSessions) Read() (shared.Session, error) {
	return s.session, s.err
}

func newTestApi(t *testing.T, handler http.HandlerFunc, session shared.Session) *Api {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Options{
		Host:     srv.URL + "/api/",
		Sessions: &staticSessions{session: session},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestAuthorizationHeaderAttached(t *testing.T) {
	var gotAuth, gotRequestId string
	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestId = r.Header.Get("X-Request-Id")
		assert.Equal(t, "/api/posts/", r.URL.Path)
		writeJSON(w, http.StatusOK, []*shared.Post{})
	}, shared.Session{AccessToken: "A", RefreshToken: "R"})

	_, apiErr := a.ListPosts(context.Background())
	require.Nil(t, apiErr)

	assert.Equal(t, "Bearer A", gotAuth)
	assert.NotEmpty(t, gotRequestId)
}

func TestNoHeaderWithoutAccessToken(t *testing.T) {
	called := false
	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, present := r.Header["Authorization"]
		assert.False(t, present)
		writeJSON(w, http.StatusOK, []*shared.Post{})
	}, shared.Session{RefreshToken: "R"})

	_, apiErr := a.ListPosts(context.Background())
	require.Nil(t, apiErr)
	assert.True(t, called)
}

func TestLoginIsUnauthenticated(t *testing.T) {
	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login/", r.URL.Path)

		var req shared.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, shared.LoginRequest{Username: "bob", Password: "x"}, req)

		writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful", "access": "A", "refresh": "R"})
	}, shared.Session{AccessToken: "stale"})

	res, apiErr := a.Login(context.Background(), shared.LoginRequest{Username: "bob", Password: "x"})
	require.Nil(t, apiErr)
	assert.Equal(t, shared.Session{AccessToken: "A", RefreshToken: "R"}, res.Session())
}

func TestSessionReadErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the server")
	}))
	defer srv.Close()

	a := New(Options{
		Host:     srv.URL + "/api/",
		Sessions: &staticSessions{err: errors.New("disk on fire")},
	})

	_, apiErr := a.ListPosts(context.Background())
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Msg, "disk on fire")
}

func TestUnauthorizedIsInvalidToken(t *testing.T) {
	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"detail": "Given token not valid for any token type",
			"code":   "token_not_valid",
		})
	}, shared.Session{AccessToken: "expired"})

	_, apiErr := a.GetProfile(context.Background())
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeInvalidToken, apiErr.Type)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Given token not valid for any token type", apiErr.Msg)
}

func TestValidationFieldErrors(t *testing.T) {
	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"username": []string{"A user with that username already exists."},
			"email":    "Enter a valid email address.",
		})
	}, shared.Session{})

	_, apiErr := a.Signup(context.Background(), shared.SignupRequest{Username: "bob"})
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
	assert.Equal(t, []string{"A user with that username already exists."}, apiErr.FieldErrors["username"])
	assert.Equal(t, []string{"Enter a valid email address."}, apiErr.FieldErrors["email"])
	assert.Equal(t, "email: Enter a valid email address.; username: A user with that username already exists.", apiErr.Msg)
}

func TestNonJSONError(t *testing.T) {
	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "  bad gateway  ")
	}, shared.Session{AccessToken: "A"})

	_, apiErr := a.ListPosts(context.Background())
	require.NotNil(t, apiErr)
	assert.Equal(t, shared.ApiErrorTypeOther, apiErr.Type)
	assert.Equal(t, "bad gateway", apiErr.Msg)
}

func TestReact(t *testing.T) {
	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/posts/42/react/", r.URL.Path)

		var req shared.ReactionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, shared.ReactionDislike, req.Reaction)

		writeJSON(w, http.StatusOK, map[string]any{
			"id":             42,
			"author":         "alice",
			"dislikes_count": 5,
			"user_reaction":  "dislike",
		})
	}, shared.Session{AccessToken: "A"})

	post, apiErr := a.React(context.Background(), 42, shared.ReactionRequest{Reaction: shared.ReactionDislike})
	require.Nil(t, apiErr)
	assert.Equal(t, int64(42), post.Id)
	assert.Equal(t, 5, post.DislikesCount)
	assert.Equal(t, shared.ReactionDislike, post.UserReaction)
}

func TestReactionNullDecodesToNone(t *testing.T) {
	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id": 1, "author": "alice", "likes_count": 0, "dislikes_count": 0, "user_reaction": null}]`)
	}, shared.Session{AccessToken: "A"})

	posts, apiErr := a.ListPosts(context.Background())
	require.Nil(t, apiErr)
	require.Len(t, posts, 1)
	assert.Equal(t, shared.ReactionNone, posts[0].UserReaction)
}

func TestDeletePost(t *testing.T) {
	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/posts/7/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}, shared.Session{AccessToken: "A"})

	assert.Nil(t, a.DeletePost(context.Background(), 7))
}

// smallest valid PNG header, enough for content sniffing
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func writeTestImage(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0600))
	return path
}

func TestUpdateProfileMultipart(t *testing.T) {
	imagePath := writeTestImage(t)

	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/profile/", r.URL.Path)
		assert.Equal(t, "Bearer A", r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "alice2", r.FormValue("username"))
		assert.Equal(t, "hello", r.FormValue("bio"))
		assert.Equal(t, "", r.FormValue("location"))
		_, hasDob := r.MultipartForm.Value["date_of_birth"]
		assert.False(t, hasDob)

		files := r.MultipartForm.File["profile_image"]
		require.Len(t, files, 1)
		assert.Equal(t, "photo.png", files[0].Filename)
		assert.Equal(t, "image/png", files[0].Header.Get("Content-Type"))

		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "username": "alice2", "bio": "hello"})
	}, shared.Session{AccessToken: "A"})

	profile, apiErr := a.UpdateProfile(context.Background(), shared.ProfileEdits{
		Username:         "alice2",
		Bio:              "hello",
		ProfileImagePath: imagePath,
	})
	require.Nil(t, apiErr)
	assert.Equal(t, "alice2", profile.Username)
}

func TestCreatePostMultipart(t *testing.T) {
	imagePath := writeTestImage(t)

	a := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/posts/", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "sunset", r.FormValue("description"))
		require.Len(t, r.MultipartForm.File["image"], 1)

		writeJSON(w, http.StatusCreated, map[string]any{"id": 9, "author": "alice", "description": "sunset"})
	}, shared.Session{AccessToken: "A"})

	post, apiErr := a.CreatePost(context.Background(), shared.CreatePostRequest{ImagePath: imagePath, Description: "sunset"})
	require.Nil(t, apiErr)
	assert.Equal(t, int64(9), post.Id)
}
