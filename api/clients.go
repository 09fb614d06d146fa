package api

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"socialnet-cli/types"

	"github.com/google/uuid"
)

const dialTimeout = 10 * time.Second
const defaultFastReqTimeout = 30 * time.Second
const defaultSlowReqTimeout = 5 * time.Minute

type Options struct {
	// Base endpoint every path is resolved against, with a trailing slash.
	Host     string
	Sessions types.SessionReader

	Timeout       time.Duration
	UploadTimeout time.Duration

	// Underlying transport, defaults to a fresh http.Transport.
	Transport http.RoundTripper
}

type Api struct {
	host string

	unauthenticatedClient   *http.Client
	authenticatedFastClient *http.Client
	authenticatedSlowClient *http.Client
}

var _ types.ApiClient = (*Api)(nil)

func New(opts Options) *Api {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultFastReqTimeout
	}
	uploadTimeout := opts.UploadTimeout
	if uploadTimeout == 0 {
		uploadTimeout = defaultSlowReqTimeout
	}

	underlying := opts.Transport
	if underlying == nil {
		netDialer := &net.Dialer{Timeout: dialTimeout}
		underlying = &http.Transport{DialContext: netDialer.DialContext}
	}

	logged := &loggingTransport{underlyingTransport: underlying}
	authenticated := &authenticatedTransport{
		sessions:            opts.Sessions,
		underlyingTransport: logged,
	}

	return &Api{
		host: opts.Host,
		unauthenticatedClient: &http.Client{
			Transport: logged,
			Timeout:   timeout,
		},
		authenticatedFastClient: &http.Client{
			Transport: authenticated,
			Timeout:   timeout,
		},
		authenticatedSlowClient: &http.Client{
			Transport: authenticated,
			Timeout:   uploadTimeout,
		},
	}
}

// authenticatedTransport attaches the current access token, if any, to every
// outgoing request. It never looks at responses: failures reach the caller
// untouched and nothing is retried.
type authenticatedTransport struct {
	sessions            types.SessionReader
	underlyingTransport http.RoundTripper
}

func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	session, err := t.sessions.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading session: %v", err)
	}

	if session.AccessToken != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	return t.underlyingTransport.RoundTrip(req)
}

// loggingTransport tags each request with an id and writes a line per
// request to the diagnostic log.
type loggingTransport struct {
	underlyingTransport http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestId := uuid.NewString()

	req = req.Clone(req.Context())
	req.Header.Set("X-Request-Id", requestId)

	start := time.Now()
	resp, err := t.underlyingTransport.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("[%s] %s %s failed after %s: %v", requestId, req.Method, req.URL.Path, elapsed, err)
		return nil, err
	}

	log.Printf("[%s] %s %s -> %d (%s)", requestId, req.Method, req.URL.Path, resp.StatusCode, elapsed)

	return resp, nil
}
