package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// fakeGetter is a minimal paramstore.Getter stub for use within this package.
type fakeGetter struct {
	val    string
	err    error
	onCall func()
}

func (f *fakeGetter) GetParameter(_ context.Context, _ string) (string, error) {
	if f.onCall != nil {
		f.onCall()
	}
	return f.val, f.err
}

type capturedRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

type fakeServer struct {
	srv      *httptest.Server
	auth     string
	path     string
	captured capturedRequest
	calls    int
}

func newFakeServer(t *testing.T, status int, body string) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.calls++
		fs.auth = r.Header.Get("Authorization")
		fs.path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&fs.captured)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(fs.srv.Close)
	return fs
}

const okBody = `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
	"choices":[{"index":0,"message":{"role":"assistant","content":"Drink water and rest."},"finish_reason":"stop"}]}`

func newTestClient(t *testing.T, fs *fakeServer, opts ...Option) *Client {
	t.Helper()
	base := []Option{
		WithAPIKey("sk-test"),
		WithBaseURL(fs.srv.URL + "/v1"),
		WithHTTPClient(&http.Client{Timeout: 2 * time.Second}),
	}
	c, err := NewClient(append(base, opts...)...)
	require.NoError(t, err)
	return c
}

// ---------------------------------------------------------------------------
// NewClient
// ---------------------------------------------------------------------------

func TestNewClient_RequiresKeySource(t *testing.T) {
	_, err := NewClient()
	require.Error(t, err)
	require.Contains(t, err.Error(), "required")
}

func TestNewClient_KeySourcesAreExclusive(t *testing.T) {
	_, err := NewClient(WithAPIKey("sk"), WithParamStore(&fakeGetter{}, "/fitlife"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "mutually exclusive")
}

func TestNewClient_EmptyPrefix(t *testing.T) {
	_, err := NewClient(WithParamStore(&fakeGetter{}, " / "))
	require.Error(t, err)
	require.Contains(t, err.Error(), "prefix")
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(WithAPIKey("sk"), WithBaseURL(" "), WithModel(""))
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, c.baseURL)
	require.Equal(t, DefaultModel, c.model)
	require.NotNil(t, c.httpClient)
}

// ---------------------------------------------------------------------------
// fetchAPIKeyFromParamStore
// ---------------------------------------------------------------------------

func TestFetchAPIKey_JSONToken(t *testing.T) {
	g := &fakeGetter{val: `{"token":"sk-from-json"}`}
	key, err := fetchAPIKeyFromParamStore(context.Background(), g, "/fitlife/open-ai-token")
	require.NoError(t, err)
	require.Equal(t, "sk-from-json", key)
}

func TestFetchAPIKey_Errors(t *testing.T) {
	_, err := fetchAPIKeyFromParamStore(context.Background(), &fakeGetter{val: `{"other":"value"}`}, "/fitlife/open-ai-token")
	require.ErrorContains(t, err, "API token is empty")

	_, err = fetchAPIKeyFromParamStore(context.Background(), &fakeGetter{val: `{"broken`}, "/fitlife/open-ai-token")
	require.ErrorContains(t, err, "unmarshal")

	_, err = fetchAPIKeyFromParamStore(context.Background(), &fakeGetter{err: errors.New("ssm unavailable")}, "/fitlife/open-ai-token")
	require.ErrorContains(t, err, "ssm unavailable")

	_, err = fetchAPIKeyFromParamStore(context.Background(), nil, "/fitlife/open-ai-token")
	require.ErrorContains(t, err, "nil")

	_, err = fetchAPIKeyFromParamStore(context.Background(), &fakeGetter{val: `{"token":"sk"}`}, " ")
	require.ErrorContains(t, err, "empty")
}

// ---------------------------------------------------------------------------
// Client.Complete
// ---------------------------------------------------------------------------

func TestComplete_HappyPath(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, okBody)
	c := newTestClient(t, fs)

	out, err := c.Complete(context.Background(), "be a coach", "how much water?")
	require.NoError(t, err)
	require.Equal(t, "Drink water and rest.", out)

	require.Equal(t, "/v1/chat/completions", fs.path)
	require.Equal(t, "Bearer sk-test", fs.auth)
	require.Equal(t, DefaultModel, fs.captured.Model)
	require.InDelta(t, 0.7, fs.captured.Temperature, 0.001)
	require.Equal(t, 1024, fs.captured.MaxTokens)
	require.Len(t, fs.captured.Messages, 2)
	require.Equal(t, "system", fs.captured.Messages[0].Role)
	require.Equal(t, "be a coach", fs.captured.Messages[0].Content)
	require.Equal(t, "user", fs.captured.Messages[1].Role)
	require.Equal(t, "how much water?", fs.captured.Messages[1].Content)
}

func TestComplete_ResolvesKeyFromParamStoreEachCall(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, okBody)
	calls := 0
	g := &fakeGetter{val: `{"token":"sk-from-ssm"}`, onCall: func() { calls++ }}
	c, err := NewClient(WithParamStore(g, "/fitlife/"), WithBaseURL(fs.srv.URL+"/v1"))
	require.NoError(t, err)
	require.Equal(t, "/fitlife/open-ai-token", c.tokenParameterName())

	_, err = c.Complete(context.Background(), "s", "m")
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), "s", "m")
	require.NoError(t, err)
	require.Equal(t, "Bearer sk-from-ssm", fs.auth)
	require.Equal(t, 2, calls)
}

func TestComplete_KeyErrorSkipsRequest(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, okBody)
	c, err := NewClient(WithParamStore(&fakeGetter{err: errors.New("denied")}, "/fitlife"), WithBaseURL(fs.srv.URL+"/v1"))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "s", "m")
	require.ErrorContains(t, err, "denied")
	require.Zero(t, fs.calls)
}

func TestComplete_StatusError(t *testing.T) {
	fs := newFakeServer(t, http.StatusTooManyRequests, `{"error":{"message":"slow down","type":"rate_limit_exceeded"}}`)
	c := newTestClient(t, fs)

	_, err := c.Complete(context.Background(), "s", "m")
	require.Error(t, err)
	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusTooManyRequests, statusErr.HTTPStatusCode())
	require.Contains(t, err.Error(), "slow down")
}

func TestComplete_StatusErrorWithoutJSONBody(t *testing.T) {
	fs := newFakeServer(t, http.StatusBadGateway, `upstream exploded`)
	c := newTestClient(t, fs)

	_, err := c.Complete(context.Background(), "s", "m")
	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestComplete_NoChoices(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"id":"x","choices":[]}`)
	c := newTestClient(t, fs)

	_, err := c.Complete(context.Background(), "s", "m")
	require.ErrorContains(t, err, "no choices")
}

func TestComplete_Unreachable(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, okBody)
	c := newTestClient(t, fs)
	fs.srv.Close()

	_, err := c.Complete(context.Background(), "s", "m")
	require.Error(t, err)
}

func TestComplete_RateLimited(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, okBody)
	c := newTestClient(t, fs, WithRateLimiter(rate.NewLimiter(rate.Every(time.Hour), 1)))

	_, err := c.Complete(context.Background(), "s", "m")
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "s", "m")
	require.ErrorIs(t, err, ErrRateLimited)
	require.Equal(t, 1, fs.calls)
}
