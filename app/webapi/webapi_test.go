package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-doorman/app/webapi/mocks"
)

type webapiTestFixture struct {
	srv        *Server
	detector   *mocks.DetectorMock
	filter     *mocks.SpamFilterMock
	trust      *mocks.TrustMock
	badContent *mocks.BadContentMock
	ts         *httptest.Server
}

func newTestServer(t *testing.T) *webapiTestFixture {
	t.Helper()

	f := &webapiTestFixture{
		detector: &mocks.DetectorMock{
			ClassifyFunc:      func(text string) (bool, float64) { return false, 0 },
			TooManyEmojisFunc: func(text string) bool { return false },
			StopWordsFunc:     func(text string) (bool, string) { return false, "" },
		},
		filter: &mocks.SpamFilterMock{
			AddSpamFunc:                 func(msg string) error { return nil },
			AddHamFunc:                  func(msg string) error { return nil },
			ReloadSamplesFunc:           func() error { return nil },
			DynamicSamplesFunc:          func() ([]string, []string, error) { return []string{"spam1"}, []string{"ham1"}, nil },
			RemoveDynamicSpamSampleFunc: func(sample string) (int, error) { return 1, nil },
		},
		trust: &mocks.TrustMock{
			UnbanFunc: func(ctx context.Context, userID int64) error { return nil },
		},
		badContent: &mocks.BadContentMock{
			RemoveFunc: func(ctx context.Context, text string) error { return nil },
		},
	}

	f.srv = NewServer(Config{Version: "test", Detector: f.detector, SpamFilter: f.filter, Trust: f.trust, BadContent: f.badContent})
	router := routegroup.New(http.NewServeMux())
	f.srv.routes(router)
	f.ts = httptest.NewServer(router)
	t.Cleanup(f.ts.Close)

	return f
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var res map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestServer_CheckHandler(t *testing.T) {
	t.Run("clean message", func(t *testing.T) {
		f := newTestServer(t)
		resp, err := http.Post(f.ts.URL+"/check", "application/json", strings.NewReader(`{"msg":"hello"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		res := decodeBody(t, resp)
		assert.Equal(t, false, res["spam"])
		checks := res["checks"].(map[string]any)
		assert.Equal(t, "hello", checks["normalized"])
	})

	t.Run("spam by classifier", func(t *testing.T) {
		f := newTestServer(t)
		f.detector.ClassifyFunc = func(text string) (bool, float64) { return true, 92.5 }

		resp, err := http.Post(f.ts.URL+"/check", "application/json", strings.NewReader(`{"msg":"buy now"}`))
		require.NoError(t, err)
		res := decodeBody(t, resp)
		assert.Equal(t, true, res["spam"])
		classifier := res["checks"].(map[string]any)["classifier"].(map[string]any)
		assert.Equal(t, true, classifier["spam"])
		assert.InDelta(t, 92.5, classifier["score"], 0.001)
	})

	t.Run("spam by stop word only", func(t *testing.T) {
		f := newTestServer(t)
		f.detector.StopWordsFunc = func(text string) (bool, string) { return true, "казино" }

		resp, err := http.Post(f.ts.URL+"/check", "application/json", strings.NewReader(`{"msg":"тут казино"}`))
		require.NoError(t, err)
		res := decodeBody(t, resp)
		assert.Equal(t, true, res["spam"], "stop word alone marks the message")
		stop := res["checks"].(map[string]any)["stop_words"].(map[string]any)
		assert.Equal(t, "казино", stop["match"])
	})

	t.Run("bad json", func(t *testing.T) {
		f := newTestServer(t)
		resp, err := http.Post(f.ts.URL+"/check", "application/json", strings.NewReader(`not json`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_UpdateSamples(t *testing.T) {
	t.Run("spam sample", func(t *testing.T) {
		f := newTestServer(t)
		resp, err := http.Post(f.ts.URL+"/samples/spam", "application/json", strings.NewReader(`{"msg":"spam text"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		require.Equal(t, 1, len(f.filter.AddSpamCalls()))
		assert.Equal(t, "spam text", f.filter.AddSpamCalls()[0].Msg)
		assert.Empty(t, f.filter.AddHamCalls())
	})

	t.Run("ham sample", func(t *testing.T) {
		f := newTestServer(t)
		resp, err := http.Post(f.ts.URL+"/samples/ham", "application/json", strings.NewReader(`{"msg":"ham text"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		require.Equal(t, 1, len(f.filter.AddHamCalls()))
		assert.Equal(t, "ham text", f.filter.AddHamCalls()[0].Msg)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		f := newTestServer(t)
		resp, err := http.Post(f.ts.URL+"/samples/spam", "application/json", strings.NewReader(`{"msg":"  "}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, f.filter.AddSpamCalls())
	})

	t.Run("updater failure", func(t *testing.T) {
		f := newTestServer(t)
		f.filter.AddSpamFunc = func(msg string) error { return errors.New("disk full") }
		resp, err := http.Post(f.ts.URL+"/samples/spam", "application/json", strings.NewReader(`{"msg":"text"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_DeleteSample(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := newTestServer(t)
		req, err := http.NewRequest(http.MethodDelete, f.ts.URL+"/samples/spam", strings.NewReader(`{"msg":"old sample"}`))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)

		res := decodeBody(t, resp)
		assert.Equal(t, true, res["deleted"])
		assert.InDelta(t, 1, res["count"], 0.001)
		require.Equal(t, 1, len(f.filter.RemoveDynamicSpamSampleCalls()))
		assert.Equal(t, "old sample", f.filter.RemoveDynamicSpamSampleCalls()[0].Sample)

		require.Equal(t, 1, len(f.badContent.RemoveCalls()), "bad content record cleared too")
		assert.Equal(t, "old sample", f.badContent.RemoveCalls()[0].Text)
	})

	t.Run("bad content failure swallowed", func(t *testing.T) {
		f := newTestServer(t)
		f.badContent.RemoveFunc = func(ctx context.Context, text string) error { return errors.New("db gone") }
		req, err := http.NewRequest(http.MethodDelete, f.ts.URL+"/samples/spam", strings.NewReader(`{"msg":"old sample"}`))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "sample removal succeeds regardless")
	})
}

func TestServer_GetSamples(t *testing.T) {
	f := newTestServer(t)
	resp, err := http.Get(f.ts.URL + "/samples")
	require.NoError(t, err)

	res := decodeBody(t, resp)
	assert.Equal(t, []any{"spam1"}, res["spam"])
	assert.Equal(t, []any{"ham1"}, res["ham"])
}

func TestServer_ReloadSamples(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := newTestServer(t)
		req, err := http.NewRequest(http.MethodPut, f.ts.URL+"/samples", http.NoBody)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
		assert.Equal(t, 1, len(f.filter.ReloadSamplesCalls()))
	})

	t.Run("failure", func(t *testing.T) {
		f := newTestServer(t)
		f.filter.ReloadSamplesFunc = func() error { return errors.New("bad file") }
		req, err := http.NewRequest(http.MethodPut, f.ts.URL+"/samples", http.NoBody)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_Unban(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := newTestServer(t)
		resp, err := http.Post(f.ts.URL+"/unban/12345", "application/json", http.NoBody)
		require.NoError(t, err)

		res := decodeBody(t, resp)
		assert.Equal(t, true, res["unbanned"])
		require.Equal(t, 1, len(f.trust.UnbanCalls()))
		assert.Equal(t, int64(12345), f.trust.UnbanCalls()[0].UserID)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newTestServer(t)
		resp, err := http.Post(f.ts.URL+"/unban/notanumber", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, f.trust.UnbanCalls())
	})

	t.Run("store failure", func(t *testing.T) {
		f := newTestServer(t)
		f.trust.UnbanFunc = func(ctx context.Context, userID int64) error { return errors.New("db gone") }
		resp, err := http.Post(f.ts.URL+"/unban/12345", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_RunWithAuth(t *testing.T) {
	detector := &mocks.DetectorMock{
		ClassifyFunc:      func(text string) (bool, float64) { return false, 0 },
		TooManyEmojisFunc: func(text string) bool { return false },
		StopWordsFunc:     func(text string) (bool, string) { return false, "" },
	}
	filter := &mocks.SpamFilterMock{
		DynamicSamplesFunc: func() ([]string, []string, error) { return nil, nil, nil },
	}

	srv := NewServer(Config{
		Version: "test", ListenAddr: "127.0.0.1:18086",
		Detector: detector, SpamFilter: filter, Trust: &mocks.TrustMock{}, AuthPasswd: "secret",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	t.Run("no auth rejected", func(t *testing.T) {
		resp, err := http.Get("http://127.0.0.1:18086/samples")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("with auth accepted", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:18086/samples", http.NoBody)
		require.NoError(t, err)
		req.SetBasicAuth("tg-doorman", "secret")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("ping responds", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:18086/ping", http.NoBody)
		require.NoError(t, err)
		req.SetBasicAuth("tg-doorman", "secret")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "pong", string(body))
	})

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	p1, err := GenerateRandomPassword(32)
	require.NoError(t, err)
	assert.Len(t, p1, 32)

	p2, err := GenerateRandomPassword(32)
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2, "passwords are random")
}
