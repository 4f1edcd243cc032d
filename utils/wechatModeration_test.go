package utils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"foodapi/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeChat struct {
	tokenCalls atomic.Int32
	checkCalls atomic.Int32
	tokenBody  string
	checkCode  int

	mu         sync.Mutex
	lastToken  string
	lastBody   map[string]string
}

func (f *fakeWeChat) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/cgi-bin/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		assert.Equal(t, "client_credential", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "wx-app", r.URL.Query().Get("appid"))
		assert.Equal(t, "wx-secret", r.URL.Query().Get("secret"))
		_, _ = io.WriteString(w, f.tokenBody)
	})
	mux.HandleFunc("/wxa/msg_sec_check", func(w http.ResponseWriter, r *http.Request) {
		f.checkCalls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		f.mu.Lock()
		f.lastToken = r.URL.Query().Get("access_token")
		f.lastBody = map[string]string{}
		_ = json.NewDecoder(r.Body).Decode(&f.lastBody)
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]any{"errcode": f.checkCode, "errmsg": "msg"})
	})
	return mux
}

func newTestModerator(t *testing.T, fake *fakeWeChat) (*WeChatModerator, *MemoryTokenCache) {
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		WeChatApiURL:      srv.URL,
		WeChatAppID:       "wx-app",
		WeChatAppSecret:   "wx-secret",
		ModerationTimeout: 2 * time.Second,
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	cache := NewMemoryTokenCache()
	return NewWeChatModerator(cfg, cache, log), cache
}

func TestCheckTextPasses(t *testing.T) {
	fake := &fakeWeChat{tokenBody: `{"access_token":"tok-1","expires_in":7200}`}
	m, _ := newTestModerator(t, fake)

	ok, err := m.CheckText(context.Background(), "很好吃")
	require.NoError(t, err)
	assert.True(t, ok)
	fake.mu.Lock()
	assert.Equal(t, "tok-1", fake.lastToken)
	assert.Equal(t, "很好吃", fake.lastBody["content"])
	fake.mu.Unlock()

	ok, err = m.CheckText(context.Background(), "again")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 1, fake.tokenCalls.Load(), "token must be reused from the cache")
	assert.EqualValues(t, 2, fake.checkCalls.Load())
}

func TestCheckTextSensitive(t *testing.T) {
	fake := &fakeWeChat{
		tokenBody: `{"access_token":"tok-1","expires_in":7200}`,
		checkCode: WeChatErrSensitiveContent,
	}
	m, _ := newTestModerator(t, fake)

	ok, err := m.CheckText(context.Background(), "bad words")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckTextTokenError(t *testing.T) {
	fake := &fakeWeChat{tokenBody: `{"errcode":40013,"errmsg":"invalid appid"}`}
	m, _ := newTestModerator(t, fake)

	ok, err := m.CheckText(context.Background(), "text")
	assert.False(t, ok)
	var wxErr *WeChatError
	require.True(t, errors.As(err, &wxErr))
	assert.Equal(t, 40013, wxErr.Code)
	assert.EqualValues(t, 0, fake.checkCalls.Load())
}

func TestCheckTextExpiredTokenInvalidatesCache(t *testing.T) {
	fake := &fakeWeChat{
		tokenBody: `{"access_token":"tok-1","expires_in":7200}`,
		checkCode: WeChatErrTokenExpired,
	}
	m, cache := newTestModerator(t, fake)

	_, err := m.CheckText(context.Background(), "text")
	require.Error(t, err)

	_, ok, _ := cache.Get(context.Background())
	assert.False(t, ok)
}

func TestCheckTextUnreachable(t *testing.T) {
	cfg := &config.Config{WeChatApiURL: "http://127.0.0.1:1", ModerationTimeout: time.Second}
	log := logrus.New()
	log.SetOutput(io.Discard)
	m := NewWeChatModerator(cfg, NewMemoryTokenCache(), log)

	ok, err := m.CheckText(context.Background(), "text")
	assert.False(t, ok)
	assert.Error(t, err)
}
