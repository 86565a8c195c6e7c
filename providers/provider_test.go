package providers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRequestSendsJSONWithHeaders(t *testing.T) {
	var (
		gotBody   string
		gotHeader http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotHeader = r.Header.Clone()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := NewBaseProvider(Webhooks, time.Second, logging.NewNopLogger())
	resp, err := p.MakeRequest(context.Background(), http.MethodPost, srv.URL, []byte(`{"ok":true}`), map[string]string{"X-Test": "1"})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, gotBody)
	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.Equal(t, "1", gotHeader.Get("X-Test"))
	assert.Equal(t, Webhooks, p.GetName())
}

func TestMakeRequestHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBaseProvider(Webhooks, time.Second, nil).MakeRequest(ctx, http.MethodGet, srv.URL, nil, nil)
	assert.Error(t, err)
}
