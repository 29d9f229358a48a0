package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-app/internal/config"
	"github.com/i474232898/weather-app/internal/display"
)

// newUpstream fakes OpenWeatherMap: London is known, every other city is 404.
func newUpstream(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Query().Get("q") != "London" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"cod":"404","message":"city not found"}`)
			return
		}
		fmt.Fprint(w, `{"cod":200,"main":{"temp":283.15},"weather":[{"id":800,"description":"clear sky"}]}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) *config.AppConfig {
	return &config.AppConfig{
		OpenWeatherAPIKey:  "test-key",
		OpenWeatherBaseURL: baseURL,
		HTTPTimeout:        time.Second,
		DefaultUnit:        display.Celsius,
	}
}

func TestNewSession(t *testing.T) {
	var hits atomic.Int32
	srv := newUpstream(t, &hits)

	sess := NewSession(testConfig(srv.URL), nil)
	v := sess.Submit(context.Background(), "London")

	assert.Equal(t, "10°C", v.Temperature)
	assert.Equal(t, "☀", v.Emoji)
	assert.Equal(t, "Clear sky", v.Description)
	assert.EqualValues(t, 1, hits.Load())
}

func TestSessionRefresher(t *testing.T) {
	tests := []struct {
		name    string
		city    string // submitted before refreshing; "" means nothing yet
		wantRan bool
		wantErr string
	}{
		{name: "no city yet", city: "", wantRan: false},
		{name: "success", city: "London", wantRan: true},
		{name: "error view", city: "Atlantis", wantRan: true, wantErr: "Not found:\nCity not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			srv := newUpstream(t, &hits)
			sess := NewSession(testConfig(srv.URL), nil)
			if tt.city != "" {
				sess.Submit(context.Background(), tt.city)
			}

			ran, err := sessionRefresher(sess)(context.Background())

			assert.Equal(t, tt.wantRan, ran)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestNewRefreshScheduler(t *testing.T) {
	var hits atomic.Int32
	srv := newUpstream(t, &hits)
	cfg := testConfig(srv.URL)
	cfg.RefreshInterval = 20 * time.Millisecond

	sess := NewSession(cfg, nil)
	var refreshed atomic.Int32
	sess.OnRefresh(func(display.View) { refreshed.Add(1) })
	sess.Submit(context.Background(), "London")

	sched := NewRefreshScheduler(sess, cfg, nil)
	require.NoError(t, sched.Start())
	defer sched.Stop()

	require.Eventually(t, func() bool { return refreshed.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	assert.GreaterOrEqual(t, hits.Load(), int32(2))
}
