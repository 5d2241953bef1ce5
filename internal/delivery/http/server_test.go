package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shrine-functions/internal/config"
	httpDelivery "github.com/shrine-functions/internal/delivery/http"
	"github.com/shrine-functions/internal/delivery/http/handler"
	"github.com/shrine-functions/internal/domain"
	pkgerrors "github.com/shrine-functions/internal/pkg/errors"
	"github.com/shrine-functions/internal/usecase"
)

type fakeShrineStore struct {
	shrines   []*domain.Shrine
	err       error
	healthErr error
	calls     int
}

func (f *fakeShrineStore) FindByLatitudeRange(ctx context.Context, minLat, maxLat float64, limit int) ([]*domain.Shrine, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Shrine
	for _, s := range f.shrines {
		if s.Lat != nil && *s.Lat >= minLat && *s.Lat <= maxLat && len(out) < limit {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShrineStore) Health(ctx context.Context) error {
	return f.healthErr
}

func newTestServer(store *fakeShrineStore) *httpDelivery.Server {
	logger := zap.NewNop()
	cfg := &config.Config{Server: config.ServerConfig{AllowOrigins: "*"}}

	return httpDelivery.NewServer(
		cfg,
		logger,
		handler.NewShrineHandler(usecase.NewShrineUseCase(store, logger), logger),
		handler.NewCaptionHandler(usecase.NewCaptionUseCase(logger), logger),
		handler.NewSNSHandler(usecase.NewSNSUseCase(logger), logger),
		handler.NewHealthHandler(store, logger),
	)
}

func call(t *testing.T, srv *httpDelivery.Server, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func errorOf(t *testing.T, body map[string]interface{}) (string, string) {
	t.Helper()
	e, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "expected error envelope, got %v", body)
	return e["status"].(string), e["message"].(string)
}

func ptrFloat64(v float64) *float64 { return &v }

func ptrString(v string) *string { return &v }

func TestDetectShrine(t *testing.T) {
	store := &fakeShrineStore{shrines: []*domain.Shrine{
		{ID: "hie", Name: ptrString("日枝神社"), Prefecture: ptrString("東京都"), Lat: ptrFloat64(35.6764), Lng: ptrFloat64(139.7505)},
	}}
	srv := newTestServer(store)

	t.Run("found", func(t *testing.T) {
		status, body := call(t, srv, "/detectShrine", `{"data":{"lat":35.6762,"lng":139.7503,"text":"hello"}}`)

		assert.Equal(t, http.StatusOK, status)
		result := body["result"].(map[string]interface{})
		assert.Equal(t, "hie", result["shrineId"])
		assert.Equal(t, "日枝神社", result["name"])
		assert.Equal(t, 29.0, result["distance"])
		assert.NotContains(t, result, "prefecture")
	})

	t.Run("not found has null fields", func(t *testing.T) {
		status, body := call(t, srv, "/detectShrine", `{"data":{"lat":0,"lng":0}}`)

		assert.Equal(t, http.StatusOK, status)
		result := body["result"].(map[string]interface{})
		assert.Equal(t, map[string]interface{}{"shrineId": nil, "name": nil, "distance": nil}, result)
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name    string
			body    string
			message string
		}{
			{"no body", ``, "data is required"},
			{"null data", `{"data":null}`, "data is required"},
			{"missing data", `{}`, "data is required"},
			{"lat is a string", `{"data":{"lat":"35.6","lng":139.7}}`, "lat must be a finite number"},
			{"lat missing", `{"data":{"lng":139.7}}`, "lat must be a finite number"},
			{"lng missing", `{"data":{"lat":35.6}}`, "lng must be a finite number"},
			{"both missing reports lat", `{"data":{"text":"x"}}`, "lat must be a finite number"},
			{"zero data", `{"data":0}`, "data is required"},
			{"lat overflows to infinity", `{"data":{"lat":1e999,"lng":139.7}}`, "lat must be a finite number"},
			{"lng overflows to negative infinity", `{"data":{"lat":35.6,"lng":-1e999}}`, "lng must be a finite number"},
			{"malformed json", `{"data":`, "invalid request body"},
			{"trailing content", `{"data":{"lat":35.6,"lng":139.7}} {}`, "invalid request body"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				before := store.calls
				status, body := call(t, srv, "/detectShrine", tt.body)

				assert.Equal(t, http.StatusBadRequest, status)
				code, message := errorOf(t, body)
				assert.Equal(t, "INVALID_ARGUMENT", code)
				assert.Equal(t, tt.message, message)
				assert.Equal(t, before, store.calls)
			})
		}
	})
}

func TestDetectShrine_StoreFailures(t *testing.T) {
	t.Run("store unavailable", func(t *testing.T) {
		srv := newTestServer(&fakeShrineStore{err: pkgerrors.ErrStoreUnavailable})

		status, body := call(t, srv, "/detectShrine", `{"data":{"lat":35,"lng":135}}`)

		assert.Equal(t, http.StatusServiceUnavailable, status)
		code, _ := errorOf(t, body)
		assert.Equal(t, "UNAVAILABLE", code)
	})

	t.Run("unclassified error is internal", func(t *testing.T) {
		srv := newTestServer(&fakeShrineStore{err: errors.New("permission denied")})

		status, body := call(t, srv, "/detectShrine", `{"data":{"lat":35,"lng":135}}`)

		assert.Equal(t, http.StatusInternalServerError, status)
		code, message := errorOf(t, body)
		assert.Equal(t, "INTERNAL", code)
		assert.NotContains(t, message, "permission")
	})
}

func TestGenerateCaptions(t *testing.T) {
	srv := newTestServer(&fakeShrineStore{})

	t.Run("example", func(t *testing.T) {
		status, body := call(t, srv, "/generateCaptions", `{"data":{"shrineName":"明治神宮","text":"","metadata":{}}}`)

		assert.Equal(t, http.StatusOK, status)
		result := body["result"].(map[string]interface{})
		instagram := result["instagramCaption"].(string)
		assert.True(t, strings.HasPrefix(instagram, "⛩️ 明治神宮 に参拝しました。"))
		assert.True(t, strings.HasSuffix(instagram, "#神社 #参拝 #明治神宮"))
		assert.NotContains(t, instagram, "御朱印")
		assert.Equal(t, instagram, result["threadsCaption"])
	})

	t.Run("goshuin", func(t *testing.T) {
		_, body := call(t, srv, "/generateCaptions", `{"data":{"shrineName":"明治神宮","text":"晴れ","metadata":{"goshuin":true}}}`)

		result := body["result"].(map[string]interface{})
		assert.Contains(t, result["xCaption"], "御朱印もいただきました。")
	})

	t.Run("long text", func(t *testing.T) {
		_, body := call(t, srv, "/generateCaptions", `{"data":{"shrineName":"Meiji Jingu","text":"`+strings.Repeat("A", 400)+`"}}`)

		result := body["result"].(map[string]interface{})
		assert.LessOrEqual(t, len([]rune(result["xCaption"].(string))), 280)
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name    string
			body    string
			message string
		}{
			{"missing data", `{}`, "data is required"},
			{"missing name", `{"data":{"text":"x"}}`, "shrineName is required"},
			{"blank name", `{"data":{"shrineName":"   ","text":"x"}}`, "shrineName is required"},
			{"name not a string", `{"data":{"shrineName":5,"text":"x"}}`, "shrineName is required"},
			{"missing text", `{"data":{"shrineName":"明治神宮"}}`, "text is required"},
			{"text not a string", `{"data":{"shrineName":"明治神宮","text":false}}`, "text is required"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				status, body := call(t, srv, "/generateCaptions", tt.body)

				assert.Equal(t, http.StatusBadRequest, status)
				_, message := errorOf(t, body)
				assert.Equal(t, tt.message, message)
			})
		}
	})
}

func TestPostToSNS(t *testing.T) {
	srv := newTestServer(&fakeShrineStore{})

	for _, body := range []string{``, `{"data":{"postId":"p1","targets":{"x":true}}}`} {
		status, out := call(t, srv, "/postToSNS", body)

		assert.Equal(t, http.StatusOK, status)
		result := out["result"].(map[string]interface{})
		assert.Equal(t, map[string]interface{}{"x": false, "instagram": false, "threads": false}, result["posted"])
		assert.Equal(t, []interface{}{
			map[string]interface{}{"code": "not-implemented", "message": "SNS posting is not implemented yet."},
		}, result["errors"])
	}
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv := newTestServer(&fakeShrineStore{})

		resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("store down", func(t *testing.T) {
		srv := newTestServer(&fakeShrineStore{healthErr: errors.New("down")})

		resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestUnknownFunction(t *testing.T) {
	srv := newTestServer(&fakeShrineStore{})

	status, body := call(t, srv, "/deleteShrine", `{"data":{}}`)

	assert.Equal(t, http.StatusNotFound, status)
	code, _ := errorOf(t, body)
	assert.Equal(t, "NOT_FOUND", code)
}
