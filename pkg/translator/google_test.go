package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nodewee/doc-translate/pkg/config"
	"github.com/nodewee/doc-translate/pkg/utils"
)

func testConfig(endpoint string) *config.Config {
	cfg := config.NewConfig()
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	return cfg
}

func newTestTranslator(t *testing.T, handler http.HandlerFunc) *GoogleTranslator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tr, err := NewGoogleTranslator(testConfig(server.URL+"/language/translate/v2"), nil)
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	return tr
}

func TestTranslateRequestShape(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/language/translate/v2" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q", got)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		want := map[string]string{"q": "ሰላም", "source": "am", "target": "en", "format": "text"}
		for k, v := range want {
			if body[k] != v {
				t.Errorf("body[%s] = %q, want %q", k, body[k], v)
			}
		}
		if len(body) != len(want) {
			t.Errorf("unexpected body fields: %v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"hello"}]}}`))
	})

	got, err := tr.Translate(context.Background(), "ሰላም")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateUsesFirstResult(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"first"},{"translatedText":"second"}]}}`))
	})

	got, err := tr.Translate(context.Background(), "")
	if err != nil || got != "first" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestTranslateFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		errType utils.ErrorType
		errMsg  string
	}{
		{name: "non-2xx with api error", status: http.StatusForbidden,
			body:    `{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`,
			errType: utils.ErrorTypeResponse, errMsg: "API key not valid"},
		{name: "non-2xx plain body", status: http.StatusBadGateway, body: "upstream down",
			errType: utils.ErrorTypeResponse, errMsg: "status 502"},
		{name: "malformed json", status: http.StatusOK, body: `{"data":`,
			errType: utils.ErrorTypeParse, errMsg: "decode"},
		{name: "empty translations", status: http.StatusOK, body: `{"data":{"translations":[]}}`,
			errType: utils.ErrorTypeParse, errMsg: "no translations"},
		{name: "absent data", status: http.StatusOK, body: `{}`,
			errType: utils.ErrorTypeParse, errMsg: "no translations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := tr.Translate(context.Background(), "x")
			if !utils.IsErrorType(err, tt.errType) {
				t.Fatalf("expected %s error, got %v", tt.errType, err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Fatalf("expected %q in %v", tt.errMsg, err)
			}
		})
	}
}

func TestTranslateNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	tr, err := NewGoogleTranslator(testConfig(endpoint), nil)
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	if _, err := tr.Translate(context.Background(), "x"); !utils.IsErrorType(err, utils.ErrorTypeNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestTranslateConfiguredLanguages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		json.NewDecoder(r.Body).Decode(&req)
		if req.Source != "fr" || req.Target != "de" || req.Format != "html" {
			t.Errorf("unexpected request %+v", req)
		}
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"ok"}]}}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.SourceLanguage, cfg.TargetLanguage, cfg.Format = "fr", "de", "html"
	tr := NewGoogleTranslatorWithClient(cfg, server.Client(), nil)
	if got, err := tr.Translate(context.Background(), "bonjour"); err != nil || got != "ok" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestNewHTTPClient(t *testing.T) {
	c, err := NewHTTPClient("", 0)
	if err != nil || c.Timeout != 0 {
		t.Fatalf("default client: %+v %v", c, err)
	}

	c, err = NewHTTPClient("http://127.0.0.1:3128", 5*time.Second)
	if err != nil || c.Timeout != 5*time.Second {
		t.Fatalf("http proxy client: %v", err)
	}

	if _, err := NewHTTPClient("socks5://127.0.0.1:1080", 0); err != nil {
		t.Fatalf("socks5 proxy client: %v", err)
	}

	if _, err := NewHTTPClient("gopher://proxy", 0); !utils.IsErrorType(err, utils.ErrorTypeConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}
