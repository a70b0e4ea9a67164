// Package translator provides the Google Translate v2 client.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/nodewee/doc-translate/pkg/config"
	"github.com/nodewee/doc-translate/pkg/constants"
	"github.com/nodewee/doc-translate/pkg/interfaces"
	"github.com/nodewee/doc-translate/pkg/logger"
	"github.com/nodewee/doc-translate/pkg/utils"
)

// maxErrorBody bounds how much of a failed response is kept for diagnostics
const maxErrorBody = 4 << 10

// Request is the JSON body of a translate call
type Request struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// Response is the JSON body returned by the translate endpoint
type Response struct {
	Data struct {
		Translations []Translation `json:"translations"`
	} `json:"data"`
}

// Translation is a single translation result
type Translation struct {
	TranslatedText string `json:"translatedText"`
}

// errorResponse is the error envelope Google APIs return on failure
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GoogleTranslator implements interfaces.Translator against the v2 REST API
type GoogleTranslator struct {
	endpoint string
	apiKey   string
	source   string
	target   string
	format   string
	client   *http.Client
	logger   *logger.Logger
}

var _ interfaces.Translator = (*GoogleTranslator)(nil)

// NewGoogleTranslator creates a translator from configuration
func NewGoogleTranslator(cfg *config.Config, log *logger.Logger) (*GoogleTranslator, error) {
	client, err := NewHTTPClient(cfg.ProxyURL, cfg.Timeout())
	if err != nil {
		return nil, err
	}
	return NewGoogleTranslatorWithClient(cfg, client, log), nil
}

// NewGoogleTranslatorWithClient creates a translator that uses client for requests
func NewGoogleTranslatorWithClient(cfg *config.Config, client *http.Client, log *logger.Logger) *GoogleTranslator {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &GoogleTranslator{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		source:   cfg.SourceLanguage,
		target:   cfg.TargetLanguage,
		format:   cfg.Format,
		client:   client,
		logger:   log,
	}
}

// Translate issues one POST and returns the first translation. There is no
// retry; every failure is returned with its origin type.
func (g *GoogleTranslator) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(Request{
		Q:      text,
		Source: g.source,
		Target: g.target,
		Format: g.format,
	})
	if err != nil {
		return "", utils.NewParseError("failed to encode translation request", err)
	}

	requestURL, err := g.requestURL()
	if err != nil {
		return "", utils.NewConfigError("invalid translation endpoint", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return "", utils.NewNetworkError("failed to create translation request", err)
	}
	req.Header.Set("Content-Type", constants.ContentTypeJSON)

	g.logger.Debug("POST %s (%d bytes, %s -> %s)", g.endpoint, len(body), g.source, g.target)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", utils.NewNetworkError("translation request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", g.statusError(resp)
	}

	var decoded Response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", utils.NewParseError("failed to decode translation response", err)
	}

	if len(decoded.Data.Translations) == 0 {
		return "", utils.NewParseError("translation response contains no translations", nil)
	}

	return decoded.Data.Translations[0].TranslatedText, nil
}

// requestURL appends the API key to the endpoint's query string
func (g *GoogleTranslator) requestURL() (string, error) {
	u, err := url.Parse(g.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(constants.APIKeyParam, g.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// statusError builds a response error, using the API's error message when present
func (g *GoogleTranslator) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := fmt.Sprintf("translation endpoint returned status %d", resp.StatusCode)
	var apiErr errorResponse
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
		message = fmt.Sprintf("%s: %s", message, apiErr.Error.Message)
	}

	return utils.NewResponseError(message, nil).
		WithContext("status", resp.StatusCode).
		WithContext("body", string(raw))
}
