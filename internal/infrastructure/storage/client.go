package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/pkg/config"
)

var _ ports.BlobStorage = (*Client)(nil)

// ErrRetryLimitExceeded se devuelve cuando todos los intentos fallaron por causas reintentables.
var ErrRetryLimitExceeded = errors.New("storage: retry limit exceeded")

// APIError respuesta no exitosa del servidor de archivos.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("storage api error: %d", e.StatusCode)
	}
	return fmt.Sprintf("storage api error: %d: %s", e.StatusCode, e.Body)
}

// Client sube objetos con PUT {base}/object/{bucket}/{path} y arma la URL pública de descarga.
type Client struct {
	http      *resty.Client
	bucket    string
	publicURL string
	attempts  int
	logger    zerolog.Logger
}

// NewClient configura reintentos con espera fija: solo errores de transporte, 429 y 5xx.
func NewClient(cfg config.StorageConfig, logger zerolog.Logger) *Client {
	attempts := cfg.MaxRetries
	if attempts <= 0 {
		attempts = 1
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(30 * time.Second).
		SetRetryCount(attempts - 1).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryWait).
		SetRetryAfter(func(*resty.Client, *resty.Response) (time.Duration, error) {
			return cfg.RetryWait, nil
		}).
		AddRetryCondition(retryable)
	if cfg.Token != "" {
		httpClient.SetAuthToken(cfg.Token)
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = strings.TrimRight(cfg.BaseURL, "/") + "/object/public"
	}
	return &Client{
		http:      httpClient,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		attempts:  attempts,
		logger:    logger,
	}
}

func retryable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// Upload guarda data en path. Un 4xx distinto de 429 no se reintenta.
func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return "", fmt.Errorf("storage: path vacío")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(data).
		Put("/object/" + c.bucket + "/" + escapePath(path))
	if err != nil {
		c.logger.Warn().Err(err).Str("path", path).Int("attempts", c.attempts).Msg("subida fallida")
		return "", fmt.Errorf("%w: %v", ErrRetryLimitExceeded, err)
	}
	if resp.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode(), Body: strings.TrimSpace(resp.String())}
		if retryable(resp, nil) {
			c.logger.Warn().Int("status", resp.StatusCode()).Str("path", path).Int("attempts", c.attempts).Msg("subida fallida")
			return "", fmt.Errorf("%w: %v", ErrRetryLimitExceeded, apiErr)
		}
		return "", apiErr
	}
	return c.publicURL + "/" + c.bucket + "/" + escapePath(path), nil
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, s := range parts {
		parts[i] = url.PathEscape(s)
	}
	return strings.Join(parts, "/")
}
