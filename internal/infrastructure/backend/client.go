// Package backend implementa el cliente REST hacia el backend remoto de la
// tienda. Toda respuesta se parsea en tipos explícitos en esta frontera:
// un payload que no decodifica se reporta como ErrMalformedResponse, nunca
// se propagan campos indefinidos hacia arriba.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

// maxBodyBytes límite de lectura de cuerpos de respuesta.
const maxBodyBytes = 4 << 20 // 4 MB

// Client cliente HTTP hacia el backend. Un solo timeout de red explícito y
// cero reintentos: una petición colgada falla visible como
// ErrBackendUnavailable en lugar de reintentarse en silencio.
type Client struct {
	origin     string
	httpClient *http.Client
	log        *logger.Logger

	successURL string
	cancelURL  string
}

// New construye el cliente. origin es el origen del backend
// (ej. http://localhost:5000) sin barra final.
func New(origin string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		origin:     strings.TrimRight(origin, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("backend"),
	}
}

// WithReturnURLs fija las URLs de retorno del flujo de pago alojado; se
// envían al backend al crear la sesión de pago.
func (c *Client) WithReturnURLs(success, cancel string) *Client {
	c.successURL = success
	c.cancelURL = cancel
	return c
}

// Origin devuelve el origen configurado; lo usa la normalización de imágenes.
func (c *Client) Origin() string { return c.origin }

// AbsoluteImageURL normaliza una referencia de imagen a URL absoluta:
// si ya es absoluta pasa intacta, si es relativa se prefija con el origen.
func (c *Client) AbsoluteImageURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return c.origin + ref
}

// apiError cuerpo de error que devuelve el backend en 4xx/5xx.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do ejecuta la petición y decodifica el JSON de respuesta en out (out puede
// ser nil si el cuerpo no interesa). token vacío = petición sin Authorization.
func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: serializar petición: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.origin+path, body)
	if err != nil {
		return fmt.Errorf("backend: crear request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("petición al backend fallida")
		return fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta de %s: %v", domain.ErrBackendUnavailable, path, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return domain.ErrUnauthorized
	case resp.StatusCode >= 400:
		var ae apiError
		_ = json.Unmarshal(raw, &ae)
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Str("detail", ae.text()).Msg("backend respondió error")
		if msg := ae.text(); msg != "" {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
		}
		return fmt.Errorf("%w: status %d en %s", domain.ErrInvalidInput, resp.StatusCode, path)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("respuesta del backend no decodifica")
		return fmt.Errorf("%w: %s", domain.ErrMalformedResponse, path)
	}
	return nil
}
