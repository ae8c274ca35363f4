package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/internal/infrastructure/backend"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

func nuevoCliente(origin string) *backend.Client {
	return backend.New(origin, 5*time.Second, logger.NewNop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de imágenes
// ──────────────────────────────────────────────────────────────────────────────

func TestAbsoluteImageURL(t *testing.T) {
	c := nuevoCliente("http://backend.local:5000")

	// Absoluta pasa intacta.
	assert.Equal(t, "https://cdn.example.com/p.png", c.AbsoluteImageURL("https://cdn.example.com/p.png"))
	assert.Equal(t, "http://otro.example.com/p.png", c.AbsoluteImageURL("http://otro.example.com/p.png"))

	// Relativa se prefija con el origen, con o sin barra inicial.
	assert.Equal(t, "http://backend.local:5000/uploads/p.png", c.AbsoluteImageURL("/uploads/p.png"))
	assert.Equal(t, "http://backend.local:5000/uploads/p.png", c.AbsoluteImageURL("uploads/p.png"))

	// Vacía queda vacía.
	assert.Equal(t, "", c.AbsoluteImageURL(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores HTTP a errores de dominio
// ──────────────────────────────────────────────────────────────────────────────

func servidorConStatus(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func Test404_MapeaANotFound(t *testing.T) {
	srv := servidorConStatus(http.StatusNotFound, `{"message":"no existe"}`)
	defer srv.Close()

	_, err := nuevoCliente(srv.URL).GetProduct(context.Background(), "tok", 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func Test401_MapeaAUnauthorized(t *testing.T) {
	srv := servidorConStatus(http.StatusUnauthorized, `{"message":"token inválido"}`)
	defer srv.Close()

	_, err := nuevoCliente(srv.URL).FetchCart(context.Background(), "tok", 42)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func Test403_MapeaAUnauthorized(t *testing.T) {
	srv := servidorConStatus(http.StatusForbidden, `{}`)
	defer srv.Close()

	_, err := nuevoCliente(srv.URL).FetchCart(context.Background(), "tok", 42)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func Test422_PropagaElMensajeDelBackend(t *testing.T) {
	srv := servidorConStatus(http.StatusUnprocessableEntity, `{"message":"cantidad supera el stock"}`)
	defer srv.Close()

	err := nuevoCliente(srv.URL).UpdateQuantity(context.Background(), "tok", 42, 1, 99)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "cantidad supera el stock")
}

func TestServidorCaido_MapeaABackendUnavailable(t *testing.T) {
	srv := servidorConStatus(http.StatusOK, `{}`)
	srv.Close() // puerto cerrado: error de transporte

	_, err := nuevoCliente(srv.URL).FetchCart(context.Background(), "tok", 42)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

// Un payload que no decodifica se reporta como ErrMalformedResponse; nunca se
// propagan campos indefinidos hacia arriba.
func TestRespuestaNoDecodificable_MapeaAMalformedResponse(t *testing.T) {
	srv := servidorConStatus(http.StatusOK, `<html>esto no es json</html>`)
	defer srv.Close()

	_, err := nuevoCliente(srv.URL).FetchCart(context.Background(), "tok", 42)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

// ──────────────────────────────────────────────────────────────────────────────
// FetchCart — decodificación y normalización
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchCart_DecodificaYNormalizaImagenes(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		// precio_venta llega como string: decimal lo acepta igual que número.
		_, _ = w.Write([]byte(`[
			{"product_id":1,"nombre":"café","precio_venta":"10.50","cantidad":2,"stock_disponible":5,"imagen_url":"/uploads/cafe.png"},
			{"product_id":2,"nombre":"té","precio_venta":3.25,"cantidad":1,"stock_disponible":9,"imagen_url":"https://cdn.example.com/te.png"}
		]`))
	}))
	defer srv.Close()

	items, err := nuevoCliente(srv.URL).FetchCart(context.Background(), "tok-123", 42)
	require.NoError(t, err)

	assert.Equal(t, "/api/cart/42", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	require.Len(t, items, 2)
	assert.Equal(t, srv.URL+"/uploads/cafe.png", items[0].ImagenURL, "imagen relativa se normaliza al origen")
	assert.Equal(t, "https://cdn.example.com/te.png", items[1].ImagenURL, "imagen absoluta pasa intacta")
	assert.Equal(t, "10.5", items[0].PrecioVenta.String())
	assert.Equal(t, "3.25", items[1].PrecioVenta.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login — el tipo lo fija el endpoint, no el backend
// ──────────────────────────────────────────────────────────────────────────────

func TestPOSLogin_FijaTipoPOS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pos/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-abc","user":{"id":7,"username":"ana","email":"ana@tienda.mx"}}`))
	}))
	defer srv.Close()

	tok, user, err := nuevoCliente(srv.URL).POSLogin(context.Background(), "ana@tienda.mx", "secreta")
	require.NoError(t, err)

	assert.Equal(t, "tok-abc", tok)
	assert.Equal(t, "pos", user.Tipo, "el tipo lo fija el endpoint usado")
}

func TestInventoryLogin_FijaTipoInventario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-abc","user":{"id":3,"username":"luis","email":"luis@tienda.mx"}}`))
	}))
	defer srv.Close()

	_, user, err := nuevoCliente(srv.URL).InventoryLogin(context.Background(), "luis@tienda.mx", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "inventario", user.Tipo)
}

// Login 200 pero sin token o sin usuario: respuesta malformada, no sesión a
// medias.
func TestLogin_SinToken_MalformedResponse(t *testing.T) {
	srv := servidorConStatus(http.StatusOK, `{"user":{"id":7}}`)
	defer srv.Close()

	_, _, err := nuevoCliente(srv.URL).POSLogin(context.Background(), "ana@tienda.mx", "secreta")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout — sessionId obligatorio
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCheckoutSession_SinSessionID_ErrCheckoutSession(t *testing.T) {
	srv := servidorConStatus(http.StatusOK, `{}`)
	defer srv.Close()

	_, err := nuevoCliente(srv.URL).CreateCheckoutSession(context.Background(), "tok", nil, "ana@tienda.mx")
	assert.ErrorIs(t, err, domain.ErrCheckoutSession)
}

func TestCreateCheckoutSession_DevuelveElID(t *testing.T) {
	srv := servidorConStatus(http.StatusOK, `{"sessionId":"cs_123"}`)
	defer srv.Close()

	id, err := nuevoCliente(srv.URL).CreateCheckoutSession(context.Background(), "tok", nil, "ana@tienda.mx")
	require.NoError(t, err)
	assert.Equal(t, "cs_123", id)
}
