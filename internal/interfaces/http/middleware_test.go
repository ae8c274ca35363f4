package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	apphttp "github.com/jhoicas/tienda-gateway/internal/interfaces/http"
	"github.com/jhoicas/tienda-gateway/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testCookieName = "tienda_session"
	testIssuer     = "tienda-gateway-test"
	testExpMin     = 60
)

// fakeStore emula el store local de sesiones; con failRead simula un store
// que no puede leerse (la puerta debe quedar en Unknown).
type fakeStore struct {
	sessions map[string]*entity.Session
	failRead bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: make(map[string]*entity.Session)}
}

func (f *fakeStore) SaveSession(ctx context.Context, sess *entity.Session) error {
	f.sessions[sess.ID] = sess
	return nil
}

func (f *fakeStore) LoadSession(ctx context.Context, id string) (*entity.Session, error) {
	if f.failRead {
		return nil, errors.New("store ilegible")
	}
	return f.sessions[id], nil
}

func (f *fakeStore) ClearSession(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

// buildGuardedApp construye una app Fiber con una ruta protegida por rol que
// devuelve el contenido "secreto" solo si el guard deja pasar.
func buildGuardedApp(store *fakeStore, requiredTipo string) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.Guard(requiredTipo, apphttp.GuardConfig{
			Store:      store,
			CookieName: testCookieName,
			Secret:     testSecret,
		}),
		func(c *fiber.Ctx) error {
			sess := apphttp.GetSession(c)
			return c.JSON(fiber.Map{"secreto": true, "user_id": sess.User.ID})
		},
	)
	return app
}

// sembrarSesion guarda una sesión en el store y devuelve la cookie firmada
// que la referencia.
func sembrarSesion(t *testing.T, store *fakeStore, tipo string) string {
	t.Helper()
	sess := &entity.Session{
		ID:    "s-1",
		Token: "backend-token",
		User:  &entity.User{ID: 7, Username: "ana", Email: "ana@tienda.mx", Tipo: tipo},
	}
	require.NoError(t, store.SaveSession(context.Background(), sess))

	cookie, err := token.Generate(testSecret, sess.ID, tipo, testIssuer, testExpMin)
	require.NoError(t, err)
	return cookie
}

func doGuarded(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard — sesión válida
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_SesionPOSAccedeRutaPOS(t *testing.T) {
	store := newFakeStore()
	cookie := sembrarSesion(t, store, entity.TipoPOS)
	app := buildGuardedApp(store, entity.TipoPOS)

	resp := doGuarded(t, app, cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "secreto")
}

func TestGuard_SesionInventarioAccedeRutaInventario(t *testing.T) {
	store := newFakeStore()
	cookie := sembrarSesion(t, store, entity.TipoInventario)
	app := buildGuardedApp(store, entity.TipoInventario)

	resp := doGuarded(t, app, cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard — partición dura de roles
// ──────────────────────────────────────────────────────────────────────────────

// Una sesión POS en ruta de inventario redirige al login de inventario;
// jamás se sirve el contenido.
func TestGuard_SesionPOSBloqueadaEnRutaInventario(t *testing.T) {
	store := newFakeStore()
	cookie := sembrarSesion(t, store, entity.TipoPOS)
	app := buildGuardedApp(store, entity.TipoInventario)

	resp := doGuarded(t, app, cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, apphttp.InventoryLoginPath, resp.Header.Get("Location"))

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "secreto")
}

func TestGuard_SesionInventarioBloqueadaEnRutaPOS(t *testing.T) {
	store := newFakeStore()
	cookie := sembrarSesion(t, store, entity.TipoInventario)
	app := buildGuardedApp(store, entity.TipoPOS)

	resp := doGuarded(t, app, cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, apphttp.POSLoginPath, resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard — sin sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_SinCookie_RedirigeAlLoginDelRol(t *testing.T) {
	app := buildGuardedApp(newFakeStore(), entity.TipoPOS)

	resp := doGuarded(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, apphttp.POSLoginPath, resp.Header.Get("Location"))
}

func TestGuard_CookieInvalida_Redirige(t *testing.T) {
	app := buildGuardedApp(newFakeStore(), entity.TipoPOS)

	resp := doGuarded(t, app, "cookie.invalida.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

// Cookie firmada válida pero sesión ya no está en el store (logout previo):
// Unauthenticated, redirige.
func TestGuard_SesionAusenteEnElStore_Redirige(t *testing.T) {
	store := newFakeStore()
	cookie := sembrarSesion(t, store, entity.TipoPOS)
	require.NoError(t, store.ClearSession(context.Background(), "s-1"))

	app := buildGuardedApp(store, entity.TipoPOS)
	resp := doGuarded(t, app, cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard — store ilegible: la puerta queda en Unknown
// ──────────────────────────────────────────────────────────────────────────────

// Si el store no puede leerse no hay veredicto: placeholder 202, sin contenido
// protegido y sin redirect. Unknown no es Unauthenticated.
func TestGuard_StoreIlegible_PlaceholderSinContenidoNiRedirect(t *testing.T) {
	store := newFakeStore()
	cookie := sembrarSesion(t, store, entity.TipoPOS)
	store.failRead = true

	app := buildGuardedApp(store, entity.TipoPOS)
	resp := doGuarded(t, app, cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"), "en Unknown no debe haber redirect")

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "secreto", "en Unknown no se sirve contenido protegido")
}
