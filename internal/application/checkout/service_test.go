package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-gateway/internal/application/checkout"
	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/internal/infrastructure/backend"
	"github.com/jhoicas/tienda-gateway/internal/infrastructure/localstore"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes — cuentan llamadas de red y emulan el store local
// ──────────────────────────────────────────────────────────────────────────────

type fakePayments struct {
	createCalls int
	saveCalls   int

	sessionID string
	createErr error
	saveErr   error

	lastLines []backend.CheckoutLine
	lastEmail string
}

func (f *fakePayments) CreateCheckoutSession(ctx context.Context, token string, lines []backend.CheckoutLine, email string) (string, error) {
	f.createCalls++
	f.lastLines = lines
	f.lastEmail = email
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.sessionID, nil
}

func (f *fakePayments) SaveOrder(ctx context.Context, token, paymentSessionID string, userID int64, lines []backend.CheckoutLine) error {
	f.saveCalls++
	return f.saveErr
}

type fakeSnapshots struct {
	items map[int64][]entity.CartItem
	extra map[int64]localstore.CheckoutExtra
	flags map[string]bool

	saveErr error
	loadErr error
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{
		items: make(map[int64][]entity.CartItem),
		extra: make(map[int64]localstore.CheckoutExtra),
		flags: make(map[string]bool),
	}
}

func (f *fakeSnapshots) SaveSnapshot(ctx context.Context, userID int64, items []entity.CartItem, extra localstore.CheckoutExtra) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.items[userID] = items
	f.extra[userID] = extra
	return nil
}

func (f *fakeSnapshots) LoadSnapshot(ctx context.Context, userID int64) ([]entity.CartItem, localstore.CheckoutExtra, error) {
	if f.loadErr != nil {
		return nil, localstore.CheckoutExtra{}, f.loadErr
	}
	return f.items[userID], f.extra[userID], nil
}

func (f *fakeSnapshots) ClearSnapshot(ctx context.Context, userID int64) error {
	delete(f.items, userID)
	delete(f.extra, userID)
	return nil
}

func (f *fakeSnapshots) MarkOrderSaved(ctx context.Context, paymentSessionID string) (bool, error) {
	if f.flags[paymentSessionID] {
		return false, nil
	}
	f.flags[paymentSessionID] = true
	return true, nil
}

func (f *fakeSnapshots) UnmarkOrderSaved(ctx context.Context, paymentSessionID string) error {
	delete(f.flags, paymentSessionID)
	return nil
}

func sesionPOS() *entity.Session {
	return &entity.Session{
		ID:    "s-1",
		Token: "backend-token",
		User:  &entity.User{ID: 42, Email: "ana@tienda.mx", Tipo: entity.TipoPOS},
	}
}

func lineas() []entity.CartItem {
	p, _ := decimal.NewFromString("10.00")
	return []entity.CartItem{{ProductID: 1, Nombre: "producto", PrecioVenta: p, Cantidad: 2, StockDisponible: 5}}
}

func nuevoServicio(api *fakePayments, store *fakeSnapshots) *checkout.Service {
	return checkout.NewService(api, store, logger.NewNop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Initiate — precondiciones sin red
// ──────────────────────────────────────────────────────────────────────────────

func TestInitiate_CarritoVacio_NoTocaRed(t *testing.T) {
	api := &fakePayments{sessionID: "cs_123"}
	svc := nuevoServicio(api, newFakeSnapshots())

	_, err := svc.Initiate(context.Background(), sesionPOS(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Zero(t, api.createCalls, "carrito vacío no debe crear sesión de pago")
}

func TestInitiate_SoloLineasEnCero_NoTocaRed(t *testing.T) {
	api := &fakePayments{sessionID: "cs_123"}
	svc := nuevoServicio(api, newFakeSnapshots())

	items := lineas()
	items[0].Cantidad = 0
	_, err := svc.Initiate(context.Background(), sesionPOS(), items)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Zero(t, api.createCalls)
}

func TestInitiate_SinSesion_NoTocaRed(t *testing.T) {
	api := &fakePayments{sessionID: "cs_123"}
	svc := nuevoServicio(api, newFakeSnapshots())

	_, err := svc.Initiate(context.Background(), nil, lineas())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, api.createCalls)
}

func TestInitiate_Exito_PersisteSnapshotYAdjuntaUserID(t *testing.T) {
	api := &fakePayments{sessionID: "cs_123"}
	store := newFakeSnapshots()
	svc := nuevoServicio(api, store)
	sess := sesionPOS()

	sessionID, err := svc.Initiate(context.Background(), sess, lineas())
	require.NoError(t, err)

	assert.Equal(t, "cs_123", sessionID)
	assert.Equal(t, "ana@tienda.mx", api.lastEmail)
	require.Len(t, api.lastLines, 1)
	assert.Equal(t, int64(42), api.lastLines[0].UserID, "cada línea lleva el user_id adjunto")

	// El snapshot queda para recuperar estado al volver del redirect.
	saved, extra, err := store.LoadSnapshot(context.Background(), sess.User.ID)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.Equal(t, "ana@tienda.mx", extra.Email)
}

func TestInitiate_BackendSinSessionID_PropagaError(t *testing.T) {
	api := &fakePayments{createErr: domain.ErrCheckoutSession}
	svc := nuevoServicio(api, newFakeSnapshots())

	_, err := svc.Initiate(context.Background(), sesionPOS(), lineas())
	assert.ErrorIs(t, err, domain.ErrCheckoutSession)
}

func TestInitiate_SnapshotFalla_NoCreaSesionDePago(t *testing.T) {
	api := &fakePayments{sessionID: "cs_123"}
	store := newFakeSnapshots()
	store.saveErr = errors.New("disco lleno")
	svc := nuevoServicio(api, store)

	_, err := svc.Initiate(context.Background(), sesionPOS(), lineas())
	assert.Error(t, err)
	assert.Zero(t, api.createCalls, "sin snapshot persistido no se crea la sesión de pago")
}

// ──────────────────────────────────────────────────────────────────────────────
// ConfirmOrder — exactamente una vez por sesión de pago
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmOrder_RegistraUnaVezYLimpiaSnapshot(t *testing.T) {
	api := &fakePayments{sessionID: "cs_123"}
	store := newFakeSnapshots()
	svc := nuevoServicio(api, store)
	sess := sesionPOS()

	_, err := svc.Initiate(context.Background(), sess, lineas())
	require.NoError(t, err)

	require.NoError(t, svc.ConfirmOrder(context.Background(), sess, "cs_123"))
	assert.Equal(t, 1, api.saveCalls)

	// El snapshot se limpia tras registrar.
	saved, _, err := store.LoadSnapshot(context.Background(), sess.User.ID)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

// Segundo aterrizaje con la misma sesión de pago: ErrDuplicateSubmission y
// cero llamadas de red adicionales.
func TestConfirmOrder_SegundoAterrizaje_NoDuplicaLaOrden(t *testing.T) {
	api := &fakePayments{sessionID: "cs_123"}
	store := newFakeSnapshots()
	svc := nuevoServicio(api, store)
	sess := sesionPOS()

	_, err := svc.Initiate(context.Background(), sess, lineas())
	require.NoError(t, err)

	require.NoError(t, svc.ConfirmOrder(context.Background(), sess, "cs_123"))
	err = svc.ConfirmOrder(context.Background(), sess, "cs_123")

	assert.ErrorIs(t, err, domain.ErrDuplicateSubmission)
	assert.Equal(t, 1, api.saveCalls, "la orden debe registrarse exactamente una vez")
}

// Si el registro falla, la marca se libera: el reintento del usuario llega a
// la red de nuevo en lugar de quedar bloqueado como duplicado.
func TestConfirmOrder_RegistroFalla_PermiteReintento(t *testing.T) {
	api := &fakePayments{sessionID: "cs_123", saveErr: domain.ErrBackendUnavailable}
	store := newFakeSnapshots()
	svc := nuevoServicio(api, store)
	sess := sesionPOS()

	_, err := svc.Initiate(context.Background(), sess, lineas())
	require.NoError(t, err)

	err = svc.ConfirmOrder(context.Background(), sess, "cs_123")
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)

	api.saveErr = nil
	require.NoError(t, svc.ConfirmOrder(context.Background(), sess, "cs_123"))
	assert.Equal(t, 2, api.saveCalls)
}

func TestConfirmOrder_SinSnapshot_NoRegistra(t *testing.T) {
	api := &fakePayments{}
	store := newFakeSnapshots()
	svc := nuevoServicio(api, store)

	err := svc.ConfirmOrder(context.Background(), sesionPOS(), "cs_123")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, api.saveCalls)

	// La marca quedó liberada: un Initiate + Confirm posterior sí registra.
	assert.False(t, store.flags["cs_123"])
}

func TestConfirmOrder_SessionIDVacio_Rechazado(t *testing.T) {
	api := &fakePayments{}
	svc := nuevoServicio(api, newFakeSnapshots())

	err := svc.ConfirmOrder(context.Background(), sesionPOS(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, api.saveCalls)
}

func TestConfirmOrder_SinSesion_Rechazado(t *testing.T) {
	api := &fakePayments{}
	svc := nuevoServicio(api, newFakeSnapshots())

	err := svc.ConfirmOrder(context.Background(), nil, "cs_123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, api.saveCalls)
}
