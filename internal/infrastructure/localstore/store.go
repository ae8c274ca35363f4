// Package localstore implementa el almacenamiento local del gateway sobre
// SQLite: sesiones, snapshot de carrito para el flujo de pago con redirect y
// la marca de "orden ya registrada" por sesión de pago.
//
// Reemplaza el localStorage ambiental del frontend original por un contrato
// tipado e inyectable: Save/Load/Clear explícitos, sin estado global.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS checkout_snapshots (
	user_id    INTEGER PRIMARY KEY,
	cart       TEXT NOT NULL,
	extra      TEXT NOT NULL DEFAULT '',
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS order_flags (
	payment_session_id TEXT PRIMARY KEY,
	created_at         INTEGER NOT NULL
);
`

// CheckoutExtra es el registro transitorio de datos extra del checkout que el
// flujo de pago necesita recuperar al volver del redirect.
type CheckoutExtra struct {
	Email string `json:"email"`
}

// Store almacén local del gateway sobre un archivo SQLite.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) el archivo SQLite y aplica el esquema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("localstore: ruta vacía")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	if path == ":memory:" {
		dsn = path
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("localstore: abrir sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("localstore: ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("localstore: aplicar esquema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra la base subyacente.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB devuelve el handle crudo (solo para tests).
func (s *Store) DB() *sql.DB { return s.db }

// ── Sesiones ──────────────────────────────────────────────────────────────────

// SaveSession persiste la sesión (token + usuario) serializada como JSON.
// No valida el formato del token: es opaco para el gateway.
func (s *Store) SaveSession(ctx context.Context, sess *entity.Session) error {
	if sess == nil || sess.ID == "" {
		return fmt.Errorf("localstore: sesión sin id")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("localstore: serializar sesión: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, data, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		sess.ID, string(data), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("localstore: guardar sesión: %w", err)
	}
	return nil
}

// LoadSession devuelve la sesión guardada o (nil, nil) si no existe.
// JSON malformado cuenta como ausente, nunca como error: una entrada corrupta
// no debe tumbar la puerta de autenticación. Un error de lectura del store sí
// se reporta (la puerta queda en Unknown).
func (s *Store) LoadSession(ctx context.Context, id string) (*entity.Session, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM sessions WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: leer sesión: %w", err)
	}
	var sess entity.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, nil // malformado = ausente
	}
	return &sess, nil
}

// ClearSession elimina la sesión. Borrar una sesión inexistente no es error.
func (s *Store) ClearSession(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("localstore: limpiar sesión: %w", err)
	}
	return nil
}

// ── Snapshot de checkout ──────────────────────────────────────────────────────

// SaveSnapshot guarda el carrito y los datos extra del checkout para
// recuperarlos al volver del flujo de pago externo. Última escritura gana.
func (s *Store) SaveSnapshot(ctx context.Context, userID int64, items []entity.CartItem, extra CheckoutExtra) error {
	cart, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("localstore: serializar carrito: %w", err)
	}
	ex, err := json.Marshal(extra)
	if err != nil {
		return fmt.Errorf("localstore: serializar extra: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO checkout_snapshots (user_id, cart, extra, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET cart = excluded.cart, extra = excluded.extra, updated_at = excluded.updated_at`,
		userID, string(cart), string(ex), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("localstore: guardar snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot devuelve el snapshot del usuario o (nil, extra vacío, nil) si
// no existe o está malformado.
func (s *Store) LoadSnapshot(ctx context.Context, userID int64) ([]entity.CartItem, CheckoutExtra, error) {
	var cart, ex string
	err := s.db.QueryRowContext(ctx,
		`SELECT cart, extra FROM checkout_snapshots WHERE user_id = ?`, userID).Scan(&cart, &ex)
	if err == sql.ErrNoRows {
		return nil, CheckoutExtra{}, nil
	}
	if err != nil {
		return nil, CheckoutExtra{}, fmt.Errorf("localstore: leer snapshot: %w", err)
	}
	var items []entity.CartItem
	if err := json.Unmarshal([]byte(cart), &items); err != nil {
		return nil, CheckoutExtra{}, nil
	}
	var extra CheckoutExtra
	_ = json.Unmarshal([]byte(ex), &extra) // extra malformado no invalida el carrito
	return items, extra, nil
}

// ClearSnapshot elimina el snapshot del usuario.
func (s *Store) ClearSnapshot(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM checkout_snapshots WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("localstore: limpiar snapshot: %w", err)
	}
	return nil
}

// ── Marca one-shot de orden registrada ────────────────────────────────────────

// MarkOrderSaved marca la sesión de pago como registrada. Devuelve true solo
// la primera vez; llamadas posteriores con el mismo id devuelven false.
// El INSERT es atómico: dos aterrizajes concurrentes en /success no duplican
// la orden.
func (s *Store) MarkOrderSaved(ctx context.Context, paymentSessionID string) (bool, error) {
	if paymentSessionID == "" {
		return false, fmt.Errorf("localstore: payment session id vacío")
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO order_flags (payment_session_id, created_at) VALUES (?, ?)`,
		paymentSessionID, time.Now().UnixMilli())
	if err != nil {
		return false, fmt.Errorf("localstore: marcar orden: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("localstore: rows affected: %w", err)
	}
	return n == 1, nil
}

// UnmarkOrderSaved libera la marca; se usa como compensación cuando el
// registro de la orden falla después de tomarla, para permitir el reintento.
func (s *Store) UnmarkOrderSaved(ctx context.Context, paymentSessionID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM order_flags WHERE payment_session_id = ?`, paymentSessionID); err != nil {
		return fmt.Errorf("localstore: liberar marca de orden: %w", err)
	}
	return nil
}
