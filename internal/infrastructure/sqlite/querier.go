// Package sqlite implementa la persistencia sobre una base SQLite embebida
// (driver modernc.org/sqlite, sin cgo). El pool se limita a una conexión
// física, lo que serializa todo acceso a la base.
package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Querier abstrae *sql.DB y *sql.Tx para que los repositorios funcionen
// igual dentro y fuera de una transacción.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ Querier = (*sql.DB)(nil)
var _ Querier = (*sql.Tx)(nil)

// timeLayout formato de timestamps en la base (UTC, compatible con las
// funciones de fecha de SQLite).
const timeLayout = "2006-01-02 15:04:05"

// nowUTC timestamp actual en el formato de la base.
func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}

// isUniqueViolation verifica si un error es una violación de índice único.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// scanDecimal convierte el texto almacenado en decimal. Texto vacío vale cero.
func scanDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// nullStr convierte sql.NullString en *string.
func nullStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// nullInt convierte sql.NullInt64 en *int64.
func nullInt(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	n := ni.Int64
	return &n
}
