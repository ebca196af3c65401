package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrSchemaDrift indica que el historial registrado en la base no coincide
// con el set de migraciones embebido (checksum o versión distintos). La
// política es resetear: borrar el archivo y recrearlo (ver Open).
var ErrSchemaDrift = errors.New("historial de migraciones incompatible")

// migration una migración embebida: versión ordenada, nombre y SQL.
type migration struct {
	Version  int
	Name     string
	SQL      string
	Checksum string
}

// loadMigrations lee y ordena el set embebido. Los archivos se llaman
// NNNN_nombre.sql; la versión es el prefijo numérico.
func loadMigrations() ([]migration, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones embebidas: %w", err)
	}
	var set []migration
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("nombre de migración inválido: %s", name)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("versión de migración inválida en %s: %w", name, err)
		}
		raw, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return nil, fmt.Errorf("leer migración %s: %w", name, err)
		}
		sum := sha256.Sum256(raw)
		set = append(set, migration{
			Version:  version,
			Name:     strings.TrimSuffix(name, ".sql"),
			SQL:      string(raw),
			Checksum: hex.EncodeToString(sum[:]),
		})
	}
	sort.Slice(set, func(i, j int) bool { return set[i].Version < set[j].Version })
	return set, nil
}

// Migrate aplica las migraciones pendientes en orden, registrándolas en
// schema_migrations. Si el historial ya registrado no coincide con el set
// embebido devuelve ErrSchemaDrift para que el bootstrap resetee la base.
func Migrate(ctx context.Context, db *sql.DB) error {
	set, err := loadMigrations()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version     INTEGER PRIMARY KEY,
			name        TEXT NOT NULL,
			checksum    TEXT NOT NULL,
			applied_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%S', 'now'))
		)`)
	if err != nil {
		return fmt.Errorf("crear schema_migrations: %w", err)
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return err
	}

	// Toda fila registrada debe existir en el set embebido con el mismo checksum.
	known := make(map[int]migration, len(set))
	for _, m := range set {
		known[m.Version] = m
	}
	for version, checksum := range applied {
		m, ok := known[version]
		if !ok || m.Checksum != checksum {
			return fmt.Errorf("%w: versión %d", ErrSchemaDrift, version)
		}
	}

	for _, m := range set {
		if _, ok := applied[m.Version]; ok {
			continue
		}
		if err := applyMigration(ctx, db, m); err != nil {
			return err
		}
	}
	return nil
}

func appliedMigrations(ctx context.Context, db *sql.DB) (map[int]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("leer historial de migraciones: %w", err)
	}
	defer rows.Close()
	applied := make(map[int]string)
	for rows.Next() {
		var version int
		var checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		applied[version] = checksum
	}
	return applied, rows.Err()
}

func applyMigration(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migración %d: %w", m.Version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("aplicar migración %d (%s): %w", m.Version, m.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum) VALUES (?, ?, ?)`,
		m.Version, m.Name, m.Checksum,
	); err != nil {
		return fmt.Errorf("registrar migración %d: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migración %d: %w", m.Version, err)
	}
	return nil
}
