package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	appDirName = "distribbuidora-pdv"
	dbFileName = "distribbuidora.db"
)

// Open localiza (creándolo si falta) el directorio de datos del usuario,
// abre el archivo de base de datos y deja el esquema al día.
//
// dataDir vacío usa <user-config-dir>/distribbuidora-pdv.
//
// Política ante drift del esquema: si el historial de migraciones registrado
// es incompatible con el set embebido, el archivo se borra y se recrea desde
// cero (no hay ruta de upgrade). Cualquier otro fallo es fatal para el
// arranque.
func Open(ctx context.Context, dataDir string) (*sql.DB, error) {
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolver directorio de datos del usuario: %w", err)
		}
		dataDir = filepath.Join(base, appDirName)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos %s: %w", dataDir, err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := openFile(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	err = Migrate(ctx, db)
	if errors.Is(err, ErrSchemaDrift) {
		// Sin ruta de upgrade: borrar y recrear.
		_ = db.Close()
		if err := os.Remove(dbPath); err != nil {
			return nil, fmt.Errorf("borrar base incompatible: %w", err)
		}
		db, err = openFile(ctx, dbPath)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenInMemory abre una base en memoria con el esquema aplicado (tests).
func OpenInMemory(ctx context.Context) (*sql.DB, error) {
	db, err := openDSN(ctx, "file::memory:")
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func openFile(ctx context.Context, path string) (*sql.DB, error) {
	return openDSN(ctx, "file:"+path)
}

func openDSN(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	// Una sola conexión física: serializa todas las escrituras y hace
	// innecesario cualquier locking por fila.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping base de datos: %w", err)
	}
	return db, nil
}
