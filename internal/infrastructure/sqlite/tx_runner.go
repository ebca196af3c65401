package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/inventory"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/orders"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

var _ orders.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite. Cualquier
// error del callback hace rollback de todo lo emitido desde el begin.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner construye el runner.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	productRepo := NewProductRepository(tx)
	orderRepo := NewOrderRepository(tx)
	movementRepo := NewStockMovementRepository(tx)

	if err := fn(productRepo, orderRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit de transacción: %w", err)
	}
	return nil
}
