package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eliasgdev/price-manager-api/internal/application/pricemanager"
	"github.com/eliasgdev/price-manager-api/internal/domain/repository"
)

var _ pricemanager.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com o repositório de preços atado à
// tx e faz Commit ou Rollback. O rollback em defer cobre erro de fn, erro de
// commit e cancelamento do contexto no meio da escrita.
func (r *TxRunner) Run(ctx context.Context, fn func(prices repository.PriceRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPriceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
