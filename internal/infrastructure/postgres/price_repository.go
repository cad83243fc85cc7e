package postgres

import (
	"context"
	"fmt"

	"github.com/eliasgdev/price-manager-api/internal/domain/pricing"
	"github.com/eliasgdev/price-manager-api/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implementação da porta PriceRepository sobre PostgreSQL.
// Deve rodar atado a uma transação (via TxRunner) para manter o
// tudo-ou-nada do lote.
type PriceRepo struct {
	q Querier
}

// NewPriceRepository constrói o adaptador de escrita de preços.
func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

// UpdatePrices aplica cada escrita aceita: sempre sales_price e, para
// pacotes, também cost_price.
func (r *PriceRepo) UpdatePrices(ctx context.Context, updates []pricing.PriceUpdate) error {
	for _, u := range updates {
		var err error
		if u.CostPrice != nil {
			_, err = r.q.Exec(ctx,
				`UPDATE products SET sales_price = $2, cost_price = $3 WHERE code = $1`,
				u.Code, u.SalesPrice, *u.CostPrice,
			)
		} else {
			_, err = r.q.Exec(ctx,
				`UPDATE products SET sales_price = $2 WHERE code = $1`,
				u.Code, u.SalesPrice,
			)
		}
		if err != nil {
			return fmt.Errorf("atualizar produto %d: %w", u.Code, err)
		}
	}
	return nil
}
