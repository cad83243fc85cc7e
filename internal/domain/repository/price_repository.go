package repository

import (
	"context"

	"github.com/eliasgdev/price-manager-api/internal/domain/pricing"
)

// PriceRepository define a porta de escrita dos preços aceitos. É o único
// ponto do sistema autorizado a mutar linhas de products; roda sempre dentro
// de uma transação (via TxRunner), nunca sozinho.
type PriceRepository interface {
	UpdatePrices(ctx context.Context, updates []pricing.PriceUpdate) error
}
