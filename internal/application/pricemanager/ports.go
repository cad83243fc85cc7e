package pricemanager

import (
	"context"

	"github.com/eliasgdev/price-manager-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando um
// repositório de preços atado a essa transação. Garante o tudo-ou-nada do
// lote: commit apenas se fn devolve nil, rollback integral caso contrário.
type TxRunner interface {
	Run(ctx context.Context, fn func(prices repository.PriceRepository) error) error
}
