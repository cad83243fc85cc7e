package pricemanager

import (
	"context"
	"fmt"

	"github.com/eliasgdev/price-manager-api/internal/domain"
	"github.com/eliasgdev/price-manager-api/internal/domain/entity"
	"github.com/eliasgdev/price-manager-api/internal/domain/pricing"
	"github.com/eliasgdev/price-manager-api/internal/domain/repository"
	"github.com/eliasgdev/price-manager-api/pkg/logger"
)

// Result é a saída do processamento de um lote: um veredito por linha, na
// ordem de entrada, e a indicação de persistência.
type Result struct {
	Outcomes []pricing.Outcome
	Updated  bool
}

// UpdatePricesUseCase orquestra o pipeline do lote: resolve o catálogo em uma
// leitura, valida todas as linhas e, somente se todas passarem, grava tudo em
// uma única transação. Nenhuma escrita acontece durante a validação.
type UpdatePricesUseCase struct {
	catalog repository.CatalogRepository
	tx      TxRunner
	log     *logger.Logger
}

// NewUpdatePricesUseCase constrói o caso de uso.
func NewUpdatePricesUseCase(catalog repository.CatalogRepository, tx TxRunner, log *logger.Logger) *UpdatePricesUseCase {
	return &UpdatePricesUseCase{catalog: catalog, tx: tx, log: log}
}

// ProcessBatch executa o pipeline para um lote já extraído. Quebras de regra
// ficam no veredito de cada linha e nunca produzem erro; o único erro
// possível aqui é de infraestrutura (leitura do catálogo ou transação de
// escrita), que aborta o lote inteiro.
func (uc *UpdatePricesUseCase) ProcessBatch(ctx context.Context, batchID string, rows []entity.BatchRow) (*Result, error) {
	codes := distinctCodes(rows)

	products, links, err := uc.catalog.FetchForCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	catalog := pricing.NewCatalog(products, links)
	outcomes := pricing.ValidateBatch(catalog, rows)

	result := &Result{Outcomes: outcomes}

	rejectedCount := 0
	for _, o := range outcomes {
		if !o.Accepted() {
			rejectedCount++
		}
	}

	// Política tudo-ou-nada: qualquer linha rejeitada impede a escrita do
	// lote inteiro. As linhas aceitas continuam no resultado para o usuário.
	if len(outcomes) > 0 && rejectedCount == 0 {
		err := uc.tx.Run(ctx, func(prices repository.PriceRepository) error {
			return prices.UpdatePrices(ctx, pricing.Updates(outcomes))
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
		}
		result.Updated = true
	}

	uc.log.Info().
		Str("batch_id", batchID).
		Int("rows", len(rows)).
		Int("rejected", rejectedCount).
		Bool("updated", result.Updated).
		Msg("lote de preços processado")

	return result, nil
}

// distinctCodes extrai os códigos do lote sem repetição, preservando a
// primeira ocorrência.
func distinctCodes(rows []entity.BatchRow) []int64 {
	seen := make(map[int64]struct{}, len(rows))
	codes := make([]int64, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.Code]; ok {
			continue
		}
		seen[r.Code] = struct{}{}
		codes = append(codes, r.Code)
	}
	return codes
}
