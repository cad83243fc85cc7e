package repository

import (
	"context"

	"github.com/eliasgdev/price-manager-api/internal/domain/entity"
)

// CatalogRepository define a porta de leitura do catálogo para um lote.
// FetchForCodes devolve em uma única leitura os produtos cujos códigos estão
// no lote e todas as arestas de pacote que tocam esses códigos como pacote ou
// como componente (um salto nas duas direções). Nunca devolve resultado
// parcial: qualquer falha de leitura vira domain.ErrStorageUnavailable e
// aborta o lote. Sem garantia de ordem.
type CatalogRepository interface {
	FetchForCodes(ctx context.Context, codes []int64) ([]entity.Product, []entity.PackLink, error)
}
