package postgres

import (
	"context"
	"fmt"

	"github.com/eliasgdev/price-manager-api/internal/domain/entity"
	"github.com/eliasgdev/price-manager-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementação da porta CatalogRepository sobre PostgreSQL.
// Somente leitura; usável com pool ou tx (Querier).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository constrói o adaptador de leitura do catálogo.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// FetchForCodes carrega em duas consultas tudo que o lote precisa: os
// produtos com código no lote e as arestas de packs que tocam esses códigos
// como pacote ou como componente. Nunca devolve resultado parcial.
func (r *CatalogRepo) FetchForCodes(ctx context.Context, codes []int64) ([]entity.Product, []entity.PackLink, error) {
	if len(codes) == 0 {
		return nil, nil, nil
	}

	products, err := r.fetchProducts(ctx, codes)
	if err != nil {
		return nil, nil, err
	}
	links, err := r.fetchPackLinks(ctx, codes)
	if err != nil {
		return nil, nil, err
	}
	return products, links, nil
}

func (r *CatalogRepo) fetchProducts(ctx context.Context, codes []int64) ([]entity.Product, error) {
	query := `
		SELECT code, name, cost_price, sales_price
		FROM products WHERE code = ANY($1)`
	rows, err := r.q.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("consultar produtos: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Code, &p.Name, &p.CostPrice, &p.SalesPrice); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *CatalogRepo) fetchPackLinks(ctx context.Context, codes []int64) ([]entity.PackLink, error) {
	query := `
		SELECT id, pack_id, product_id, qty
		FROM packs WHERE pack_id = ANY($1) OR product_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("consultar packs: %w", err)
	}
	defer rows.Close()

	var links []entity.PackLink
	for rows.Next() {
		var l entity.PackLink
		if err := rows.Scan(&l.ID, &l.PackCode, &l.ComponentCode, &l.Qty); err != nil {
			return nil, fmt.Errorf("scan pack: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
