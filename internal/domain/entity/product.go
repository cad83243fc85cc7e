package entity

import "github.com/shopspring/decimal"

// Product representa um produto do catálogo.
// Code é o identificador único (PK em products); os preços usam
// decimal com 2 casas, a mesma escala do NUMERIC(9,2) da tabela.
type Product struct {
	Code       int64
	Name       string
	CostPrice  decimal.Decimal // preço de custo
	SalesPrice decimal.Decimal // preço de venda vigente
}
