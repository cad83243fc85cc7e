package entity

import "github.com/shopspring/decimal"

// BatchRow é uma linha de entrada já extraída (código do produto + novo preço
// de venda). Linhas duplicadas no mesmo lote são validadas de forma
// independente.
type BatchRow struct {
	Code          int64
	NewSalesPrice decimal.Decimal
}
