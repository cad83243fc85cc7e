package dto

import (
	"github.com/shopspring/decimal"

	"github.com/eliasgdev/price-manager-api/internal/domain/entity"
	"github.com/eliasgdev/price-manager-api/internal/domain/pricing"
)

// BatchRowRequest uma linha (código, novo preço) no corpo do PUT.
type BatchRowRequest struct {
	Code          int64           `json:"code"`
	NewSalesPrice decimal.Decimal `json:"new_sales_price"`
}

// UpdatePricesRequest corpo do PUT /price-manager/update-prices.
type UpdatePricesRequest struct {
	Rows []BatchRowRequest `json:"rows"`
}

// ToBatchRows converte o corpo da requisição para o formato do domínio.
func (r UpdatePricesRequest) ToBatchRows() []entity.BatchRow {
	rows := make([]entity.BatchRow, 0, len(r.Rows))
	for _, in := range r.Rows {
		rows = append(rows, entity.BatchRow{Code: in.Code, NewSalesPrice: in.NewSalesPrice})
	}
	return rows
}

// RowResult veredito de uma linha na resposta. Linhas aceitas carregam os
// dados do produto e os novos preços; linhas rejeitadas apenas código e
// mensagem da regra quebrada.
type RowResult struct {
	Code          int64            `json:"code"`
	Name          string           `json:"name,omitempty"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	SalesPrice    *decimal.Decimal `json:"sales_price,omitempty"`
	NewSalesPrice *decimal.Decimal `json:"new_sales_price,omitempty"`
	NewCostPrice  *decimal.Decimal `json:"new_cost_price,omitempty"`
	MsgError      string           `json:"msgError,omitempty"`
}

// BatchResultResponse resposta dos dois endpoints: um objeto por linha de
// entrada, na mesma ordem, mais a indicação de persistência do lote.
type BatchResultResponse struct {
	Updated bool        `json:"updated"`
	Results []RowResult `json:"results"`
}

// FromOutcomes converte os vereditos do validador para a resposta HTTP.
func FromOutcomes(outcomes []pricing.Outcome, updated bool) BatchResultResponse {
	results := make([]RowResult, 0, len(outcomes))
	for _, o := range outcomes {
		results = append(results, fromOutcome(o))
	}
	return BatchResultResponse{Updated: updated, Results: results}
}

func fromOutcome(o pricing.Outcome) RowResult {
	if !o.Accepted() {
		return RowResult{Code: o.Code, MsgError: o.Violation.Message()}
	}
	newSales := o.NewSalesPrice
	return RowResult{
		Code:          o.Code,
		Name:          o.Product.Name,
		CostPrice:     &o.Product.CostPrice,
		SalesPrice:    &o.Product.SalesPrice,
		NewSalesPrice: &newSales,
		NewCostPrice:  o.NewCostPrice,
	}
}
