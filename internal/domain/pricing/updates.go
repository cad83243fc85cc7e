package pricing

import "github.com/shopspring/decimal"

// PriceUpdate é a escrita derivada de uma linha aceita: o novo preço de
// venda e, para pacotes, o novo preço de custo.
type PriceUpdate struct {
	Code       int64
	SalesPrice decimal.Decimal
	CostPrice  *decimal.Decimal
}

// Updates converte os vereditos aceitos em escritas. Deve ser chamado apenas
// quando AllAccepted é verdadeiro; linhas rejeitadas são ignoradas.
func Updates(outcomes []Outcome) []PriceUpdate {
	updates := make([]PriceUpdate, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.Accepted() {
			continue
		}
		updates = append(updates, PriceUpdate{
			Code:       o.Code,
			SalesPrice: o.NewSalesPrice,
			CostPrice:  o.NewCostPrice,
		})
	}
	return updates
}
