package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/eliasgdev/price-manager-api/internal/domain/entity"
)

// Limites de deriva: o novo preço deve ficar dentro de ±10% do preço atual,
// bordas inclusas.
var (
	driftUpperFactor = decimal.NewFromFloat(1.10)
	driftLowerFactor = decimal.NewFromFloat(0.90)
)

// ValidateBatch aplica as regras de negócio linha a linha, na ordem fixa:
// existência, consistência de pacote, consistência de componente, piso de
// custo e deriva. A primeira regra quebrada encerra a avaliação da linha
// (curto-circuito); linhas rejeitadas nunca abortam o lote. A saída preserva
// a ordem de entrada.
func ValidateBatch(catalog *Catalog, rows []entity.BatchRow) []Outcome {
	// Novo preço por código, primeira ocorrência no lote. É o que permite a
	// soma do pacote usar os preços submetidos (e não os do catálogo).
	newPriceByCode := make(map[int64]decimal.Decimal, len(rows))
	for _, r := range rows {
		if _, ok := newPriceByCode[r.Code]; !ok {
			newPriceByCode[r.Code] = r.NewSalesPrice
		}
	}

	outcomes := make([]Outcome, 0, len(rows))
	for _, r := range rows {
		outcomes = append(outcomes, validateRow(catalog, newPriceByCode, r))
	}
	return outcomes
}

func validateRow(catalog *Catalog, newPriceByCode map[int64]decimal.Decimal, row entity.BatchRow) Outcome {
	classified := Classify(catalog, row)

	// Regra 1: existência.
	if !classified.Found {
		return rejected(row.Code, RuleProductNotFound)
	}
	product := classified.Product

	// Regra 2: consistência de pacote. Todo componente precisa estar no lote
	// e a soma (novo preço × qty) precisa bater exatamente com o preço
	// submetido do pacote. O preço do pacote é por definição essa soma, então
	// a igualdade é exata, sem tolerância.
	var newCostPrice *decimal.Decimal
	if classified.IsPack() {
		sumSales := decimal.Zero
		sumCost := decimal.Zero
		for _, link := range catalog.ComponentLinks(row.Code) {
			componentPrice, inBatch := newPriceByCode[link.ComponentCode]
			if !inBatch {
				return rejected(row.Code, RuleMissingComponentAdjust)
			}
			component := catalog.Product(link.ComponentCode)
			if component == nil {
				// O componente está no lote mas quebrou a própria regra de
				// existência; sem ele não há como compor o custo do pacote.
				return rejected(row.Code, RuleComponentInvalid)
			}
			qty := decimal.NewFromInt(link.Qty)
			sumSales = sumSales.Add(componentPrice.Mul(qty))
			sumCost = sumCost.Add(component.CostPrice.Mul(qty))
		}
		if !row.NewSalesPrice.Equal(sumSales) {
			return rejected(row.Code, RulePackSumMismatch)
		}
		newCostPrice = &sumCost
	}

	// Regra 3: consistência de componente. O lado do pacote também precisa
	// estar no lote; as duas direções da aresta são exigidas.
	if classified.IsComponent() {
		for _, link := range catalog.PackLinks(row.Code) {
			if _, inBatch := newPriceByCode[link.PackCode]; !inBatch {
				return rejected(row.Code, RuleDependentPackNotAdjusted)
			}
		}
	}

	// Regra 4: piso de custo. Para pacotes o custo efetivo é a soma dos
	// custos dos componentes calculada na regra 2.
	effectiveCost := product.CostPrice
	if newCostPrice != nil {
		effectiveCost = *newCostPrice
	}
	if row.NewSalesPrice.LessThan(effectiveCost) {
		return rejected(row.Code, RuleBelowCost)
	}

	// Regra 5: deriva de ±10% sobre o preço vigente, bordas inclusas.
	current := product.SalesPrice
	if row.NewSalesPrice.GreaterThan(current.Mul(driftUpperFactor)) {
		return rejected(row.Code, RuleDriftTooHigh)
	}
	if row.NewSalesPrice.LessThan(current.Mul(driftLowerFactor)) {
		return rejected(row.Code, RuleDriftTooLow)
	}

	return Outcome{
		Code:          row.Code,
		Product:       product,
		NewSalesPrice: row.NewSalesPrice,
		NewCostPrice:  newCostPrice,
	}
}
