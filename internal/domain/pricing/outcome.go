package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/eliasgdev/price-manager-api/internal/domain/entity"
)

// Outcome é o veredito de uma linha do lote. Exatamente uma das variantes
// vale: aceita (Violation nil, com o produto resolvido e o novo preço) ou
// rejeitada (Violation preenchido). NewCostPrice só existe quando a linha é
// um pacote: é a soma dos custos dos componentes e será persistida junto
// com o preço de venda.
type Outcome struct {
	Code          int64
	Product       *entity.Product
	NewSalesPrice decimal.Decimal
	NewCostPrice  *decimal.Decimal
	Violation     *Violation
}

// Accepted indica se a linha passou por todas as regras.
func (o Outcome) Accepted() bool { return o.Violation == nil }

// AllAccepted indica se todas as linhas do lote passaram; só nesse caso o
// lote pode ser persistido.
func AllAccepted(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if !o.Accepted() {
			return false
		}
	}
	return true
}

func rejected(code int64, rule Rule) Outcome {
	return Outcome{Code: code, Violation: &Violation{Rule: rule}}
}
