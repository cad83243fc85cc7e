package pricing

// Rule identifica a regra de negócio quebrada por uma linha do lote.
type Rule string

const (
	RuleProductNotFound          Rule = "PRODUCT_NOT_FOUND"
	RulePackSumMismatch          Rule = "PACK_SUM_MISMATCH"
	RuleMissingComponentAdjust   Rule = "MISSING_COMPONENT_ADJUSTMENT"
	RuleDependentPackNotAdjusted Rule = "DEPENDENT_PACK_NOT_ADJUSTED"
	RuleComponentInvalid         Rule = "COMPONENT_INVALID"
	RuleBelowCost                Rule = "BELOW_COST"
	RuleDriftTooHigh             Rule = "DRIFT_TOO_HIGH"
	RuleDriftTooLow              Rule = "DRIFT_TOO_LOW"
)

// Mensagens exibidas ao usuário, uma por regra.
var ruleMessages = map[Rule]string{
	RuleProductNotFound:          "O código de produto fornecido não corresponde a nenhum registro existente.",
	RulePackSumMismatch:          "Ao atualizar o preço de um pacote, é necessário incluir os ajustes nos preços dos componentes do pacote, de modo que a soma dos preços dos componentes corresponda ao preço do pacote.",
	RuleMissingComponentAdjust:   "Ao atualizar o preço de um pacote, é necessário incluir os ajustes nos preços dos componentes do pacote, de modo que a soma dos preços dos componentes corresponda ao preço do pacote.",
	RuleDependentPackNotAdjusted: "Ao atualizar o preço de um produto que outros produtos dependem como componente, é necessário incluir o ajuste no preço do pacote como parte do processo.",
	RuleComponentInvalid:         "Para atualizar um pacote, o componente do produto não deve violar nenhuma regra.",
	RuleBelowCost:                "O preço de venda não pode ser inferior ao preço de custo.",
	RuleDriftTooHigh:             "O ajuste de preço não pode exceder 10% a mais do preço atual do produto.",
	RuleDriftTooLow:              "O ajuste de preço não pode exceder 10% a menos do preço atual do produto.",
}

// Violation é o veredito negativo de uma linha: a regra quebrada e a
// mensagem correspondente.
type Violation struct {
	Rule Rule
}

// Message devolve a mensagem da regra quebrada.
func (v Violation) Message() string {
	return ruleMessages[v.Rule]
}
