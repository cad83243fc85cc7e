package entity

// PackLink é uma aresta pacote→componente da tabela packs.
// PackCode e ComponentCode referenciam products.code; Qty é o multiplicador
// do componente dentro do pacote. O modelo é plano: um componente nunca é
// tratado como pacote dentro da mesma aresta (sem aninhamento).
type PackLink struct {
	ID            int64
	PackCode      int64
	ComponentCode int64
	Qty           int64
}
