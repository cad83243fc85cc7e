package pricing

import "github.com/eliasgdev/price-manager-api/internal/domain/entity"

// Catalog é o recorte imutável do catálogo carregado para um lote:
// os produtos encontrados e as arestas de pacote que tocam os códigos do
// lote (nas duas direções). Os índices substituem qualquer travessia de
// grafo: pacote→componentes e componente→pacotes são dois lookups planos.
type Catalog struct {
	products         map[int64]*entity.Product
	linksByPack      map[int64][]entity.PackLink
	linksByComponent map[int64][]entity.PackLink
}

// NewCatalog indexa o resultado bruto do resolver. As fatias de entrada não
// são mutadas nem re-ordenadas.
func NewCatalog(products []entity.Product, links []entity.PackLink) *Catalog {
	c := &Catalog{
		products:         make(map[int64]*entity.Product, len(products)),
		linksByPack:      make(map[int64][]entity.PackLink),
		linksByComponent: make(map[int64][]entity.PackLink),
	}
	for i := range products {
		p := products[i]
		c.products[p.Code] = &p
	}
	for _, l := range links {
		c.linksByPack[l.PackCode] = append(c.linksByPack[l.PackCode], l)
		c.linksByComponent[l.ComponentCode] = append(c.linksByComponent[l.ComponentCode], l)
	}
	return c
}

// Product devolve o produto do catálogo ou nil se o código não existe.
func (c *Catalog) Product(code int64) *entity.Product {
	return c.products[code]
}

// ComponentLinks devolve as arestas em que code é o pacote.
func (c *Catalog) ComponentLinks(code int64) []entity.PackLink {
	return c.linksByPack[code]
}

// PackLinks devolve as arestas em que code é componente de outro pacote.
func (c *Catalog) PackLinks(code int64) []entity.PackLink {
	return c.linksByComponent[code]
}
