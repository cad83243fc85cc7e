package pricing

import "github.com/eliasgdev/price-manager-api/internal/domain/entity"

// Role é o papel de um produto na malha de pacotes.
type Role int

const (
	RolePlain     Role = iota // produto comum, sem arestas
	RolePack                  // possui componentes
	RoleComponent             // é componente de outro pacote
	RoleBoth                  // pacote e componente ao mesmo tempo
)

// ClassifiedRow é uma linha do lote com o produto resolvido e o papel
// determinado. Found=false significa código ausente do catálogo e nenhum
// papel é calculado.
type ClassifiedRow struct {
	Row     entity.BatchRow
	Product *entity.Product
	Found   bool
	Role    Role
}

// Classify é uma função pura do recorte do catálogo e de uma linha.
func Classify(catalog *Catalog, row entity.BatchRow) ClassifiedRow {
	product := catalog.Product(row.Code)
	if product == nil {
		return ClassifiedRow{Row: row}
	}

	isPack := len(catalog.ComponentLinks(row.Code)) > 0
	isComponent := len(catalog.PackLinks(row.Code)) > 0

	role := RolePlain
	switch {
	case isPack && isComponent:
		role = RoleBoth
	case isPack:
		role = RolePack
	case isComponent:
		role = RoleComponent
	}

	return ClassifiedRow{Row: row, Product: product, Found: true, Role: role}
}

// IsPack indica se a linha deve passar pelas validações de pacote.
func (r ClassifiedRow) IsPack() bool { return r.Role == RolePack || r.Role == RoleBoth }

// IsComponent indica se a linha deve passar pelas validações de componente.
func (r ClassifiedRow) IsComponent() bool { return r.Role == RoleComponent || r.Role == RoleBoth }
