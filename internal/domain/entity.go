package domain

// EntityType identifies one of the per-day partitioned entity tables.
// The three primary types form a closed set; dispatch sites switch over
// them exhaustively. EntitySummaries is a write-only pseudo-entity used to
// persist daily summary records and is rejected at the external boundary.
type EntityType string

const (
	EntityClients   EntityType = "clients"
	EntityProducts  EntityType = "products"
	EntityOrders    EntityType = "orders"
	EntitySummaries EntityType = "summaries"
)

// PrimaryEntityTypes lists the entity types that participate in enrichment,
// in the order EnrichAll processes them.
func PrimaryEntityTypes() []EntityType {
	return []EntityType{EntityClients, EntityProducts, EntityOrders}
}

// ParseEntityType translates an external entity-type string into the closed
// enum. Only the three primary types are accepted.
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntityClients:
		return EntityClients, nil
	case EntityProducts:
		return EntityProducts, nil
	case EntityOrders:
		return EntityOrders, nil
	default:
		return "", ErrValidation("unsupported entity type %q (want clients, products, or orders)", s)
	}
}

func (e EntityType) String() string { return string(e) }
