package invoices

import "github.com/angelmondragon/vegmart-backend/internal/collection"

const (
	idPrefix = "INV-"
	idWidth  = 3
)

// Repository is the in-memory invoice collection.
type Repository = collection.Store[Invoice]

// NewRepository builds an empty repository issuing INV-NNN tags. Seeded tags are skipped,
// and tags of deleted invoices are never reissued.
func NewRepository() (*Repository, error) {
	return collection.New(collection.Options[Invoice]{
		Kind:  "invoice",
		IDOf:  func(inv Invoice) string { return inv.ID },
		SetID: func(inv *Invoice, id string) { inv.ID = id },
		IDs:   collection.NewSequenceGenerator(idPrefix, idWidth),
	})
}
