package vegetables

import "github.com/angelmondragon/vegmart-backend/internal/collection"

// Repository is the in-memory vegetable collection.
type Repository = collection.Store[Vegetable]

// NewRepository builds an empty repository. Inserted vegetables get UUIDs unless ids overrides it.
func NewRepository(ids collection.IDGenerator) (*Repository, error) {
	return collection.New(collection.Options[Vegetable]{
		Kind:  "vegetable",
		IDOf:  func(v Vegetable) string { return v.ID },
		SetID: func(v *Vegetable, id string) { v.ID = id },
		IDs:   ids,
	})
}
