package sellers

import "github.com/angelmondragon/vegmart-backend/internal/collection"

// Repository is the in-memory seller collection.
type Repository = collection.Store[Seller]

func NewRepository(ids collection.IDGenerator) (*Repository, error) {
	return collection.New(collection.Options[Seller]{
		Kind:  "seller",
		IDOf:  func(s Seller) string { return s.ID },
		SetID: func(s *Seller, id string) { s.ID = id },
		IDs:   ids,
	})
}
