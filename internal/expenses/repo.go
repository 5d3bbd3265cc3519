package expenses

import "github.com/angelmondragon/vegmart-backend/internal/collection"

// Repository is the in-memory expense ledger. Only fixtures populate it.
type Repository = collection.Store[Expense]

func NewRepository() (*Repository, error) {
	return collection.New(collection.Options[Expense]{
		Kind:  "expense",
		IDOf:  func(e Expense) string { return e.ID },
		SetID: func(e *Expense, id string) { e.ID = id },
	})
}
