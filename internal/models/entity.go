package models

// Entity is implemented by every stored record. Repositories mint the ID on
// Add when it is empty.
type Entity interface {
	GetID() string
	SetID(id string)
}
