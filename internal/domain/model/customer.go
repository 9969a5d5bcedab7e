package model

// Customer is the buyer of a cart.
type Customer struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Region Region       `json:"region"`
	Tier   CustomerTier `json:"tier"`
}
