package models

// Operator identifies whoever holds a signed operator token.
type Operator struct {
	Name string `json:"name"`
}
