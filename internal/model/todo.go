package model

// Todo is the domain record held by the todo store.
// ID is assigned by the store and never reused.
type Todo struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
