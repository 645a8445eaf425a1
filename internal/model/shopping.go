package model

// ShoppingItem is a checklist entry on the shopping list.
type ShoppingItem struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
