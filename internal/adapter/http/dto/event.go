package dto

// ChangeEventItem is the payload of a "change" server-sent event.
type ChangeEventItem struct {
	Type   string `json:"type"`
	Entity string `json:"entity"`
	ID     string `json:"id"`
	At     string `json:"at"`
}
