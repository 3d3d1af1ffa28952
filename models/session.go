package models

// ModeRequest represents the request body for switching the active mode
// Example: {"mode": "COMPRA"}
type ModeRequest struct {
	Mode string `json:"mode"`
}

// FieldRequest represents the request body for editing a form field
// Example: {"field": "clientName", "value": "joão da silva"}
// Counter fields accept any string; non-numeric input is coerced to the field minimum
type FieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// PageLink points at one stored PNG page
type PageLink struct {
	Page     int    `json:"page"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl"`
	Filename string `json:"filename"`
}

// PNGResponse is returned when labels are generated as PNG pages
type PNGResponse struct {
	SessionID  string     `json:"sessionId"`
	TotalPages int        `json:"totalPages"`
	Mode       LabelMode  `json:"mode"`
	Pages      []PageLink `json:"pages"`
}
