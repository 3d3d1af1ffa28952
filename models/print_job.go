package models

// PrintJob records that a label batch was printed
// Label records themselves are never stored, only what was printed and when
type PrintJob struct {
	ID         string    `json:"id"`
	Mode       LabelMode `json:"mode"`
	Title      string    `json:"title"`
	ClientName string    `json:"clientName,omitempty"`
	LabelCount int       `json:"labelCount"`
	Format     string    `json:"format"` // html, pdf or png
	CreatedAt  string    `json:"createdAt"`
}
