package models

import "strings"

// LabelMode selects which form fields are active and which layout a label uses
type LabelMode string

const (
	LabelModeIFood  LabelMode = "IFOOD"
	LabelModeCompra LabelMode = "COMPRA"
	LabelModePlaca  LabelMode = "PLACA"
)

// LabelModes lists every mode in tab order
var LabelModes = []LabelMode{LabelModeIFood, LabelModeCompra, LabelModePlaca}

// ParseLabelMode normalizes a mode name (case-insensitive)
// Returns false when the value is not a known mode
func ParseLabelMode(s string) (LabelMode, bool) {
	mode := LabelMode(strings.ToUpper(strings.TrimSpace(s)))
	switch mode {
	case LabelModeIFood, LabelModeCompra, LabelModePlaca:
		return mode, true
	}
	return "", false
}

// BagType is the bag classification printed on the label badge
type BagType string

const (
	BagTypeSeca     BagType = "SECA"
	BagTypeGelada   BagType = "GELADA"
	BagTypeGenerico BagType = "GENERICO" // placards only
)

// LabelData represents one physical label to print
type LabelData struct {
	Title         string    `json:"title"`                // order number, purchase number or placard headline
	ClientName    string    `json:"clientName,omitempty"` // COMPRA and PLACA only
	Type          BagType   `json:"type"`
	CurrentVolume int       `json:"currentVolume"` // 1-based position within the batch
	TotalVolumes  int       `json:"totalVolumes"`
	DryTotal      int       `json:"dryTotal"`
	ColdTotal     int       `json:"coldTotal"`
	Mode          LabelMode `json:"mode"`
}
