package form

import (
	"errors"
	"fmt"

	"semar-etiquetas/models"
)

var (
	// ErrUnknownField is returned for a field name no mode declares
	ErrUnknownField = errors.New("unknown field")
	// ErrFieldKind is returned when a counter operation targets a text field or vice versa
	ErrFieldKind = errors.New("field kind mismatch")
	// ErrUnknownMode is returned for a mode name other than IFOOD, COMPRA or PLACA
	ErrUnknownMode = errors.New("unknown mode")
)

// Field identifies one input of the form by its wire name
type Field string

const (
	FieldOrderNumber     Field = "orderNumber"
	FieldDryCount        Field = "dryCount"
	FieldColdCount       Field = "coldCount"
	FieldPurchaseNumber  Field = "purchaseNumber"
	FieldClientName      Field = "clientName"
	FieldCompraDryCount  Field = "compraDryCount"
	FieldCompraColdCount Field = "compraColdCount"
	FieldPlacaTitle      Field = "placaTitle"
	FieldPlacaClientName Field = "placaClientName"
	FieldPlacaCount      Field = "placaCount"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindCounter
)

// fieldSpec describes how input for a field is accepted
type fieldSpec struct {
	mode     models.LabelMode
	kind     fieldKind
	min      int  // counters only
	maxLen   int  // text only, 0 = unlimited
	upper    bool // text only
	sanitize bool // text only: strip pasted HTML
}

// MaxCount caps every counter so one request cannot ask for an unbounded batch
const MaxCount = 500

var fieldSpecs = map[Field]fieldSpec{
	FieldOrderNumber:     {mode: models.LabelModeIFood, kind: kindText, maxLen: 4},
	FieldDryCount:        {mode: models.LabelModeIFood, kind: kindCounter, min: 0},
	FieldColdCount:       {mode: models.LabelModeIFood, kind: kindCounter, min: 0},
	FieldPurchaseNumber:  {mode: models.LabelModeCompra, kind: kindText, maxLen: 7},
	FieldClientName:      {mode: models.LabelModeCompra, kind: kindText, upper: true, sanitize: true},
	FieldCompraDryCount:  {mode: models.LabelModeCompra, kind: kindCounter, min: 0},
	FieldCompraColdCount: {mode: models.LabelModeCompra, kind: kindCounter, min: 0},
	FieldPlacaTitle:      {mode: models.LabelModePlaca, kind: kindText, upper: true, sanitize: true},
	FieldPlacaClientName: {mode: models.LabelModePlaca, kind: kindText, upper: true, sanitize: true},
	FieldPlacaCount:      {mode: models.LabelModePlaca, kind: kindCounter, min: 1},
}

// Fields lists every field in declaration order
var Fields = []Field{
	FieldOrderNumber, FieldDryCount, FieldColdCount,
	FieldPurchaseNumber, FieldClientName, FieldCompraDryCount, FieldCompraColdCount,
	FieldPlacaTitle, FieldPlacaClientName, FieldPlacaCount,
}

// ParseField resolves a wire name to a Field
func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := fieldSpecs[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// IsCounter reports whether the field holds a count
func (f Field) IsCounter() bool {
	spec, ok := fieldSpecs[f]
	return ok && spec.kind == kindCounter
}

// Mode returns the mode the field belongs to
func (f Field) Mode() models.LabelMode {
	return fieldSpecs[f].mode
}
