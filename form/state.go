package form

import (
	"fmt"

	"semar-etiquetas/models"
)

// DefaultPlacaTitle is the headline a new form starts with
const DefaultPlacaTitle = "RESERVADO DRIVE"

// IFoodFields holds the delivery bag label inputs
type IFoodFields struct {
	OrderNumber string `json:"orderNumber"`
	DryCount    int    `json:"dryCount"`
	ColdCount   int    `json:"coldCount"`
}

// CompraFields holds the purchase label inputs
type CompraFields struct {
	PurchaseNumber string `json:"purchaseNumber"`
	ClientName     string `json:"clientName"`
	DryCount       int    `json:"compraDryCount"`
	ColdCount      int    `json:"compraColdCount"`
}

// PlacaFields holds the placard inputs
type PlacaFields struct {
	Title      string `json:"placaTitle"`
	ClientName string `json:"placaClientName"`
	Count      int    `json:"placaCount"`
}

// State is the whole form: one struct per mode plus the active mode
// Switching modes never touches the other modes' fields
type State struct {
	Mode   models.LabelMode `json:"mode"`
	IFood  IFoodFields      `json:"ifood"`
	Compra CompraFields     `json:"compra"`
	Placa  PlacaFields      `json:"placa"`
}

func defaultIFood() IFoodFields {
	return IFoodFields{DryCount: 1}
}

func defaultCompra() CompraFields {
	return CompraFields{DryCount: 1}
}

// New returns a form in IFOOD mode with every field at its default
func New() State {
	return NewWithPlacaTitle(DefaultPlacaTitle)
}

// NewWithPlacaTitle is New with a custom initial placard headline
func NewWithPlacaTitle(title string) State {
	return State{
		Mode:   models.LabelModeIFood,
		IFood:  defaultIFood(),
		Compra: defaultCompra(),
		Placa:  PlacaFields{Title: acceptText(fieldSpecs[FieldPlacaTitle], title), Count: 1},
	}
}

// SetMode switches the active mode
func (s *State) SetMode(mode models.LabelMode) error {
	parsed, ok := models.ParseLabelMode(string(mode))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	s.Mode = parsed
	return nil
}

func (s *State) textRef(f Field) *string {
	switch f {
	case FieldOrderNumber:
		return &s.IFood.OrderNumber
	case FieldPurchaseNumber:
		return &s.Compra.PurchaseNumber
	case FieldClientName:
		return &s.Compra.ClientName
	case FieldPlacaTitle:
		return &s.Placa.Title
	case FieldPlacaClientName:
		return &s.Placa.ClientName
	}
	return nil
}

func (s *State) counterRef(f Field) *int {
	switch f {
	case FieldDryCount:
		return &s.IFood.DryCount
	case FieldColdCount:
		return &s.IFood.ColdCount
	case FieldCompraDryCount:
		return &s.Compra.DryCount
	case FieldCompraColdCount:
		return &s.Compra.ColdCount
	case FieldPlacaCount:
		return &s.Placa.Count
	}
	return nil
}

func lookup(f Field, want fieldKind) (fieldSpec, error) {
	spec, ok := fieldSpecs[f]
	if !ok {
		return fieldSpec{}, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	if spec.kind != want {
		return fieldSpec{}, fmt.Errorf("%w: %q", ErrFieldKind, f)
	}
	return spec, nil
}

// SetText stores typed text after markup stripping (names and titles), upper-casing and length limiting
func (s *State) SetText(f Field, raw string) error {
	spec, err := lookup(f, kindText)
	if err != nil {
		return err
	}
	*s.textRef(f) = acceptText(spec, raw)
	return nil
}

// restore stores a value that already went through the input rules
// Markup stripping is skipped: a name like "<ANA>" is text by now and must survive
func (s *State) restore(f Field, raw string) error {
	if f.IsCounter() {
		return s.SetCounter(f, raw)
	}
	spec, err := lookup(f, kindText)
	if err != nil {
		return err
	}
	*s.textRef(f) = normalizeText(spec, raw)
	return nil
}

// SetCounter stores a typed count; non-numeric input becomes the field minimum
func (s *State) SetCounter(f Field, raw string) error {
	spec, err := lookup(f, kindCounter)
	if err != nil {
		return err
	}
	*s.counterRef(f) = acceptCounter(spec, raw)
	return nil
}

// Set dispatches to SetText or SetCounter depending on the field
func (s *State) Set(f Field, raw string) error {
	if f.IsCounter() {
		return s.SetCounter(f, raw)
	}
	return s.SetText(f, raw)
}

// Increment adds one to a counter
func (s *State) Increment(f Field) error {
	return s.step(f, 1)
}

// Decrement subtracts one from a counter, never going below its floor
func (s *State) Decrement(f Field) error {
	return s.step(f, -1)
}

func (s *State) step(f Field, delta int) error {
	spec, err := lookup(f, kindCounter)
	if err != nil {
		return err
	}
	ref := s.counterRef(f)
	*ref = clampCount(*ref+delta, spec.min)
	return nil
}

// Clear resets the active mode's fields to their defaults
// The placard headline is kept
func (s *State) Clear() {
	switch s.Mode {
	case models.LabelModeIFood:
		s.IFood = defaultIFood()
	case models.LabelModeCompra:
		s.Compra = defaultCompra()
	case models.LabelModePlaca:
		s.Placa.ClientName = ""
		s.Placa.Count = 1
	}
}
