package form

import (
	"fmt"
	"net/url"
	"strconv"

	"semar-etiquetas/models"
)

// FromQuery builds a form from query parameters using the same acceptance rules as typed input
// Parameters that are not form fields (format, autoprint, ...) are ignored
func FromQuery(values url.Values) (State, error) {
	return FromQueryWithPlacaTitle(values, DefaultPlacaTitle)
}

// FromQueryWithPlacaTitle is FromQuery starting from a custom placard headline
func FromQueryWithPlacaTitle(values url.Values, placaTitle string) (State, error) {
	return fromQuery(values, placaTitle, (*State).Set)
}

// RestoreQuery reads back a form encoded by State.Query
// The values were accepted once already, so pasted-markup stripping is not repeated
func RestoreQuery(values url.Values, placaTitle string) (State, error) {
	return fromQuery(values, placaTitle, (*State).restore)
}

func fromQuery(values url.Values, placaTitle string, set func(*State, Field, string) error) (State, error) {
	state := NewWithPlacaTitle(placaTitle)

	if raw := values.Get("mode"); raw != "" {
		mode, ok := models.ParseLabelMode(raw)
		if !ok {
			return State{}, fmt.Errorf("%w: %q", ErrUnknownMode, raw)
		}
		state.Mode = mode
	}

	for _, f := range Fields {
		if !values.Has(string(f)) {
			continue
		}
		if err := set(&state, f, values.Get(string(f))); err != nil {
			return State{}, err
		}
	}
	return state, nil
}

// Query encodes the form as query parameters that RestoreQuery reads back
func (s State) Query() url.Values {
	values := url.Values{}
	values.Set("mode", string(s.Mode))
	values.Set(string(FieldOrderNumber), s.IFood.OrderNumber)
	values.Set(string(FieldDryCount), strconv.Itoa(s.IFood.DryCount))
	values.Set(string(FieldColdCount), strconv.Itoa(s.IFood.ColdCount))
	values.Set(string(FieldPurchaseNumber), s.Compra.PurchaseNumber)
	values.Set(string(FieldClientName), s.Compra.ClientName)
	values.Set(string(FieldCompraDryCount), strconv.Itoa(s.Compra.DryCount))
	values.Set(string(FieldCompraColdCount), strconv.Itoa(s.Compra.ColdCount))
	values.Set(string(FieldPlacaTitle), s.Placa.Title)
	values.Set(string(FieldPlacaClientName), s.Placa.ClientName)
	values.Set(string(FieldPlacaCount), strconv.Itoa(s.Placa.Count))
	return values
}
