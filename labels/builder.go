// Package labels expands a form snapshot into the ordered list of labels to print.
package labels

import (
	"semar-etiquetas/form"
	"semar-etiquetas/models"
)

// Build returns the labels for the active mode of state
// Only the active mode's fields are read. The result is freshly allocated on every call
func Build(state form.State) []models.LabelData {
	switch state.Mode {
	case models.LabelModeIFood:
		f := state.IFood
		if f.OrderNumber == "" {
			return []models.LabelData{}
		}
		return buildBatch(models.LabelModeIFood, f.OrderNumber, "", f.DryCount, f.ColdCount)

	case models.LabelModeCompra:
		f := state.Compra
		if f.PurchaseNumber == "" && f.ClientName == "" {
			return []models.LabelData{}
		}
		return buildBatch(models.LabelModeCompra, f.PurchaseNumber, f.ClientName, f.DryCount, f.ColdCount)

	case models.LabelModePlaca:
		f := state.Placa
		if f.Title == "" {
			return []models.LabelData{}
		}
		return buildPlacas(f.Title, f.ClientName, f.Count)
	}
	return []models.LabelData{}
}

// buildBatch numbers dry bags first, then cold bags, as one run 1..dry+cold
func buildBatch(mode models.LabelMode, title, clientName string, dry, cold int) []models.LabelData {
	dry, cold = max(dry, 0), max(cold, 0)
	total := dry + cold
	out := make([]models.LabelData, 0, total)

	appendRun := func(bag models.BagType, n int) {
		for i := 0; i < n; i++ {
			out = append(out, models.LabelData{
				Title:         title,
				ClientName:    clientName,
				Type:          bag,
				CurrentVolume: len(out) + 1,
				TotalVolumes:  total,
				DryTotal:      dry,
				ColdTotal:     cold,
				Mode:          mode,
			})
		}
	}
	appendRun(models.BagTypeSeca, dry)
	appendRun(models.BagTypeGelada, cold)
	return out
}

// buildPlacas returns count independent 1-of-1 placards
func buildPlacas(title, clientName string, count int) []models.LabelData {
	out := make([]models.LabelData, 0, max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, models.LabelData{
			Title:         title,
			ClientName:    clientName,
			Type:          models.BagTypeGenerico,
			CurrentVolume: 1,
			TotalVolumes:  1,
			Mode:          models.LabelModePlaca,
		})
	}
	return out
}

// IsValid reports whether the active mode has enough input to print
//
// COMPRA requires an identifying field and at least one volume, so a valid
// form always builds at least one label.
func IsValid(state form.State) bool {
	switch state.Mode {
	case models.LabelModeIFood:
		return state.IFood.OrderNumber != "" && state.IFood.DryCount+state.IFood.ColdCount > 0
	case models.LabelModeCompra:
		c := state.Compra
		return (c.ClientName != "" || c.PurchaseNumber != "") && c.DryCount+c.ColdCount > 0
	case models.LabelModePlaca:
		return state.Placa.Title != ""
	}
	return false
}

// Summary is the batch identity used in logs and print history
func Summary(state form.State) (title, clientName string) {
	switch state.Mode {
	case models.LabelModeIFood:
		return state.IFood.OrderNumber, ""
	case models.LabelModeCompra:
		return state.Compra.PurchaseNumber, state.Compra.ClientName
	case models.LabelModePlaca:
		return state.Placa.Title, state.Placa.ClientName
	}
	return "", ""
}
