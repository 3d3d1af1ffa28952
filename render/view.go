// Package render lays out labels for print.
//
// Label turns one record into a LabelView, a flat description of what each
// region of the printed card shows. Sheet executes the HTML template that
// places every view on A4 pages. Neither keeps state between calls.
package render

import (
	"fmt"

	"semar-etiquetas/models"
)

const (
	// PlacaClientPlaceholder is printed on a placard without a client name
	PlacaClientPlaceholder = "---"
	// CompraClientPlaceholder is printed on a purchase label without a client name
	CompraClientPlaceholder = "AVULSO"

	ifoodCaption   = "PEDIDO IFOOD"
	ifoodFooterTag = "IFOOD DELIVERY"
	signatureLine  = "RESPONSÁVEL: _________________"
	dateLine       = "DATA: ____/____/____"
)

// Branding is the fixed text printed on every label
type Branding struct {
	Caption   string `yaml:"caption"`   // placard footer and watermark
	Copyright string `yaml:"copyright"` // small print at the bottom of every card
}

// DefaultBranding is used when no branding file is configured
var DefaultBranding = Branding{
	Caption:   "SEMAR ENTREGA",
	Copyright: "© Todos os direitos reservados a JM",
}

// LabelView is what one printed card shows
type LabelView struct {
	Mode     models.LabelMode
	Placa    bool
	Caption  string // small header line (IFOOD/COMPRA) or placard headline
	Headline string // big header text (IFOOD/COMPRA) or placard body

	Badge         string
	BadgeInverted bool // GELADA prints white on black

	VolumeLine    string // "VOLUME 1 DE 3"
	TotalLine     string // "3 VOLUMES"
	BreakdownLine string // "2 SECOS • 1 GELADOS"

	FooterLeft  string
	FooterRight string
	Watermark   string
	Copyright   string
}

// Renderer lays out labels with a given branding
type Renderer struct {
	Branding Branding
}

// NewRenderer creates a Renderer, filling empty branding fields with the defaults
func NewRenderer(b Branding) *Renderer {
	if b.Caption == "" {
		b.Caption = DefaultBranding.Caption
	}
	if b.Copyright == "" {
		b.Copyright = DefaultBranding.Copyright
	}
	return &Renderer{Branding: b}
}

// Label lays out one record with the default branding
func Label(data models.LabelData) LabelView {
	return NewRenderer(DefaultBranding).Label(data)
}

// Label lays out one record. Any well-formed record renders; missing text gets a placeholder
func (r *Renderer) Label(data models.LabelData) LabelView {
	view := LabelView{
		Mode:      data.Mode,
		Watermark: r.Branding.Caption,
		Copyright: r.Branding.Copyright,
	}

	switch data.Mode {
	case models.LabelModePlaca:
		view.Placa = true
		view.Caption = data.Title
		view.Headline = orPlaceholder(data.ClientName, PlacaClientPlaceholder)
		view.FooterLeft = r.Branding.Caption
		return view

	case models.LabelModeCompra:
		view.Caption = "COMPRA: #" + data.Title
		view.Headline = orPlaceholder(data.ClientName, CompraClientPlaceholder)
		view.FooterLeft = dateLine

	default:
		view.Caption = ifoodCaption
		view.Headline = "#" + data.Title
		view.FooterLeft = signatureLine
		view.FooterRight = ifoodFooterTag
	}

	view.Badge = string(data.Type)
	view.BadgeInverted = data.Type == models.BagTypeGelada
	view.VolumeLine = fmt.Sprintf("VOLUME %d DE %d", data.CurrentVolume, data.TotalVolumes)
	view.TotalLine = fmt.Sprintf("%d VOLUMES", data.TotalVolumes)
	view.BreakdownLine = fmt.Sprintf("%d SECOS • %d GELADOS", data.DryTotal, data.ColdTotal)
	return view
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// EmptyMessage is shown on a sheet with nothing to print
func EmptyMessage(mode models.LabelMode) string {
	switch mode {
	case models.LabelModeCompra:
		return "PREENCHA OS DADOS DA COMPRA"
	case models.LabelModePlaca:
		return "AGUARDANDO TEXTO DA PLACA"
	}
	return "AGUARDANDO PEDIDO IFOOD"
}
