package form

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semar-etiquetas/models"
)

func TestFromQuery(t *testing.T) {
	values := url.Values{
		"mode":            {"compra"},
		"purchaseNumber":  {"123456789"},
		"clientName":      {"maria"},
		"compraDryCount":  {"2"},
		"compraColdCount": {"abc"},
		"format":          {"pdf"},
	}

	s, err := FromQuery(values)

	require.NoError(t, err)
	assert.Equal(t, models.LabelModeCompra, s.Mode)
	assert.Equal(t, CompraFields{PurchaseNumber: "1234567", ClientName: "MARIA", DryCount: 2, ColdCount: 0}, s.Compra)
	assert.Equal(t, IFoodFields{DryCount: 1}, s.IFood)
}

func TestFromQueryDefaults(t *testing.T) {
	s, err := FromQuery(url.Values{})

	require.NoError(t, err)
	if diff := cmp.Diff(New(), s); diff != "" {
		t.Fatalf("FromQuery(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestFromQueryUnknownMode(t *testing.T) {
	_, err := FromQuery(url.Values{"mode": {"BALCAO"}})

	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestQueryRoundTrip(t *testing.T) {
	s := New()
	require.NoError(t, s.SetMode(models.LabelModePlaca))
	require.NoError(t, s.SetText(FieldPlacaClientName, "joão"))
	require.NoError(t, s.SetCounter(FieldPlacaCount, "3"))
	require.NoError(t, s.SetText(FieldOrderNumber, "4321"))

	back, err := FromQuery(s.Query())

	require.NoError(t, err)
	if diff := cmp.Diff(s, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRestoreQueryKeepsDecodedText(t *testing.T) {
	s := New()
	require.NoError(t, s.SetMode(models.LabelModeCompra))
	require.NoError(t, s.SetText(FieldClientName, "&lt;ana&gt; bia"))
	require.NoError(t, s.SetText(FieldPurchaseNumber, "12<3>"))
	require.NoError(t, s.SetText(FieldPlacaTitle, "&lt;vaga&gt;"))
	require.Equal(t, "<ANA> BIA", s.Compra.ClientName)

	back, err := RestoreQuery(s.Query(), DefaultPlacaTitle)

	require.NoError(t, err)
	if diff := cmp.Diff(s, back); diff != "" {
		t.Fatalf("restore mismatch (-want +got):\n%s", diff)
	}
}

func TestRestoreQueryStillNormalizes(t *testing.T) {
	back, err := RestoreQuery(url.Values{
		"mode":            {"placa"},
		"placaTitle":      {"retirada"},
		"orderNumber":     {"123456"},
		"placaCount":      {"9999"},
		"placaClientName": {"<b>"},
	}, DefaultPlacaTitle)

	require.NoError(t, err)
	assert.Equal(t, models.LabelModePlaca, back.Mode)
	assert.Equal(t, "RETIRADA", back.Placa.Title)
	assert.Equal(t, "<B>", back.Placa.ClientName)
	assert.Equal(t, "1234", back.IFood.OrderNumber)
	assert.Equal(t, MaxCount, back.Placa.Count)
}

func TestNewWithPlacaTitle(t *testing.T) {
	s, err := FromQueryWithPlacaTitle(url.Values{}, "vaga reservada")

	require.NoError(t, err)
	assert.Equal(t, "VAGA RESERVADA", s.Placa.Title)
}
