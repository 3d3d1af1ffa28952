package labels

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semar-etiquetas/form"
	"semar-etiquetas/models"
)

func ifoodState(order string, dry, cold int) form.State {
	s := form.New()
	s.IFood = form.IFoodFields{OrderNumber: order, DryCount: dry, ColdCount: cold}
	return s
}

func compraState(purchase, client string, dry, cold int) form.State {
	s := form.New()
	s.Mode = models.LabelModeCompra
	s.Compra = form.CompraFields{PurchaseNumber: purchase, ClientName: client, DryCount: dry, ColdCount: cold}
	return s
}

func placaState(title, client string, count int) form.State {
	s := form.New()
	s.Mode = models.LabelModePlaca
	s.Placa = form.PlacaFields{Title: title, ClientName: client, Count: count}
	return s
}

func TestBuildIFood(t *testing.T) {
	got := Build(ifoodState("1234", 2, 1))

	want := []models.LabelData{
		{Title: "1234", Type: models.BagTypeSeca, CurrentVolume: 1, TotalVolumes: 3, DryTotal: 2, ColdTotal: 1, Mode: models.LabelModeIFood},
		{Title: "1234", Type: models.BagTypeSeca, CurrentVolume: 2, TotalVolumes: 3, DryTotal: 2, ColdTotal: 1, Mode: models.LabelModeIFood},
		{Title: "1234", Type: models.BagTypeGelada, CurrentVolume: 3, TotalVolumes: 3, DryTotal: 2, ColdTotal: 1, Mode: models.LabelModeIFood},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildIFoodEmptyOrderNumber(t *testing.T) {
	state := ifoodState("", 5, 5)

	assert.Empty(t, Build(state))
	assert.False(t, IsValid(state))
}

func TestBuildIFoodOnlyCold(t *testing.T) {
	got := Build(ifoodState("77", 0, 2))

	require.Len(t, got, 2)
	for i, l := range got {
		assert.Equal(t, models.BagTypeGelada, l.Type)
		assert.Equal(t, i+1, l.CurrentVolume)
		assert.Equal(t, 2, l.TotalVolumes)
	}
}

func TestBuildCompra(t *testing.T) {
	got := Build(compraState("1234567", "MARIA", 1, 2))

	require.Len(t, got, 3)
	types := []models.BagType{got[0].Type, got[1].Type, got[2].Type}
	assert.Equal(t, []models.BagType{models.BagTypeSeca, models.BagTypeGelada, models.BagTypeGelada}, types)
	for i, l := range got {
		assert.Equal(t, "1234567", l.Title)
		assert.Equal(t, "MARIA", l.ClientName)
		assert.Equal(t, i+1, l.CurrentVolume)
		assert.Equal(t, 3, l.TotalVolumes)
		assert.Equal(t, 1, l.DryTotal)
		assert.Equal(t, 2, l.ColdTotal)
		assert.Equal(t, models.LabelModeCompra, l.Mode)
	}
}

func TestBuildCompraBlankIdentifiers(t *testing.T) {
	assert.Empty(t, Build(compraState("", "", 3, 0)))
}

func TestBuildCompraClientOnlyZeroVolumes(t *testing.T) {
	state := compraState("", "JOAO", 0, 0)

	assert.Empty(t, Build(state))
	// a valid form always has something to print
	assert.False(t, IsValid(state))
}

func TestBuildPlaca(t *testing.T) {
	got := Build(placaState("RESERVADO", "", 3))

	require.Len(t, got, 3)
	for _, l := range got {
		assert.Equal(t, 1, l.CurrentVolume)
		assert.Equal(t, 1, l.TotalVolumes)
		assert.Equal(t, models.BagTypeGenerico, l.Type)
		assert.Zero(t, l.DryTotal)
		assert.Zero(t, l.ColdTotal)
		assert.Equal(t, "RESERVADO", l.Title)
	}
}

func TestBuildPlacaEmptyTitle(t *testing.T) {
	state := placaState("", "JOAO", 2)

	assert.Empty(t, Build(state))
	assert.False(t, IsValid(state))
}

func TestBuildIgnoresInactiveModes(t *testing.T) {
	state := ifoodState("1234", 1, 0)
	state.Compra = form.CompraFields{PurchaseNumber: "9999999", ClientName: "X", DryCount: 40, ColdCount: 40}
	state.Placa = form.PlacaFields{Title: "AVISO", Count: 9}

	got := Build(state)

	require.Len(t, got, 1)
	assert.Equal(t, models.LabelModeIFood, got[0].Mode)
}

func TestBuildIsIdempotent(t *testing.T) {
	state := compraState("42", "ANA", 2, 2)

	first := Build(state)
	second := Build(state)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second Build() differs (-first +second):\n%s", diff)
	}
	// fresh slices, no shared backing array
	first[0].Title = "changed"
	assert.Equal(t, "42", second[0].Title)
}

func TestBuildVolumeInvariants(t *testing.T) {
	for dry := 0; dry <= 4; dry++ {
		for cold := 0; cold <= 4; cold++ {
			got := Build(ifoodState("1", dry, cold))
			require.Len(t, got, dry+cold)
			for i, l := range got {
				assert.Equal(t, i+1, l.CurrentVolume)
				assert.Equal(t, l.DryTotal+l.ColdTotal, l.TotalVolumes)
				if i < dry {
					assert.Equal(t, models.BagTypeSeca, l.Type)
				} else {
					assert.Equal(t, models.BagTypeGelada, l.Type)
				}
			}
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		state form.State
		want  bool
	}{
		{"ifood ok", ifoodState("1234", 1, 0), true},
		{"ifood no volumes", ifoodState("1234", 0, 0), false},
		{"ifood no order", ifoodState("", 1, 1), false},
		{"compra purchase only", compraState("123", "", 0, 1), true},
		{"compra client only", compraState("", "ANA", 1, 0), true},
		{"compra nothing", compraState("", "", 1, 0), false},
		{"placa title", placaState("AVISO", "", 1), true},
		{"placa empty", placaState("", "", 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.state))
		})
	}
}

func TestSummary(t *testing.T) {
	title, client := Summary(compraState("123", "ANA", 1, 0))
	assert.Equal(t, "123", title)
	assert.Equal(t, "ANA", client)

	title, client = Summary(ifoodState("9876", 1, 0))
	assert.Equal(t, "9876", title)
	assert.Empty(t, client)
}

func TestBuildSurvivesQueryRestore(t *testing.T) {
	s := form.New()
	require.NoError(t, s.SetMode(models.LabelModeCompra))
	require.NoError(t, s.SetText(form.FieldClientName, "&lt;vip&gt;"))
	require.True(t, IsValid(s))

	restored, err := form.RestoreQuery(s.Query(), form.DefaultPlacaTitle)

	require.NoError(t, err)
	assert.True(t, IsValid(restored))
	if diff := cmp.Diff(Build(s), Build(restored)); diff != "" {
		t.Fatalf("labels differ after restore (-want +got):\n%s", diff)
	}
	assert.Len(t, Build(restored), 1)
}
