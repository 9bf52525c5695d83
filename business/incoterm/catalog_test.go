package incoterm

import (
	"context"
	"testing"

	"incotermFinder/domain"
	"incotermFinder/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetNop()
	m.Run()
}

func TestCodes_FixedOrder(t *testing.T) {
	want := []string{"EXW", "FCA", "CPT", "CIP", "DAP", "DPU", "DDP", "FAS", "FOB", "CFR", "CIF"}
	assert.Equal(t, want, Codes())
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].Code = "XXX"

	assert.Equal(t, "EXW", All()[0].Code)
}

func TestByCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    string
		wantErr error
	}{
		{name: "exact", code: "FOB", want: "FOB"},
		{name: "lower case", code: "fob", want: "FOB"},
		{name: "mixed case with spaces", code: " dDp ", want: "DDP"},
		{name: "unknown", code: "XYZ", wantErr: ErrIncotermNotFound},
		{name: "empty", code: "", wantErr: ErrIncotermNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByCode(tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Code)
		})
	}
}

func TestByTransportMode(t *testing.T) {
	sea, err := ByTransportMode(domain.TransportModeSea)
	require.NoError(t, err)
	assert.Equal(t, []string{"FAS", "FOB", "CFR", "CIF"}, codesOf(sea))

	anyMode, err := ByTransportMode(domain.TransportModeAny)
	require.NoError(t, err)
	assert.Equal(t, []string{"EXW", "FCA", "CPT", "CIP", "DAP", "DPU", "DDP"}, codesOf(anyMode))

	_, err = ByTransportMode("rail")
	assert.ErrorIs(t, err, ErrInvalidTransportMode)
}

func TestCompare(t *testing.T) {
	cmp, err := Compare("fob", "FCA", "CIF")
	require.NoError(t, err)

	assert.Equal(t, []string{"FOB", "FCA", "CIF"}, cmp.Codes)
	require.Len(t, cmp.Rows, 8)

	byKey := make(map[string][]string, len(cmp.Rows))
	for _, r := range cmp.Rows {
		byKey[r.Key] = r.Values
	}
	assert.Equal(t, []string{"Sea Only", "Any Mode", "Sea Only"}, byKey["transportMode"])
	assert.Equal(t, []string{"30%", "15%", "30%"}, byKey["riskTransfer"])
	assert.Equal(t, []string{"30%", "15%", "80%"}, byKey["costTransfer"])
	assert.Equal(t, []string{"Buyer", "Buyer", "Seller"}, byKey["mainCarriage"])
	assert.Equal(t, []string{"No (Optional)", "No (Optional)", "Yes (Seller)"}, byKey["insurance"])
}

func TestCompare_Errors(t *testing.T) {
	_, err := Compare("FOB")
	assert.ErrorIs(t, err, ErrInvalidComparison)

	_, err = Compare("FOB", "fob")
	assert.ErrorIs(t, err, ErrInvalidComparison)

	_, err = Compare("EXW", "FCA", "CPT", "CIP", "DAP")
	assert.ErrorIs(t, err, ErrInvalidComparison)

	_, err = Compare("FOB", "NOPE")
	assert.ErrorIs(t, err, ErrIncotermNotFound)
}

func TestIncotermService(t *testing.T) {
	svc := NewIncotermService()
	ctx := context.Background()

	all, err := svc.GetAllIncoterms(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 11)

	sea, err := svc.GetAllIncoterms(ctx, "sea")
	require.NoError(t, err)
	assert.Len(t, sea, 4)

	_, err = svc.GetAllIncoterms(ctx, "road")
	assert.ErrorIs(t, err, ErrInvalidTransportMode)

	cif, err := svc.GetIncotermByCode(ctx, "cif")
	require.NoError(t, err)
	assert.Equal(t, "Cost, Insurance and Freight", cif.FullName)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.GetIncotermByCode(cancelled, "CIF")
	assert.ErrorIs(t, err, context.Canceled)
}

func codesOf(items []domain.Incoterm) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Code)
	}
	return out
}
