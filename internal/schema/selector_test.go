package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name        string
		productType string
		areaValid   bool
		want        Variant
	}{
		{"tiles with valid area", "tiles", true, Tiles},
		{"tiles with invalid area", "tiles", false, Tiles},
		{"sanitary with valid area", "sanitary", true, SanitaryOrOther},
		{"sanitary with invalid area", "sanitary", false, SanitaryOrOther},
		{"mix with valid area behaves like tiles", "mix", true, Tiles},
		{"mix with invalid area behaves like sanitary", "mix", false, SanitaryOrOther},
		{"case and whitespace tolerated", "  TILES ", false, Tiles},
		{"unknown product type defaults to sanitary layout", "hardware", true, SanitaryOrOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.productType, tt.areaValid))
		})
	}
}

func TestParseIncoterm(t *testing.T) {
	tests := []struct {
		term string
		want Incoterm
	}{
		{"CIF -> FOB", CIFtoFOB},
		{"cif -> fob", CIFtoFOB},
		{"CIF->FOB", CIFtoFOB},
		{"CIF  ->  FOB", CIFtoFOB},
		{"CIF", CIF},
		{"CNF", CNF},
		{"C&F", CNF},
		{"FOB", FOB},
		{"", FOB},
		{"NET 30 DAYS", FOB},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIncoterm(tt.term))
		})
	}
}

func TestParseTaxStatus(t *testing.T) {
	assert.Equal(t, WithoutTax, ParseTaxStatus("without"))
	assert.Equal(t, WithoutTax, ParseTaxStatus(" WITHOUT "))
	assert.Equal(t, WithTax, ParseTaxStatus("with"))
	assert.Equal(t, WithTax, ParseTaxStatus(""))
}
