package totals

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborline/export-docs/internal/schema"
	"github.com/harborline/export-docs/internal/shipment"
)

func normalizedWith(amount, insurance, freight string) *shipment.Normalized {
	return &shipment.Normalized{
		Package: shipment.Aggregates{
			NetWeight:   decimal.NewFromInt(90000),
			GrossWeight: decimal.NewFromInt(93000),
			Amount:      decimal.RequireFromString(amount),
			Insurance:   decimal.RequireFromString(insurance),
			Freight:     decimal.RequireFromString(freight),
		},
	}
}

func TestComputeCIFtoFOB(t *testing.T) {
	// Declared 62000 is the CIF-equivalent; the invoice shows 60000.
	n := normalizedWith("62000", "1000", "1000")

	tot := Compute(n, schema.CIFtoFOB)

	assert.True(t, tot.FOBTotal.Equal(decimal.NewFromInt(60000)), "fob %s", tot.FOBTotal)
	assert.True(t, tot.SurchargeTotal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, tot.GrandTotal.Equal(decimal.NewFromInt(62000)))
	assert.Equal(t, "SIXTY TWO THOUSAND ONLY", tot.AmountInWords)
}

func TestComputePlainCIFKeepsDeclaredAmount(t *testing.T) {
	n := normalizedWith("62000", "1000", "1000")

	for _, incoterm := range []schema.Incoterm{schema.CIF, schema.CNF} {
		tot := Compute(n, incoterm)
		assert.True(t, tot.FOBTotal.Equal(decimal.NewFromInt(62000)), "%s fob", incoterm)
		assert.True(t, tot.SurchargeTotal.Equal(decimal.NewFromInt(2000)), "%s surcharge", incoterm)
		assert.True(t, tot.GrandTotal.Equal(decimal.NewFromInt(62000)), "%s grand", incoterm)
	}
}

func TestComputeFOBZeroesSurcharge(t *testing.T) {
	// Insurance and freight may be populated upstream, but plain FOB
	// distributes nothing.
	n := normalizedWith("60000", "1000", "1000")

	tot := Compute(n, schema.FOB)

	assert.True(t, tot.SurchargeTotal.IsZero())
	assert.True(t, tot.FOBTotal.Equal(decimal.NewFromInt(60000)))
	assert.True(t, tot.GrandTotal.Equal(decimal.NewFromInt(60000)))
}

func TestComputeCarriesDeclaredAggregates(t *testing.T) {
	n := normalizedWith("100", "0", "0")
	n.Package.TotalArea = shipment.Optional{Value: decimal.RequireFromString("1724.16"), Present: true}

	tot := Compute(n, schema.FOB)

	require.True(t, tot.TotalArea.Present)
	assert.True(t, tot.TotalArea.Value.Equal(decimal.RequireFromString("1724.16")))
	assert.True(t, tot.NetWeight.Equal(decimal.NewFromInt(90000)))
	assert.True(t, tot.GrossWeight.Equal(decimal.NewFromInt(93000)))
}
