package vgm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborline/export-docs/internal/shipment"
)

func TestCrossReferenceJoinsByPosition(t *testing.T) {
	containers := []shipment.ContainerLine{
		{ContainerNumber: "MSKU1234567", BoxQuantity: 3000, GrossWeight: decimal.NewFromInt(26500)},
		{ContainerNumber: "TGHU7654321", BoxQuantity: 2800, GrossWeight: decimal.NewFromInt(25900)},
	}
	tares := []shipment.TareLine{
		{BookingNumber: "BK-01", TareWeight: decimal.NewFromInt(2200)},
		{BookingNumber: "BK-02", TareWeight: decimal.NewFromInt(2180)},
	}

	out, err := CrossReference(containers, tares)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "MSKU1234567", out[0].ContainerNumber)
	assert.Equal(t, "BK-01", out[0].BookingNumber)
	assert.True(t, out[0].VerifiedMass.Equal(decimal.NewFromInt(28700)))

	assert.Equal(t, "TGHU7654321", out[1].ContainerNumber)
	assert.Equal(t, "BK-02", out[1].BookingNumber)
	assert.True(t, out[1].VerifiedMass.Equal(decimal.NewFromInt(28080)))

	assert.Equal(t, 5800, TotalBoxes(out))
}

func TestCrossReferenceLengthMismatch(t *testing.T) {
	containers := make([]shipment.ContainerLine, 3)
	tares := make([]shipment.TareLine, 2)

	_, err := CrossReference(containers, tares)
	require.Error(t, err)

	var merr *MisalignedContainerDataError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 3, merr.Containers)
	assert.Equal(t, 2, merr.TareEntries)
}

func TestCrossReferenceEmpty(t *testing.T) {
	out, err := CrossReference(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
