package nxtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncapType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(0), EncapTypeNone.Int32())
	assert.Equal(t, int32(1), EncapTypeVXLAN.Int32())
	assert.Equal(t, EncapTypeVXLAN+1, EncapTypeMax)

	assert.Equal(t, "VXLAN", EncapTypeVXLAN.String())
	assert.Equal(t, "ENCAP_MAX_TYPE", EncapTypeMax.SDKName())

	e, err := ParseEncapType("VxLaN")
	require.NoError(t, err)
	assert.Equal(t, EncapTypeVXLAN, e)

	_, err = ParseEncapType("geneve")
	assert.ErrorIs(t, err, ErrUnknownName)

	got, err := EncapTypeFromInt32(0)
	require.NoError(t, err)
	assert.Equal(t, EncapTypeNone, got)

	_, err = EncapTypeFromInt32(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
