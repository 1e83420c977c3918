package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUTF8(t *testing.T) {
	require.NoError(t, ValidateUTF8([]byte("Johan")))
	require.Error(t, ValidateUTF8([]byte{0xFF, 0xFE}))
}
