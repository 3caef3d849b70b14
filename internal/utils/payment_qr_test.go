package utils_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"farmlink_back_end/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUPIQR(t *testing.T) {
	qr, err := utils.GenerateUPIQR("ferme@upi", "Ferme Ravi", "150.00", "Commande FL-42")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(qr, "data:image/png;base64,"))
	require.NoError(t, err)
	// Signature PNG
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGenerateUPIQR_OptionalFields(t *testing.T) {
	qr, err := utils.GenerateUPIQR("ferme@upi", "Ferme Ravi", "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, qr)
}
