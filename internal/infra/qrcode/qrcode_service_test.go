package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateAndParse(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	dealID := uuid.New()

	png, err := svc.GenerateRedemptionQR(dealID, "SAVE20")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	parsedID, code, err := svc.ParseRedemptionQR(`{"deal_id":"` + dealID.String() + `","code":"SAVE20","type":"redemption"}`)
	require.NoError(t, err)
	assert.Equal(t, dealID, parsedID)
	assert.Equal(t, "SAVE20", code)
}

func TestQRCodeService_ParseRedemptionQR_WrongType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, _, err := svc.ParseRedemptionQR(`{"deal_id":"` + uuid.New().String() + `","code":"X","type":"subscription"}`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseRedemptionQR_Malformed(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, _, err := svc.ParseRedemptionQR("not json")
	assert.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateRedemptionQR(uuid.New(), "CODE")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
