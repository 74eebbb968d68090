package qrcode

import (
	"testing"

	"storefront/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(size int, level, baseURL string) *config.Config {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
			BaseURL:              baseURL,
		},
	}
	cfg.HTTP.PublicBaseURL = "https://shop.example.com"

	return cfg
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_ProductURL(t *testing.T) {
	t.Run("uses qrcode base url", func(t *testing.T) {
		svc := NewQRCodeService(newTestConfig(256, "M", "https://qr.example.com/"))
		assert.Equal(t, "https://qr.example.com/products/linen-shirt", svc.ProductURL("linen-shirt"))
	})

	t.Run("falls back to public base url", func(t *testing.T) {
		svc := NewQRCodeService(newTestConfig(256, "M", ""))
		assert.Equal(t, "https://shop.example.com/products/linen-shirt", svc.ProductURL("linen-shirt"))
	})

	t.Run("escapes slug", func(t *testing.T) {
		svc := NewQRCodeService(newTestConfig(256, "M", ""))
		assert.Equal(t, "https://shop.example.com/products/a%2Fb", svc.ProductURL("a/b"))
	})
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	svc := NewQRCodeService(newTestConfig(256, "M", ""))

	qrBytes, err := svc.GenerateProductQR("linen-shirt")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateProductQR_DifferentSizes(t *testing.T) {
	small, err := NewQRCodeService(newTestConfig(128, "M", "")).GenerateProductQR("mug")
	require.NoError(t, err)
	large, err := NewQRCodeService(newTestConfig(512, "M", "")).GenerateProductQR("mug")
	require.NoError(t, err)

	assert.Greater(t, len(large), len(small))
}

func TestQRCodeService_GenerateProductQR_EmptySlug(t *testing.T) {
	svc := NewQRCodeService(newTestConfig(256, "M", ""))

	_, err := svc.GenerateProductQR("  ")
	assert.Error(t, err)
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	cfg := &config.Config{}
	svc := NewQRCodeService(cfg).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}
