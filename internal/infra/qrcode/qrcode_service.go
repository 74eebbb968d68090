package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := "M"
	baseURL := cfg.HTTP.PublicBaseURL
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		if cfg.QRCode.BaseURL != "" {
			baseURL = cfg.QRCode.BaseURL
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProductURL returns the storefront page of a product.
func (s *qrcodeService) ProductURL(slug string) string {
	return s.baseURL + "/products/" + url.PathEscape(slug)
}

// GenerateProductQR encodes the product URL as a PNG.
func (s *qrcodeService) GenerateProductQR(slug string) ([]byte, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("product slug is required")
	}

	// Generate QR code
	qrCode, err := qrcode.New(s.ProductURL(slug), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
