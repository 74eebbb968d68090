package service

// QRCodeService renders QR codes that link to storefront pages.
type QRCodeService interface {
	// GenerateProductQR returns a PNG QR code pointing at the product page.
	GenerateProductQR(slug string) ([]byte, error)

	// ProductURL returns the public URL encoded for a product.
	ProductURL(slug string) string
}
