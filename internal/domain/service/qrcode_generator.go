package service

// QRCodeGenerator renders content as a PNG QR code.
type QRCodeGenerator interface {
	PNG(content string) ([]byte, error)
}
