package security

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
)

// Magic byte signatures, keyed by lowercase extension
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".webp": {{0x52, 0x49, 0x46, 0x46}}, // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
}

// UploadPolicy is a whitelist of extensions and the MIME types sniffed content may have.
type UploadPolicy struct {
	Name       string
	Extensions map[string]string // extension -> canonical content type
}

var (
	// PhotoPolicy accepts profile photos. Only PNG and JPEG decode for downscaling.
	PhotoPolicy = UploadPolicy{
		Name: "profile photo",
		Extensions: map[string]string{
			".jpg":  "image/jpeg",
			".jpeg": "image/jpeg",
			".png":  "image/png",
		},
	}

	CertificatePolicy = UploadPolicy{
		Name: "certificate",
		Extensions: map[string]string{
			".jpg":  "image/jpeg",
			".jpeg": "image/jpeg",
			".png":  "image/png",
			".webp": "image/webp",
			".pdf":  "application/pdf",
		},
	}
)

// RejectedError explains why an upload failed validation. Safe to show to clients.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string { return e.Reason }

// Validate runs three checks on an upload: extension whitelist, magic bytes
// matching the extension, and the sniffed MIME type matching the extension's
// content type. It returns the canonical content type.
func (p UploadPolicy) Validate(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", &RejectedError{Reason: "file has no extension"}
	}

	contentType, ok := p.Extensions[ext]
	if !ok {
		return "", &RejectedError{Reason: fmt.Sprintf("%s must be one of %s", p.Name, strings.Join(p.AllowedExtensions(), ", "))}
	}

	if !matchesMagic(ext, data) {
		return "", &RejectedError{Reason: "file content does not match extension"}
	}

	// http.DetectContentType may append parameters, e.g. "text/plain; charset=utf-8"
	sniffed := strings.SplitN(http.DetectContentType(data), ";", 2)[0]
	if sniffed != contentType {
		return "", &RejectedError{Reason: "file type not allowed: " + sniffed}
	}
	return contentType, nil
}

// AllowedExtensions returns the sorted whitelist for error messages
func (p UploadPolicy) AllowedExtensions() []string {
	exts := make([]string, 0, len(p.Extensions))
	for ext := range p.Extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func matchesMagic(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}
	for _, sig := range magicBytes[ext] {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
