package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log"
	"os"

	"github.com/disintegration/imaging"
)

const (
	logoQuality   = 85
	logoMaxWidth  = 300
	logoMaxHeight = 120
)

// OptimizeLogo decodes the letterhead logo (PNG, JPEG, etc.), fits it into
// the letterhead box and re-encodes it as JPEG
func OptimizeLogo(imageData []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > logoMaxWidth || bounds.Dy() > logoMaxHeight {
		resized := imaging.Fit(img, logoMaxWidth, logoMaxHeight, imaging.Lanczos)
		log.Printf("🔄 OptimizeLogo: Resizing logo: %dx%d -> %dx%d",
			bounds.Dx(), bounds.Dy(), resized.Bounds().Dx(), resized.Bounds().Dy())
		img = resized
	}

	// Transparent areas turn white instead of black once encoded as JPEG
	background := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	flat := imaging.Overlay(background, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: logoQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadLogoDataURI reads the logo at path and returns it as a data URI ready to
// embed in the ticket. A missing file yields an empty URI and no error.
func LoadLogoDataURI(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("⚠️  LoadLogoDataURI: Logo not found at %s, ticket will have no logo", path)
			return "", nil
		}
		return "", fmt.Errorf("failed to read logo: %w", err)
	}

	optimized, err := OptimizeLogo(data)
	if err != nil {
		return "", err
	}

	log.Printf("✓ LoadLogoDataURI: Logo loaded from %s (%d bytes)", path, len(optimized))
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(optimized), nil
}
