// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates a simple test image with the given dimensions.
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func encodeTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, createTestImage(width, height), nil); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestProcessorIsSupportedType(t *testing.T) {
	p := NewProcessor(t.TempDir())

	tests := []struct {
		mimeType string
		want     bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"image/gif", true},
		{"image/webp", true},
		{"application/pdf", false},
		{"text/plain", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := p.IsSupportedType(tt.mimeType); got != tt.want {
			t.Errorf("IsSupportedType(%q) = %v, want %v", tt.mimeType, got, tt.want)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	jpg := encodeTestJPEG(t, 10, 10)
	if got := detectFormat(jpg); got != "jpeg" {
		t.Errorf("detectFormat(jpeg bytes) = %q", got)
	}
	if got := detectFormat([]byte("not an image")); got != "" {
		t.Errorf("detectFormat(garbage) = %q, want empty", got)
	}
}

func TestProcessAircraftPhoto(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)

	data := encodeTestJPEG(t, 1200, 900)
	res, err := p.ProcessAircraftPhoto(bytes.NewReader(data), "cessna 172.jpg")
	if err != nil {
		t.Fatalf("ProcessAircraftPhoto: %v", err)
	}

	if res.Width != 1200 || res.Height != 900 {
		t.Errorf("dimensions = %dx%d, want 1200x900", res.Width, res.Height)
	}
	if res.MimeType != "image/jpeg" {
		t.Errorf("mime = %q", res.MimeType)
	}
	if res.URL == "" || filepath.Ext(res.URL) != ".jpg" {
		t.Errorf("URL = %q", res.URL)
	}

	// Original and both variants exist on disk.
	for _, sub := range []string{"originals", "card", "thumb"} {
		path := filepath.Join(dir, sub, res.UUID)
		entries, err := os.ReadDir(path)
		if err != nil || len(entries) != 1 {
			t.Errorf("%s rendition missing: %v", sub, err)
		}
	}

	// Card variant was cropped to its configured size.
	f, err := os.Open(filepath.Join(dir, "card", res.UUID, "cessna 172.jpg"))
	if err != nil {
		t.Fatalf("opening card variant: %v", err)
	}
	defer func() { _ = f.Close() }()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding card variant: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("card variant = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}

	if err := p.DeletePhoto(res.UUID); err != nil {
		t.Fatalf("DeletePhoto: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "originals", res.UUID)); !os.IsNotExist(err) {
		t.Error("original not removed")
	}
}

func TestProcessAircraftPhoto_RejectsGarbage(t *testing.T) {
	p := NewProcessor(t.TempDir())
	if _, err := p.ProcessAircraftPhoto(bytes.NewReader([]byte("not an image")), "x.jpg"); err == nil {
		t.Fatal("garbage input accepted")
	}
}
