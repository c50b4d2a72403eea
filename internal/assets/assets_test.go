package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/goleak"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBoth(t *testing.T) {
	dir := t.TempDir()
	font := writeFile(t, dir, "label.TTF", []byte("font"))
	tex := writeFile(t, dir, "label.png", []byte("png"))

	res := <-Load(context.Background(), font, tex)
	if res.Err != nil {
		t.Fatalf("load failed: %v", res.Err)
	}
	if string(res.Font) != "font" || string(res.Texture) != "png" {
		t.Errorf("unexpected bytes %q %q", res.Font, res.Texture)
	}
	if res.FontType != ".ttf" || res.TextureType != ".png" {
		t.Errorf("unexpected types %q %q", res.FontType, res.TextureType)
	}
}

func TestLoadWithoutTexture(t *testing.T) {
	font := writeFile(t, t.TempDir(), "label.ttf", []byte("font"))
	res := <-Load(context.Background(), font, "")
	if res.Err != nil {
		t.Fatalf("load failed: %v", res.Err)
	}
	if res.Texture != nil {
		t.Error("expected no texture bytes")
	}
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	font := writeFile(t, dir, "label.ttf", []byte("font"))
	empty := writeFile(t, dir, "empty.png", nil)

	tests := []struct {
		name, font, tex string
	}{
		{"missing font", filepath.Join(dir, "none.ttf"), ""},
		{"missing texture", font, filepath.Join(dir, "none.png")},
		{"empty texture", font, empty},
		{"no font path", "", ""},
	}
	for _, tt := range tests {
		res := <-Load(context.Background(), tt.font, tt.tex)
		if !errors.Is(res.Err, ErrAssetLoad) {
			t.Errorf("%s: expected ErrAssetLoad, got %v", tt.name, res.Err)
		}
		if res.Font != nil {
			t.Errorf("%s: expected no font bytes on failure", tt.name)
		}
	}
}

func TestLoadCanceled(t *testing.T) {
	font := writeFile(t, t.TempDir(), "label.ttf", []byte("font"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := <-Load(ctx, font, "")
	if !errors.Is(res.Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", res.Err)
	}
}

func TestLoadClosesChannel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ch := Load(context.Background(), "", "")
	<-ch
	if _, ok := <-ch; ok {
		t.Error("expected channel closed after one result")
	}
}
