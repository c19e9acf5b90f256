package imaging

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ironsheep/image-overlay-mcp/internal/overlay"
)

// writeImageFile encodes img with enc into dir/name and returns the path.
func writeImageFile(t *testing.T, dir, name string, img image.Image, enc func(*bytes.Buffer, image.Image) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		t.Fatalf("failed to encode %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func encodePNG(w *bytes.Buffer, img image.Image) error { return png.Encode(w, img) }
func encodeJPEG(w *bytes.Buffer, img image.Image) error { return jpeg.Encode(w, img, &jpeg.Options{Quality: 95}) }
func encodeBMP(w *bytes.Buffer, img image.Image) error { return bmp.Encode(w, img) }
func encodeTIFF(w *bytes.Buffer, img image.Image) error { return tiff.Encode(w, img, nil) }

// splitImage is red on its left half and blue on its right half.
func splitImage(width, height int) *image.RGBA {
	img := createInMemoryImage(width, height, color.RGBA{0, 0, 255, 255})
	for y := 0; y < height; y++ {
		for x := 0; x < width/2; x++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	return img
}

// withEXIFOrientation inserts an APP1 segment carrying only the orientation
// tag right after the JPEG SOI marker.
func withEXIFOrientation(t *testing.T, jpegData []byte, orientation uint16) []byte {
	t.Helper()
	if len(jpegData) < 2 || jpegData[0] != 0xff || jpegData[1] != 0xd8 {
		t.Fatal("not a JPEG stream")
	}

	var exif bytes.Buffer
	exif.WriteString("Exif\x00\x00")
	exif.WriteString("MM\x00\x2a")                        // big-endian TIFF header
	binary.Write(&exif, binary.BigEndian, uint32(8))      // IFD0 offset
	binary.Write(&exif, binary.BigEndian, uint16(1))      // one entry
	binary.Write(&exif, binary.BigEndian, uint16(0x0112)) // Orientation
	binary.Write(&exif, binary.BigEndian, uint16(3))      // SHORT
	binary.Write(&exif, binary.BigEndian, uint32(1))      // count
	binary.Write(&exif, binary.BigEndian, orientation)
	binary.Write(&exif, binary.BigEndian, uint16(0))
	binary.Write(&exif, binary.BigEndian, uint32(0)) // no next IFD

	var out bytes.Buffer
	out.Write(jpegData[:2])
	out.Write([]byte{0xff, 0xe1})
	binary.Write(&out, binary.BigEndian, uint16(exif.Len()+2))
	out.Write(exif.Bytes())
	out.Write(jpegData[2:])
	return out.Bytes()
}

// overlayBoxRequest outlines (5,5)-(25,25) in red with square corners.
func overlayBoxRequest() overlay.Request {
	style := overlay.DefaultStyle()
	style.BoxColor = red
	style.BoxRadius = 0
	return overlay.Request{
		ROI:     &overlay.Region{X: 5, Y: 5, Width: 20, Height: 20},
		Style:   style,
		DrawBox: true,
	}
}

func isReddish(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 200 && g>>8 < 60 && b>>8 < 60
}

func isBluish(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 < 60 && g>>8 < 60 && b>>8 > 200
}

func TestImageCache_Load_Formats(t *testing.T) {
	dir := t.TempDir()
	src := splitImage(24, 16)

	tests := []struct {
		name   string
		enc    func(*bytes.Buffer, image.Image) error
		format string
	}{
		{"split.png", encodePNG, "png"},
		{"split.jpg", encodeJPEG, "jpeg"},
		{"split.bmp", encodeBMP, "bmp"},
		{"split.tif", encodeTIFF, "tiff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewImageCache()
			path := writeImageFile(t, dir, tt.name, src, tt.enc)

			info, err := LoadImageInfo(cache, path)
			if err != nil {
				t.Fatalf("LoadImageInfo failed: %v", err)
			}
			if info.Width != 24 || info.Height != 16 {
				t.Errorf("dimensions: got %dx%d, want 24x16", info.Width, info.Height)
			}
			if info.Format != tt.format {
				t.Errorf("Format: got %s, want %s", info.Format, tt.format)
			}
			if info.FileSizeBytes <= 0 {
				t.Error("FileSizeBytes should be positive")
			}

			img, _ := cache.Load(path)
			if !isReddish(img.At(2, 8)) || !isBluish(img.At(21, 8)) {
				t.Errorf("decoded pixels wrong: left %v, right %v", img.At(2, 8), img.At(21, 8))
			}
		})
	}
}

func TestImageCache_Load_WebPDecoderRegistered(t *testing.T) {
	dir := t.TempDir()
	cache := NewImageCache()

	// A RIFF/WEBP header with a truncated body reaches the WebP decoder and
	// fails inside it, instead of being rejected as an unknown format.
	webpPath := filepath.Join(dir, "broken.webp")
	header := []byte("RIFF\x1a\x00\x00\x00WEBPVP8 \x0e\x00\x00\x00")
	if err := os.WriteFile(webpPath, header, 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	_, err := cache.Load(webpPath)
	if err == nil {
		t.Fatal("expected error for a truncated WebP body")
	}
	if errors.Is(err, image.ErrFormat) {
		t.Errorf("WebP input was not recognized: %v", err)
	}

	junkPath := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junkPath, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := cache.Load(junkPath); !errors.Is(err, image.ErrFormat) {
		t.Errorf("unknown data should fail with image.ErrFormat, got %v", err)
	}
}

func TestImageCache_Load_EXIFOrientation(t *testing.T) {
	var buf bytes.Buffer
	if err := encodeJPEG(&buf, splitImage(40, 20)); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	// Orientation 6: the stored image must be rotated 90 degrees clockwise
	// for display.
	path := filepath.Join(t.TempDir(), "rotated.jpg")
	if err := os.WriteFile(path, withEXIFOrientation(t, buf.Bytes(), 6), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	cache := NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 40 {
		t.Fatalf("dimensions: got %dx%d, want 20x40 after rotation", b.Dx(), b.Dy())
	}
	// The left (red) half of the stored image ends up on top.
	if !isReddish(img.At(10, 3)) {
		t.Errorf("top should be red, got %v", img.At(10, 3))
	}
	if !isBluish(img.At(10, 36)) {
		t.Errorf("bottom should be blue, got %v", img.At(10, 36))
	}

	dims, err := GetDimensions(cache, path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 20 || dims.Height != 40 {
		t.Errorf("GetDimensions: got %dx%d, want 20x40", dims.Width, dims.Height)
	}
}

func TestImageCache_CachesUntilEvicted(t *testing.T) {
	dir := t.TempDir()
	cache := NewImageCache()
	path := writeImageFile(t, dir, "photo.png", createInMemoryImage(30, 30, white), encodePNG)

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if again, _ := cache.Load(path); again != first {
		t.Error("second Load did not return the cached image")
	}

	// Annotate and save over the source, as image_overlay_text does with an
	// output_path equal to the input.
	ann, err := NewAnnotator(mustDefaultFont(t)).Annotate(first, overlayBoxRequest(), false)
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if err := Save(path, ann.Image, 0); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if stale, _ := cache.Load(path); rgbaAt(stale, 15, 5) != white {
		t.Error("cached image should be untouched before eviction")
	}

	cache.Evict(path)
	fresh, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if fresh == first {
		t.Error("Load after Evict returned the stale image")
	}
	if got := rgbaAt(fresh, 15, 5); got != red {
		t.Errorf("reloaded image should show the saved box: got %v", got)
	}

	cache.Evict(filepath.Join(dir, "never-loaded.png"))
	cache.Clear()
	if len(cache.images) != 0 {
		t.Errorf("Clear left %d images", len(cache.images))
	}
}

func TestImageCache_Load_Errors(t *testing.T) {
	cache := NewImageCache()

	if _, err := cache.Load("/nonexistent/path/to/image.png"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}
	if _, err := LoadImageInfo(cache, "/nonexistent/image.png"); err == nil {
		t.Error("LoadImageInfo should fail for a missing file")
	}
	if _, err := GetDimensions(cache, "/nonexistent/image.png"); err == nil {
		t.Error("GetDimensions should fail for a missing file")
	}
	if len(cache.images) != 0 {
		t.Error("failed loads must not be cached")
	}
}

func TestImageCache_ConcurrentLoad(t *testing.T) {
	cache := NewImageCache()
	path := writeImageFile(t, t.TempDir(), "shared.png", createInMemoryImage(50, 50, black), encodePNG)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load failed: %v", err)
	}
}

func TestFormatFromExt(t *testing.T) {
	tests := map[string]string{
		"a.png":  "png",
		"a.JPG":  "jpeg",
		"a.jpeg": "jpeg",
		"a.gif":  "gif",
		"a.BMP":  "bmp",
		"a.tif":  "tiff",
		"a.tiff": "tiff",
		"a.webp": "webp",
		"a.xyz":  "unknown",
		"noext":  "unknown",
	}

	for path, want := range tests {
		if got := formatFromExt(path); got != want {
			t.Errorf("formatFromExt(%q) = %q, want %q", path, got, want)
		}
	}
}
