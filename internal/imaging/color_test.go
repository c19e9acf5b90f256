package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates a solid color image without touching disk.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#FF0000", color.RGBA{255, 0, 0, 255}, false},
		{"00ff00", color.RGBA{0, 255, 0, 255}, false},
		{"#fff", color.RGBA{255, 255, 255, 255}, false},
		{"#0000FF80", color.RGBA{0, 0, 255, 128}, false},
		{"12, 34,56", color.RGBA{12, 34, 56, 255}, false},
		{"  #102030 ", color.RGBA{16, 32, 48, 255}, false},
		{"", color.RGBA{}, true},
		{"#GG0000", color.RGBA{}, true},
		{"#12345", color.RGBA{}, true},
		{"#1234567", color.RGBA{}, true},
		{"#ff00ff7", color.RGBA{}, true},
		{"#1234", color.RGBA{}, true},
		{"#", color.RGBA{}, true},
		{"#00FF00ZZ", color.RGBA{}, true},
		{"1,2", color.RGBA{}, true},
		{"1,2,300", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToHex(t *testing.T) {
	if got := ToHex(color.RGBA{R: 255, G: 16, B: 1, A: 7}); got != "#ff1001" {
		t.Errorf("ToHex: got %s, want #ff1001", got)
	}
}

func TestContrastColor(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	tests := []struct {
		name string
		bg   color.RGBA
		want color.RGBA
	}{
		{"white background", white, black},
		{"yellow background", color.RGBA{R: 255, G: 255, A: 255}, black},
		{"black background", black, white},
		{"navy background", color.RGBA{B: 128, A: 255}, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastColor(tt.bg); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAverageColor(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			img.Set(x, y, color.RGBA{200, 100, 50, 255})
		}
	}

	got := AverageColor(img, image.Rect(0, 0, 10, 10))
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("full image: got %v", got)
	}

	got = AverageColor(img, image.Rect(5, 0, 50, 50))
	if got != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("clipped region: got %v", got)
	}

	got = AverageColor(img, image.Rect(20, 20, 30, 30))
	if got != (color.RGBA{A: 255}) {
		t.Errorf("region outside image: got %v", got)
	}
}
