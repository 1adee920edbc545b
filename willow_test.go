package layerkit

import "testing"

func TestColorWhite(t *testing.T) {
	if ColorWhite.R != 1 || ColorWhite.G != 1 || ColorWhite.B != 1 || ColorWhite.A != 1 {
		t.Errorf("ColorWhite = %v, want {1,1,1,1}", ColorWhite)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}
	got := c.toRGBA()
	if got.A != 127 {
		t.Errorf("A = %d, want 127", got.A)
	}
	if got.R != 127 {
		t.Errorf("R = %d, want 127 (premultiplied by A=0.5)", got.R)
	}
	if got.B != 0 {
		t.Errorf("B = %d, want 0", got.B)
	}
}

func TestWhitePixelIsOnePixel(t *testing.T) {
	w, h := WhitePixel.Bounds().Dx(), WhitePixel.Bounds().Dy()
	if w != 1 || h != 1 {
		t.Errorf("WhitePixel size = %dx%d, want 1x1", w, h)
	}
}
