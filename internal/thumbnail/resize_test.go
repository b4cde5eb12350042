package thumbnail

import (
	"testing"

	tu "github.com/desertthunder/ytthumb/internal/testing"
)

func TestStretch(t *testing.T) {
	tc := []struct {
		name   string
		width  int
		height int
	}{
		{name: "wide landscape", width: 3000, height: 1500},
		{name: "square", width: 500, height: 500},
		{name: "portrait", width: 400, height: 900},
		{name: "tiny", width: 16, height: 16},
		{name: "already target sized", width: 1280, height: 720},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			src := tu.GradientImage(tt.width, tt.height)
			dst := Stretch(src, TargetWidth, TargetHeight)

			bounds := dst.Bounds()
			if bounds.Dx() != TargetWidth || bounds.Dy() != TargetHeight {
				t.Errorf("Stretch() = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), TargetWidth, TargetHeight)
			}
		})
	}

	t.Run("arbitrary target dimensions", func(t *testing.T) {
		src := tu.GradientImage(100, 100)
		dst := Stretch(src, 64, 32)

		bounds := dst.Bounds()
		if bounds.Dx() != 64 || bounds.Dy() != 32 {
			t.Errorf("Stretch() = %dx%d, want 64x32", bounds.Dx(), bounds.Dy())
		}
	})
}
