// Package texture uploads images to the GPU and generates simple procedural images.
package texture

import (
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/brushkit/internal/engine/gpu"
	"github.com/Faultbox/brushkit/internal/logger"
)

// Texture is a reference to an uploaded 2D texture.
// Copies refer to the same GPU texture; the creator owns it.
type Texture struct {
	ID     uint32
	Width  int
	Height int
	Name   string
}

// Initialized reports whether the texture refers to a GPU texture.
func (t Texture) Initialized() bool {
	return t.ID != 0
}

// Upload creates a GPU texture from img.
func Upload(dev gpu.Device, name string, img *image.RGBA) Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// Pix may carry a stride wider than the visible rect for sub-images.
	pix := img.Pix
	if img.Stride != w*4 || b.Min != (image.Point{}) {
		pix = ToRGBA(img).Pix
	}

	id := dev.GenTexture()
	dev.BindTexture(id)
	dev.TexImageRGBA(int32(w), int32(h), pix)
	dev.BindTexture(0)

	logger.Debug("texture uploaded",
		zap.String("name", name),
		zap.Uint32("id", id),
		zap.Int("width", w),
		zap.Int("height", h),
	)

	return Texture{ID: id, Width: w, Height: h, Name: name}
}

// Delete frees the GPU texture. Every other copy becomes stale.
func (t *Texture) Delete(dev gpu.Device) {
	if t.ID == 0 {
		return
	}
	dev.DeleteTexture(t.ID)
	t.ID = 0
}
