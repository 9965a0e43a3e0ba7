package gpu

import (
	"testing"
	"unsafe"
)

func TestElementSizes(t *testing.T) {
	if FloatSize != unsafe.Sizeof(float32(0)) {
		t.Errorf("FloatSize = %d, want %d", FloatSize, unsafe.Sizeof(float32(0)))
	}
	if IndexSize != unsafe.Sizeof(uint32(0)) {
		t.Errorf("IndexSize = %d, want %d", IndexSize, unsafe.Sizeof(uint32(0)))
	}
}
