package input

import "testing"

func TestPressAndRelease(t *testing.T) {
	s := New()

	s.OnKey(KeyW, true)
	if !s.Down(KeyW) || !s.Pressed(KeyW) {
		t.Fatal("W should be down and pressed")
	}

	s.EndFrame()
	if !s.Down(KeyW) {
		t.Error("W should stay down across frames")
	}
	if s.Pressed(KeyW) {
		t.Error("press should only last one frame")
	}

	// Key repeat is not a new press.
	s.OnKey(KeyW, true)
	if s.Pressed(KeyW) {
		t.Error("repeat should not count as a press")
	}

	s.OnKey(KeyW, false)
	if s.Down(KeyW) {
		t.Error("W should be released")
	}
}

func TestAxis(t *testing.T) {
	tests := []struct {
		name     string
		neg, pos bool
		want     float32
	}{
		{"none", false, false, 0},
		{"positive", false, true, 1},
		{"negative", true, false, -1},
		{"both", true, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.OnKey(KeyS, tt.neg)
			s.OnKey(KeyW, tt.pos)
			if got := s.Axis(KeyS, KeyW); got != tt.want {
				t.Errorf("Axis = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	s := New()
	s.OnKey(KeyUnknown, true)
	s.OnKey(Key(999), true)
	s.OnKey(Key(-3), true)

	if s.Down(KeyUnknown) || s.Down(Key(999)) || s.Pressed(Key(-3)) {
		t.Error("out-of-range keys should never report down")
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.OnKey(MouseLeft, true)
	s.OnKey(KeyLeftShift, true)
	s.Reset()
	if s.Down(MouseLeft) || s.Down(KeyLeftShift) || s.Pressed(MouseLeft) {
		t.Error("Reset should release everything")
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "Escape" {
		t.Errorf("KeyEscape.String() = %q", KeyEscape.String())
	}
	if Key(500).String() != "unknown" {
		t.Errorf("Key(500).String() = %q", Key(500).String())
	}
}
