package chartx

import "testing"

func TestRGB(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	if c.R != 0.2 || c.G != 0.4 || c.B != 0.6 {
		t.Errorf("RGB = %+v", c)
	}
	if c.A != 1 {
		t.Errorf("RGB alpha = %v, want 1", c.A)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(1, 0, 0).WithAlpha(0.25)
	if c.A != 0.25 {
		t.Errorf("alpha = %v, want 0.25", c.A)
	}
	if c.R != 1 || c.G != 0 || c.B != 0 {
		t.Errorf("WithAlpha changed color channels: %+v", c)
	}
}
