package core

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d", got)
	}
	if got := Clamp(2.5, 0.0, 10.0); got != 2.5 {
		t.Errorf("Clamp(2.5, 0, 10) = %f", got)
	}
	if got := Clamp(630.0, 30.0, 470.0); got != 470.0 {
		t.Errorf("Clamp(630, 30, 470) = %f", got)
	}
}
