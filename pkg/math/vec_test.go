package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		a, b, want Vec3
	}{
		{Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{Vec3{0, 1, 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{Vec3{2, 0, 0}, Vec3{4, 0, 0}, Vec3{}},
	}
	for _, tt := range tests {
		if got := tt.a.Cross(tt.b); got != tt.want {
			t.Errorf("%v x %v = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVec3SubDot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{0.5, 0.5, 0.5}
	if got := a.Sub(b); got != (Vec3{0.5, 1.5, 2.5}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); got != 3 {
		t.Errorf("Dot = %v, want 3", got)
	}
}

func TestVec3Length(t *testing.T) {
	if l := (Vec3{3, 0, 4}).Length(); l != 5 {
		t.Errorf("Length = %v, want 5", l)
	}
}
