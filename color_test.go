package canvas2d

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000", color.NRGBA{0, 0, 0, 255}},
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"f00", color.NRGBA{255, 0, 0, 255}},
		{"#0f08", color.NRGBA{0, 255, 0, 136}},
		{"#336699", color.NRGBA{0x33, 0x66, 0x99, 255}},
		{"#AbCdEf", color.NRGBA{0xab, 0xcd, 0xef, 255}},
		{"#11223344", color.NRGBA{0x11, 0x22, 0x33, 0x44}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#ggg", "#12345z", "red"} {
		if _, err := ParseHexColor(in); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseHexColor(%q) error = %v, want ErrInvalidConfig", in, err)
		}
	}
}
