package canvas2d

import (
	"errors"
	"testing"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Style
	}{
		{"empty", "   ", Style{}},
		{"single", "border: 1px solid black", Style{"border": "1px solid black"}},
		{"trailing semicolon", "width: 640px;", Style{"width": "640px"}},
		{
			"kebab case",
			"image-rendering: pixelated; background-color: #fff",
			Style{"imageRendering": "pixelated", "backgroundColor": "#fff"},
		},
		{"camel case", "zIndex: 3", Style{"zIndex": "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if err != nil {
				t.Fatalf("ParseStyle(%q) error = %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("ParseStyle(%q)[%q] = %q, want %q", tt.in, k, got[k], v)
				}
			}
		})
	}
}

func TestParseStyleRejectsUnknown(t *testing.T) {
	_, err := ParseStyle("border: none; colour: red")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseStyle(unknown property) error = %v, want ErrInvalidConfig", err)
	}
}

func TestNormalizeStyle(t *testing.T) {
	got, err := NormalizeStyle(Style{"margin-top": " 4px ", "position": "absolute"})
	if err != nil {
		t.Fatalf("NormalizeStyle() error = %v", err)
	}
	if got["marginTop"] != "4px" || got["position"] != "absolute" || len(got) != 2 {
		t.Errorf("NormalizeStyle() = %v", got)
	}

	if got, err := NormalizeStyle(nil); got != nil || err != nil {
		t.Errorf("NormalizeStyle(nil) = %v, %v; want nil, nil", got, err)
	}
}

func TestNormalizeStyleInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   Style
	}{
		{"unknown property", Style{"fontSize": "12px"}},
		{"empty value", Style{"border": "  "}},
		{"declaration escape", Style{"border": "none; color: red"}},
		{"block escape", Style{"width": "1px} body {"}},
		{"custom property", Style{"--main-color": "red"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NormalizeStyle(tt.in); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NormalizeStyle(%v) error = %v, want ErrInvalidConfig", tt.in, err)
			}
		})
	}
}

func TestDefaultContainerStyle(t *testing.T) {
	s := DefaultContainerStyle()
	want := Style{"margin": "0%", "width": "100vw", "height": "100vh", "position": "relative"}
	for k, v := range want {
		if s[k] != v {
			t.Errorf("DefaultContainerStyle()[%q] = %q, want %q", k, s[k], v)
		}
	}
	if _, err := NormalizeStyle(s); err != nil {
		t.Errorf("default container style does not validate: %v", err)
	}

	s["width"] = "1px"
	if DefaultContainerStyle()["width"] != "100vw" {
		t.Error("DefaultContainerStyle returns a shared map")
	}
}

func TestPropertyName(t *testing.T) {
	tests := map[string]string{
		"border":           "border",
		"background-color": "backgroundColor",
		"Border-Top-Width": "borderTopWidth",
		"imageRendering":   "imageRendering",
		"-webkit-x":        "-webkit-x",
	}
	for in, want := range tests {
		if got := propertyName(in); got != want {
			t.Errorf("propertyName(%q) = %q, want %q", in, got, want)
		}
	}
}
