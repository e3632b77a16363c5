package textmetrics

import (
	"testing"
)

func TestFontMeasure(t *testing.T) {
	f, err := NewFont(16, 8)
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}

	empty, err := f.Measure("")
	if err != nil {
		t.Fatalf("Measure empty: %v", err)
	}
	if empty.W != 16 {
		t.Errorf("empty width = %v, want padding only (16)", empty.W)
	}
	if empty.H <= 16 {
		t.Errorf("empty height = %v, want line height plus padding", empty.H)
	}

	short, _ := f.Measure("Go")
	long, _ := f.Measure("Go (programming language)")
	if long.W <= short.W {
		t.Errorf("long width %v should exceed short width %v", long.W, short.W)
	}
	if long.H != short.H {
		t.Errorf("height should not depend on text: %v vs %v", long.H, short.H)
	}

	again, _ := f.Measure("Go (programming language)")
	if again != long {
		t.Errorf("measurement should be deterministic: %v vs %v", again, long)
	}
}

func TestNewFontDefaultSize(t *testing.T) {
	f, err := NewFont(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != DefaultFontSize {
		t.Errorf("Size() = %v, want %v", f.Size(), DefaultFontSize)
	}
	if lh := f.LineHeight(); lh < DefaultFontSize || lh > 2*DefaultFontSize {
		t.Errorf("LineHeight() = %v, want roughly 1.1-1.3x the size", lh)
	}
}

func TestFontTTF(t *testing.T) {
	if len(FontTTF()) == 0 {
		t.Error("FontTTF should return embedded font data")
	}
}

func TestCellsMeasure(t *testing.T) {
	tests := []struct {
		name  string
		cells Cells
		text  string
		wantW float64
		wantH float64
	}{
		{"ascii no padding", Cells{}, "abc", 3, 1},
		{"ascii padded", Cells{PadX: 1}, "abc", 5, 1},
		{"vertical padding", Cells{PadX: 1, PadY: 1}, "a", 3, 3},
		{"wide runes", Cells{PadX: 1}, "日本", 6, 1},
		{"empty", Cells{PadX: 2}, "", 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cells.Measure(tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if got.W != tt.wantW || got.H != tt.wantH {
				t.Errorf("Measure(%q) = %+v, want {%v %v}", tt.text, got, tt.wantW, tt.wantH)
			}
		})
	}
}
