package textmetrics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/wikicloud/pkg/geom"
)

// FontFamily is the CSS font-family name used when the font is served.
const FontFamily = "Go Regular"

// DefaultFontSize is the label size in pixels.
const DefaultFontSize = 16.0

var (
	goRegular     *opentype.Font
	goRegularErr  error
	goRegularOnce sync.Once
)

func parsedGoRegular() (*opentype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = opentype.Parse(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// FontTTF returns the raw TrueType data of the measuring font.
func FontTTF() []byte { return goregular.TTF }

// Font measures labels set in Go Regular.
// A Font is safe for concurrent use; each measurement opens its own face.
type Font struct {
	font    *opentype.Font
	size    float64
	padding float64
}

// NewFont returns a Font measuring at size pixels with padding on every side.
func NewFont(size, padding float64) (*Font, error) {
	f, err := parsedGoRegular()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	return &Font{font: f, size: size, padding: padding}, nil
}

// Size returns the font size in pixels.
func (f *Font) Size() float64 { return f.size }

// Padding returns the padding added on each side.
func (f *Font) Padding() float64 { return f.padding }

// Measure returns the advance width and line height of text plus padding.
// The face used to measure is closed before Measure returns.
func (f *Font) Measure(text string) (geom.Size, error) {
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    f.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return geom.Size{}, fmt.Errorf("open face: %w", err)
	}
	defer face.Close()

	w := fixedToFloat(font.MeasureString(face, text))
	return geom.Size{
		W: w + 2*f.padding,
		H: f.LineHeight() + 2*f.padding,
	}, nil
}

// LineHeight returns the height of one line of text (ascent plus descent).
func (f *Font) LineHeight() float64 {
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{Size: f.size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return f.size
	}
	defer face.Close()
	m := face.Metrics()
	return fixedToFloat(m.Ascent + m.Descent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

var _ geom.Metrics = (*Font)(nil)
