package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/geom"
)

func testGeneration() *cloud.Generation {
	return &cloud.Generation{
		ID:     uuid.MustParse("6f1c1d2e-8a4b-4c3d-9e2f-0a1b2c3d4e5f"),
		Width:  800,
		Height: 700,
		Bands: []cloud.Band{
			{
				Index: 0, Top: 240, Height: 200, Gap: 100,
				Titles: []string{"Rock & Roll", "<Script>", "Huge"},
				Placed: []cloud.Placement{
					{Title: "Rock & Roll", Box: geom.Box{X: 10, Y: 250, W: 120, H: 32}},
					{Title: "<Script>", Box: geom.Box{X: 300, Y: 300, W: 90, H: 32}},
				},
				Skipped: []string{"Huge"},
			},
			{
				Index: 1, Top: 540, Height: 120, Gap: 40,
				Titles: []string{"Jack's \"Place\""},
				Placed: []cloud.Placement{
					{Title: "Jack's \"Place\"", Box: geom.Box{X: 50, Y: 560, W: 150, H: 32}, Band: 1},
				},
			},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testGeneration()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.0 700.0"`) {
		t.Errorf("unexpected header: %.80s", svg)
	}
	if got := strings.Count(svg, "<text "); got != 3 {
		t.Errorf("text elements = %d, want 3", got)
	}
	for _, want := range []string{
		"Rock &amp; Roll",
		"&lt;Script&gt;",
		"Jack&#039;s &quot;Place&quot;",
		`x="70.00" y="266.00"`, // center of the first box
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Contains(svg, "<Script>") {
		t.Error("title markup was not escaped")
	}
	if strings.Contains(svg, "Huge") {
		t.Error("skipped title should not be drawn")
	}
	if strings.Contains(svg, "<a ") || strings.Contains(svg, "@font-face") {
		t.Error("links and font embedding should be opt-in")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(testGeneration(),
		WithEmbeddedFont("Go Regular", []byte("fontbytes")),
		WithFontSize(20),
		WithLinks(),
		WithBoxes(),
		WithColors("#eee", "#000"),
	))

	for _, want := range []string{
		`@font-face { font-family: "Go Regular"; src: url(data:font/ttf;base64,Zm9udGJ5dGVz)`,
		"font-size: 20.0px",
		`<a href="https://www.google.com/search?q=Rock+%26+Roll" target="_blank">`,
		`<rect class="box" x="10.00" y="250.00" width="120.00" height="32.00"/>`,
		`fill="#000"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testGeneration(),
		WithJSONSeed(42),
		WithJSONProfile("wide"),
		WithJSONKeyword("music"),
	)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.ID != "6f1c1d2e-8a4b-4c3d-9e2f-0a1b2c3d4e5f" {
		t.Errorf("ID = %q", out.ID)
	}
	if out.Width != 800 || out.Height != 700 {
		t.Errorf("size = %vx%v, want 800x700", out.Width, out.Height)
	}
	if out.Seed == nil || *out.Seed != 42 {
		t.Errorf("Seed = %v, want 42", out.Seed)
	}
	if out.Profile != "wide" || out.Keyword != "music" {
		t.Errorf("profile = %q keyword = %q", out.Profile, out.Keyword)
	}
	if len(out.Bands) != 2 || out.Bands[1].Top != 540 {
		t.Errorf("bands = %+v", out.Bands)
	}
	if len(out.Placements) != 3 {
		t.Errorf("placements = %d, want 3", len(out.Placements))
	}
	if len(out.Skipped) != 1 || out.Skipped[0] != "Huge" {
		t.Errorf("skipped = %v, want [Huge]", out.Skipped)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(&cloud.Generation{Width: 100, Height: 240})
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"placements": []`, `"skipped": []`, `"bands": []`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON missing %s in %s", want, s)
		}
	}
	if strings.Contains(s, `"seed"`) {
		t.Error("seed should be omitted when not set")
	}
}
