package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/radpat/internal/antenna"
	"github.com/san-kum/radpat/internal/params"
	"github.com/san-kum/radpat/internal/pattern"
	"github.com/san-kum/radpat/internal/render"
)

var _ render.Surface = (*SVG)(nil)

func compute(t *testing.T, cfg antenna.Configuration) (pattern.RadiationPattern, params.Summary) {
	t.Helper()
	p, err := pattern.Compute(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s, err := params.Estimate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return p, s
}

func TestSVGPolar(t *testing.T) {
	p, _ := compute(t, antenna.Dipole{LengthRatio: 0.5})
	svg := NewSVG(500, 400)
	render.Clear(svg)
	render.RenderPolar(svg, &p.Elevation)
	doc := svg.String()

	if !strings.HasPrefix(doc, "<?xml") || !strings.HasSuffix(doc, "</svg>") {
		t.Fatal("document is not a complete SVG")
	}
	if !strings.Contains(doc, `<radialGradient id="g1"`) {
		t.Error("missing radial gradient definition")
	}
	if strings.Count(doc, "<stop ") != 5 {
		t.Errorf("stops = %d, want 5", strings.Count(doc, "<stop "))
	}
	if !strings.Contains(doc, `fill="url(#g1)"`) {
		t.Error("pattern not filled with gradient")
	}
	for _, label := range []string{">0°<", ">90°<", ">180°<", ">270°<"} {
		if !strings.Contains(doc, label) {
			t.Errorf("missing label %s", label)
		}
	}
}

func TestSVGClearResets(t *testing.T) {
	svg := NewSVG(100, 100)
	svg.FillRect(0, 0, 10, 10, image.White.C)
	svg.ClearRect(0, 0, 100, 100)
	if strings.Contains(svg.String(), `width="10.0"`) {
		t.Error("full clear kept earlier drawing")
	}

	svg.ClearRect(10, 10, 5, 5)
	if !strings.Contains(svg.String(), `x="10.0" y="10.0"`) {
		t.Error("partial clear not painted")
	}
}

func TestSVGSurface3D(t *testing.T) {
	p, _ := compute(t, antenna.Yagi{DirectorCount: 3})
	svg := NewSVG(800, 420)
	render.RenderSurface(svg, &p)
	doc := svg.String()
	// 3 axes + 648 facets filled and outlined
	if n := strings.Count(doc, "<path "); n != 3+2*648 {
		t.Errorf("paths = %d, want %d", n, 3+2*648)
	}
}

func TestSVGEscapesText(t *testing.T) {
	svg := NewSVG(10, 10)
	svg.DrawText(`<a&b>`, 1, 1, render.TextStyle{Color: image.White.C, Size: 12})
	if !strings.Contains(svg.String(), "&lt;a&amp;b&gt;") {
		t.Error("text not escaped")
	}
}

func TestSnapshot(t *testing.T) {
	cfg := antenna.Yagi{DirectorCount: 3}
	p, s := compute(t, cfg)

	var buf bytes.Buffer
	err := Snapshot(&buf, cfg, RasterPanels(&p, DefaultPanelSize), s)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, SnapshotWidth, SnapshotHeight) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	// top-left corner carries the gradient start colour
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 > 0x10 || g>>8 < 0x20 || b>>8 < 0x60 {
		t.Errorf("corner colour = %x %x %x, want ~#0a2463", r>>8, g>>8, b>>8)
	}
}

func TestSnapshotTitleFace(t *testing.T) {
	if boldFont == nil || regularFont == nil {
		t.Fatal("embedded fonts failed to parse")
	}
	title := fontFace(boldFont, TitleSize).Metrics().Height.Ceil()
	metric := fontFace(regularFont, MetricSize).Metrics().Height.Ceil()
	if title <= metric || metric <= 13 {
		t.Errorf("face heights title=%d metric=%d, want title > metric > 13", title, metric)
	}
	if fontFace(nil, TitleSize) == nil {
		t.Error("missing fallback face")
	}

	p, s := compute(t, antenna.Dipole{LengthRatio: 0.5})
	img := ComposeSnapshot(antenna.Dipole{LengthRatio: 0.5}, RasterPanels(&p, DefaultPanelSize), s).Image()
	// a 24px title reaches well above a 13px bitmap line on the same baseline
	lit := false
	for y := 22; y <= 27 && !lit; y++ {
		for x := 300; x < 900; x++ {
			r, g, _, _ := img.At(x, y).RGBA()
			if r>>8 > 0xc0 && g>>8 > 0xc0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("title glyphs do not reach the upper title band")
	}
}

func TestSaveSnapshot(t *testing.T) {
	cfg := antenna.Monopole{LengthRatio: 0.25}
	p, s := compute(t, cfg)
	dir := t.TempDir()

	path, err := SaveSnapshot(dir, DefaultPanelSize, cfg, &p, s, time.UnixMilli(42))
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if path != filepath.Join(dir, "antenna-pattern-monopole-42.png") {
		t.Errorf("path = %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("decode: %v", err)
	}
}

func TestSnapshotName(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	if got := SnapshotName(antenna.KindYagi, ts); got != "antenna-pattern-yagi-1700000000123.png" {
		t.Errorf("SnapshotName = %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	cfg := antenna.ArrayDegrees(0.5, 90)
	p, s := compute(t, cfg)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, cfg, &p, s); err != nil {
		t.Fatal(err)
	}
	var got PatternData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Antenna != "array" || got.Name != "Two-Element Array" {
		t.Errorf("header = %q/%q", got.Antenna, got.Name)
	}
	if len(got.Azimuth) != pattern.Samples || len(got.Elevation) != pattern.Samples {
		t.Errorf("cuts = %d/%d samples", len(got.Azimuth), len(got.Elevation))
	}
	if got.Summary != s {
		t.Errorf("summary = %+v, want %+v", got.Summary, s)
	}
	if phase, ok := got.Params["phase_degrees"].(float64); !ok || phase < 89.99 || phase > 90.01 {
		t.Errorf("phase_degrees = %v", got.Params["phase_degrees"])
	}
}

func TestWriteCSV(t *testing.T) {
	p, _ := compute(t, antenna.Dipole{LengthRatio: 0.5})
	var buf bytes.Buffer
	if err := WriteCSV(&buf, &p); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != pattern.Samples+1 {
		t.Fatalf("rows = %d, want %d", len(rows), pattern.Samples+1)
	}
	if rows[91][0] != "90" || rows[91][1] != "1.000000" || rows[91][2] != "1.000000" {
		t.Errorf("row 90 = %v", rows[91])
	}
}
