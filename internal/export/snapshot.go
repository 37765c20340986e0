package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/san-kum/radpat/internal/antenna"
	"github.com/san-kum/radpat/internal/params"
	"github.com/san-kum/radpat/internal/pattern"
	"github.com/san-kum/radpat/internal/raster"
	"github.com/san-kum/radpat/internal/render"
)

const (
	SnapshotWidth  = 1200
	SnapshotHeight = 1000
)

// Panels are the three rendered views composed into a snapshot.
type Panels struct {
	Azimuth   image.Image
	Elevation image.Image
	Surface   image.Image
}

// PanelSize is the pixel size of the polar and surface panels.
type PanelSize struct {
	PolarWidth, PolarHeight     int
	SurfaceWidth, SurfaceHeight int
}

var DefaultPanelSize = PanelSize{500, 400, 800, 420}

// Text sizes of the snapshot title and metrics line, in pixels.
const (
	TitleSize  = 24
	MetricSize = 16
)

var (
	boldFont, _    = truetype.Parse(gobold.TTF)
	regularFont, _ = truetype.Parse(goregular.TTF)
)

// fontFace returns a face of f at size pixels. Faces cache glyphs and are
// not safe for concurrent use, so each snapshot builds its own.
func fontFace(f *truetype.Font, size float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// RasterPanels renders p into three fresh raster canvases.
func RasterPanels(p *pattern.RadiationPattern, size PanelSize) Panels {
	az := raster.NewCanvas(size.PolarWidth, size.PolarHeight)
	el := raster.NewCanvas(size.PolarWidth, size.PolarHeight)
	sf := raster.NewCanvas(size.SurfaceWidth, size.SurfaceHeight)

	render.Clear(az)
	render.RenderPolar(az, &p.Azimuth)
	render.Clear(el)
	render.RenderPolar(el, &p.Elevation)
	render.RenderSurface(sf, p)
	return Panels{Azimuth: az.Image(), Elevation: el.Image(), Surface: sf.Image()}
}

// SaveSnapshot renders p at the given panel size and writes the composite
// PNG into dir under SnapshotName. It returns the path written.
func SaveSnapshot(dir string, size PanelSize, cfg antenna.Configuration, p *pattern.RadiationPattern, s params.Summary, at time.Time) (string, error) {
	path := filepath.Join(dir, SnapshotName(cfg.Kind(), at))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	err = Snapshot(f, cfg, RasterPanels(p, size), s)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("snapshot %s: %w", path, err)
	}
	return path, nil
}

// Snapshot composes the three panels, a title and the parameter summary
// into one PNG written to w.
func Snapshot(w io.Writer, cfg antenna.Configuration, panels Panels, s params.Summary) error {
	dc := ComposeSnapshot(cfg, panels, s)
	return dc.EncodePNG(w)
}

// ComposeSnapshot draws the snapshot layout and returns the context.
func ComposeSnapshot(cfg antenna.Configuration, panels Panels, s params.Summary) *gg.Context {
	dc := gg.NewContext(SnapshotWidth, SnapshotHeight)

	bg := gg.NewLinearGradient(0, 0, SnapshotWidth, SnapshotHeight)
	bg.AddColorStop(0, color.NRGBA{0x0a, 0x24, 0x63, 0xff})
	bg.AddColorStop(1, color.Black)
	dc.SetFillStyle(bg)
	dc.DrawRectangle(0, 0, SnapshotWidth, SnapshotHeight)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetFontFace(fontFace(boldFont, TitleSize))
	dc.DrawStringAnchored("Radiation Pattern - "+antenna.DisplayName(cfg), 600, 40, 0.5, 0)

	if panels.Azimuth != nil {
		dc.DrawImage(panels.Azimuth, 50, 80)
	}
	if panels.Elevation != nil {
		dc.DrawImage(panels.Elevation, 650, 80)
	}
	if panels.Surface != nil {
		dc.DrawImage(panels.Surface, 200, 500)
	}

	dc.SetColor(color.White)
	dc.SetFontFace(fontFace(regularFont, MetricSize))
	line := []struct {
		x    float64
		text string
	}{
		{50, "Parameters:"},
		{200, "Gain: " + s.GainText()},
		{400, "Beamwidth: " + s.BeamwidthText()},
		{600, "Front-to-Back: " + s.FrontToBackText()},
		{850, "Efficiency: " + s.EfficiencyText()},
	}
	for _, l := range line {
		dc.DrawString(l.text, l.x, 950)
	}
	return dc
}

// SnapshotName is the default file name for a snapshot taken at t.
func SnapshotName(kind antenna.Kind, t time.Time) string {
	return fmt.Sprintf("antenna-pattern-%s-%d.png", kind, t.UnixMilli())
}
