package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/radpat/internal/antenna"
	"github.com/san-kum/radpat/internal/config"
	"github.com/san-kum/radpat/internal/params"
	"github.com/san-kum/radpat/internal/pattern"
)

// PatternData is the JSON form of a computed pattern.
type PatternData struct {
	Antenna   string         `json:"antenna"`
	Name      string         `json:"name"`
	Params    map[string]any `json:"params"`
	Summary   params.Summary `json:"summary"`
	Azimuth   []float64      `json:"azimuth"`
	Elevation []float64      `json:"elevation"`
}

func NewPatternData(cfg antenna.Configuration, p *pattern.RadiationPattern, s params.Summary) PatternData {
	return PatternData{
		Antenna:   string(cfg.Kind()),
		Name:      antenna.DisplayName(cfg),
		Params:    config.Params(cfg),
		Summary:   s,
		Azimuth:   append([]float64(nil), p.Azimuth[:]...),
		Elevation: append([]float64(nil), p.Elevation[:]...),
	}
}

// WriteJSON encodes the pattern and summary as indented JSON.
func WriteJSON(w io.Writer, cfg antenna.Configuration, p *pattern.RadiationPattern, s params.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewPatternData(cfg, p, s))
}

// WriteCSV writes one row per degree: angle, azimuth, elevation.
func WriteCSV(w io.Writer, p *pattern.RadiationPattern) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"degree", "azimuth", "elevation"}); err != nil {
		return err
	}
	for a := 0; a < pattern.Samples; a++ {
		row := []string{
			strconv.Itoa(a),
			strconv.FormatFloat(p.Azimuth[a], 'f', 6, 64),
			strconv.FormatFloat(p.Elevation[a], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
