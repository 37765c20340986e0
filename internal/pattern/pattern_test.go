package pattern

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/radpat/internal/antenna"
)

var configs = []struct {
	name string
	cfg  antenna.Configuration
}{
	{"half-wave dipole", antenna.Dipole{LengthRatio: 0.5}},
	{"short dipole", antenna.Dipole{LengthRatio: 0.1}},
	{"long dipole", antenna.Dipole{LengthRatio: 1.5}},
	{"quarter-wave monopole", antenna.Monopole{LengthRatio: 0.25}},
	{"long monopole", antenna.Monopole{LengthRatio: 0.8}},
	{"broadside array", antenna.Array{SpacingRatio: 0.5, PhaseDifference: 0}},
	{"endfire array", antenna.Array{SpacingRatio: 0.25, PhaseDifference: math.Pi / 2}},
	{"colocated array", antenna.Array{SpacingRatio: 0, PhaseDifference: -2.5}},
	{"bare yagi", antenna.Yagi{DirectorCount: 0}},
	{"yagi", antenna.Yagi{DirectorCount: 3}},
	{"long yagi", antenna.Yagi{DirectorCount: 12}},
}

func TestComputeRangeAndPeak(t *testing.T) {
	for _, tt := range configs {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compute(tt.cfg)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			for name, cut := range map[string]*Cut{"azimuth": &p.Azimuth, "elevation": &p.Elevation} {
				allZero := true
				for a, v := range cut {
					if math.IsNaN(v) || v < 0 || v > 1 {
						t.Fatalf("%s[%d] = %v out of [0,1]", name, a, v)
					}
					if v != 0 {
						allZero = false
					}
				}
				if !allZero && cut.Max() != 1.0 {
					t.Errorf("%s max = %v, want 1", name, cut.Max())
				}
			}
		})
	}
}

func TestComputePeriodicity(t *testing.T) {
	for _, tt := range configs {
		p, err := Compute(tt.cfg)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if p.Azimuth[0] != p.Azimuth[360] {
			t.Errorf("%s: azimuth[0]=%v azimuth[360]=%v", tt.name, p.Azimuth[0], p.Azimuth[360])
		}
		if p.Elevation[0] != p.Elevation[360] {
			t.Errorf("%s: elevation[0]=%v elevation[360]=%v", tt.name, p.Elevation[0], p.Elevation[360])
		}
	}
}

func TestDipole(t *testing.T) {
	p, err := Compute(antenna.Dipole{LengthRatio: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	for a, v := range p.Azimuth {
		if v != 1.0 {
			t.Fatalf("azimuth[%d] = %v, want 1", a, v)
		}
	}
	if p.Elevation[0] != 0 {
		t.Errorf("elevation[0] = %v, want 0", p.Elevation[0])
	}
	if p.Elevation[180] != 0 {
		t.Errorf("elevation[180] = %v, want 0", p.Elevation[180])
	}
	if math.Abs(p.Elevation[90]-1.0) > 1e-12 {
		t.Errorf("elevation[90] = %v, want 1", p.Elevation[90])
	}
	if math.Abs(p.Elevation[270]-1.0) > 1e-12 {
		t.Errorf("elevation[270] = %v, want 1", p.Elevation[270])
	}
	// cos(pi/2 cos 60°)/sin 60° for a half-wave dipole
	want := math.Cos(math.Pi/2*0.5) / math.Sin(math.Pi/3)
	if math.Abs(p.Elevation[60]-want) > 1e-9 {
		t.Errorf("elevation[60] = %v, want %v", p.Elevation[60], want)
	}
}

func TestMonopoleGroundPlane(t *testing.T) {
	for _, l := range []float64{0.1, 0.25, 0.5, 0.9} {
		p, err := Compute(antenna.Monopole{LengthRatio: l})
		if err != nil {
			t.Fatal(err)
		}
		for a := 181; a <= 359; a++ {
			if p.Elevation[a] != 0 {
				t.Fatalf("L=%v: elevation[%d] = %v, want 0", l, a, p.Elevation[a])
			}
		}
		if p.Elevation[90] == 0 {
			t.Errorf("L=%v: no radiation at horizon", l)
		}
		for a, v := range p.Azimuth {
			if v != 1.0 {
				t.Fatalf("L=%v: azimuth[%d] = %v, want 1", l, a, v)
			}
		}
	}
}

func TestArrayBroadsideSymmetry(t *testing.T) {
	p, err := Compute(antenna.Array{SpacingRatio: 0.5, PhaseDifference: 0})
	if err != nil {
		t.Fatal(err)
	}
	for d := 0; d <= 90; d++ {
		if math.Abs(p.Elevation[90+d]-p.Elevation[90-d]) > 1e-12 {
			t.Errorf("elevation[%d]=%v elevation[%d]=%v", 90+d, p.Elevation[90+d], 90-d, p.Elevation[90-d])
		}
	}
	// broadside: element null along the array axis, peak at 90°
	if p.Azimuth[0] != 0 {
		t.Errorf("azimuth[0] = %v, want 0", p.Azimuth[0])
	}
	if math.Abs(p.Azimuth[90]-1) > 1e-12 {
		t.Errorf("azimuth[90] = %v, want 1", p.Azimuth[90])
	}
}

func TestYagi(t *testing.T) {
	az, el := YagiBeamwidth(3)
	if math.Abs(az-94.7368) > 1e-3 {
		t.Errorf("azimuth beamwidth = %v, want ~94.7", az)
	}
	if math.Abs(el-63.1579) > 1e-3 {
		t.Errorf("elevation beamwidth = %v, want ~63.2", el)
	}

	p, err := Compute(antenna.Yagi{DirectorCount: 3})
	if err != nil {
		t.Fatal(err)
	}
	if p.Azimuth[0] != 1 {
		t.Errorf("azimuth boresight = %v, want 1", p.Azimuth[0])
	}
	if p.Elevation[90] != 1 {
		t.Errorf("elevation boresight = %v, want 1", p.Elevation[90])
	}
	// back lobe sits at or below the side-lobe floor
	if p.Azimuth[180] > 0.15/(1+0.45) {
		t.Errorf("azimuth[180] = %v above side-lobe floor", p.Azimuth[180])
	}
}

func TestYagiSamples(t *testing.T) {
	// the wrapped arm of the azimuth lobe is shaped from the raw degree, so
	// the lobe is not symmetric about 0°
	tests := []struct {
		name      string
		directors int
		elevation bool
		deg       int
		want      float64
	}{
		{"bare back quadrant", 0, false, 300, 0},
		{"bare boresight", 0, false, 0, 1},
		{"classic forward edge", 3, false, 45, 0.8082},
		{"classic wrapped edge", 3, false, 315, 0.6102},
		{"classic just below 360", 3, false, 359, 0.9623},
		{"classic closes at 360", 3, false, 360, 1},
		{"classic back", 3, false, 180, 0},
		{"five lower half-width", 5, true, 66, 0.8203},
		{"five upper half-width", 5, true, 114, 0.8203},
		{"ten lower half-width", 10, true, 75, 0.8706},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compute(antenna.Yagi{DirectorCount: tt.directors})
			if err != nil {
				t.Fatal(err)
			}
			cut := &p.Azimuth
			if tt.elevation {
				cut = &p.Elevation
			}
			if got := cut[tt.deg]; math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("sample %d = %.4f, want %.4f", tt.deg, got, tt.want)
			}
		})
	}
}

func TestYagiNarrowsWithDirectors(t *testing.T) {
	prevAz, prevEl := YagiBeamwidth(0)
	for n := 1; n <= 10; n++ {
		az, el := YagiBeamwidth(n)
		if az >= prevAz || el >= prevEl {
			t.Errorf("n=%d: beamwidth did not narrow (%v,%v) -> (%v,%v)", n, prevAz, prevEl, az, el)
		}
		prevAz, prevEl = az, el
	}
}

func TestComputeRejectsInvalid(t *testing.T) {
	invalid := []antenna.Configuration{
		antenna.Dipole{LengthRatio: -0.5},
		antenna.Monopole{LengthRatio: 0},
		antenna.Array{SpacingRatio: -1},
		antenna.Yagi{DirectorCount: -2},
		nil,
	}
	for _, cfg := range invalid {
		if _, err := Compute(cfg); !errors.Is(err, antenna.ErrInvalidConfiguration) {
			t.Errorf("Compute(%#v) error = %v, want ErrInvalidConfiguration", cfg, err)
		}
	}
}

func TestNormalizeZeroCut(t *testing.T) {
	var c Cut
	normalize(&c)
	for a, v := range c {
		if v != 0 || math.IsNaN(v) {
			t.Fatalf("c[%d] = %v, want 0", a, v)
		}
	}
}

func TestCutAt(t *testing.T) {
	var c Cut
	c[10] = 0.5
	if c.At(370) != 0.5 || c.At(-350) != 0.5 {
		t.Errorf("At did not wrap: %v %v", c.At(370), c.At(-350))
	}
}

func TestComputeIsFresh(t *testing.T) {
	a, _ := Compute(antenna.Dipole{LengthRatio: 0.5})
	b, _ := Compute(antenna.Dipole{LengthRatio: 0.5})
	a.Elevation[90] = 42
	if b.Elevation[90] == 42 {
		t.Error("patterns share storage")
	}
}
