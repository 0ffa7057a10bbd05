package names

import (
	"testing"

	"github.com/jmylchreest/huepoint/internal/colour"
)

func mustNTC(t *testing.T) *Table {
	t.Helper()
	table, err := NTC()
	if err != nil {
		t.Fatalf("NTC() error = %v", err)
	}
	return table
}

func TestTableResolverExactHit(t *testing.T) {
	r := NewTableResolver(mustNTC(t), MetricLab)

	tests := []struct {
		rgb  colour.RGB
		want string
	}{
		{rgb: colour.RGB{R: 127, G: 255, B: 212}, want: "Aquamarine"},
		{rgb: colour.RGB{R: 255, G: 191, B: 0}, want: "Amber"},
		{rgb: colour.RGB{R: 255}, want: "Red"},
		{rgb: colour.RGB{G: 255}, want: "Green"},
		{rgb: colour.RGB{B: 255}, want: "Blue"},
		{rgb: colour.RGB{R: 255, G: 255}, want: "Yellow"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := r.Resolve(tt.rgb)
			if m.Name != tt.want {
				t.Errorf("Resolve(%v).Name = %q, want %q", tt.rgb, m.Name, tt.want)
			}
			if !m.Exact {
				t.Errorf("Resolve(%v).Exact = false, want true", tt.rgb)
			}
			if m.Distance != 0 {
				t.Errorf("Resolve(%v).Distance = %v, want 0", tt.rgb, m.Distance)
			}
			if m.Source != SourceNTC {
				t.Errorf("Resolve(%v).Source = %q, want %q", tt.rgb, m.Source, SourceNTC)
			}
		})
	}
}

func TestTableResolverNearest(t *testing.T) {
	table := mustNTC(t)

	tests := []struct {
		name   string
		metric Metric
		rgb    colour.RGB
		want   string
	}{
		{name: "centre colour lab", metric: MetricLab, rgb: colour.RGB{R: 128, G: 128, B: 64}, want: "Pesto"},
		{name: "centre colour rgb", metric: MetricRGB, rgb: colour.RGB{R: 128, G: 128, B: 64}, want: "Pesto"},
		{name: "near aquamarine", metric: MetricLab, rgb: colour.RGB{R: 127, G: 255, B: 211}, want: "Aquamarine"},
		{name: "near red", metric: MetricCIEDE2000, rgb: colour.RGB{R: 254}, want: "Red"},
		{name: "near blue", metric: MetricRGB, rgb: colour.RGB{B: 254}, want: "Blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewTableResolver(table, tt.metric).Resolve(tt.rgb)
			if m.Name != tt.want {
				t.Errorf("Resolve(%v) = %q (%s), want %q", tt.rgb, m.Name, m.Hex, tt.want)
			}
			if m.Exact {
				t.Errorf("Resolve(%v).Exact = true, want false", tt.rgb)
			}
			if m.Distance <= 0 {
				t.Errorf("Resolve(%v).Distance = %v, want > 0", tt.rgb, m.Distance)
			}
		})
	}
}

func TestTableResolverIsTotal(t *testing.T) {
	r := NewTableResolver(HTML(), "")
	if r.Metric() != MetricLab {
		t.Errorf("default Metric() = %q, want %q", r.Metric(), MetricLab)
	}

	for i := 0; i <= 255; i += 15 {
		for j := 0; j <= 255; j += 51 {
			rgb := colour.RGB{R: uint8(i), G: uint8(j), B: uint8(255 - i)}
			if m := r.Resolve(rgb); !m.Matched() {
				t.Fatalf("Resolve(%v) returned no name", rgb)
			}
		}
	}
}

func TestTableResolverTieKeepsEarlierEntry(t *testing.T) {
	table, err := LoadFile("testdata/small.txt")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	r := NewTableResolver(table, MetricRGB)

	// Duplicate hex: the first entry wins.
	if m := r.Resolve(colour.RGB{R: 255}); m.Name != "Red" {
		t.Errorf("Resolve(red) = %q, want %q", m.Name, "Red")
	}
}

func TestTableResolverEmpty(t *testing.T) {
	r := NewTableResolver(nil, MetricLab)
	m := r.Resolve(colour.RGB{R: 1})
	if m.Matched() {
		t.Errorf("Resolve() on nil table = %+v, want no match", m)
	}
}

func TestTableResolverExact(t *testing.T) {
	r := NewTableResolver(mustNTC(t), MetricLab)

	tests := []struct {
		hex     string
		want    string
		matched bool
	}{
		{hex: "#7fffd4", want: "Aquamarine", matched: true},
		{hex: "FFBF00", want: "Amber", matched: true},
		{hex: "808040", matched: false},
		{hex: "not-hex", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			m, ok := r.Exact(tt.hex)
			if ok != tt.matched {
				t.Fatalf("Exact(%q) matched = %v, want %v", tt.hex, ok, tt.matched)
			}
			if m.Name != tt.want {
				t.Errorf("Exact(%q) = %q, want %q", tt.hex, m.Name, tt.want)
			}
		})
	}
}

func TestHTMLResolver(t *testing.T) {
	r := NewTableResolver(HTML(), MetricLab)

	tests := []struct {
		rgb  colour.RGB
		want string
	}{
		{rgb: colour.RGB{R: 255}, want: "red"},
		{rgb: colour.RGB{G: 255}, want: "lime"},
		{rgb: colour.RGB{G: 255, B: 255}, want: "aqua"},
		{rgb: colour.RGB{R: 128, G: 128, B: 128}, want: "gray"},
		{rgb: colour.RGB{R: 127, G: 255, B: 212}, want: "aquamarine"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if m := r.Resolve(tt.rgb); m.Name != tt.want {
				t.Errorf("Resolve(%v) = %q, want %q", tt.rgb, m.Name, tt.want)
			}
		})
	}
}

func TestParseMetric(t *testing.T) {
	for _, in := range []string{"lab", "RGB", " ciede2000 "} {
		if _, err := ParseMetric(in); err != nil {
			t.Errorf("ParseMetric(%q) error = %v", in, err)
		}
	}
	if _, err := ParseMetric("hsv"); err == nil {
		t.Error("ParseMetric(hsv) expected error")
	}
}
