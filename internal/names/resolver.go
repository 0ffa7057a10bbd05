package names

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/jmylchreest/huepoint/internal/colour"
)

// Metric selects the colour distance used for nearest-name lookups.
type Metric string

const (
	// MetricLab is Euclidean distance in CIE L*a*b*.
	MetricLab Metric = "lab"

	// MetricRGB is Euclidean distance in sRGB.
	MetricRGB Metric = "rgb"

	// MetricCIEDE2000 is the CIEDE2000 colour difference.
	MetricCIEDE2000 Metric = "ciede2000"
)

// ValidMetrics returns all supported distance metrics.
func ValidMetrics() []Metric {
	return []Metric{MetricLab, MetricRGB, MetricCIEDE2000}
}

// ParseMetric parses a metric name, case-insensitively.
func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ValidMetrics() {
		if m == valid {
			return m, nil
		}
	}
	return "", errors.Errorf("unknown distance metric %q (valid: lab, rgb, ciede2000)", s)
}

// Match is the result of resolving a colour against one table.
type Match struct {
	// Source names the table the match came from.
	Source string `json:"source"`

	// Name is the matched colour name. Empty only when the table was empty.
	Name string `json:"name"`

	// Hex is the matched table entry's colour, six uppercase digits.
	Hex string `json:"hex,omitempty"`

	// Exact is true when the entry's colour equals the input.
	Exact bool `json:"exact"`

	// Distance between the input and the matched entry under the resolver's metric.
	Distance float64 `json:"distance"`
}

// Matched reports whether the match carries a name.
func (m Match) Matched() bool {
	return m.Name != ""
}

// NameResolver names a colour.
type NameResolver interface {
	// Source identifies the naming table, e.g. "ntc".
	Source() string

	// Resolve returns the best name for rgb. Implementations are total:
	// they never fail and return a name whenever they have one to give.
	Resolve(rgb colour.RGB) Match
}

// TableResolver resolves colours against a Table. An exact hex hit always
// wins; otherwise the nearest entry under the configured metric is
// returned, with ties going to the earlier entry.
type TableResolver struct {
	table  *Table
	metric Metric
}

// NewTableResolver creates a resolver over table. An empty metric selects
// MetricLab.
func NewTableResolver(table *Table, metric Metric) *TableResolver {
	if metric == "" {
		metric = MetricLab
	}
	return &TableResolver{table: table, metric: metric}
}

// Source returns the table source.
func (r *TableResolver) Source() string {
	if r.table == nil {
		return ""
	}
	return r.table.Source()
}

// Metric returns the distance metric in use.
func (r *TableResolver) Metric() Metric {
	return r.metric
}

// Resolve returns the exact or nearest named colour for rgb.
func (r *TableResolver) Resolve(rgb colour.RGB) Match {
	if r.table == nil || r.table.Len() == 0 {
		return Match{Source: r.Source()}
	}

	hex := strings.TrimPrefix(rgb.Hex(), "#")
	if e, ok := r.table.lookup(hex); ok {
		return Match{Source: r.table.Source(), Name: e.Name, Hex: e.Hex, Exact: true}
	}

	target := toColorful(rgb)
	best := -1
	bestDist := math.Inf(1)
	for i, e := range r.table.entries {
		d := r.distance(target, e)
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	e := r.table.entries[best]
	return Match{
		Source:   r.table.Source(),
		Name:     e.Name,
		Hex:      e.Hex,
		Distance: bestDist,
	}
}

// Exact performs a literal lookup of hex in table order with no nearest
// fallback. The hex is case-insensitive and may carry a leading '#'.
func (r *TableResolver) Exact(hex string) (Match, bool) {
	if r.table == nil {
		return Match{}, false
	}
	norm, err := colour.NormaliseHex(hex)
	if err != nil {
		return Match{Source: r.table.Source()}, false
	}
	e, ok := r.table.lookup(norm)
	if !ok {
		return Match{Source: r.table.Source()}, false
	}
	return Match{Source: r.table.Source(), Name: e.Name, Hex: e.Hex, Exact: true}, true
}

func (r *TableResolver) distance(target colorful.Color, e Entry) float64 {
	switch r.metric {
	case MetricRGB:
		return target.DistanceRgb(e.col)
	case MetricCIEDE2000:
		return target.DistanceCIEDE2000(e.col)
	default:
		return target.DistanceLab(e.col)
	}
}
