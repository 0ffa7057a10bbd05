// Package resolver turns pointer positions into colours and commits a
// colour into a named snapshot.
package resolver

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/jmylchreest/huepoint/internal/colour"
	"github.com/jmylchreest/huepoint/internal/names"
	"github.com/jmylchreest/huepoint/internal/position"
)

// labelSeparator joins names from different resolvers for display.
const labelSeparator = ", "

// Resolved is the snapshot produced when a colour is committed.
type Resolved struct {
	RGB    colour.RGB    `json:"rgb"`
	Hex    string        `json:"hex"`
	Names  []names.Match `json:"names"`
	Object string        `json:"object"`
}

// Label concatenates the resolved names in resolver order. Empty names are
// skipped; duplicates are kept.
func (r Resolved) Label() string {
	parts := make([]string, 0, len(r.Names))
	for _, m := range r.Names {
		if m.Matched() {
			parts = append(parts, m.Name)
		}
	}
	return strings.Join(parts, labelSeparator)
}

// Name returns the name given by the resolver with the given source.
func (r Resolved) Name(source string) string {
	for _, m := range r.Names {
		if m.Source == source {
			return m.Name
		}
	}
	return ""
}

// ColorResolver computes live colours and resolves committed colours
// against a set of name resolvers.
type ColorResolver struct {
	resolvers []names.NameResolver
	objects   names.Objects
	logger    hclog.Logger
}

// New creates a ColorResolver. Resolvers are consulted in the order given.
// A nil objects map uses the built-in map.
func New(objects names.Objects, resolvers ...names.NameResolver) *ColorResolver {
	if objects == nil {
		objects = names.DefaultObjects()
	}
	return &ColorResolver{
		resolvers: resolvers,
		objects:   objects,
		logger:    hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger used for resolution traces.
func (c *ColorResolver) WithLogger(logger hclog.Logger) *ColorResolver {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Sources lists the resolver sources in order.
func (c *ColorResolver) Sources() []string {
	out := make([]string, len(c.resolvers))
	for i, r := range c.resolvers {
		out[i] = r.Source()
	}
	return out
}

// Live returns the background colour for a mapped position.
func (c *ColorResolver) Live(res position.Result) colour.RGB {
	return colour.Blend(res.Fraction.X, res.Fraction.Y)
}

// Resolve builds the committed snapshot for rgb: hex form, one name per
// resolver, and the object for the first name that has one.
func (c *ColorResolver) Resolve(rgb colour.RGB) (Resolved, error) {
	hex, err := colour.ToHex(int(rgb.R), int(rgb.G), int(rgb.B))
	if err != nil {
		return Resolved{}, errors.Wrap(err, "convert committed colour")
	}

	out := Resolved{
		RGB:    rgb,
		Hex:    hex,
		Names:  make([]names.Match, 0, len(c.resolvers)),
		Object: names.DefaultObject,
	}

	objectFound := false
	for _, r := range c.resolvers {
		m := r.Resolve(rgb)
		if m.Source == "" {
			m.Source = r.Source()
		}
		out.Names = append(out.Names, m)

		if !objectFound {
			if obj, ok := c.objects.Lookup(m.Name); ok {
				out.Object = obj
				objectFound = true
			}
		}
	}

	c.logger.Debug("resolved colour", "hex", hex, "names", out.Label(), "object", out.Object)
	return out, nil
}

// ResolveHex parses hex and resolves it.
func (c *ColorResolver) ResolveHex(hex string) (Resolved, error) {
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		return Resolved{}, err
	}
	return c.Resolve(rgb)
}
