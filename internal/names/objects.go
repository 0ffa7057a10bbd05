package names

import "strings"

// DefaultObject is the label used for names with no associated object.
const DefaultObject = "an object"

// Objects maps canonical colour names to a real-world object label.
// Keys are lower case.
type Objects map[string]string

var defaultObjects = Objects{
	"red":          "a fire engine",
	"blue":         "the open sea",
	"green":        "a blade of grass",
	"yellow":       "a banana",
	"aquamarine":   "a tropical lagoon",
	"amber":        "a traffic light",
	"orange":       "an orange",
	"purple":       "a bunch of grapes",
	"pink":         "a flamingo",
	"brown":        "a chocolate bar",
	"black":        "a piano key",
	"white":        "a snowflake",
	"gray":         "a storm cloud",
	"grey":         "a storm cloud",
	"olive":        "an olive",
	"gold":         "a gold coin",
	"silver":       "a teaspoon",
	"teal":         "a peacock feather",
	"navy":         "a sailor's uniform",
	"navy blue":    "a sailor's uniform",
	"maroon":       "a house brick",
	"lime":         "a lime",
	"cyan":         "a swimming pool",
	"aqua":         "a swimming pool",
	"magenta":      "a fuchsia flower",
	"fuchsia":      "a fuchsia flower",
	"lavender":     "a lavender field",
	"chocolate":    "a chocolate bar",
	"salmon":       "a salmon fillet",
	"coral":        "a coral reef",
	"khaki":        "a safari jacket",
	"crimson":      "a rose",
	"turquoise":    "a turquoise stone",
	"beige":        "a sandy beach",
	"chartreuse":   "a tennis ball",
	"olive drab":   "an army tent",
	"sky blue":     "a summer sky",
	"forest green": "a pine forest",
}

// DefaultObjects returns a copy of the built-in object map.
func DefaultObjects() Objects {
	out := make(Objects, len(defaultObjects))
	for k, v := range defaultObjects {
		out[k] = v
	}
	return out
}

// Lookup returns the object for name, if the name is mapped. Matching is
// case-insensitive and ignores surrounding whitespace. Names listing
// alternatives ("Cyan / Aqua") match on any alternative.
func (o Objects) Lookup(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}
	if obj, ok := o[key]; ok {
		return obj, true
	}
	for _, alt := range strings.Split(key, "/") {
		if obj, ok := o[strings.TrimSpace(alt)]; ok {
			return obj, true
		}
	}
	return "", false
}

// For returns the object for name, or DefaultObject when unmapped.
func (o Objects) For(name string) string {
	if obj, ok := o.Lookup(name); ok {
		return obj
	}
	return DefaultObject
}

// ObjectForName maps a colour name to its object using the built-in map.
// It never fails: unmapped names return DefaultObject.
func ObjectForName(name string) string {
	return defaultObjects.For(name)
}
