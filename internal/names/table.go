// Package names resolves colours to human-readable names using ordered
// colour-name tables, and maps those names to real-world objects.
package names

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/jmylchreest/huepoint/internal/colour"
	"github.com/jmylchreest/huepoint/internal/compression"
)

// Table sources.
const (
	SourceNTC  = "ntc"
	SourceHTML = "html"
)

// maxTableSize bounds the decompressed size of a table file.
const maxTableSize = 4 * 1024 * 1024

//go:embed data/ntc.txt.xz
var embeddedNTC []byte

// ErrEmptyTable is returned when a table has no entries.
var ErrEmptyTable = errors.New("colour name table is empty")

// Entry is a single named colour.
type Entry struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`

	rgb colour.RGB
	col colorful.Color
}

// RGB returns the entry's colour.
func (e Entry) RGB() colour.RGB {
	return e.rgb
}

// Table is an ordered, immutable list of named colours.
type Table struct {
	source  string
	entries []Entry
	byHex   map[string]int
}

// NewTable builds a table from hex/name pairs. Hex values are normalised to
// six uppercase digits. When the same hex appears twice, the first entry
// wins exact lookups; both stay in the table.
func NewTable(source string, entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.Wrapf(ErrEmptyTable, "source %s", source)
	}

	t := &Table{
		source:  source,
		entries: make([]Entry, 0, len(entries)),
		byHex:   make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, errors.Errorf("%s entry %d (%s): missing name", source, i+1, e.Hex)
		}
		rgb, err := colour.ParseHex(e.Hex)
		if err != nil {
			return nil, errors.Wrapf(err, "%s entry %d", source, i+1)
		}
		hex := strings.TrimPrefix(rgb.Hex(), "#")

		if _, seen := t.byHex[hex]; !seen {
			t.byHex[hex] = len(t.entries)
		}
		t.entries = append(t.entries, Entry{
			Hex:  hex,
			Name: name,
			rgb:  rgb,
			col:  toColorful(rgb),
		})
	}

	return t, nil
}

// Source returns the name of the table, e.g. "ntc".
func (t *Table) Source() string {
	return t.source
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// All returns an iterator over the entries in table order.
func (t *Table) All() func(func(int, Entry) bool) {
	return func(yield func(int, Entry) bool) {
		for i, e := range t.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// lookup returns the first entry with the given normalised hex.
func (t *Table) lookup(hex string) (Entry, bool) {
	i, ok := t.byHex[hex]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Parse reads a table in the text format: one entry per line, six hex
// digits (optionally prefixed with '#'), whitespace, then the name. Blank
// lines and lines starting with "#" followed by a non-hex character are
// ignored. xz, gzip and bzip2 input is decompressed first.
func Parse(source string, r io.Reader) (*Table, error) {
	dr, _, err := compression.NewReader(r, maxTableSize)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s table", source)
	}
	return parseText(source, dr)
}

func parseText(source string, r io.Reader) (*Table, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isComment(line) {
			continue
		}

		idx := strings.IndexAny(line, " \t")
		if idx < 0 {
			return nil, errors.Errorf("%s line %d: expected \"<hex> <name>\", got %q", source, lineNo, line)
		}
		entries = append(entries, Entry{
			Hex:  line[:idx],
			Name: strings.TrimSpace(line[idx+1:]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", source)
	}

	return NewTable(source, entries)
}

// isComment reports whether a line is a comment rather than a '#'-prefixed
// hex entry.
func isComment(line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}
	idx := strings.IndexAny(line, " \t")
	if idx != 7 {
		return true
	}
	_, err := colour.ParseHex(line[:idx])
	return err != nil
}

// LoadFile reads a table from disk. Plain text and xz-compressed files are
// both accepted. The table source is the file's base name without
// extensions.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 - table path is supplied by the user
	if err != nil {
		return nil, errors.Wrap(err, "open name table")
	}
	defer f.Close()

	return Parse(sourceFromPath(path), f)
}

func sourceFromPath(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}

// NTC decodes the embedded name-that-colour table.
func NTC() (*Table, error) {
	t, err := Parse(SourceNTC, bytes.NewReader(embeddedNTC))
	if err != nil {
		return nil, errors.Wrap(err, "decode embedded ntc table")
	}
	return t, nil
}

// HTML builds a table from the SVG 1.1 / CSS named colours, in
// alphabetical order.
func HTML() *Table {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{
			Hex:  colour.ToRGB(colornames.Map[name]).Hex(),
			Name: name,
		})
	}

	t, err := NewTable(SourceHTML, entries)
	if err != nil {
		// colornames is a fixed, valid list.
		panic(err)
	}
	return t
}

func toColorful(rgb colour.RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}
