// Package palette defines the table of block categories and the flat colour
// each one is painted with.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnknownCategory is returned when a requested category is not in the table.
var ErrUnknownCategory = errors.New("unknown category")

// Entry pairs a category name with its fill colour. Colours use straight
// (non-premultiplied) alpha so translucent entries keep their exact channel
// values once encoded.
type Entry struct {
	Name  string
	Color color.NRGBA
}

// Table is an ordered list of entries. The order only affects logging.
type Table []Entry

// Default returns the built-in category table. Each call returns a fresh
// copy, so callers cannot mutate the defaults seen by anyone else.
func Default() Table {
	return Table{
		{Name: "water", Color: color.NRGBA{R: 51, G: 102, B: 204, A: 180}},
		{Name: "sand", Color: color.NRGBA{R: 230, G: 204, B: 153, A: 255}},
		{Name: "bedrock", Color: color.NRGBA{R: 25, G: 25, B: 25, A: 255}},
		{Name: "wood", Color: color.NRGBA{R: 139, G: 90, B: 43, A: 255}},
		{Name: "leaves", Color: color.NRGBA{R: 51, G: 153, B: 51, A: 200}},
		{Name: "cobblestone", Color: color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
		{Name: "planks", Color: color.NRGBA{R: 179, G: 128, B: 77, A: 255}},
	}
}

// Normalize returns name in NFC form, lowercased and trimmed.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(name)))
}

// Validate checks that every name is non-empty, already normalised, made of
// [a-z0-9_-] only (so it is safe as a single directory name) and unique.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("palette: table is empty")
	}
	seen := make(map[string]bool, len(t))
	for i, e := range t {
		if e.Name == "" {
			return fmt.Errorf("palette: entry %d has an empty name", i)
		}
		if Normalize(e.Name) != e.Name {
			return fmt.Errorf("palette: name %q is not normalised (want %q)", e.Name, Normalize(e.Name))
		}
		for _, r := range e.Name {
			if !isNameRune(r) {
				return fmt.Errorf("palette: name %q contains invalid character %q", e.Name, r)
			}
		}
		if seen[e.Name] {
			return fmt.Errorf("palette: duplicate name %q", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

func isNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}

// Names returns the category names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, e := range t {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry for name. The name is normalised first.
func (t Table) Lookup(name string) (Entry, bool) {
	name = Normalize(name)
	for _, e := range t {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Select returns the subset of t named by names, in table order. An empty
// names list selects the whole table. Unknown names produce an error wrapping
// ErrUnknownCategory, with suggestions when any are close enough.
func (t Table) Select(names ...string) (Table, error) {
	if len(names) == 0 {
		return append(Table(nil), t...), nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = Normalize(n)
		if _, ok := t.Lookup(n); !ok {
			if similar := Suggest(n, t.Names()); len(similar) > 0 {
				return nil, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownCategory, n, strings.Join(similar, ", "))
			}
			return nil, fmt.Errorf("%w %q", ErrUnknownCategory, n)
		}
		want[n] = true
	}

	var out Table
	for _, e := range t {
		if want[e.Name] {
			out = append(out, e)
		}
	}
	return out, nil
}

// Hex formats c as #rrggbbaa.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
