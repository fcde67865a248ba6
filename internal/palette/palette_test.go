package palette

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// TestDefault
// ---------------------------------------------------------------------------

func TestDefault(t *testing.T) {
	tests := []struct {
		name string
		want color.NRGBA
	}{
		{"water", color.NRGBA{R: 51, G: 102, B: 204, A: 180}},
		{"sand", color.NRGBA{R: 230, G: 204, B: 153, A: 255}},
		{"bedrock", color.NRGBA{R: 25, G: 25, B: 25, A: 255}},
		{"wood", color.NRGBA{R: 139, G: 90, B: 43, A: 255}},
		{"leaves", color.NRGBA{R: 51, G: 153, B: 51, A: 200}},
		{"cobblestone", color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
		{"planks", color.NRGBA{R: 179, G: 128, B: 77, A: 255}},
	}

	table := Default()
	if len(table) != len(tests) {
		t.Fatalf("len(Default()) = %d, want %d", len(table), len(tests))
	}
	for i, tc := range tests {
		if table[i].Name != tc.name {
			t.Errorf("entry %d: name = %q, want %q", i, table[i].Name, tc.name)
		}
		if table[i].Color != tc.want {
			t.Errorf("entry %q: color = %v, want %v", tc.name, table[i].Color, tc.want)
		}
	}

	if err := table.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	a[0].Color.R = 0
	b := Default()
	if b[0].Color.R != 51 {
		t.Errorf("mutating one Default() result leaked into another: R = %d", b[0].Color.R)
	}
}

// ---------------------------------------------------------------------------
// TestValidate
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr string
	}{
		{"empty table", Table{}, "empty"},
		{"empty name", Table{{Name: ""}}, "empty name"},
		{"upper case", Table{{Name: "Water"}}, "not normalised"},
		{"path separator", Table{{Name: "a/b"}}, "invalid character"},
		{"dot dot", Table{{Name: ".."}}, "invalid character"},
		{"duplicate", Table{{Name: "sand"}, {Name: "sand"}}, "duplicate"},
		{"valid", Table{{Name: "stone_bricks"}, {Name: "glass-pane"}}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLookup / TestSelect
// ---------------------------------------------------------------------------

func TestLookup(t *testing.T) {
	table := Default()

	e, ok := table.Lookup("  Leaves ")
	if !ok {
		t.Fatal("Lookup(\"  Leaves \") not found")
	}
	if e.Color.A != 200 {
		t.Errorf("leaves alpha = %d, want 200", e.Color.A)
	}

	if _, ok := table.Lookup("obsidian"); ok {
		t.Error("Lookup(\"obsidian\") found an entry, want none")
	}
}

func TestSelect(t *testing.T) {
	table := Default()

	all, err := table.Select()
	if err != nil {
		t.Fatalf("Select(): %v", err)
	}
	if len(all) != len(table) {
		t.Errorf("Select() returned %d entries, want %d", len(all), len(table))
	}

	// Result follows table order, not argument order.
	sub, err := table.Select("planks", "water", "planks")
	if err != nil {
		t.Fatalf("Select(planks, water): %v", err)
	}
	got := strings.Join(sub.Names(), ",")
	if got != "water,planks" {
		t.Errorf("Select(planks, water) names = %q, want %q", got, "water,planks")
	}
}

func TestSelect_Unknown(t *testing.T) {
	table := Default()

	_, err := table.Select("sandd")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("Select(sandd) error = %v, want ErrUnknownCategory", err)
	}
	if !strings.Contains(err.Error(), `did you mean sand`) {
		t.Errorf("error should suggest sand, got: %v", err)
	}

	_, err = table.Select("obsidian")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("Select(obsidian) error = %v, want ErrUnknownCategory", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error should not carry suggestions, got: %v", err)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"wod", "wood"},
		{"leafs", "leaves"},
		{"cobblestone", ""},
		{"xyzzy", ""},
		{"plank", "planks"},
	}

	names := Default().Names()
	for _, tc := range tests {
		got := strings.Join(Suggest(tc.input, names), ",")
		if got != tc.want {
			t.Errorf("Suggest(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSuggest_ClosestFirstThenTableOrder(t *testing.T) {
	names := []string{"slate", "stone", "stone2", "stones", "tone"}

	got := Suggest("stone1", names)
	want := []string{"stone", "stone2", "stones"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Suggest = %v, want %v", got, want)
	}

	got = Suggest("tones", names)
	want = []string{"stones", "tone", "stone"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Suggest = %v, want %v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestHex / export
// ---------------------------------------------------------------------------

func TestHex(t *testing.T) {
	got := Hex(color.NRGBA{R: 51, G: 102, B: 204, A: 180})
	if got != "#3366ccb4" {
		t.Errorf("Hex = %q, want %q", got, "#3366ccb4")
	}
}

func TestMarshalYAMLDocument(t *testing.T) {
	data, err := Default().MarshalYAMLDocument()
	if err != nil {
		t.Fatalf("MarshalYAMLDocument: %v", err)
	}

	var doc struct {
		Categories []Record `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, data)
	}
	if len(doc.Categories) != 7 {
		t.Fatalf("categories = %d, want 7", len(doc.Categories))
	}
	if doc.Categories[0].Name != "water" || doc.Categories[0].Hex != "#3366ccb4" {
		t.Errorf("first record = %+v, want water #3366ccb4", doc.Categories[0])
	}
}

func TestMarshalTOMLDocument(t *testing.T) {
	data, err := Default().MarshalTOMLDocument()
	if err != nil {
		t.Fatalf("MarshalTOMLDocument: %v", err)
	}
	if !strings.Contains(string(data), "[[categories]]") {
		t.Errorf("expected [[categories]] tables, got:\n%s", data)
	}

	var doc struct {
		Categories []Record `toml:"categories"`
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		t.Fatalf("toml.Decode: %v\n%s", err, data)
	}
	last := doc.Categories[len(doc.Categories)-1]
	if last.Name != "planks" || last.R != 179 || last.G != 128 || last.B != 77 || last.A != 255 {
		t.Errorf("last record = %+v, want planks 179/128/77/255", last)
	}
}
