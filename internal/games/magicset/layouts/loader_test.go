package layouts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/magicset/internal/games/magicset/engine"
)

func TestEmbeddedLoadAll(t *testing.T) {
	layouts, err := Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(layouts) != 5 {
		t.Errorf("expected 5 embedded layouts, got %d", len(layouts))
	}
	for i := 1; i < len(layouts); i++ {
		if layouts[i-1].ID >= layouts[i].ID {
			t.Errorf("layouts not sorted: %s >= %s", layouts[i-1].ID, layouts[i].ID)
		}
	}
}

func TestLoadTwins(t *testing.T) {
	layout, err := Embedded().LoadByID("a02_twins")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if layout.Name != "Twins" {
		t.Errorf("expected Name 'Twins', got %q", layout.Name)
	}
	if layout.Width != 3 || layout.Height != 2 {
		t.Errorf("expected 3x2, got %dx%d", layout.Width, layout.Height)
	}
	if layout.Arity != engine.DefaultArity {
		t.Errorf("expected default arity, got %d", layout.Arity)
	}
	if layout.TileCount() != 6 {
		t.Errorf("expected 6 tiles, got %d", layout.TileCount())
	}
	if got := layout.Cells[engine.C(0, 1)].Code(); got != "RD" {
		t.Errorf("top-left tile = %s, expected RD", got)
	}
}

// TestTwinsIsSolvable plays the puzzle to an empty board.
func TestTwinsIsSolvable(t *testing.T) {
	layout, err := Embedded().LoadByID("a02_twins")
	if err != nil {
		t.Fatal(err)
	}
	s, err := layout.NewSession(engine.Options{})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	script := [][]engine.Intent{
		{engine.IntentConfirm},
		{engine.IntentMoveRight, engine.IntentConfirm},
		{engine.IntentMoveRight, engine.IntentConfirm},
		{engine.IntentConfirm},
		{engine.IntentMoveLeft, engine.IntentConfirm},
		{engine.IntentMoveLeft, engine.IntentConfirm},
	}
	for _, intents := range script {
		s.Step(intents)
	}

	if !s.Cleared() {
		t.Errorf("board not cleared:\n%s", engine.RenderASCII(s))
	}
	if s.Stats().Matches != 2 {
		t.Errorf("expected 2 matches, got %d", s.Stats().Matches)
	}
}

func TestQuartetArity(t *testing.T) {
	layout, err := Embedded().LoadByID("c01_quartet")
	if err != nil {
		t.Fatal(err)
	}
	s, err := layout.NewSession(engine.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if s.Arity() != 4 {
		t.Errorf("expected arity 4, got %d", s.Arity())
	}
	if w, h := s.Bounds(); w != 4 || h != 2 {
		t.Errorf("layout size should override options, got %dx%d", w, h)
	}
}

func TestDirLoaderSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"good.yaml":     "id: z_good\nname: Good\nrows:\n  - \"BD RC YT\"\n",
		"nested/ok.yml": "id: z_nested\nrows:\n  - \"BD BD BD\"\n",
		"ragged.yaml":   "id: z_ragged\nrows:\n  - \"BD RC\"\n  - \"YT\"\n",
		"no_id.yaml":    "rows:\n  - \"BD RC YT\"\n",
		"readme.txt":    "not a layout",
		"bad_code.yaml": "id: z_bad\nrows:\n  - \"BD GX YT\"\n",
		"bad_casc.yaml": "id: z_casc\ncascade: sideways\nrows:\n  - \"BD RC YT\"\n",
	}
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := NewDirLoader(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "z_good" || ids[1] != "z_nested" {
		t.Errorf("ListIDs() = %v, expected [z_good z_nested]", ids)
	}

	nested, err := NewDirLoader(dir).LoadByID("z_nested")
	if err != nil {
		t.Fatal(err)
	}
	if nested.Name != "z_nested" {
		t.Errorf("name should default to the id, got %q", nested.Name)
	}
}

func TestAllMergesUserLayouts(t *testing.T) {
	dir := t.TempDir()
	override := "id: a01_first_steps\nname: Custom First\nrows:\n  - \"RD RD RD\"\n"
	if err := os.WriteFile(filepath.Join(dir, "first.yaml"), []byte(override), 0o600); err != nil {
		t.Fatal(err)
	}

	all, err := All(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("expected 5 layouts after override, got %d", len(all))
	}

	found, err := Find("a01_first_steps", dir)
	if err != nil {
		t.Fatal(err)
	}
	if found.Name != "Custom First" {
		t.Errorf("user layout should shadow embedded one, got %q", found.Name)
	}

	if _, err := All(filepath.Join(dir, "missing")); err != nil {
		t.Errorf("missing user dir should not fail: %v", err)
	}
	if _, err := Find("nope", ""); err == nil {
		t.Error("Find() of an unknown id should fail")
	}
}
