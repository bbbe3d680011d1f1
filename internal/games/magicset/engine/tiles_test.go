package engine

import "testing"

func TestTilesSpawnAssignsFreshIDs(t *testing.T) {
	tiles := NewTiles()

	a := tiles.Spawn(A(ColorBlue, ShapeDiamond), C(0, 0))
	b := tiles.Spawn(A(ColorRed, ShapeCircle), C(1, 0))
	if a == NoTile || b == NoTile || a == b {
		t.Fatalf("Spawn returned %d and %d, want distinct non-zero IDs", a, b)
	}

	tiles.Despawn(a)
	c := tiles.Spawn(A(ColorYellow, ShapeTriangle), C(0, 0))
	if c == a || c == b {
		t.Errorf("Spawn reused ID %d", c)
	}
	if tiles.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tiles.Len())
	}
}

func TestTilesAttributes(t *testing.T) {
	tiles := NewTiles()
	id := tiles.Spawn(A(ColorRed, ShapeTriangle), C(2, 1))

	attrs, ok := tiles.Attributes(id)
	if !ok {
		t.Fatal("Attributes() reported missing tile")
	}
	if attrs.Color != ColorRed || attrs.Shape != ShapeTriangle || !attrs.Visible {
		t.Errorf("Attributes() = %+v", attrs)
	}

	tiles.Tile(id).Attrs.Shape = ShapeCircle
	if attrs, _ := tiles.Attributes(id); attrs.Shape != ShapeCircle {
		t.Errorf("mutation through Tile() not visible, shape = %v", attrs.Shape)
	}

	tiles.Despawn(id)
	if _, ok := tiles.Attributes(id); ok {
		t.Error("Attributes() should fail after Despawn")
	}
	if tiles.Tile(id) != nil {
		t.Error("Tile() should return nil after Despawn")
	}
}

func TestTilesDoubleDespawnPanics(t *testing.T) {
	tiles := NewTiles()
	id := tiles.Spawn(A(ColorBlue, ShapeCircle), C(0, 0))
	tiles.Despawn(id)

	mustPanic(t, "double despawn", func() { tiles.Despawn(id) })
}

func TestTilesIDsSorted(t *testing.T) {
	tiles := NewTiles()
	for i := 0; i < 5; i++ {
		tiles.Spawn(A(ColorBlue, ShapeCircle), C(i, 0))
	}
	tiles.Despawn(3)

	ids := tiles.IDs()
	want := []TileID{1, 2, 4, 5}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		code  string
		want  Attributes
		valid bool
	}{
		{"BD", A(ColorBlue, ShapeDiamond), true},
		{"rc", A(ColorRed, ShapeCircle), true},
		{"YT", A(ColorYellow, ShapeTriangle), true},
		{"GD", Attributes{}, false},
		{"BX", Attributes{}, false},
		{"B", Attributes{}, false},
	}

	for _, tc := range tests {
		got, err := ParseCode(tc.code)
		if tc.valid && (err != nil || got != tc.want) {
			t.Errorf("ParseCode(%q) = %+v, %v, want %+v", tc.code, got, err, tc.want)
		}
		if !tc.valid && err == nil {
			t.Errorf("ParseCode(%q) should fail", tc.code)
		}
	}
}
