package engine

import "testing"

// columnBoard builds a one-column board from codes listed bottom to top; "" is a hole.
func columnBoard(codes ...string) (*Board, *Tiles) {
	b := NewBoard(1, len(codes))
	t := NewTiles()
	for y, code := range codes {
		if code == "" {
			continue
		}
		attrs, err := ParseCode(code)
		if err != nil {
			panic(err)
		}
		b.Set(C(0, y), t.Spawn(attrs, C(0, y)))
	}
	return b, t
}

func columnCodes(b *Board, t *Tiles) []string {
	col := b.Column(0)
	codes := make([]string, len(col))
	for y, id := range col {
		if id == NoTile {
			continue
		}
		a, _ := t.Attributes(id)
		codes[y] = a.Code()
	}
	return codes
}

func TestGravityDropsOneRowPerPass(t *testing.T) {
	b, tiles := columnBoard("", "", "BD")

	moves := Gravity(b, tiles, CascadeInPlace)
	if len(moves) != 1 {
		t.Fatalf("first pass moved %d tiles, want 1", len(moves))
	}
	if moves[0].From != C(0, 2) || moves[0].To != C(0, 1) {
		t.Errorf("move = %v->%v, want (0,2)->(0,1)", moves[0].From, moves[0].To)
	}
	if IsSettled(b) {
		t.Error("board should not be settled after one pass")
	}

	Gravity(b, tiles, CascadeInPlace)
	if !IsSettled(b) {
		t.Error("board should be settled after two passes")
	}
	if got := columnCodes(b, tiles); got[0] != "BD" {
		t.Errorf("column = %v, want BD at the bottom", got)
	}
}

func TestGravityStackDropsTogether(t *testing.T) {
	b, tiles := columnBoard("", "BD", "RC", "YT")

	moves := Gravity(b, tiles, CascadeInPlace)
	if len(moves) != 3 {
		t.Fatalf("pass moved %d tiles, want 3", len(moves))
	}
	want := []string{"BD", "RC", "YT", ""}
	got := columnCodes(b, tiles)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGravityPacksColumnPreservingOrder(t *testing.T) {
	tests := []struct {
		name   string
		column []string
		want   []string
	}{
		{"alternating holes", []string{"BD", "", "RC", "", "YT"}, []string{"BD", "RC", "YT", "", ""}},
		{"all at top", []string{"", "", "", "RT", "YD"}, []string{"RT", "YD", "", "", ""}},
		{"already packed", []string{"BC", "BC", "", "", ""}, []string{"BC", "BC", "", "", ""}},
		{"empty column", []string{"", "", ""}, []string{"", "", ""}},
	}

	for _, mode := range []CascadeMode{CascadeInPlace, CascadeRespawn} {
		for _, tt := range tests {
			t.Run(mode.String()+"/"+tt.name, func(t *testing.T) {
				b, tiles := columnBoard(tt.column...)
				before := tiles.Len()

				for passes := 0; len(Gravity(b, tiles, mode)) > 0; passes++ {
					if passes > len(tt.column) {
						t.Fatal("gravity did not settle")
					}
				}

				if !IsSettled(b) {
					t.Error("IsSettled() = false after gravity stopped")
				}
				if tiles.Len() != before {
					t.Errorf("tile count = %d, want %d", tiles.Len(), before)
				}
				got := columnCodes(b, tiles)
				for i := range tt.want {
					if got[i] != tt.want[i] {
						t.Errorf("column[%d] = %q, want %q", i, got[i], tt.want[i])
					}
				}
			})
		}
	}
}

func TestGravityInPlaceKeepsIdentity(t *testing.T) {
	b, tiles := columnBoard("", "RC")
	id, _ := b.Occupant(C(0, 1))

	moves := Gravity(b, tiles, CascadeInPlace)
	if len(moves) != 1 || moves[0].Old != id || moves[0].Tile != id {
		t.Fatalf("moves = %+v, want identity %d kept", moves, id)
	}
	if got, _ := b.Occupant(C(0, 0)); got != id {
		t.Errorf("occupant = %d, want %d", got, id)
	}
	if tiles.Tile(id).Pos != C(0, 0) {
		t.Errorf("tile position = %v, want (0,0)", tiles.Tile(id).Pos)
	}
}

func TestGravityRespawnRenewsIdentity(t *testing.T) {
	b, tiles := columnBoard("", "RC")
	old, _ := b.Occupant(C(0, 1))

	moves := Gravity(b, tiles, CascadeRespawn)
	if len(moves) != 1 {
		t.Fatalf("moved %d tiles, want 1", len(moves))
	}
	fresh := moves[0].Tile
	if fresh == old {
		t.Fatal("respawn kept the old identity")
	}
	if tiles.Contains(old) {
		t.Error("old identity should be despawned")
	}
	if got, _ := b.Occupant(C(0, 0)); got != fresh {
		t.Errorf("occupant = %d, want %d", got, fresh)
	}
	if a, _ := tiles.Attributes(fresh); a.Code() != "RC" {
		t.Errorf("respawned tile = %s, want RC", a.Code())
	}
}

func TestParseCascadeMode(t *testing.T) {
	tests := []struct {
		in    string
		want  CascadeMode
		valid bool
	}{
		{"", CascadeInPlace, true},
		{"in_place", CascadeInPlace, true},
		{"in-place", CascadeInPlace, true},
		{"Respawn", CascadeRespawn, true},
		{"teleport", CascadeInPlace, false},
	}

	for _, tc := range tests {
		got, err := ParseCascadeMode(tc.in)
		if (err == nil) != tc.valid {
			t.Errorf("ParseCascadeMode(%q) error = %v, valid = %v", tc.in, err, tc.valid)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCascadeMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
