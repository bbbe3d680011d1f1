package engine

import "testing"

func TestRenderASCII(t *testing.T) {
	s, err := NewSessionFromRows(Options{Arity: 3}, []string{
		"RC YT ..",
		"BD RD YD",
	})
	if err != nil {
		t.Fatal(err)
	}

	want := " RC  YT  .. \n<BD> RD  YD "
	if got := RenderASCII(s); got != want {
		t.Errorf("RenderASCII() =\n%s\nwant\n%s", got, want)
	}

	s.Step([]Intent{IntentConfirm})
	s.Step([]Intent{IntentMoveRight})
	want = " RC  YT  .. \n[BD]<RD> YD "
	if got := RenderASCII(s); got != want {
		t.Errorf("RenderASCII() =\n%s\nwant\n%s", got, want)
	}
}

func TestParseRows(t *testing.T) {
	cells, w, h, err := ParseRows([]string{
		"BD . YT",
		"rc RC RC",
	})
	if err != nil {
		t.Fatalf("ParseRows() error = %v", err)
	}
	if w != 3 || h != 2 {
		t.Errorf("size = %dx%d, want 3x2", w, h)
	}
	if len(cells) != 5 {
		t.Errorf("cells = %d, want 5", len(cells))
	}
	if cells[C(0, 1)].Code() != "BD" || cells[C(0, 0)].Code() != "RC" {
		t.Errorf("top-left = %s, bottom-left = %s", cells[C(0, 1)].Code(), cells[C(0, 0)].Code())
	}
	if _, ok := cells[C(1, 1)]; ok {
		t.Error("'.' should be an empty cell")
	}
}

func TestParseRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"blank rows", []string{"", ""}},
		{"ragged", []string{"BD RC", "YT"}},
		{"bad code", []string{"BD GX"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, err := ParseRows(tt.rows); err == nil {
				t.Error("ParseRows() should fail")
			}
		})
	}
}

func TestNewSessionFromRowsRejectsSmallBoard(t *testing.T) {
	if _, err := NewSessionFromRows(Options{Arity: 3}, []string{"BD RC"}); err == nil {
		t.Error("a 2-cell board cannot host arity 3")
	}
}
