package nxcube

import (
	"errors"
	"testing"
)

func TestActionCount(t *testing.T) {
	tests := []struct{ n, want int }{
		{1, 0}, {2, 12}, {3, 16}, {4, 20}, {6, 28}, {10, 44},
	}
	for _, tt := range tests {
		if got := ActionCount(tt.n); got != tt.want {
			t.Errorf("ActionCount(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestApplyRejectsOutOfRange(t *testing.T) {
	for _, n := range []int{2, 3, 6} {
		count := ActionCount(n)
		for _, a := range []Action{-1, Action(count), Action(count + 100)} {
			c := MustNew(n)
			err := c.Apply(a)
			if !errors.Is(err, ErrInvalidAction) {
				t.Errorf("n=%d Apply(%d) error = %v, want ErrInvalidAction", n, a, err)
			}
			var ae *ActionError
			if !errors.As(err, &ae) || ae.Action != a || ae.Size != n {
				t.Errorf("n=%d Apply(%d) should return *ActionError, got %v", n, a, err)
			}
			if !c.Equal(MustNew(n)) {
				t.Errorf("n=%d rejected action %d should not change the cube", n, a)
			}
		}
	}
}

func TestApplyAllIsAllOrNothing(t *testing.T) {
	c := MustNew(3)
	err := c.ApplyAll([]Action{R, U, 99})
	if !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("ApplyAll error = %v, want ErrInvalidAction", err)
	}
	if !c.IsSolved() {
		t.Error("ApplyAll with an invalid action should apply nothing")
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for n := 2; n <= 7; n++ {
		for a := Action(0); int(a) < ActionCount(n); a++ {
			turn, err := DecodeAction(n, a)
			if err != nil {
				t.Fatalf("n=%d DecodeAction(%d): %v", n, a, err)
			}
			back, err := turn.Action(n)
			if err != nil {
				t.Fatalf("n=%d %+v.Action: %v", n, turn, err)
			}
			if back != a {
				t.Errorf("n=%d action %d decoded to %+v and encoded back as %d", n, a, turn, back)
			}
			if turn.Inverse().Direction == turn.Direction {
				t.Errorf("inverse of %+v keeps its direction", turn)
			}
			inv, _ := turn.Inverse().Action(n)
			if inv != a.Inverse() {
				t.Errorf("n=%d: Turn.Inverse gives %d, Action.Inverse gives %d", n, inv, a.Inverse())
			}
		}
	}
}

func TestDecodeSliceLayout(t *testing.T) {
	// 5x5: 12 face actions, then rows 1..3 (two directions each), then columns.
	tests := []struct {
		a    Action
		want Turn
	}{
		{12, Turn{Kind: SliceTurn, Axis: RowSlice, Layer: 1, Direction: Clockwise}},
		{13, Turn{Kind: SliceTurn, Axis: RowSlice, Layer: 1, Direction: CounterClockwise}},
		{17, Turn{Kind: SliceTurn, Axis: RowSlice, Layer: 3, Direction: CounterClockwise}},
		{18, Turn{Kind: SliceTurn, Axis: ColumnSlice, Layer: 1, Direction: Clockwise}},
		{23, Turn{Kind: SliceTurn, Axis: ColumnSlice, Layer: 3, Direction: CounterClockwise}},
		{7, Turn{Kind: FaceTurn, Face: FaceDown, Direction: CounterClockwise}},
	}
	for _, tt := range tests {
		got, err := DecodeAction(5, tt.a)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("DecodeAction(5, %d) = %+v, want %+v", tt.a, got, tt.want)
		}
	}
}

func TestTurnActionRejectsBadTurns(t *testing.T) {
	bad := []Turn{
		{Kind: FaceTurn, Face: 6},
		{Kind: FaceTurn, Face: FaceUp, Direction: 2},
		{Kind: SliceTurn, Axis: RowSlice, Layer: 0},
		{Kind: SliceTurn, Axis: ColumnSlice, Layer: 2},
		{Kind: SliceTurn, Axis: 2, Layer: 1},
		{Kind: 5},
	}
	for _, turn := range bad {
		if _, err := turn.Action(3); !errors.Is(err, ErrInvalidAction) {
			t.Errorf("%+v.Action(3) error = %v, want ErrInvalidAction", turn, err)
		}
		if err := MustNew(3).ApplyTurn(turn); !errors.Is(err, ErrInvalidAction) {
			t.Errorf("ApplyTurn(%+v) error = %v, want ErrInvalidAction", turn, err)
		}
	}
}

func TestInverseLaw(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		start := MustNew(n)
		if _, err := start.Scramble(50, WithSeed(uint64(n))); err != nil {
			t.Fatal(err)
		}
		for f := 0; f < NumFaces; f++ {
			c := start.Clone()
			cw := Action(f * 2)
			if err := c.ApplyAll([]Action{cw, cw + 1}); err != nil {
				t.Fatal(err)
			}
			if !c.Equal(start) {
				t.Errorf("n=%d: face %s clockwise then counter-clockwise should restore the cube", n, Face(f))
				t.Log(c.String())
			}

			c = start.Clone()
			if err := c.ApplyAll([]Action{cw + 1, cw}); err != nil {
				t.Fatal(err)
			}
			if !c.Equal(start) {
				t.Errorf("n=%d: face %s counter-clockwise then clockwise should restore the cube", n, Face(f))
			}
		}
	}
}

func TestOrderFourLaw(t *testing.T) {
	for n := 2; n <= 7; n++ {
		start := MustNew(n)
		if _, err := start.Scramble(40, WithSeed(99)); err != nil {
			t.Fatal(err)
		}
		for a := Action(0); int(a) < ActionCount(n); a++ {
			c := start.Clone()
			for i := 0; i < 4; i++ {
				if err := c.Apply(a); err != nil {
					t.Fatal(err)
				}
			}
			if !c.Equal(start) {
				t.Errorf("n=%d: action %s x 4 should restore the cube", n, a.Notation(n))
			}
		}
	}
}

func TestSliceInverseLaw(t *testing.T) {
	for n := 3; n <= 6; n++ {
		start := MustNew(n)
		if _, err := start.Scramble(60, WithSeed(3)); err != nil {
			t.Fatal(err)
		}
		for a := Action(NumFaceActions); int(a) < ActionCount(n); a += 2 {
			c := start.Clone()
			if err := c.ApplyAll([]Action{a, a.Inverse()}); err != nil {
				t.Fatal(err)
			}
			if !c.Equal(start) {
				t.Errorf("n=%d: slice %s then its inverse should restore the cube", n, a.Notation(n))
			}
		}
	}
}

func TestStickerConservation(t *testing.T) {
	for n := 2; n <= 6; n++ {
		c := MustNew(n)
		want := c.ColorCounts()
		for i, count := range want {
			if count != n*n {
				t.Fatalf("n=%d solved cube has %d stickers of color %d", n, count, i)
			}
		}
		for a := Action(0); int(a) < ActionCount(n); a++ {
			if err := c.Apply(a); err != nil {
				t.Fatal(err)
			}
			if got := c.ColorCounts(); got != want {
				t.Fatalf("n=%d: color counts %v after action %d, want %v", n, got, a, want)
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToStart(t *testing.T) {
	// (R U R' U') x 6 = identity
	for n := 2; n <= 5; n++ {
		c := MustNew(n)
		for i := 0; i < 6; i++ {
			if err := c.ApplyAll(SexyMove); err != nil {
				t.Fatal(err)
			}
		}
		if !c.IsSolved() {
			t.Errorf("n=%d: sexy move x 6 should return to solved", n)
			t.Log(c.String())
		}
	}
}

func TestTPermTwiceReturnsToStart(t *testing.T) {
	c := MustNew(3)
	if err := c.ApplyAll(TPerm); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("T-perm should change a solved cube")
	}
	if err := c.ApplyAll(TPerm); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("T-perm x 2 should return to solved")
		t.Log(c.String())
	}
}

func TestScrambleAndReverse(t *testing.T) {
	c := MustNew(4)
	actions, err := c.Scramble(300, WithSeed(11))
	if err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("Cube should be scrambled after 300 actions")
	}

	for i := len(actions) - 1; i >= 0; i-- {
		if err := c.Apply(actions[i].Inverse()); err != nil {
			t.Fatal(err)
		}
	}
	if !c.Equal(MustNew(4)) {
		t.Error("Cube should be solved after reversing the scramble")
		t.Log(c.String())
	}
}
