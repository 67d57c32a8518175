package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/lists/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeGet(t *testing.T) {
	if v, ok := Just("x").Get(); !ok || v != "x" {
		t.Errorf("expected Just(x).Get() to be (x, true), is (%q, %v)", v, ok)
	}
	if _, ok := Nothing[string]().Get(); ok {
		t.Error("expected Nothing.Get() to report false")
	}
	if !Nothing[string]().IsNothing() || Just(1).IsNothing() {
		t.Error("IsNothing reports wrong tag")
	}
	if Of(3, false).IsNothing() != true || Of(3, true).WithDefault(0) != 3 {
		t.Error("expected Of to respect ok flag")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v := xx.WithDefault(0); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	s := Map(strconv.Itoa, Just(10))
	if v := s.WithDefault(""); v != "10" {
		t.Logf("itoa = %q", v)
		t.Error("expected Map(itoa, Just 10) to return \"10\", didn't")
	}
	y := Nothing[int]().Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Logf("nothing * 2 = %d", w)
		t.Error("expected Nothing.Map(…) to return 99, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(gt0, Just(7)).WithDefault(false) {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
}
