package solver

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/juju/errors"
	"github.com/kr/pretty"

	"github.com/comscicalc/csc/internal/buffer"
	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/operator"
	"github.com/comscicalc/csc/internal/status"
)

type harness struct {
	*qt.C
	a *buffer.Arena
	b *buffer.T
	f format.T
}

func setup(t *testing.T) *harness {
	a := &buffer.Arena{}

	return &harness{
		C: qt.New(t),
		a: a,
		b: buffer.New(a),
		f: format.Default(),
	}
}

func (h *harness) keys(s string) *harness {
	h.Helper()

	for i := 0; i < len(s); i++ {
		c, err := buffer.NewCell(s[i], h.f)
		h.Assert(err, qt.IsNil, qt.Commentf("%q", s[i]))

		_, err = h.b.Insert(buffer.Nil, c)
		h.Assert(err, qt.IsNil)
	}

	return h
}

func (h *harness) solve() (operator.Value, error) {
	h.Helper()

	before := pretty.Sprint(h.b.Cells())
	live := h.a.Live()

	v, err := Solve(h.b, h.f)

	h.Assert(h.a.Live(), qt.Equals, live)
	h.Assert(pretty.Sprint(h.b.Cells()), qt.Equals, before)

	return v, err
}

func (h *harness) expect(e uint64) {
	h.Helper()

	v, err := h.solve()
	h.Assert(err, qt.IsNil)
	h.Assert(v.Word, qt.Equals, e)
}

func (h *harness) fail(e status.Solve) {
	h.Helper()

	_, err := h.solve()
	h.Assert(errors.Cause(err), qt.Equals, error(e))
}

func TestPrecedence(t *testing.T) {
	setup(t).keys("123+456").expect(579)
	setup(t).keys("123+456*789").expect(359907)
	setup(t).keys("1+2*3-4").expect(3)
	setup(t).keys("8-4-2").expect(2)
	setup(t).keys("16/4/2").expect(2)
	setup(t).keys("2*(3+4)").expect(14)
	setup(t).keys("1+2<3").expect(24)
	setup(t).keys("6&3|8").expect(10)
	setup(t).keys("6|3&8").expect(6)
	setup(t).keys("0123+056").expect(179)
	setup(t).keys("((((7))))").expect(7)
}

func TestRepeated(t *testing.T) {
	h := setup(t)
	for i := 0; i < 31; i++ {
		h.keys("1+")
	}

	h.keys("1").expect(32)
}

func TestPrefixOperators(t *testing.T) {
	setup(t).keys("s123,456,1213)").expect(1792)
	setup(t).keys("1011+s123,456,1213)-789").expect(2014)
	setup(t).keys("~123+456)-789").expect(^uint64(579) - 789)
	setup(t).keys("s1,s2,3),~~0)))").expect(6)
	setup(t).keys("s(1+2)*3,4)").expect(13)

	h := setup(t)
	h.f.Base = base.Hex
	h.keys("n0,f)").expect(15)

	h = setup(t)
	h.f.Base = base.Hex
	h.keys("n0,f,f)").expect(0)
}

func TestUnclosedPrefix(t *testing.T) {
	h := setup(t)
	h.f.Base = base.Hex
	h.keys("n0,f").fail(status.BracketError)
}

func TestMixedBases(t *testing.T) {
	h := setup(t)
	h.f.Base = base.Bin
	h.keys("10+")
	h.f.Base = base.Hex
	h.keys("ff")
	h.expect(257)
}

func TestFixed(t *testing.T) {
	h := setup(t)
	h.f.Input = format.Fixed
	h.keys("123.5")
	h.expect(0x0000007b80000000)

	h = setup(t)
	h.f.Base = base.Hex
	h.f.Input = format.Fixed
	h.f.Bits = 32
	h.f.Point = 16
	h.keys("012.8000+07e.ab85")
	h.expect(0x912b85)
}

func TestFloat(t *testing.T) {
	h := setup(t)
	h.f.Input = format.Float
	h.f.Bits = 32
	h.keys("123.12")
	h.expect(0x42f63d71)

	h = setup(t)
	h.f.Input = format.Float
	h.keys("23.1+100.02")
	h.expect(0x405ec7ae147ae148)
}

func TestPromotion(t *testing.T) {
	h := setup(t)
	h.keys("2*")
	h.f.Input = format.Fixed
	h.keys("1.5")

	v, err := h.solve()
	h.Assert(err, qt.IsNil)
	h.Assert(v, qt.Equals, operator.Value{Word: 3 << 32, Format: format.Fixed})

	h.f.Input = format.Float
	h.keys("+")
	h.keys("0.25")

	v, err = h.solve()
	h.Assert(err, qt.IsNil)
	h.Assert(v, qt.Equals, operator.Value{Word: math.Float64bits(3.25), Format: format.Float})
}

func TestUnsolvable(t *testing.T) {
	for _, tc := range []struct {
		keys string
		e    status.Solve
	}{
		{"123+", status.OperatorPointerError},
		{"123+456+", status.OperatorPointerError},
		{"~123+", status.BracketError},
		{"~)", status.InvalidNumArgs},
		{"()", status.InvalidNumArgs},
		{"(", status.BracketError},
		{")", status.BracketError},
		{"s*,+)", status.OperatorPointerError},
		{"s,)", status.InvalidNumArgs},
		{"s,1)", status.InvalidNumArgs},
		{"s1,)", status.InvalidNumArgs},
		{"123*(456*(1+2)", status.BracketError},
		{"123(", status.BracketError},
		{"(123,5)", status.ArgsButNoOperator},
		{"1,2", status.ArgsButNoOperator},
		{"1(2)", status.OperatorPointerError},
		{"1/0", status.CalcNotSolvable},
		{"1.2", status.CalcNotSolvable},
		{"~1,2)", status.InvalidNumArgs},
		{"n1)", status.InvalidNumArgs},
		{"+", status.OperatorPointerError},
	} {
		t.Run(tc.keys, func(t *testing.T) {
			setup(t).keys(tc.keys).fail(tc.e)
		})
	}
}

func TestEmpty(t *testing.T) {
	setup(t).fail(status.SolveInputListNull)
}

func TestIdempotent(t *testing.T) {
	h := setup(t).keys("s1,2,3)*4")

	a, err := h.solve()
	h.Assert(err, qt.IsNil)

	b, err := h.solve()
	h.Assert(err, qt.IsNil)
	h.Assert(a, qt.Equals, b)
}

func TestAllocation(t *testing.T) {
	h := setup(t).keys("1+2+3")
	h.a.Limit = 7

	h.fail(status.AllocationError)

	h.a.Limit = 0
	h.expect(6)
}
