package stdlib

import (
	"math/big"
	"strings"
	"testing"

	"icelang/eval"
	"icelang/runtime"
	"icelang/sourcerange"
	"icelang/value"
)

func testState(rt *runtime.Runtime) *eval.RuntimeState {
	return eval.NewRuntimeState(rt)
}

func zeroPos() sourcerange.SourceRange {
	return sourcerange.New(" ", "<test>", 0, 0)
}

func TestLenAcrossTypes(t *testing.T) {
	rt := runtime.New(nil)
	cases := []struct {
		v    value.Value
		want int64
	}{
		{value.NewList([]value.Value{value.NewIntFromInt64(1), value.NewIntFromInt64(2)}), 2},
		{value.String{V: "héllo"}, 5},
	}
	for _, c := range cases {
		got, err := islLen([]value.Value{c.v}, zeroPos(), testState(rt))
		if err != nil {
			t.Fatalf("len(%v) error: %v", c.v, err)
		}
		n := got.(value.Int)
		if n.V.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("len(%v) = %v, want %d", c.v, n.V, c.want)
		}
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)
	list := value.NewList(nil)

	if _, err := islPush([]value.Value{list, value.NewIntFromInt64(1)}, zeroPos(), state); err != nil {
		t.Fatal(err)
	}
	if _, err := islPush([]value.Value{list, value.NewIntFromInt64(2)}, zeroPos(), state); err != nil {
		t.Fatal(err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("after two pushes, len = %d, want 2", len(list.Items))
	}

	popped, err := islPop([]value.Value{list}, zeroPos(), state)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(popped, value.NewIntFromInt64(2)) {
		t.Errorf("pop() = %v, want 2", popped)
	}

	empty := value.NewList(nil)
	popped, err = islPop([]value.Value{empty}, zeroPos(), state)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := popped.(value.Null); !ok {
		t.Errorf("pop() of empty list = %v, want Null", popped)
	}
}

func TestContainsKeyRemoveEntryInsert(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)
	d := value.NewDict()
	d.Set(value.String{V: "a"}, value.NewIntFromInt64(1))

	got, err := islContainsKey([]value.Value{d, value.String{V: "a"}}, zeroPos(), state)
	if err != nil {
		t.Fatal(err)
	}
	if !got.(value.Bool).V {
		t.Error("contains_key(d, \"a\") = false, want true")
	}

	if _, err := islInsert([]value.Value{d, value.String{V: "b"}, value.NewIntFromInt64(2)}, zeroPos(), state); err != nil {
		t.Fatal(err)
	}
	v, _ := d.Get(value.String{V: "b"})
	if !value.Equal(v, value.NewIntFromInt64(2)) {
		t.Errorf("after insert, d[\"b\"] = %v, want 2", v)
	}

	removed, err := islRemoveEntry([]value.Value{d, value.String{V: "a"}}, zeroPos(), state)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(removed, value.NewIntFromInt64(1)) {
		t.Errorf("remove_entry(d, \"a\") = %v, want 1", removed)
	}
	if _, found := d.Get(value.String{V: "a"}); found {
		t.Error("key \"a\" should no longer be present after remove_entry")
	}
}

func TestRangeEmptyWhenStartEqualsEnd(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)
	got, err := islRange([]value.Value{value.NewIntFromInt64(5), value.NewIntFromInt64(5)}, zeroPos(), state)
	if err != nil {
		t.Fatal(err)
	}
	l := got.(*value.List)
	if len(l.Items) != 0 {
		t.Errorf("range(5, 5) = %v, want []", l.Items)
	}
}

func TestRangeOneArg(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)
	got, err := islRange([]value.Value{value.NewIntFromInt64(4)}, zeroPos(), state)
	if err != nil {
		t.Fatal(err)
	}
	l := got.(*value.List)
	want := []int64{0, 1, 2, 3}
	if len(l.Items) != len(want) {
		t.Fatalf("range(4) has %d items, want %d", len(l.Items), len(want))
	}
	for i, w := range want {
		if !value.Equal(l.Items[i], value.NewIntFromInt64(w)) {
			t.Errorf("range(4)[%d] = %v, want %d", i, l.Items[i], w)
		}
	}
}

func TestRangeNegativeStep(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)
	got, err := islRange([]value.Value{
		value.NewIntFromInt64(5), value.NewIntFromInt64(0), value.NewIntFromInt64(-2),
	}, zeroPos(), state)
	if err != nil {
		t.Fatal(err)
	}
	l := got.(*value.List)
	want := []int64{5, 3, 1}
	if len(l.Items) != len(want) {
		t.Fatalf("range(5, 0, -2) has %d items, want %d", len(l.Items), len(want))
	}
	for i, w := range want {
		if !value.Equal(l.Items[i], value.NewIntFromInt64(w)) {
			t.Errorf("range(5, 0, -2)[%d] = %v, want %d", i, l.Items[i], w)
		}
	}
}

func TestRangeZeroStepIsAssertionError(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)
	_, err := islRange([]value.Value{
		value.NewIntFromInt64(0), value.NewIntFromInt64(5), value.NewIntFromInt64(0),
	}, zeroPos(), state)
	re, ok := err.(*eval.RuntimeError)
	if !ok || re.Kind != eval.Assertion {
		t.Fatalf("range with step 0 and start != end = %v, want Assertion error", err)
	}
}

func TestTypeofNames(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)
	cases := []struct {
		v    value.Value
		want string
	}{
		{value.NewIntFromInt64(1), "int"},
		{value.Byte{V: 1}, "byte"},
		{value.Float{V: 1.5}, "float"},
		{value.Bool{V: true}, "bool"},
		{value.String{V: "x"}, "string"},
		{value.Null{}, "null"},
		{value.NewList(nil), "list"},
		{value.NewDict(), "dict"},
	}
	for _, c := range cases {
		got, err := islTypeof([]value.Value{c.v}, zeroPos(), state)
		if err != nil {
			t.Fatal(err)
		}
		if got.(value.String).V != c.want {
			t.Errorf("typeof(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestToCodepointFromCodepointRoundTrip(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)
	got, err := islToCodepoint([]value.Value{value.String{V: "A"}}, zeroPos(), state)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(got, value.NewIntFromInt64(65)) {
		t.Errorf("to_codepoint(\"A\") = %v, want 65", got)
	}

	back, err := islFromCodepoint([]value.Value{value.NewIntFromInt64(65)}, zeroPos(), state)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(back, value.String{V: "A"}) {
		t.Errorf("from_codepoint(65) = %v, want \"A\"", back)
	}
}

func TestAssertAndError(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)

	if _, err := islAssert([]value.Value{value.Bool{V: true}}, zeroPos(), state); err != nil {
		t.Fatalf("assert(true) = %v, want nil", err)
	}

	_, err := islAssert([]value.Value{value.Bool{V: false}}, zeroPos(), state)
	re, ok := err.(*eval.RuntimeError)
	if !ok || re.Kind != eval.Assertion {
		t.Fatalf("assert(false) = %v, want Assertion error", err)
	}

	_, err = islError([]value.Value{value.String{V: "boom"}}, zeroPos(), state)
	re, ok = err.(*eval.RuntimeError)
	if !ok || re.Message != "boom" {
		t.Fatalf("error(\"boom\") = %v, want Assertion error with message \"boom\"", err)
	}
}

func TestStringSupplementFunctions(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)

	upper, err := islToUpper([]value.Value{value.String{V: "abc"}}, zeroPos(), state)
	if err != nil || upper.(value.String).V != "ABC" {
		t.Errorf("to_upper(\"abc\") = %v, %v", upper, err)
	}

	trimmed, err := islTrim([]value.Value{value.String{V: "  hi  "}}, zeroPos(), state)
	if err != nil || trimmed.(value.String).V != "hi" {
		t.Errorf("trim(\"  hi  \") = %v, %v", trimmed, err)
	}

	split, err := islSplit([]value.Value{value.String{V: "a,b,c"}, value.String{V: ","}}, zeroPos(), state)
	if err != nil {
		t.Fatal(err)
	}
	l := split.(*value.List)
	if len(l.Items) != 3 {
		t.Fatalf("split(\"a,b,c\", \",\") = %v, want 3 items", l.Items)
	}

	joined, err := islJoin([]value.Value{l, value.String{V: "-"}}, zeroPos(), state)
	if err != nil || joined.(value.String).V != "a-b-c" {
		t.Errorf("join(split(...), \"-\") = %v, %v", joined, err)
	}

	contains, err := islContains([]value.Value{value.String{V: "hello"}, value.String{V: "ell"}}, zeroPos(), state)
	if err != nil || !contains.(value.Bool).V {
		t.Errorf("contains(\"hello\", \"ell\") = %v, %v", contains, err)
	}

	replaced, err := islReplace([]value.Value{
		value.String{V: "a-b-c"}, value.String{V: "-"}, value.String{V: "_"},
	}, zeroPos(), state)
	if err != nil || replaced.(value.String).V != "a_b_c" {
		t.Errorf("replace(\"a-b-c\", \"-\", \"_\") = %v, %v", replaced, err)
	}
}

func TestWrongArgTypeMessageShape(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)
	_, err := islLen([]value.Value{value.Bool{V: true}}, zeroPos(), state)
	if err == nil || !strings.Contains(err.Error(), "len(...)") {
		t.Fatalf("len(true) error = %v, want message naming len(...)", err)
	}
}

func TestArityErrorIsInvalidOverload(t *testing.T) {
	rt := runtime.New(nil)
	state := testState(rt)
	_, err := islAssert([]value.Value{}, zeroPos(), state)
	re, ok := err.(*eval.RuntimeError)
	if !ok || re.Kind != eval.InvalidOverload {
		t.Fatalf("assert() with 0 args = %v, want InvalidOverload error", err)
	}
}
