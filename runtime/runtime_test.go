package runtime

import (
	"bytes"
	"testing"
	"time"
)

type fakeClock struct {
	now    int64
	slept  []time.Duration
}

func (f *fakeClock) NowUnixMilli() int64   { return f.now }
func (f *fakeClock) Sleep(d time.Duration) { f.slept = append(f.slept, d) }

func TestArenaKeepsBlocksAddressable(t *testing.T) {
	var a Arena
	s1 := a.Add("let x = 1;")
	s2 := a.Add("let y = 2;")
	if s1 != "let x = 1;" || s2 != "let y = 2;" {
		t.Fatalf("Add did not round-trip text: %q, %q", s1, s2)
	}
}

func TestFakeClockRecordsSleep(t *testing.T) {
	fc := &fakeClock{now: 1000}
	var rt Runtime
	rt.Clock = fc
	rt.Clock.Sleep(5 * time.Millisecond)
	if len(fc.slept) != 1 || fc.slept[0] != 5*time.Millisecond {
		t.Fatalf("expected one recorded sleep of 5ms, got %v", fc.slept)
	}
	if rt.Clock.NowUnixMilli() != 1000 {
		t.Fatalf("NowUnixMilli() = %d, want 1000", rt.Clock.NowUnixMilli())
	}
}

func TestIOBuffersSubstituteRealStdio(t *testing.T) {
	var out, errBuf bytes.Buffer
	io := IO{Stdout: &out, Stderr: &errBuf, Stdin: bytes.NewBufferString("hello\n")}
	io.Stdout.Write([]byte("hi"))
	if out.String() != "hi" {
		t.Fatalf("Stdout = %q", out.String())
	}
}
