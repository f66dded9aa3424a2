package stdlib

// now/sleep, routed through RuntimeState.RT.Clock so tests can
// substitute a fake clock instead of a real delay.

import (
	"math"
	"time"

	"icelang/eval"
	"icelang/sourcerange"
	"icelang/value"
)

func islNow(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 0 {
		return nil, arityError(pos, "now", len(args))
	}
	return value.NewIntFromInt64(state.RT.Clock.NowUnixMilli()), nil
}

func islSleep(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "sleep", len(args))
	}
	ms, ok := args[0].(value.Int)
	if !ok {
		return nil, wrongArgType(pos, "sleep", "first", "an int", args[0])
	}
	millis := int64(math.MaxInt64)
	if ms.V.IsInt64() && ms.V.Sign() >= 0 {
		millis = ms.V.Int64()
	} else if ms.V.Sign() < 0 {
		millis = 0
	}
	state.RT.Clock.Sleep(time.Duration(millis) * time.Millisecond)
	return value.Null{}, nil
}
