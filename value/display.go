package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Display renders v in the canonical human-readable form used by
// `print`/f-string interpolation/`typeof`-adjacent output: scalars in
// their natural text, containers with their elements in Debug form.
func Display(v Value) string {
	switch vv := v.(type) {
	case Int:
		return vv.V.String()
	case Byte:
		return fmt.Sprintf("%02X", vv.V)
	case Float:
		return formatFloat(vv.V)
	case Bool:
		if vv.V {
			return "true"
		}
		return "false"
	case String:
		return vv.V
	case Null:
		return "null"
	case *List:
		parts := make([]string, len(vv.Items))
		for i, item := range vv.Items {
			parts[i] = Debug(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Dict:
		parts := make([]string, 0, vv.Len())
		vv.Each(func(k, val Value) {
			parts = append(parts, Debug(k)+": "+Debug(val))
		})
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		panic(fmt.Sprintf("value: Display: unhandled variant %T", v))
	}
}

// Debug renders v the way it nests inside a container's Display form:
// identical to Display except String values are quoted and escaped.
func Debug(v Value) string {
	if s, ok := v.(String); ok {
		return quoteString(s.V)
	}
	return Display(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				fmt.Fprintf(&b, `\x%02X`, r)
			case r > 0x7f && (r < 0x20 || r == 0xfffd):
				fmt.Fprintf(&b, `\u{%x}`, r)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
