package toml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToJSON renders root as two-space-indented JSON, preserving
// insertion order for object keys (§4.5).
func ToJSON(root *Table) string {
	var b strings.Builder
	writeJSONTable(&b, root, 0)
	b.WriteByte('\n')
	return b.String()
}

// ToJSONValue renders a single value (of any kind, not just a Table)
// as JSON. It shares its formatting with ToJSON so a top-level scalar
// prints the same way it would as a table entry's value.
func ToJSONValue(v Value) string {
	var b strings.Builder
	writeJSONValue(&b, v, 0)
	b.WriteByte('\n')
	return b.String()
}

func writeJSONTable(b *strings.Builder, t *Table, indent int) {
	if t.Len() == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	inner := indent + 1
	keys := t.keys
	for i, k := range keys {
		writeJSONIndent(b, inner)
		writeJSONString(b, k)
		b.WriteString(" : ")
		v, _ := t.Get(k)
		writeJSONValue(b, v, inner)
		if i < len(keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	writeJSONIndent(b, indent)
	b.WriteByte('}')
}

func writeJSONArray(b *strings.Builder, a *Array, indent int) {
	if a.Len() == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	inner := indent + 1
	for i, v := range a.Elems {
		writeJSONIndent(b, inner)
		writeJSONValue(b, v, inner)
		if i < len(a.Elems)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	writeJSONIndent(b, indent)
	b.WriteByte(']')
}

func writeJSONIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
}

func writeJSONValue(b *strings.Builder, v Value, indent int) {
	switch val := v.(type) {
	case String:
		writeJSONString(b, val.Val)
	case Integer:
		b.WriteString(strconv.FormatInt(val.Val, 10))
	case Float:
		b.WriteString(formatJSONFloat(val.Val))
	case Boolean:
		if val.Val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case LocalDate:
		writeJSONString(b, formatLocalDate(val))
	case LocalTime:
		writeJSONString(b, formatLocalTime(val))
	case LocalDateTime:
		writeJSONString(b, formatLocalDate(val.Date)+"T"+formatLocalTime(val.Time))
	case OffsetDateTime:
		writeJSONString(b, formatOffsetDateTime(val))
	case *Array:
		writeJSONArray(b, val, indent)
	case *Table:
		writeJSONTable(b, val, indent)
	}
}

func formatJSONFloat(f float64) string {
	switch {
	case f != f:
		return `"nan"`
	case math.IsInf(f, 1):
		return `"inf"`
	case math.IsInf(f, -1):
		return `"-inf"`
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

func formatLocalDate(d LocalDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func formatLocalTime(t LocalTime) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond > 0 {
		frac := fmt.Sprintf("%09d", t.Nanosecond)
		frac = strings.TrimRight(frac, "0")
		s += "." + frac
	}
	return s
}

func formatOffsetDateTime(o OffsetDateTime) string {
	s := formatLocalDate(o.Date) + "T" + formatLocalTime(o.Time)
	if o.OffsetMinutes == 0 {
		return s + "Z"
	}
	sign := "+"
	m := o.OffsetMinutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%s%02d:%02d", s, sign, m/60, m%60)
}
