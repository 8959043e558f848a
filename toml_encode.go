package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// ToTOML renders root as canonical TOML: leaf assignments inside their
// enclosing table's [header] block, subtables after their parent's
// leaves with explicit headers, and arrays-of-tables as repeated
// [[header]] blocks (§4.5). It is not a formatter for the original
// source — it has none — but parsing its output reproduces the same
// tree (§8's round-trip property).
func ToTOML(root *Table) string {
	var b strings.Builder
	emitTOMLTable(&b, root, nil, false)
	return strings.TrimPrefix(b.String(), "\n")
}

func emitTOMLTable(b *strings.Builder, t *Table, path []string, double bool) {
	if len(path) > 0 {
		b.WriteByte('\n')
		if double {
			b.WriteString("[[")
		} else {
			b.WriteByte('[')
		}
		b.WriteString(joinHeaderPath(path))
		if double {
			b.WriteString("]]\n")
		} else {
			b.WriteString("]\n")
		}
	}
	for _, k := range t.keys {
		v, _ := t.Get(k)
		if isLeafValue(v) {
			b.WriteString(encodeTOMLKey(k))
			b.WriteString(" = ")
			b.WriteString(encodeTOMLValue(v))
			b.WriteByte('\n')
		}
	}
	for _, k := range t.keys {
		v, _ := t.Get(k)
		switch vv := v.(type) {
		case *Table:
			if !vv.IsInline() {
				emitTOMLTable(b, vv, appendPath(path, k), false)
			}
		case *Array:
			if vv.TableArray {
				for _, elem := range vv.Elems {
					if et, ok := elem.(*Table); ok {
						emitTOMLTable(b, et, appendPath(path, k), true)
					}
				}
			}
		}
	}
}

func appendPath(path []string, k string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = k
	return out
}

func joinHeaderPath(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = encodeTOMLKey(p)
	}
	return strings.Join(parts, ".")
}

func isLeafValue(v Value) bool {
	switch vv := v.(type) {
	case *Table:
		return vv.IsInline()
	case *Array:
		return !vv.TableArray
	default:
		return true
	}
}

func encodeTOMLKey(k string) string {
	if k == "" {
		return `""`
	}
	bare := true
	for _, r := range k {
		if !isBareKeyRune(r) {
			bare = false
			break
		}
	}
	if bare {
		return k
	}
	return encodeTOMLString(k)
}

func encodeTOMLValue(v Value) string {
	switch val := v.(type) {
	case String:
		return encodeTOMLString(val.Val)
	case Integer:
		return strconv.FormatInt(val.Val, 10)
	case Float:
		return encodeTOMLFloat(val.Val)
	case Boolean:
		if val.Val {
			return "true"
		}
		return "false"
	case LocalDate:
		return formatLocalDate(val)
	case LocalTime:
		return formatLocalTime(val)
	case LocalDateTime:
		return formatLocalDate(val.Date) + "T" + formatLocalTime(val.Time)
	case OffsetDateTime:
		return formatOffsetDateTime(val)
	case *Array:
		return encodeTOMLArray(val)
	case *Table:
		return encodeTOMLInlineTable(val)
	default:
		return ""
	}
}

func encodeTOMLFloat(f float64) string {
	switch {
	case f != f:
		return "nan"
	case f > 0 && isInf(f):
		return "inf"
	case f < 0 && isInf(f):
		return "-inf"
	default:
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	}
}

func isInf(f float64) bool {
	return f > 1.7976931348623157e+308 || f < -1.7976931348623157e+308
}

func encodeTOMLArray(a *Array) string {
	if a.Len() == 0 {
		return "[]"
	}
	parts := make([]string, len(a.Elems))
	for i, e := range a.Elems {
		parts[i] = encodeTOMLValue(e)
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}

func encodeTOMLInlineTable(t *Table) string {
	if t.Len() == 0 {
		return "{}"
	}
	parts := make([]string, len(t.keys))
	for i, k := range t.keys {
		v, _ := t.Get(k)
		parts[i] = fmt.Sprintf("%s = %s", encodeTOMLKey(k), encodeTOMLValue(v))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func encodeTOMLString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
