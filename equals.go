package toml

// Equals reports whether a and b are structurally equal: same
// variant tag and same payload. Tables compare as order-insensitive
// key/value multisets; arrays compare elementwise in order.
func Equals(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case String:
		return av.Val == b.(String).Val
	case Integer:
		return av.Val == b.(Integer).Val
	case Float:
		return floatEquals(av.Val, b.(Float).Val)
	case Boolean:
		return av.Val == b.(Boolean).Val
	case LocalDate:
		return av == b.(LocalDate)
	case LocalTime:
		return av == b.(LocalTime)
	case LocalDateTime:
		return av == b.(LocalDateTime)
	case OffsetDateTime:
		return av == b.(OffsetDateTime)
	case *Array:
		return arrayEquals(av, b.(*Array))
	case *Table:
		return tableEquals(av, b.(*Table))
	default:
		return false
	}
}

func floatEquals(x, y float64) bool {
	if x != x && y != y { // both NaN
		return true
	}
	return x == y
}

func arrayEquals(a, b *Array) bool {
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i := range a.Elems {
		if !Equals(a.Elems[i], b.Elems[i]) {
			return false
		}
	}
	return true
}

func tableEquals(a, b *Table) bool {
	if len(a.keys) != len(b.keys) {
		return false
	}
	for k, ae := range a.entries {
		be, ok := b.entries[k]
		if !ok {
			return false
		}
		if !Equals(ae.value, be.value) {
			return false
		}
	}
	return true
}
