package toml

import (
	"fmt"
	"strings"
)

// TypeMismatchError is returned by a typed getter when the path
// resolves to a value, but not one of the kind the getter asked for.
// It is distinct from "absent", which typed getters report by
// returning found=false with a nil error (§4.4).
type TypeMismatchError struct {
	Path   string
	Wanted Kind
	Got    Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s is a %s, not a %s", e.Path, e.Got, e.Wanted)
}

// Result is the outcome of parsing one document: the tree built so
// far (however partial) together with every diagnostic collected
// along the way. A Result with errors is still usable — the builder
// keeps going after a bad statement — so callers decide for
// themselves whether partial output is acceptable.
type Result struct {
	root   *Table
	errors []*Error
}

// HasErrors reports whether parsing produced any diagnostics.
func (r *Result) HasErrors() bool { return len(r.errors) > 0 }

// Errors returns the diagnostics collected during parsing, in the
// order they were raised.
func (r *Result) Errors() []*Error {
	out := make([]*Error, len(r.errors))
	copy(out, r.errors)
	return out
}

// Root returns the document's top-level table.
func (r *Result) Root() *Table { return r.root }

// Len reports the number of top-level keys.
func (r *Result) Len() int { return r.root.Len() }

// ToJSON renders the parsed tree as JSON (§4.5).
func (r *Result) ToJSON() string { return ToJSON(r.root) }

// ToTOML renders the parsed tree as canonical TOML (§4.5).
func (r *Result) ToTOML() string { return ToTOML(r.root) }

// KeyPathSet returns the dotted path of every leaf value in the tree,
// in a depth-first, source-appearance order. A leaf is any value that
// is not a non-inline table; an inline table counts as a leaf itself
// since it does not get its own header.
func (r *Result) KeyPathSet() []string {
	var out []string
	collectKeyPaths(r.root, nil, &out)
	return out
}

func collectKeyPaths(t *Table, prefix []string, out *[]string) {
	for _, k := range t.keys {
		v, _ := t.Get(k)
		path := appendPath(prefix, k)
		if sub, ok := v.(*Table); ok && !sub.IsInline() {
			collectKeyPaths(sub, path, out)
			continue
		}
		*out = append(*out, strings.Join(path, "."))
	}
}

// GetPath returns the raw value at path, without regard to its kind,
// and whether it was present.
func (r *Result) GetPath(path []string) (Value, bool) {
	return r.lookup(path)
}

func (r *Result) lookup(path []string) (Value, bool) {
	var cur Value = r.root
	for _, seg := range path {
		t, ok := cur.(*Table)
		if !ok {
			return nil, false
		}
		v, ok := t.Get(seg)
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

func (r *Result) resolve(path string) ([]string, error) {
	return ParseKey(path)
}

func mismatch(path []string, wanted, got Kind) error {
	return &TypeMismatchError{Path: strings.Join(path, "."), Wanted: wanted, Got: got}
}

// GetStringPath looks up a string value by explicit path segments.
func (r *Result) GetStringPath(path []string) (string, bool, error) {
	v, ok := r.lookup(path)
	if !ok {
		return "", false, nil
	}
	s, isString := v.(String)
	if !isString {
		return "", true, mismatch(path, KindString, v.Kind())
	}
	return s.Val, true, nil
}

// GetString looks up a string value by dotted path string.
func (r *Result) GetString(path string) (string, bool, error) {
	segs, err := r.resolve(path)
	if err != nil {
		return "", false, err
	}
	return r.GetStringPath(segs)
}

// GetLongPath looks up an integer value by explicit path segments.
func (r *Result) GetLongPath(path []string) (int64, bool, error) {
	v, ok := r.lookup(path)
	if !ok {
		return 0, false, nil
	}
	iv, isInt := v.(Integer)
	if !isInt {
		return 0, true, mismatch(path, KindInteger, v.Kind())
	}
	return iv.Val, true, nil
}

// GetLong looks up an integer value by dotted path string.
func (r *Result) GetLong(path string) (int64, bool, error) {
	segs, err := r.resolve(path)
	if err != nil {
		return 0, false, err
	}
	return r.GetLongPath(segs)
}

// GetDoublePath looks up a float value by explicit path segments.
func (r *Result) GetDoublePath(path []string) (float64, bool, error) {
	v, ok := r.lookup(path)
	if !ok {
		return 0, false, nil
	}
	fv, isFloat := v.(Float)
	if !isFloat {
		return 0, true, mismatch(path, KindFloat, v.Kind())
	}
	return fv.Val, true, nil
}

// GetDouble looks up a float value by dotted path string.
func (r *Result) GetDouble(path string) (float64, bool, error) {
	segs, err := r.resolve(path)
	if err != nil {
		return 0, false, err
	}
	return r.GetDoublePath(segs)
}

// GetBooleanPath looks up a boolean value by explicit path segments.
func (r *Result) GetBooleanPath(path []string) (bool, bool, error) {
	v, ok := r.lookup(path)
	if !ok {
		return false, false, nil
	}
	bv, isBool := v.(Boolean)
	if !isBool {
		return false, true, mismatch(path, KindBoolean, v.Kind())
	}
	return bv.Val, true, nil
}

// GetBoolean looks up a boolean value by dotted path string.
func (r *Result) GetBoolean(path string) (bool, bool, error) {
	segs, err := r.resolve(path)
	if err != nil {
		return false, false, err
	}
	return r.GetBooleanPath(segs)
}

// GetArrayPath looks up an array value by explicit path segments.
func (r *Result) GetArrayPath(path []string) (*Array, bool, error) {
	v, ok := r.lookup(path)
	if !ok {
		return nil, false, nil
	}
	av, isArray := v.(*Array)
	if !isArray {
		return nil, true, mismatch(path, KindArray, v.Kind())
	}
	return av, true, nil
}

// GetArray looks up an array value by dotted path string.
func (r *Result) GetArray(path string) (*Array, bool, error) {
	segs, err := r.resolve(path)
	if err != nil {
		return nil, false, err
	}
	return r.GetArrayPath(segs)
}

// GetTablePath looks up a table value by explicit path segments.
func (r *Result) GetTablePath(path []string) (*Table, bool, error) {
	v, ok := r.lookup(path)
	if !ok {
		return nil, false, nil
	}
	tv, isTable := v.(*Table)
	if !isTable {
		return nil, true, mismatch(path, KindTable, v.Kind())
	}
	return tv, true, nil
}

// GetTable looks up a table value by dotted path string.
func (r *Result) GetTable(path string) (*Table, bool, error) {
	segs, err := r.resolve(path)
	if err != nil {
		return nil, false, err
	}
	return r.GetTablePath(segs)
}

// GetOffsetDateTimePath looks up an offset-datetime value by explicit
// path segments.
func (r *Result) GetOffsetDateTimePath(path []string) (OffsetDateTime, bool, error) {
	v, ok := r.lookup(path)
	if !ok {
		return OffsetDateTime{}, false, nil
	}
	dv, isODT := v.(OffsetDateTime)
	if !isODT {
		return OffsetDateTime{}, true, mismatch(path, KindOffsetDateTime, v.Kind())
	}
	return dv, true, nil
}

// GetOffsetDateTime looks up an offset-datetime value by dotted path
// string.
func (r *Result) GetOffsetDateTime(path string) (OffsetDateTime, bool, error) {
	segs, err := r.resolve(path)
	if err != nil {
		return OffsetDateTime{}, false, err
	}
	return r.GetOffsetDateTimePath(segs)
}

// GetLocalDateTimePath looks up a local-datetime value by explicit
// path segments.
func (r *Result) GetLocalDateTimePath(path []string) (LocalDateTime, bool, error) {
	v, ok := r.lookup(path)
	if !ok {
		return LocalDateTime{}, false, nil
	}
	dv, isLDT := v.(LocalDateTime)
	if !isLDT {
		return LocalDateTime{}, true, mismatch(path, KindLocalDateTime, v.Kind())
	}
	return dv, true, nil
}

// GetLocalDateTime looks up a local-datetime value by dotted path
// string.
func (r *Result) GetLocalDateTime(path string) (LocalDateTime, bool, error) {
	segs, err := r.resolve(path)
	if err != nil {
		return LocalDateTime{}, false, err
	}
	return r.GetLocalDateTimePath(segs)
}

// GetLocalDatePath looks up a local-date value by explicit path
// segments.
func (r *Result) GetLocalDatePath(path []string) (LocalDate, bool, error) {
	v, ok := r.lookup(path)
	if !ok {
		return LocalDate{}, false, nil
	}
	dv, isLD := v.(LocalDate)
	if !isLD {
		return LocalDate{}, true, mismatch(path, KindLocalDate, v.Kind())
	}
	return dv, true, nil
}

// GetLocalDate looks up a local-date value by dotted path string.
func (r *Result) GetLocalDate(path string) (LocalDate, bool, error) {
	segs, err := r.resolve(path)
	if err != nil {
		return LocalDate{}, false, err
	}
	return r.GetLocalDatePath(segs)
}

// GetLocalTimePath looks up a local-time value by explicit path
// segments.
func (r *Result) GetLocalTimePath(path []string) (LocalTime, bool, error) {
	v, ok := r.lookup(path)
	if !ok {
		return LocalTime{}, false, nil
	}
	tv, isLT := v.(LocalTime)
	if !isLT {
		return LocalTime{}, true, mismatch(path, KindLocalTime, v.Kind())
	}
	return tv, true, nil
}

// GetLocalTime looks up a local-time value by dotted path string.
func (r *Result) GetLocalTime(path string) (LocalTime, bool, error) {
	segs, err := r.resolve(path)
	if err != nil {
		return LocalTime{}, false, err
	}
	return r.GetLocalTimePath(segs)
}
