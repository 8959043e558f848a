package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestParseArrayOfTables(t *testing.T) {
	convey.Convey("repeated [[header]] lines append elements", t, func() {
		src := `
[[products]]
name = "Hammer"
sku = 738594937

[[products]]
name = "Nails"
sku = 284758393
count = 100
`
		res := Parse(src)
		convey.So(res.HasErrors(), convey.ShouldBeFalse)
		arr, ok, err := res.GetArray("products")
		convey.So(err, convey.ShouldBeNil)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(arr.Len(), convey.ShouldEqual, 2)
		first := arr.Elems[0].(*Table)
		name, _ := first.Get("name")
		convey.So(name.(String).Val, convey.ShouldEqual, "Hammer")
	})
}

func TestParseInlineTable(t *testing.T) {
	convey.Convey("an inline table is a single-line value", t, func() {
		src := `owner = { name = "Tom", dob = 1979-05-27T07:32:00Z }`
		res := Parse(src)
		convey.So(res.HasErrors(), convey.ShouldBeFalse)
		s, ok, err := res.GetString("owner.name")
		convey.So(err, convey.ShouldBeNil)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(s, convey.ShouldEqual, "Tom")
	})
}

func TestParseDottedKeysBuildIntermediateTables(t *testing.T) {
	convey.Convey("dotted keys create sealed intermediate tables", t, func() {
		src := "fruit.apple.color = \"red\"\nfruit.apple.taste.sweet = true\n"
		res := Parse(src)
		convey.So(res.HasErrors(), convey.ShouldBeFalse)
		color, ok, err := res.GetString("fruit.apple.color")
		convey.So(err, convey.ShouldBeNil)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(color, convey.ShouldEqual, "red")
	})
}

func TestParseRedefinitionReportsParentEntryPosition(t *testing.T) {
	convey.Convey("redefining a dotted-key intermediate as a header fails", t, func() {
		src := "[fruit]\napple.color = \"red\"\napple.taste.sweet = true\n\n[fruit.apple]\n"
		res := Parse(src)
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		errs := res.Errors()
		convey.So(len(errs), convey.ShouldBeGreaterThan, 0)
		last := errs[len(errs)-1]
		convey.So(last.Message, convey.ShouldEqual, "fruit.apple previously defined at line 2, column 1")
		convey.So(last.Position.Line, convey.ShouldEqual, 5)
		convey.So(last.Position.Column, convey.ShouldEqual, 1)
	})
}

func TestParseArrayHeterogeneousRejectedBeforeV1(t *testing.T) {
	convey.Convey("mixed-kind arrays are only legal from v1.0.0", t, func() {
		res := Parse("a = [1, \"two\"]", WithVersion(V0_5_0))
		convey.So(res.HasErrors(), convey.ShouldBeTrue)

		res = Parse("a = [1, \"two\"]", WithVersion(V1_0_0))
		convey.So(res.HasErrors(), convey.ShouldBeFalse)
	})
}

func TestParseDottedKeysRejectedBeforeV0_5_0(t *testing.T) {
	convey.Convey("dotted keys are only legal from v0.5.0", t, func() {
		res := Parse("a.b = 1", WithVersion(V0_4_0))
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
	})
}

func TestParseDiagnosticsNameTheFullOffendingWord(t *testing.T) {
	convey.Convey("trailing garbage after a value or header names the whole bareword, not one rune", t, func() {
		res := Parse("[foo] bar='baz'\n")
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		convey.So(res.Errors()[0].Message, convey.ShouldEqual, "Unexpected 'bar', expected a newline or end-of-input")

		res = Parse("foo = 2bar\n")
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		convey.So(res.Errors()[0].Message, convey.ShouldEqual, "Unexpected 'bar', expected a newline or end-of-input")

		res = Parse("foo bar = 1\n")
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		convey.So(res.Errors()[0].Message, convey.ShouldEqual, "Unexpected 'bar', expected '='")

		res = Parse("[foo bar]\n")
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		convey.So(res.Errors()[0].Message, convey.ShouldEqual, "Unexpected 'bar', expected ']'")

		res = Parse("[[foo]bar]]\n")
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		convey.So(res.Errors()[0].Message, convey.ShouldEqual, "Unexpected 'bar', expected ']]'")

		res = Parse("foo = [1 bar]\n")
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		convey.So(res.Errors()[0].Message, convey.ShouldEqual, "Unexpected 'bar', expected ',' or ']'")

		res = Parse("x = { bar baz = 1 }\n")
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		convey.So(res.Errors()[0].Message, convey.ShouldEqual, "Unexpected 'baz', expected '='")

		res = Parse("foo = { bar = 1 baz = 2 }\n")
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		convey.So(res.Errors()[0].Message, convey.ShouldEqual, "Unexpected 'baz', expected ',' or '}'")
	})
}

func TestParseDiagnosticsKeepSingleRuneForNonBareKeyOffenders(t *testing.T) {
	convey.Convey("a genuinely single-character offender is still rendered as one rune", t, func() {
		res := Parse("abc = 'foo'\n")
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		convey.So(res.Errors()[0].Message, convey.ShouldEqual, "Unexpected '\\u0011', expected a key")
	})
}

func TestParseRecoversAfterBadStatement(t *testing.T) {
	convey.Convey("one bad line does not stop the rest of the document from parsing", t, func() {
		src := "good = 1\nbad ===\nalso_good = 2\n"
		res := Parse(src)
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
		v, ok, err := res.GetLong("also_good")
		convey.So(err, convey.ShouldBeNil)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v, convey.ShouldEqual, int64(2))
	})
}
