package toml

import (
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseReaderMatchesParse(t *testing.T) {
	convey.Convey("ParseReader reads its input then delegates to Parse", t, func() {
		src := "title = \"TOML Example\"\n[owner]\nname = \"Tom\"\n"
		fromString := Parse(src)
		fromReader, err := ParseReader(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		convey.So(fromReader.HasErrors(), convey.ShouldEqual, fromString.HasErrors())
		convey.So(fromReader.ToJSON(), convey.ShouldEqual, fromString.ToJSON())
	})
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	convey.Convey("an invalid UTF-8 byte is reported as a lex error", t, func() {
		res := Parse("a = \"\xff\"\n")
		convey.So(res.HasErrors(), convey.ShouldBeTrue)
	})
}

func TestToJSONPreservesInsertionOrder(t *testing.T) {
	convey.Convey("object keys render in source order, not sorted order", t, func() {
		res := Parse("zeta = 1\nalpha = 2\n")
		convey.So(res.HasErrors(), convey.ShouldBeFalse)
		j := res.ToJSON()
		convey.So(strings.Index(j, "zeta"), convey.ShouldBeLessThan, strings.Index(j, "alpha"))
	})
}

func TestRoundTripThroughTOML(t *testing.T) {
	convey.Convey("re-parsing an emitted document yields an equal tree", t, func() {
		src := `
title = "TOML Example"

[owner]
name = "Tom Preston-Werner"
dob = 1979-05-27T07:32:00-08:00

[database]
enabled = true
ports = [ 8001, 8001, 8002 ]
data = [ [ "delta", "phi" ], [ 3.14 ] ]

[servers]

[servers.alpha]
ip = "10.0.0.1"

[[fruit]]
name = "apple"

[fruit.physical]
color = "red"

[[fruit]]
name = "banana"
`
		first := Parse(src)
		convey.So(first.HasErrors(), convey.ShouldBeFalse)
		emitted := first.ToTOML()
		second := Parse(emitted)
		convey.So(second.HasErrors(), convey.ShouldBeFalse)
		convey.So(Equals(first.Root(), second.Root()), convey.ShouldBeTrue)
	})
}

func TestKeyPathSetListsLeavesInOrder(t *testing.T) {
	convey.Convey("KeyPathSet flattens the tree into dotted leaf paths", t, func() {
		res := Parse("a = 1\n[b]\nc = 2\nd = 3\n")
		convey.So(res.HasErrors(), convey.ShouldBeFalse)
		got := res.KeyPathSet()
		want := []string{"a", "b.c", "b.d"}
		if diff := pretty.Compare(got, want); diff != "" {
			t.Errorf("KeyPathSet mismatch (-got +want):\n%s", diff)
		}
	})
}

func TestGetTypedGettersDistinguishAbsentFromWrongType(t *testing.T) {
	convey.Convey("absent paths and wrong-kind paths are distinguishable", t, func() {
		res := Parse("count = 3\n")
		convey.So(res.HasErrors(), convey.ShouldBeFalse)

		_, ok, err := res.GetString("missing")
		convey.So(ok, convey.ShouldBeFalse)
		convey.So(err, convey.ShouldBeNil)

		_, ok, err = res.GetString("count")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(err.(*TypeMismatchError).Got, convey.ShouldEqual, KindInteger)
	})
}
