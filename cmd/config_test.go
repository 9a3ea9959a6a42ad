package cmd

import (
	"testing"

	"github.com/lifo-cli/lifo/config"
	"github.com/lifo-cli/lifo/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLookupField(t *testing.T) {
	Convey("lookupField", t, func() {
		Convey("Finds registered keys", func() {
			field, err := lookupField(key.DriverStrict)
			So(err, ShouldBeNil)
			So(field.Key, ShouldEqual, key.DriverStrict)
		})

		Convey("Suggests the closest key for a typo", func() {
			_, err := lookupField("driver.strikt")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.DriverStrict)
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("parseValue", t, func() {
		Convey("Strings are taken verbatim", func() {
			v, err := parseValue(config.Default[key.DriverPopToken], []string{"pop"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "pop")
		})

		Convey("Booleans are parsed", func() {
			v, err := parseValue(config.Default[key.DriverStrict], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = parseValue(config.Default[key.DriverStrict], []string{"maybe"})
			So(err, ShouldNotBeNil)
		})

		Convey("Integers are parsed", func() {
			field := config.Field{Key: "x", Value: 1}
			v, err := parseValue(field, []string{"42"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 42)
		})

		Convey("A value is required", func() {
			_, err := parseValue(config.Default[key.DriverPopToken], nil)
			So(err, ShouldNotBeNil)
		})
	})
}
