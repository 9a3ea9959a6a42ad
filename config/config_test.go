package config

import (
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every default", func() {
			So(Setup(), ShouldBeNil)
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})

		Convey("Should read overrides from the environment", func() {
			t.Setenv("LIFO_DRIVER_POP_TOKEN", "pop")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.DriverPopToken), ShouldEqual, "pop")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("driver.pop_token"), ShouldEqual, "driver_pop_token")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.DriverStrict]

		Convey("Env is prefixed and upper cased", func() {
			So(field.Env(), ShouldEqual, "LIFO_DRIVER_STRICT")
		})

		Convey("Pretty mentions the key and the env", func() {
			pretty := field.Pretty()
			So(pretty, ShouldContainSubstring, key.DriverStrict)
			So(pretty, ShouldContainSubstring, "LIFO_DRIVER_STRICT")
		})

		Convey("typeName matches the default value", func() {
			So(field.typeName(), ShouldEqual, "bool")
			tok := Default[key.DriverPopToken]
			So(tok.typeName(), ShouldEqual, "string")
		})
	})
}
