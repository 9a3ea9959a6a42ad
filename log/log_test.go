package log

import (
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(enabled, ShouldBeFalse)

		Info("dropped")
		So(lo.Must(filesystem.API().Exists(File())), ShouldBeFalse)
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, true)
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(enabled, ShouldBeTrue)

		Debugf("stack resized from %d to %d", 2, 4)
		Warnf("token %d: %s", 1, "stack underflow")

		contents := string(lo.Must(filesystem.API().ReadFile(File())))
		So(contents, ShouldContainSubstring, "stack resized from 2 to 4")
		So(contents, ShouldContainSubstring, `"level":"warning"`)
	})
}
