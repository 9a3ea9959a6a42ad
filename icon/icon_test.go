package icon

import (
	"testing"

	"github.com/lifo-cli/lifo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for _, variant := range AvailableVariants() {
			Convey("variant="+variant, func() {
				viper.Set(key.IconsVariant, variant)
				for i := range icons {
					So(Get(i), ShouldNotBeEmpty)
				}
			})
		}

		Convey("An unknown variant renders nothing", func() {
			viper.Set(key.IconsVariant, "")
			for i := range icons {
				So(Get(i), ShouldBeEmpty)
			}
		})
	})
}
