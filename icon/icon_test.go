package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/key"
)

func TestGet(t *testing.T) {
	Convey("Every icon has a glyph in every variant", t, func() {
		for _, variant := range AvailableVariants() {
			viper.Set(key.IconsVariant, variant)
			for i := range icons {
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})

	Convey("Unknown variants fall back to plain text", t, func() {
		viper.Set(key.IconsVariant, "plain")
		plain := Get(Pause)

		viper.Set(key.IconsVariant, "hieroglyphs")
		So(Get(Pause), ShouldEqual, plain)
		So(plain, ShouldEqual, "||")
	})
}
