// Package icon renders the status symbols of the CLI and the TUI in the
// variant chosen by icons.variant.
package icon

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/key"
)

// variants in the order of glyphs
var variants = []string{"emoji", "nerd", "plain", "kaomoji", "squares"}

const fallback = 2 // plain

type glyphs [5]string

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return append([]string(nil), variants...)
}

// Get renders i. Unknown variants render as plain text.
func Get(i Icon) string {
	index := lo.IndexOf(variants, viper.GetString(key.IconsVariant))
	if index < 0 {
		index = fallback
	}
	return icons[i][index]
}
