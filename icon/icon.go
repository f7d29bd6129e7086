// Package icon renders the player's symbols in the variant chosen by
// icons.variant: emoji, nerd-font glyphs, plain ASCII, kaomoji or squares.
package icon

import (
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tapedeck/tapedeck/key"
)

type variant string

const (
	emoji   variant = "emoji"
	nerd    variant = "nerd"
	plain   variant = "plain"
	kaomoji variant = "kaomoji"
	squares variant = "squares"
)

var variants = []variant{emoji, nerd, plain, kaomoji, squares}

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return lo.Map(variants, func(v variant, _ int) string {
		return string(v)
	})
}

// iconDef maps each variant to its rendering.
type iconDef map[variant]string

// Get renders i in the configured variant. Unknown variants fall back to plain.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}

	if s, ok := def[variant(viper.GetString(key.IconsVariant))]; ok {
		return s
	}
	return def[plain]
}
