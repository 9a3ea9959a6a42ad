// Package icon renders status glyphs in the variant selected by icons.variant.
package icon

import (
	"github.com/lifo-cli/lifo/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a status glyph.
type Icon int

const (
	Success Icon = iota
	Fail
	Push
	Pop
	Stats
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "🎉", nerd: "", plain: "✓", squares: "▣"},
	Fail:    {emoji: "💥", nerd: "ﮊ", plain: "✖", squares: "▨"},
	Push:    {emoji: "⬇️", nerd: "", plain: "↓", squares: "▤"},
	Pop:     {emoji: "⬆️", nerd: "", plain: "↑", squares: "▥"},
	Stats:   {emoji: "📊", nerd: "", plain: "#", squares: "▦"},
}

// Get returns the glyph for i in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
