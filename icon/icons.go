package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Play Icon = iota
	Pause
	Start
	VolumeOn
	VolumeOff
	Fullscreen
	Knob
	Thumbnail
	Success
	Fail
	Progress
)

var icons = map[Icon]iconDef{
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "ᕕ( ᐛ )ᕗ",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(－_－) zzZ",
		squares: "⏸",
	},
	Start: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "[ play ]",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ*:･ﾟ✧",
		squares: "⏵",
	},
	VolumeOn: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol",
		kaomoji: "♪(´ε｀ )",
		squares: "◉",
	},
	VolumeOff: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "mute",
		kaomoji: "(︶︹︺)",
		squares: "◎",
	},
	Fullscreen: {
		emoji:   "⛶",
		nerd:    "",
		plain:   "[ ]",
		kaomoji: "⊂(◉‿◉)つ",
		squares: "⛶",
	},
	Knob: {
		emoji:   "⚪",
		nerd:    "",
		plain:   "o",
		kaomoji: "●",
		squares: "■",
	},
	Thumbnail: {
		emoji:   "🖼️",
		nerd:    "",
		plain:   "[img]",
		kaomoji: "[◕‿◕]",
		squares: "▣",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
}
