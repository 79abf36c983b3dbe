package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Warn
	Play
	Pause
	Stop
	Seek
	Swap
	Eye
	Recent
	Device
	Link
	Mark
)

// glyphs per variant: emoji, nerd, plain, kaomoji, squares
var icons = map[Icon]glyphs{
	Fail:    {"💀", "", "Error", "(×_×)", "🟥"},
	Success: {"🎉", "", "Success", "(ᵔᴥᵔ)", "🟩"},
	Warn:    {"⚠️", "", "Warning", "(・_・;)", "🟨"},
	Play:    {"▶️", "", ">", "(ﾉ◕ヮ◕)ﾉ", "🟦"},
	Pause:   {"⏸️", "", "||", "(－_－) zzZ", "🟪"},
	Stop:    {"⏹️", "", "[]", "(￣ー￣)", "⬛"},
	Seek:    {"⏩", "", ">>", "ε=ε=(ノ≧∇≦)ノ", "🟫"},
	Swap:    {"🔁", "", "<>", "(⇄)", "🔳"},
	Eye:     {"👓", "", "3D", "(◉_◉)", "🔲"},
	Recent:  {"🕘", "", "Recent", "(´･ω･`)", "🟧"},
	Device:  {"🎥", "", "Device", "[◎]", "🟦"},
	Link:    {"🔗", "", "URL", "(∞)", "🔗"},
	Mark:    {"✅", "", "*", "(•̀ᴗ•́)و", "🟩"},
}
