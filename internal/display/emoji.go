package display

type codeRange struct {
	lo, hi int
	glyph  string
}

// conditionGlyphs is checked in order. 801-803 are deliberately absent.
var conditionGlyphs = []codeRange{
	{200, 232, "⛈"},
	{300, 321, "🌥"},
	{500, 531, "🌧"},
	{600, 622, "🌨"},
	{701, 741, "🌫"},
	{762, 762, "🌋"},
	{771, 771, "💨"},
	{781, 781, "🌪"},
	{800, 800, "☀"},
	{804, 804, "☁"},
}

// Emoji maps an upstream condition code to a glyph, or "" if none applies.
func Emoji(code int) string {
	for _, r := range conditionGlyphs {
		if code >= r.lo && code <= r.hi {
			return r.glyph
		}
	}
	return ""
}
