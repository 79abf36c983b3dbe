package stereo

import (
	"path/filepath"
	"strings"
	"unicode"
)

type hint struct {
	layout Layout
	swap   bool
}

// filename markers commonly used by 3D releases
var markers = map[string]hint{
	"3d":      {LeftRight, false},
	"lr":      {LeftRight, false},
	"rl":      {LeftRight, true},
	"sbs":     {LeftRight, false},
	"fsbs":    {LeftRight, false},
	"hsbs":    {LeftRightHalf, false},
	"halfsbs": {LeftRightHalf, false},
	"tb":      {TopBottom, false},
	"bt":      {TopBottom, true},
	"ab":      {TopBottom, false},
	"ba":      {TopBottom, true},
	"ou":      {TopBottom, false},
	"ftb":     {TopBottom, false},
	"fou":     {TopBottom, false},
	"htb":     {TopBottomHalf, false},
	"hou":     {TopBottomHalf, false},
	"halfou":  {TopBottomHalf, false},
	"eo":      {EvenOddRows, false},
	"oe":      {EvenOddRows, true},
}

// Detect guesses the input layout from the tokens of a file name. The last
// recognised marker wins, so "movie.3d.hsbs.mkv" is left-right-half.
// Two sources are always separate streams.
func Detect(sources ...string) (Layout, bool) {
	if len(sources) == 2 {
		return Separate, false
	}
	if len(sources) != 1 {
		return Mono, false
	}

	base := strings.ToLower(filepath.Base(sources[0]))
	base = strings.TrimSuffix(base, filepath.Ext(base))

	tokens := strings.FieldsFunc(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	result := hint{Mono, false}
	for i, token := range tokens {
		if token == "half" && i+1 < len(tokens) {
			if h, ok := markers["half"+tokens[i+1]]; ok {
				result = h
			}
			continue
		}
		if h, ok := markers[token]; ok {
			if i > 0 && tokens[i-1] == "half" {
				continue
			}
			result = h
		}
	}
	return result.layout, result.swap
}
