package ui

import (
	"strings"

	"github.com/olivier-w/polytone/internal/tone"
	"github.com/olivier-w/polytone/internal/util"
)

func renderTone(p tone.Params, ok bool) string {
	if !ok {
		return "silent"
	}
	return util.FormatHz(p.Frequency) + " " + p.Waveform.String() + " " + util.FormatMillis(p.Decay)
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
