// Package export writes the settled shape and tone for a text to files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/olivier-w/polytone/internal/chrome"
	"github.com/olivier-w/polytone/internal/render"
	"github.com/olivier-w/polytone/internal/scene"
	"github.com/olivier-w/polytone/internal/seed"
	"github.com/olivier-w/polytone/internal/shape"
	"github.com/olivier-w/polytone/internal/tone"
)

// Prompt is shown on the surface while the text is empty.
const Prompt = "type something to draw a shape"

var invalidFilenameChars = regexp.MustCompile(`[\\/:*?"<>|\x00-\x1f]`)

// SanitizeFilename strips characters invalid in filenames and trims
// whitespace. Falls back to "polytone" if the result is empty.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > 40 {
		name = strings.TrimSpace(string(r[:40]))
	}
	if name == "" {
		return "polytone"
	}
	return name
}

// Request describes one export of the current text.
type Request struct {
	Dir   string
	Text  string
	Mode  scene.Mode
	Scale tone.Scale
	Size  int
}

// Result lists the files written.
type Result struct {
	PNG string
	WAV string
}

// Save writes <name>-<hash>.png and, for non-empty text, <name>-<hash>.wav
// into req.Dir. Existing files are never overwritten.
func Save(req Request) (Result, error) {
	base := fmt.Sprintf("%s-%08x", SanitizeFilename(req.Text), uint32(seed.Hash(req.Text)))
	res := Result{PNG: filepath.Join(req.Dir, base+".png")}
	if req.Text != "" {
		res.WAV = filepath.Join(req.Dir, base+".wav")
	}
	for _, p := range []string{res.PNG, res.WAV} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return Result{}, fmt.Errorf("file %q already exists", p)
		}
	}

	if err := WritePNG(res.PNG, req.Text, req.Mode, req.Size); err != nil {
		return Result{}, err
	}
	if res.WAV != "" {
		if err := WriteWAV(res.WAV, req.Text, req.Scale); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// WritePNG renders the settled scene for text onto a size x size image.
func WritePNG(path, text string, mode scene.Mode, size int) (err error) {
	b := shape.Bounds{Width: float64(size), Height: float64(size)}
	c := render.NewImageCanvas(size)

	pal := chrome.Default()
	if text != "" {
		pal = chrome.FromHue(shape.Hue(seed.Hash(text)))
	}
	c.Paint(pal.BackgroundColor())
	if text == "" {
		c.DrawPrompt(Prompt, pal.MutedColor())
	} else {
		scene.Paint(c, scene.Settled(text, mode, b))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return c.WritePNG(f)
}

// ErrNoTone is returned when there is no tone to write for empty text.
var ErrNoTone = errors.New("no tone for empty text")

// WriteWAV writes the tone for text.
func WriteWAV(path, text string, scale tone.Scale) (err error) {
	p, ok := tone.Derive(text, scale)
	if !ok {
		return ErrNoTone
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return tone.WriteWAV(f, p, tone.SampleRate)
}
