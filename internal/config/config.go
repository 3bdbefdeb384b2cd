// Package config parses command-line flags with POLYTONE_* environment
// fallbacks.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olivier-w/polytone/internal/tone"
)

// Config holds the settings for the interactive program.
type Config struct {
	Mode    string
	Scale   tone.Scale
	Muted   bool
	LogPath string
	OutDir  string
}

// Render holds the settings for the headless render command.
type Render struct {
	Text  string
	Mode  string
	Scale tone.Scale
	Size  int
	PNG   string
	WAV   string
}

// ErrHelp is returned when -h or -help was requested.
var ErrHelp = flag.ErrHelp

// Parse reads interactive settings from args (without the program name).
func Parse(args []string, stderr io.Writer) (Config, error) {
	cfg := Config{
		Mode:    envString("POLYTONE_MODE", "morph"),
		LogPath: envString("POLYTONE_LOG", ""),
		OutDir:  envString("POLYTONE_OUT", "."),
		Muted:   envBool("POLYTONE_MUTE", false),
	}
	scale := envString("POLYTONE_SCALE", "continuous")

	fs := flag.NewFlagSet("polytone", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "animation mode: morph, cascade or bounce")
	fs.StringVar(&scale, "scale", scale, "tone scale: continuous or major")
	fs.BoolVar(&cfg.Muted, "mute", cfg.Muted, "start with sound muted")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "write logs to this file")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory for ctrl+s exports")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	s, err := ParseScale(scale)
	if err != nil {
		return Config{}, err
	}
	cfg.Scale = s
	return cfg, nil
}

// ParseRender reads render command settings from args.
func ParseRender(args []string, stderr io.Writer) (Render, error) {
	r := Render{Mode: "morph", Size: 700}
	scale := "continuous"

	fs := flag.NewFlagSet("polytone render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&r.Text, "text", "", "text to render")
	fs.StringVar(&r.Mode, "mode", r.Mode, "shape mode: morph, cascade or bounce")
	fs.StringVar(&scale, "scale", scale, "tone scale: continuous or major")
	fs.IntVar(&r.Size, "size", r.Size, "image side in pixels")
	fs.StringVar(&r.PNG, "png", "", "write the shape to this PNG file")
	fs.StringVar(&r.WAV, "wav", "", "write the tone to this WAV file")
	if err := fs.Parse(args); err != nil {
		return Render{}, err
	}

	if r.PNG == "" && r.WAV == "" {
		return Render{}, errors.New("nothing to do: pass -png and/or -wav")
	}
	if r.Size < 16 {
		return Render{}, fmt.Errorf("size %d too small (min 16)", r.Size)
	}
	s, err := ParseScale(scale)
	if err != nil {
		return Render{}, err
	}
	r.Scale = s
	return r, nil
}

// ParseScale converts a scale name.
func ParseScale(name string) (tone.Scale, error) {
	switch name {
	case "continuous", "":
		return tone.Continuous, nil
	case "major":
		return tone.Major, nil
	default:
		return tone.Continuous, fmt.Errorf("unknown scale %q (want continuous or major)", name)
	}
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
