package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/joshvictor1024/go-julia/pkg/julia"
	"github.com/pkg/errors"
)

const (
	hostSDL      = "sdl"
	hostTerminal = "terminal"
)

type settings struct {
	FrameRate int          `json:"frameRate"`
	Height    int          `json:"height"`
	Host      string       `json:"host"`
	Julia     julia.Params `json:"julia"`
	LogFile   string       `json:"logFile"`
	Title     string       `json:"title"`
	Verbose   bool         `json:"verbose"`
	Width     int          `json:"width"`
	Workers   int          `json:"workers"`
}

func defaultSettings() settings {
	return settings{
		FrameRate: 20,
		Height:    600,
		Host:      hostSDL,
		Julia:     julia.DefaultParams(),
		Title:     "Julia",
		Width:     800,
		Workers:   1,
	}
}

// parseSettings starts from the defaults, decodes the optional -settings
// JSON file over them, then applies only the flags set explicitly. An
// explicit zero therefore reaches Verify instead of turning into a
// default.
func parseSettings(args []string, output io.Writer) (settings, error) {
	s := defaultSettings()
	var file string
	flagged := defaultSettings()

	fs := flag.NewFlagSet("julia", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&file, "settings", "", "JSON settings file")
	fs.IntVar(&flagged.FrameRate, "frameRate", s.FrameRate, "target frames per second")
	fs.IntVar(&flagged.Height, "height", s.Height, "window height in pixels")
	fs.StringVar(&flagged.Host, "host", s.Host, "display host: sdl or terminal")
	fs.IntVar(&flagged.Julia.MaxIterations, "maxIterations", s.Julia.MaxIterations, "iterations before a point counts as bounded")
	fs.Float64Var(&flagged.Julia.EscapeRadiusSq, "escapeRadiusSq", s.Julia.EscapeRadiusSq, "squared escape radius")
	fs.IntVar(&flagged.Julia.Degree, "degree", s.Julia.Degree, "degree n of z^n + c")
	fs.StringVar(&flagged.LogFile, "logFile", "", "also write the log to this file")
	fs.StringVar(&flagged.Title, "title", s.Title, "window title")
	fs.BoolVar(&flagged.Verbose, "verbose", false, "log debug output")
	fs.IntVar(&flagged.Width, "width", s.Width, "window width in pixels")
	fs.IntVar(&flagged.Workers, "workers", s.Workers, "goroutines rendering row bands; 1 renders on the main loop")
	if err := fs.Parse(args); err != nil {
		return s, err
	}

	if file != "" {
		bytes, err := os.ReadFile(file)
		if err != nil {
			return s, errors.Wrapf(err, "unable to read settings file %s", file)
		}
		if err := json.Unmarshal(bytes, &s); err != nil {
			return s, errors.Wrapf(err, "unable to parse settings file %s", file)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frameRate":
			s.FrameRate = flagged.FrameRate
		case "height":
			s.Height = flagged.Height
		case "host":
			s.Host = flagged.Host
		case "maxIterations":
			s.Julia.MaxIterations = flagged.Julia.MaxIterations
		case "escapeRadiusSq":
			s.Julia.EscapeRadiusSq = flagged.Julia.EscapeRadiusSq
		case "degree":
			s.Julia.Degree = flagged.Julia.Degree
		case "logFile":
			s.LogFile = flagged.LogFile
		case "title":
			s.Title = flagged.Title
		case "verbose":
			s.Verbose = flagged.Verbose
		case "width":
			s.Width = flagged.Width
		case "workers":
			s.Workers = flagged.Workers
		}
	})

	return s, s.Verify()
}

// Verify rejects settings the hosts cannot run with.
func (s *settings) Verify() error {
	if s.FrameRate <= 0 {
		return errors.Errorf("frame rate must be positive, got %d", s.FrameRate)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Host != hostSDL && s.Host != hostTerminal {
		return errors.Errorf("unknown host %q, want %q or %q", s.Host, hostSDL, hostTerminal)
	}
	if s.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	return errors.Wrap(s.Julia.Validate(), "julia")
}

// newLogger names a component logger; -verbose turns on debug output.
func (s *settings) newLogger(name string, logFile *os.File) bslogger.Logger {
	if s.Verbose {
		return bslogger.NewLogger(name, bslogger.All, logFile)
	}
	return bslogger.NewLogger(name, bslogger.Normal, logFile)
}

func (s *settings) String() string {
	output := "{Settings "
	output += fmt.Sprintf("Host: %s ", s.Host)
	output += fmt.Sprintf("Title: %s ", s.Title)
	output += fmt.Sprintf("Size: %dx%d ", s.Width, s.Height)
	output += fmt.Sprintf("FrameRate: %d ", s.FrameRate)
	output += fmt.Sprintf("Workers: %d ", s.Workers)
	output += fmt.Sprintf("Julia: %s}", s.Julia)
	return output
}
