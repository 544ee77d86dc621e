package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSrc string

// Config is the resolved configuration of a run.
type Config struct {
	Format  string
	Color   string
	Filter  string
	Suites  []string
	Verbose bool
	History History
}

// History configures the run history database.
type History struct {
	Enabled bool
	Path    string
}

// DefaultHistoryPath is the history database used when none is configured.
const DefaultHistoryPath = "acunit-history.db"

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format: "text",
		Color:  "auto",
		History: History{
			Path: DefaultHistoryPath,
		},
	}
}

// File mirrors a configuration file. Absent settings are nil so that they do
// not override defaults.
type File struct {
	Format  *string      `yaml:"format" json:"format,omitempty"`
	Color   *string      `yaml:"color" json:"color,omitempty"`
	Filter  *string      `yaml:"filter" json:"filter,omitempty"`
	Suites  []string     `yaml:"suites" json:"suites,omitempty"`
	Verbose *bool        `yaml:"verbose" json:"verbose,omitempty"`
	History *HistoryFile `yaml:"history" json:"history,omitempty"`
}

// HistoryFile is the history section of a configuration file.
type HistoryFile struct {
	Enabled *bool   `yaml:"enabled" json:"enabled,omitempty"`
	Path    *string `yaml:"path" json:"path,omitempty"`
}

// Apply overlays the settings present in f onto c.
func (c *Config) Apply(f *File) {
	if f.Format != nil {
		c.Format = *f.Format
	}
	if f.Color != nil {
		c.Color = *f.Color
	}
	if f.Filter != nil {
		c.Filter = *f.Filter
	}
	if f.Suites != nil {
		c.Suites = append([]string(nil), f.Suites...)
	}
	if f.Verbose != nil {
		c.Verbose = *f.Verbose
	}
	if f.History != nil {
		if f.History.Enabled != nil {
			c.History.Enabled = *f.History.Enabled
		}
		if f.History.Path != nil {
			c.History.Path = *f.History.Path
		}
	}
}

// Error is a configuration error. Line and Column are zero when the
// position is unknown.
type Error struct {
	File   string
	Line   int
	Column int
	Err    error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %v", e.File, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads the configuration file at path and overlays it on Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	f, err := Parse(path, data)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.Apply(f)
	return cfg, nil
}

// Parse decodes and validates configuration data. The format is chosen by
// the extension of filename.
func Parse(filename string, data []byte) (*File, error) {
	ctx := cuecontext.New()

	var (
		f   *File
		err error
	)
	switch ext := filepath.Ext(filename); ext {
	case ".yaml", ".yml":
		f, err = parseYAML(ctx, data)
	case ".cue":
		f, err = parseCUE(ctx, filename, data)
	default:
		err = fmt.Errorf("unsupported config format %q: use .yaml, .yml or .cue", ext)
	}
	if err != nil {
		return nil, newError(filename, err)
	}
	return f, nil
}

func parseYAML(ctx *cue.Context, data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		// An empty document is an empty configuration
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	v := ctx.Encode(&f)
	if err := validate(ctx, v); err != nil {
		return nil, err
	}
	return &f, nil
}

func parseCUE(ctx *cue.Context, filename string, data []byte) (*File, error) {
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, err
	}
	if err := validate(ctx, v); err != nil {
		return nil, err
	}

	var f File
	if err := v.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode CUE: %w", err)
	}
	return &f, nil
}

// validate checks v against #Config.
func validate(ctx *cue.Context, v cue.Value) error {
	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	return def.Unify(v).Validate(cue.Concrete(true))
}

// newError attaches the first CUE position, if any, to err.
func newError(filename string, err error) *Error {
	e := &Error{File: filename, Err: err}
	for _, ce := range cueerrors.Errors(err) {
		positions := append([]token.Pos{ce.Position()}, ce.InputPositions()...)
		for _, pos := range positions {
			if pos.IsValid() && pos.Filename() == filename {
				e.Line = pos.Line()
				e.Column = pos.Column()
				return e
			}
		}
	}
	return e
}
