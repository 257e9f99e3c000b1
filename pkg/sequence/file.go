package sequence

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bitlet-dev/titles-go/pkg/title"
	"github.com/bitlet-dev/titles-go/pkg/version"
)

// Format identifies a sequence file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for file extensions Load does not recognise.
var ErrUnknownFormat = errors.New("unknown sequence file format")

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// File is the on-disk form of a sequence.
type File struct {
	Version   string       `yaml:"version,omitempty" toml:"version,omitempty"`
	Looping   bool         `yaml:"looping" toml:"looping"`
	LoopCount *int         `yaml:"loop_count,omitempty" toml:"loop_count,omitempty"`
	LoopPoint int          `yaml:"loop_point" toml:"loop_point"`
	Titles    []TitleEntry `yaml:"titles" toml:"titles"`
}

// TitleEntry is the on-disk form of a title. Durations use Go syntax ("1.5s").
type TitleEntry struct {
	Text     string `yaml:"text" toml:"text"`
	Subtitle string `yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
	FadeIn   string `yaml:"fade_in,omitempty" toml:"fade_in,omitempty"`
	Stay     string `yaml:"stay,omitempty" toml:"stay,omitempty"`
	FadeOut  string `yaml:"fade_out,omitempty" toml:"fade_out,omitempty"`
}

// Load reads a sequence file. The format is chosen by extension.
func Load(path string) (*Sequence, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sequence file: %w", err)
	}
	defer f.Close()

	seq, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// Decode reads a sequence in the given format.
//
// Schema (YAML shown, TOML uses the same keys):
//
//	version: "1.0"
//	looping: true
//	loop_count: 3
//	loop_point: 1
//	titles:
//	  - text: Welcome
//	    subtitle: to the server
//	    fade_in: 500ms
//	    stay: 2s
//	    fade_out: 500ms
//
// An omitted loop_count means unbounded. A version with a different major
// number than version.Current is rejected.
func Decode(r io.Reader, format Format) (*Sequence, error) {
	var file File

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	return file.Sequence()
}

// Sequence converts the file form into a Sequence.
func (f File) Sequence() (*Sequence, error) {
	if err := version.Check(f.Version); err != nil {
		return nil, err
	}

	seq := New().SetLooping(f.Looping).SetLoopPoint(f.LoopPoint)
	if f.LoopCount != nil {
		seq.SetLoopCount(*f.LoopCount)
	}

	for i, entry := range f.Titles {
		t, err := entry.Title()
		if err != nil {
			return nil, fmt.Errorf("title %d: %w", i, err)
		}
		seq.Append(t)
	}
	return seq, nil
}

// Title converts the entry into a title.
func (e TitleEntry) Title() (title.Title, error) {
	fadeIn, err := parseDuration("fade_in", e.FadeIn)
	if err != nil {
		return title.Title{}, err
	}
	stay, err := parseDuration("stay", e.Stay)
	if err != nil {
		return title.Title{}, err
	}
	fadeOut, err := parseDuration("fade_out", e.FadeOut)
	if err != nil {
		return title.Title{}, err
	}

	t := title.New(e.Text, e.Subtitle, title.NewTimes(fadeIn, stay, fadeOut))
	if err := t.Validate(); err != nil {
		return title.Title{}, err
	}
	return t, nil
}

// ToFile converts a sequence into its file form.
func ToFile(s *Sequence) File {
	f := File{
		Version:   version.Current,
		Looping:   s.IsLooping(),
		LoopPoint: s.LoopPoint(),
	}
	if n := s.LoopCount(); n != UnboundedLoops {
		f.LoopCount = &n
	}
	for _, t := range s.Titles() {
		f.Titles = append(f.Titles, TitleEntry{
			Text:     t.Text,
			Subtitle: t.Subtitle,
			FadeIn:   formatDuration(t.Times.FadeIn),
			Stay:     formatDuration(t.Times.Stay),
			FadeOut:  formatDuration(t.Times.FadeOut),
		})
	}
	return f
}

// Encode writes a sequence in the given format.
func Encode(w io.Writer, s *Sequence, format Format) error {
	f := ToFile(s)
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(f); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}
