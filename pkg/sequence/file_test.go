package sequence

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitlet-dev/titles-go/pkg/title"
	"github.com/bitlet-dev/titles-go/pkg/version"
)

const yamlSequence = `
version: "1.0"
looping: true
loop_count: 3
loop_point: 1
titles:
  - text: Welcome
    subtitle: to the server
    fade_in: 500ms
    stay: 2s
    fade_out: 500ms
  - text: Rules
    stay: 1.5s
`

const tomlSequence = `
version = "1.0"
looping = true
loop_count = 3
loop_point = 1

[[titles]]
text = "Welcome"
subtitle = "to the server"
fade_in = "500ms"
stay = "2s"
fade_out = "500ms"

[[titles]]
text = "Rules"
stay = "1.5s"
`

func expectedSequence() *Sequence {
	return NewLooping(3, 1).
		Append(title.New("Welcome", "to the server", title.NewTimes(500*time.Millisecond, 2*time.Second, 500*time.Millisecond))).
		Append(title.New("Rules", "", title.NewTimes(0, 1500*time.Millisecond, 0)))
}

func TestDecodeYAML(t *testing.T) {
	seq, err := Decode(strings.NewReader(yamlSequence), FormatYAML)
	require.NoError(t, err)

	assert.True(t, seq.Equal(expectedSequence()))
	assert.Equal(t, 1, seq.LoopPoint())
}

func TestDecodeTOML(t *testing.T) {
	seq, err := Decode(strings.NewReader(tomlSequence), FormatTOML)
	require.NoError(t, err)

	assert.True(t, seq.Equal(expectedSequence()))
	assert.Equal(t, 1, seq.LoopPoint())
}

func TestDecodeOmittedLoopCountIsUnbounded(t *testing.T) {
	seq, err := Decode(strings.NewReader("looping: true\ntitles:\n  - text: A\n    stay: 1s\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, UnboundedLoops, seq.LoopCount())
}

func TestDecodeEmptyYAML(t *testing.T) {
	seq, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, seq.Len())
	assert.False(t, seq.IsLooping())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"bad duration", "titles:\n  - text: A\n    stay: forever\n", FormatYAML},
		{"negative duration", "titles:\n  - text: A\n    stay: -1s\n", FormatYAML},
		{"unknown field", "titles:\n  - text: A\n    colour: red\n", FormatYAML},
		{"bad toml", "looping = ", FormatTOML},
		{"unknown toml field", "speed = 3\n", FormatTOML},
		{"unknown format", "", Format("json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestDecodeVersion(t *testing.T) {
	_, err := Decode(strings.NewReader("version: \"1.4\"\ntitles: []\n"), FormatYAML)
	assert.NoError(t, err, "newer minor versions are readable")

	_, err = Decode(strings.NewReader("version: \"2.0\"\ntitles: []\n"), FormatYAML)
	assert.ErrorIs(t, err, version.ErrIncompatible)

	_, err = Decode(strings.NewReader(`version = "0.1"`), FormatTOML)
	assert.ErrorIs(t, err, version.ErrIncompatible)
}

func TestEncodeWritesCurrentVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, expectedSequence(), FormatYAML))
	assert.Contains(t, buf.String(), "version: \""+version.Current+"\"")
}

func TestDecodeNegativeDurationIsTitleError(t *testing.T) {
	_, err := Decode(strings.NewReader("titles:\n  - text: A\n    fade_out: -2s\n"), FormatYAML)
	assert.ErrorIs(t, err, title.ErrNegativeDuration)
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"show.yaml":     FormatYAML,
		"show.YML":      FormatYAML,
		"dir/show.toml": FormatTOML,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("show.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intro.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlSequence), 0o644))

	seq, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, seq.Len())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, expectedSequence(), format))

			seq, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.True(t, seq.Equal(expectedSequence()))
			assert.Equal(t, 1, seq.LoopPoint())
		})
	}
}
