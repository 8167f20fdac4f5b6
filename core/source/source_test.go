package source

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/extdir/core"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func wantSample(t *testing.T, exts []core.Extension) {
	t.Helper()
	require.Len(t, exts, 2)
	assert.Equal(t, "Minestom", exts[0].Login())
	assert.Equal(t, "luna", exts[0].Name)
	assert.Equal(t, "A scripting extension", exts[0].Description)
	assert.Equal(t, "someone/foo", exts[1].ID())
	assert.Empty(t, exts[1].Description)
}

func TestLoadFile_JSON(t *testing.T) {
	exts, err := LoadFile(testPath("extensions.json"))
	require.NoError(t, err)
	wantSample(t, exts)
}

func TestLoadFile_YAML(t *testing.T) {
	exts, err := LoadFile(testPath("extensions.yaml"))
	require.NoError(t, err)
	wantSample(t, exts)
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(testPath("nonexistent.json"))
	assert.Error(t, err)
}

func TestLoadFile_MissingOwner(t *testing.T) {
	_, err := LoadFile(testPath("missing-owner.json"))
	require.Error(t, err)

	var se *SchemaError
	require.True(t, errors.As(err, &se), "got %T: %v", err, err)

	var paths []string
	for _, is := range se.Issues {
		paths = append(paths, is.Path)
	}
	assert.Contains(t, paths, "/extensions/1")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"empty login", FormatJSON, `[{"owner":{"login":""},"name":"x"}]`},
		{"login not a string", FormatJSON, `[{"owner":{"login":7},"name":"x"}]`},
		{"missing name", FormatJSON, `[{"owner":{"login":"a"}}]`},
		{"scalar document", FormatJSON, `"extensions"`},
		{"yaml missing owner", FormatYAML, "- name: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.format).Load(strings.NewReader(tt.input))
			var se *SchemaError
			assert.ErrorAs(t, err, &se)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := New(FormatJSON).Load(strings.NewReader(`[{"owner":`))
	require.Error(t, err)
	var se *SchemaError
	assert.False(t, errors.As(err, &se))

	_, err = New(FormatYAML).Load(strings.NewReader("extensions: [\n"))
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	exts, err := New(FormatJSON).Load(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, exts)

	exts, err = New(FormatJSON).Load(strings.NewReader(`{"extensions": []}`))
	require.NoError(t, err)
	assert.Empty(t, exts)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("toml")
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("a/b.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("b.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("b.json"))
	assert.Equal(t, FormatJSON, FormatForPath("b"))
}
