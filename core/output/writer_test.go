package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/extdir/core"
)

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := New(dir)
	require.NoError(t, err)
	assert.DirExists(t, w.OutputDir)
}

func TestWriteListing(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.WriteListing(core.Listing{}, []byte("<ul></ul>"), ".html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.OutputDir, "extensions.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<ul></ul>", string(data))

	path, err = w.WriteListing(core.Listing{Page: 2, Pages: 3}, []byte("{}"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.OutputDir, "extensions_page_2.json"), path)
}

func TestWriteEntry(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	e := core.Extension{Owner: &core.Owner{Login: "Minestom"}, Name: "luna"}
	path, err := w.WriteEntry(e, []byte("x"), ".fragment.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.OutputDir, "Minestom", "luna.fragment.html"), path)
	assert.FileExists(t, path)
}

func TestWriteEntry_StaysInOutputDir(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.WriteEntry(core.Extension{Owner: &core.Owner{Login: "a/../b"}, Name: "c d"}, nil, ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.OutputDir, "a_.._b", "c_d.md"), path)

	_, err = w.WriteEntry(core.Extension{Owner: &core.Owner{Login: ".."}, Name: "x"}, nil, ".md")
	assert.Error(t, err)

	_, err = w.WriteEntry(core.Extension{Name: "x"}, nil, ".md")
	assert.Error(t, err)
}

func TestWriteEntry_Collision(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	first := core.Extension{Owner: &core.Owner{Login: "a b"}, Name: "x"}
	second := core.Extension{Owner: &core.Owner{Login: "a_b"}, Name: "x"}

	path, err := w.WriteEntry(first, []byte("first"), ".md")
	require.NoError(t, err)

	_, err = w.WriteEntry(second, []byte("second"), ".md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a b/x"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	// Rewriting the same extension is not a collision.
	_, err = w.WriteEntry(first, []byte("again"), ".md")
	assert.NoError(t, err)
}

func TestWriteEntry_ZeroWriter(t *testing.T) {
	w := &Writer{OutputDir: t.TempDir()}
	_, err := w.WriteEntry(core.Extension{Owner: &core.Owner{Login: "a"}, Name: "x"}, nil, ".md")
	require.NoError(t, err)
	_, err = w.WriteEntry(core.Extension{Owner: &core.Owner{Login: "a"}, Name: "x"}, nil, ".md")
	assert.NoError(t, err)
}
