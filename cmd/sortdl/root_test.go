package sortdl

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sortdl/pkg/errors"
	"github.com/arthur-debert/sortdl/pkg/lock"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each command reroutes logging to its own stderr buffer; until then
// nothing should reach the test binary's output.
func TestMain(m *testing.M) {
	log.Logger = zerolog.New(io.Discard)
	os.Exit(m.Run())
}

type env struct {
	home      string
	downloads string
	stateDir  string
	configDir string
}

// newEnv points HOME and the sortdl XDG overrides at temp dirs and creates
// an empty Downloads folder.
func newEnv(t *testing.T) env {
	t.Helper()

	e := env{
		home:      t.TempDir(),
		stateDir:  t.TempDir(),
		configDir: t.TempDir(),
	}
	e.downloads = filepath.Join(e.home, "Downloads")
	require.NoError(t, os.Mkdir(e.downloads, 0755))

	t.Setenv("HOME", e.home)
	t.Setenv("USERPROFILE", "")
	t.Setenv("SORTDL_STATE_DIR", e.stateDir)
	t.Setenv("SORTDL_CONFIG_DIR", e.configDir)
	t.Setenv("NO_COLOR", "1")
	return e
}

func (e env) write(t *testing.T, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(e.downloads, name), []byte(content), 0644))
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSweepDefaultTarget(t *testing.T) {
	e := newEnv(t)
	e.write(t, map[string]string{"a.jpg": "jpg", "b": "plain", "c.PDF": "pdf"})

	stdout, stderr, err := execute(t, "--format", "text")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(e.downloads, "images", "a.jpg"))
	assert.FileExists(t, filepath.Join(e.downloads, "others", "b"))
	assert.FileExists(t, filepath.Join(e.downloads, "pdfs", "c.pdf"))
	assert.NoFileExists(t, filepath.Join(e.downloads, "a.jpg"))

	assert.Contains(t, stdout, "3 moved, 0 skipped, 0 failed")
	assert.Contains(t, stderr, "Moved file")
	assert.Contains(t, stderr, "Created folder")
	assert.FileExists(t, filepath.Join(e.stateDir, "sortdl.log"))
}

func TestSweepDirFlagAndDryRun(t *testing.T) {
	newEnv(t)
	other := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(other, "song.mp3"), []byte("mp3"), 0644))

	stdout, _, err := execute(t, "--dir", other, "--dry-run", "--format", "text")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(other, "song.mp3"))
	assert.NoDirExists(t, filepath.Join(other, "audio"))
	assert.Contains(t, stdout, "(dry run)")
	assert.Contains(t, stdout, "planned  song.mp3 -> "+filepath.Join("audio", "song.mp3"))
}

func TestSweepJSONReport(t *testing.T) {
	e := newEnv(t)
	e.write(t, map[string]string{"a.zip": "zip"})
	require.NoError(t, os.Mkdir(filepath.Join(e.downloads, "projects"), 0755))

	stdout, _, err := execute(t, "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Root               string         `json:"root"`
		DirectoriesSkipped int            `json:"directories_skipped"`
		Summary            map[string]int `json:"summary"`
		Entries            []struct {
			Category string `json:"category"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, 1, doc.DirectoriesSkipped)
	assert.Equal(t, 1, doc.Summary["moved"])
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "archives", doc.Entries[0].Category)
}

func TestSweepMissingDirectory(t *testing.T) {
	e := newEnv(t)
	missing := filepath.Join(e.home, "nope")

	_, _, err := execute(t, "--dir", missing)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirectoryNotFound))
	assert.Equal(t, ExitMissingDir, ExitCode(err))

	t.Setenv("SORTDL_SWEEP_MISSING_DIR_OK", "true")
	_, stderr, err := execute(t, "--dir", missing)
	require.NoError(t, err)
	assert.Contains(t, stderr, MsgMissingDirOK)
	assert.NoDirExists(t, missing)
}

func TestSweepNoHome(t *testing.T) {
	newEnv(t)
	t.Setenv("HOME", "")

	_, _, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSetup))
	assert.Equal(t, ExitSetup, ExitCode(err))
}

func TestSweepLocked(t *testing.T) {
	e := newEnv(t)
	e.write(t, map[string]string{"a.jpg": "jpg"})

	held, err := lock.Acquire(filepath.Join(e.stateDir, "locks"), e.downloads)
	require.NoError(t, err)
	defer func() { _ = held.Release() }()

	_, _, err = execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSweepLocked))
	assert.Equal(t, ExitSetup, ExitCode(err))
	assert.FileExists(t, filepath.Join(e.downloads, "a.jpg"))
}

func TestConfigLayering(t *testing.T) {
	e := newEnv(t)
	e.write(t, map[string]string{"a.jpg": "jpg"})
	require.NoError(t, os.WriteFile(filepath.Join(e.configDir, "config.toml"), []byte(`
[sweep]
dry_run = true

[output]
format = "json"
`), 0644))

	// file
	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"dry_run": true`)
	assert.FileExists(t, filepath.Join(e.downloads, "a.jpg"))

	// env beats file
	t.Setenv("SORTDL_OUTPUT_FORMAT", "text")
	stdout, _, err = execute(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "(dry run)")

	// flag beats env
	stdout, _, err = execute(t, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"dry_run": true`)
}

func TestBadConfig(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(e.configDir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[relocate]\nmax_suffix = 0\n"), 0644))

	_, _, err := execute(t, "--config", path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, ExitSetup, ExitCode(err))

	_, _, err = execute(t, "--config", filepath.Join(e.configDir, "missing.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	_, _, err = execute(t, "--format", "yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestCategoriesCmd(t *testing.T) {
	newEnv(t)

	stdout, _, err := execute(t, "categories", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "images    gif, jpeg, jpg, png")
	assert.Contains(t, stdout, "archives  7z, rar, zip")
	assert.Contains(t, stdout, "others    (everything else)")
}

func TestConfigCmd(t *testing.T) {
	newEnv(t)
	t.Setenv("SORTDL_RELOCATE_MAX_SUFFIX", "42")

	stdout, _, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[relocate]")
	assert.Contains(t, stdout, "max_suffix = 42")
	assert.Contains(t, stdout, "[sweep]")
}

func TestConfigCmdDefaults(t *testing.T) {
	newEnv(t)
	t.Setenv("SORTDL_RELOCATE_MAX_SUFFIX", "42")

	stdout, _, err := execute(t, "config", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# sortdl defaults")
	assert.Contains(t, stdout, "max_suffix = 10000")
}

func TestVersionCmd(t *testing.T) {
	newEnv(t)

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sortdl version dev")
	assert.Contains(t, stdout, "commit:")
}

func TestCompletionCmd(t *testing.T) {
	newEnv(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, stdout, "sortdl")
		})
	}

	_, _, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestRejectsPositionalArgs(t *testing.T) {
	newEnv(t)
	_, _, err := execute(t, "somewhere")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"missing dir", errors.New(errors.ErrDirectoryNotFound, "gone"), ExitMissingDir},
		{"setup", errors.New(errors.ErrSetup, "no home"), ExitSetup},
		{"locked", errors.New(errors.ErrSweepLocked, "busy"), ExitSetup},
		{"not a dir", errors.New(errors.ErrInvalidInput, "file"), ExitSetup},
		{"plain", os.ErrPermission, ExitSetup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
