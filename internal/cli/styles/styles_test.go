package styles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chordbar/internal/application/usecase"
	"github.com/bnema/chordbar/internal/cli/styles"
	"github.com/bnema/chordbar/internal/domain/build"
	"github.com/bnema/chordbar/internal/domain/entity"
)

func testTree(t *testing.T) *entity.BindTree {
	t.Helper()
	tree, err := entity.BuildTree(entity.NodeSpec{
		Name: "root",
		Group: []entity.NodeSpec{
			{Key: "f", Name: "firefox", Command: &entity.CommandSpec{Line: "firefox"}},
			{Key: "m", Name: "media", Group: []entity.NodeSpec{
				{Key: "p", Name: "play", Command: &entity.CommandSpec{Line: "playerctl play-pause", KeepRunning: true}},
			}},
		},
	}, entity.BuildOptions{})
	require.NoError(t, err)
	return tree
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme())

	info := styles.AboutInfo{
		Build:        build.Info{Version: "v1.2.3", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25.3"},
		ConfigFile:   "/tmp/chordbar/config.toml",
		BindingsFile: "/tmp/chordbar/bindings.json",
		Bindings:     4,
	}
	out := r.Render(info)
	require.Contains(t, out, "v1.2.3")
	require.Contains(t, out, "abc123")
	require.Contains(t, out, build.RepoURL())
	require.Contains(t, out, "/tmp/chordbar/config.toml")
	require.Contains(t, out, "bindings.json (4 commands)")

	info.Bindings = -1
	require.Contains(t, r.Render(info), "bindings.json (invalid)")

	info.ConfigFile, info.BindingsFile = "", ""
	out = r.Render(info)
	require.Contains(t, out, "(defaults)")
	require.Contains(t, out, "(not found)")
}

func TestTreeRenderer_Render(t *testing.T) {
	r := styles.NewTreeRenderer(styles.NewTheme())

	out := r.Render(testTree(t))
	require.Contains(t, out, "firefox")
	require.Contains(t, out, "media")
	require.Contains(t, out, "playerctl play-pause")
	assert.Less(t, strings.Index(out, "firefox"), strings.Index(out, "media"))
	assert.Less(t, strings.Index(out, "media"), strings.Index(out, "play "))

	require.Contains(t, r.Render(nil), "no bindings")
}

func TestCheckRenderer_Render(t *testing.T) {
	r := styles.NewCheckRenderer(styles.NewTheme())

	t.Run("ok", func(t *testing.T) {
		out := r.Render(styles.CheckReport{
			ConfigFile:   "/tmp/chordbar/config.toml",
			BindingsFile: "/tmp/chordbar/bindings.json",
			Summary:      &usecase.CheckBindingsOutput{Nodes: 4, Leaves: 2, Depth: 2},
		})
		require.Contains(t, out, "OK")
		require.Contains(t, out, "bindings.json")
		require.NotContains(t, out, "Shadowed keys")
	})

	t.Run("overlaps are warnings", func(t *testing.T) {
		out := r.Render(styles.CheckReport{
			Summary: &usecase.CheckBindingsOutput{
				Nodes: 2, Leaves: 1, Depth: 1,
				Overlaps: []usecase.KeyOverlap{{Path: []string{"root", "quit"}, Key: "q", By: usecase.ShadowedByExit}},
			},
		})
		require.Contains(t, out, "Warnings")
		require.Contains(t, out, "Shadowed keys")
		require.Contains(t, out, "(defaults)")
	})

	t.Run("error", func(t *testing.T) {
		report := styles.CheckReport{Err: errors.New("unable to find bindings file")}
		require.False(t, report.OK())

		out := r.Render(report)
		require.Contains(t, out, "Invalid")
		require.Contains(t, out, "unable to find bindings file")
	})
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderPaths([]styles.PathInfo{
		{Label: "config", Path: "/tmp/chordbar/config.toml", Exists: true},
		{Label: "bindings", Path: "/tmp/chordbar/bindings.json"},
	})
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "(missing)")

	require.Contains(t, r.RenderWritten([]string{"/tmp/chordbar/config.toml"}), "config.toml")
	require.Contains(t, r.RenderWritten(nil), "--force")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
	require.Contains(t, r.RenderInitHint(), "chordbar config init")
}

func TestKeysymRenderer_Render(t *testing.T) {
	r := styles.NewKeysymRenderer(styles.NewTheme())

	out := r.Render([]string{"Escape", "a"})
	require.Contains(t, out, "Escape")
	require.Contains(t, out, "0xff1b")
	require.Contains(t, out, "0x0061")

	require.Contains(t, r.Render(nil), "no matching")
}
