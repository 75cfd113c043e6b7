package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/vsl/manifest"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "ignore"))
	err := cmd.Execute()
	return out.String(), err
}

func workspace(t *testing.T, p *manifest.Package, f manifest.Format, name string) string {
	t.Helper()
	dir := t.TempDir()
	data, err := manifest.Marshal(p, f)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	src := filepath.Join(dir, "Sources", "vsl")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "vsl.h"), []byte("#pragma once\n"), 0o644))
	return path
}

func TestValidateResolve(t *testing.T) {
	path := workspace(t, manifest.VSL(), manifest.FormatYAML, "vsl.yaml")

	out, err := run(t, "validate", "-m", path)
	require.NoError(t, err)
	require.Equal(t, "vsl: ok\n", out)

	out, err = run(t, "resolve", "-m", path)
	require.NoError(t, err)
	require.Equal(t, "vsl (library) c++20\n  vsl\n  dependencies: 0\n", out)

	_, err = run(t, "resolve", "nope", "-m", path)
	require.ErrorIs(t, err, manifest.ErrUnknownProduct)

	bad := manifest.VSL()
	bad.Products[0].Targets = []string{"simd"}
	path = workspace(t, bad, manifest.FormatStarlark, "VSL.build")
	_, err = run(t, "validate", "-m", path)
	require.ErrorIs(t, err, manifest.ErrUnknownTarget)

	_, err = run(t, "validate", "-m", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFmt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vsl.yaml")
	src, err := os.ReadFile("../../manifest/testdata/vsl.yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, src, 0o644))

	out, err := run(t, "fmt", "-d", "-m", path)
	require.ErrorIs(t, err, errUnformatted)
	require.Contains(t, out, "+++ ")

	_, err = run(t, "fmt", "-w", "-m", path)
	require.NoError(t, err)
	out, err = run(t, "fmt", "-d", "-m", path)
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = run(t, "fmt", "--format", "star", "-m", path)
	require.NoError(t, err)
	p, err := manifest.Parse("VSL.build", []byte(out))
	require.NoError(t, err)
	require.Equal(t, manifest.VSL(), p)

	_, err = run(t, "fmt", "-w", "--format", "json", "-m", path)
	require.Error(t, err)
	_, err = run(t, "fmt", "--format", "xml", "-m", path)
	require.ErrorIs(t, err, manifest.ErrUnknownFormat)
}

func TestBundleShow(t *testing.T) {
	path := workspace(t, manifest.VSL(), manifest.FormatJSON, "vsl.json")
	archive := filepath.Join(filepath.Dir(path), "out.tar.zst")

	out, err := run(t, "bundle", "-m", path, "-o", archive, "--level", "fastest")
	require.NoError(t, err)
	require.Contains(t, out, "vsl: 2 files")

	out, err = run(t, "show", "-b", archive)
	require.NoError(t, err)
	require.Contains(t, out, "package vsl\n")
	require.Contains(t, out, "Sources/vsl/vsl.h")
	require.Contains(t, out, "2 entries")

	out, err = run(t, "show", "-m", path)
	require.NoError(t, err)
	require.Equal(t, "package vsl\nstandard c++20\nproduct vsl (library): vsl\ntarget vsl at Sources/vsl, depends on none\n", out)

	_, err = run(t, "bundle", "-m", path, "-o", archive, "--level", "ludicrous")
	require.Error(t, err)
	_, err = run(t, "bundle", "ghost", "-m", path, "-o", archive)
	require.ErrorIs(t, err, manifest.ErrUnknownProduct)
	_, err = os.Stat(archive)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "-n", "16", "sqrt", "exp2")
	require.NoError(t, err)
	require.Contains(t, out, "approx mode, 16 iterations")
	require.Contains(t, out, "sqrt")

	prof := filepath.Join(t.TempDir(), "mem.prof")
	_, err = run(t, "bench", "-n", "4", "--mode", "exact", "--memprofile", prof, "abs")
	require.NoError(t, err)
	require.FileExists(t, prof)

	out, err = run(t, "bench", "--iterations", "8", "cos")
	require.NoError(t, err)
	require.Contains(t, out, "approx mode, 8 iterations")

	_, err = run(t, "bench", "gamma")
	require.Error(t, err)
	_, err = run(t, "bench", "--mode", "fast")
	require.Error(t, err)
}
