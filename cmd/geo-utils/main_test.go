package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpup/planar/internal/config"
	"github.com/dpup/planar/internal/lib/geo"
)

func runCommand(t *testing.T, command string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), config.DefaultConfig(), command, args, &out)
	return out.String(), err
}

func TestRun_PointDistance(t *testing.T) {
	out, err := runCommand(t, "point-distance", "--x1", "0", "--y1", "0", "--x2", "3", "--y2", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Point 2: (3, 4)")
	assert.Contains(t, out, "Distance: 5")

	_, err = runCommand(t, "point-distance")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Area(t *testing.T) {
	out, err := runCommand(t, "area", "--rect", "3,4")
	require.NoError(t, err)
	assert.Equal(t, "Area: 12\n", out)

	out, err = runCommand(t, "area", "--triangle", "0,0;3,0;0,4")
	require.NoError(t, err)
	assert.Equal(t, "Area: 6\n", out)

	out, err = runCommand(t, "area", "--circle", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Area: 12.566370614")

	_, err = runCommand(t, "area", "--triangle", "0,0;3,0")
	assert.Error(t, err)

	_, err = runCommand(t, "area")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Furthest(t *testing.T) {
	out, err := runCommand(t, "furthest", "--points", "1,1;-5,0;2,2")
	require.NoError(t, err)
	assert.Contains(t, out, "Furthest from origin: (-5, 0) (distance 5)")

	_, err = runCommand(t, "furthest")
	assert.Error(t, err)
}

func TestRun_Closest(t *testing.T) {
	out, err := runCommand(t, "closest", "--points", "1,1;-5,0;2,2", "--x", "2", "--y", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Closest to (2, 1.5): (2, 2)")
}

func TestRun_Polyline(t *testing.T) {
	out, err := runCommand(t, "encode-polyline", "--points", "-120.2,38.5;-120.95,40.7;-126.453,43.252")
	require.NoError(t, err)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@\n", out)

	out, err = runCommand(t, "decode-polyline", "--polyline", "_p~iF~ps|U_ulLnnqC_mqNvxq`@", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Points: 3")
	assert.Contains(t, out, "Start: (-120.2, 38.5)")
	assert.Contains(t, out, "End: (-126.453, 43.252)")

	_, err = runCommand(t, "decode-polyline", "--polyline", "_p~iF~ps|")
	assert.Error(t, err)
}

func TestRun_Scene(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	kmlPath := filepath.Join(dir, "scene.kml")
	require.NoError(t, os.WriteFile(scenePath, []byte(`
points:
  - {name: near, x: 1, y: 1}
  - {name: far, x: -5, y: 0}
shapes:
  - {name: box, rect: {top_left: {x: 0, y: 0}, w: 3, h: 4}}
  - {name: tri, triangle: {a: {x: 0, y: 0}, b: {x: 3, y: 0}, c: {x: 0, y: 4}}}
`), 0o644))

	out, err := runCommand(t, "scene", "--file", scenePath, "--kml", kmlPath)
	require.NoError(t, err)
	assert.Contains(t, out, "box: area 12")
	assert.Contains(t, out, "tri: area 6")
	assert.Contains(t, out, "Total area: 18")
	assert.Contains(t, out, "Largest shape: box")
	assert.Contains(t, out, "Furthest point: far (-5, 0)")

	data, err := os.ReadFile(kmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<name>geo-utils</name>")
	assert.Contains(t, string(data), "<name>tri</name>")

	_, err = runCommand(t, "scene")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_UnknownCommand(t *testing.T) {
	out, err := runCommand(t, "bogus")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "Unknown command: bogus")
	assert.Contains(t, out, "USAGE:")
}

func TestParseCoordinatePairs(t *testing.T) {
	points, err := parseCoordinatePairs("1,2; -3.5 , 4")
	require.NoError(t, err)
	assert.Equal(t, []geo.Point{{X: 1, Y: 2}, {X: -3.5, Y: 4}}, points)

	_, err = parseCoordinatePairs("")
	assert.Error(t, err)

	_, err = parseCoordinatePairs("1,2,3")
	assert.Error(t, err)

	_, err = parseCoordinatePairs("a,2")
	assert.Error(t, err)
}

func TestRun_HelpFlag(t *testing.T) {
	out, err := runCommand(t, "area", "-h")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, out, "-circle")
}

func TestGuard_RecoversPanic(t *testing.T) {
	err := guard(context.Background(), "explode", func() error {
		var shape geo.Shape
		geo.Area(shape)
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal error")
	assert.Contains(t, err.Error(), "unknown shape")
}

func TestGuard_PassesErrorsThrough(t *testing.T) {
	want := errors.New("boom")
	assert.Equal(t, want, guard(context.Background(), "fail", func() error { return want }))
	assert.NoError(t, guard(context.Background(), "ok", func() error { return nil }))
}
