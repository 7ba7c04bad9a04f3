package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCameraSpecEmbedded(t *testing.T) {
	spec, err := LoadCameraSpec()
	require.NoError(t, err)

	assert.Equal(t, "camera", spec.Name)
	assert.Equal(t, "player", spec.TargetName)
	assert.False(t, spec.ForceCentered)
	assert.Equal(t, 200.0, spec.DeadZoneRadius)
	assert.Equal(t, 100.0, spec.MaxLead)
	assert.Equal(t, 4.0, spec.FollowSpeed)
	assert.Equal(t, 4.0, spec.ZoomSpeed)
	assert.Equal(t, 0.1, spec.ZoomStep)
	assert.Equal(t, 0.5, spec.MinZoom)
	assert.Equal(t, 4.0, spec.MaxZoom)

	assert.Equal(t, []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, Keys(spec.Bindings.ZoomIn))
	assert.Equal(t, []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, Keys(spec.Bindings.ZoomOut))
	assert.Equal(t, []ebiten.Key{ebiten.KeyDigit0, ebiten.KeyNumpad0}, Keys(spec.Bindings.ZoomReset))
}

func TestParseCameraSpec(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr error
		check   func(t *testing.T, spec *CameraSpec)
	}{
		{
			name: "empty_uses_defaults",
			yaml: "name: cam\n",
			check: func(t *testing.T, spec *CameraSpec) {
				assert.Equal(t, "player", spec.TargetName)
				assert.Equal(t, 200.0, spec.DeadZoneRadius)
				assert.Equal(t, 4.0, spec.MaxZoom)
				assert.Nil(t, Keys(spec.Bindings.ZoomIn))
			},
		},
		{
			name: "overrides",
			yaml: "target_name: boss\nforce_centered: true\nmax_lead: 60\nmin_zoom: 1\nmax_zoom: 2\nbindings:\n  zoom_in: [E]\n",
			check: func(t *testing.T, spec *CameraSpec) {
				assert.Equal(t, "boss", spec.TargetName)
				assert.True(t, spec.ForceCentered)
				assert.Equal(t, 60.0, spec.MaxLead)
				assert.Equal(t, 1.0, spec.MinZoom)
				assert.Equal(t, 2.0, spec.MaxZoom)
				assert.Equal(t, []ebiten.Key{ebiten.KeyE}, Keys(spec.Bindings.ZoomIn))
			},
		},
		{name: "inverted_range", yaml: "min_zoom: 3\nmax_zoom: 2\n", wantErr: ErrInvalidSpec},
		{name: "negative_radius", yaml: "dead_zone_radius: -1\n", wantErr: ErrInvalidSpec},
		{name: "negative_speed", yaml: "follow_speed: -4\n", wantErr: ErrInvalidSpec},
		{name: "unknown_key", yaml: "bindings:\n  zoom_in: [NotAKey]\n", wantErr: ErrInvalidSpec},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := ParseCameraSpec([]byte(c.yaml))
			if c.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, c.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			c.check(t, spec)
		})
	}

	_, err := ParseCameraSpec([]byte("max_zoom: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)

	assert.Equal(t, "player", spec.Name)
	assert.Equal(t, 240.0, spec.MoveSpeed)
	assert.Equal(t, 32.0, spec.Sprite.Width)
	assert.Equal(t, 48.0, spec.Sprite.Height)
	assert.Equal(t, color.NRGBA{R: 0xe0, G: 0xb0, B: 0x40, A: 0xff}, spec.Sprite.Color.Color)
	assert.Equal(t, 10, spec.RenderLayer.Index)
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	prev := DiskDir
	DiskDir = dir
	t.Cleanup(func() { DiskDir = prev })

	require.NoError(t, os.WriteFile(filepath.Join(dir, CameraPrefab), []byte("max_lead: 42\n"), 0o644))

	spec, err := LoadCameraSpec()
	require.NoError(t, err)
	assert.Equal(t, 42.0, spec.MaxLead)

	_, ok := ModTime("prefabs/" + CameraPrefab)
	assert.True(t, ok)
	_, ok = ModTime(PlayerPrefab)
	assert.False(t, ok)
}

func TestLoadMissing(t *testing.T) {
	_, err := LoadSpec[PlayerSpec]("missing.yaml")
	assert.Error(t, err)
}

func TestName(t *testing.T) {
	assert.Equal(t, "camera.yaml", Name("prefabs/camera.yaml"))
	assert.Equal(t, "camera.yaml", Name("/tmp/x/camera.yaml"))
}
