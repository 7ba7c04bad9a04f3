package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec is returned when a prefab decodes but its values are unusable.
var ErrInvalidSpec = errors.New("prefabs: invalid spec")

const (
	CameraPrefab = "camera.yaml"
	PlayerPrefab = "player.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteSpec struct {
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Color  YAMLColor `yaml:"color"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type BindingsSpec struct {
	ZoomIn    []YAMLKey `yaml:"zoom_in"`
	ZoomOut   []YAMLKey `yaml:"zoom_out"`
	ZoomReset []YAMLKey `yaml:"zoom_reset"`
}

type CameraSpec struct {
	Name          string        `yaml:"name"`
	TargetName    string        `yaml:"target_name"`
	ForceCentered bool          `yaml:"force_centered"`
	Transform     TransformSpec `yaml:"transform"`

	DeadZoneRadius float64 `yaml:"dead_zone_radius"`
	MaxLead        float64 `yaml:"max_lead"`
	FollowSpeed    float64 `yaml:"follow_speed"`
	ZoomSpeed      float64 `yaml:"zoom_speed"`
	ZoomStep       float64 `yaml:"zoom_step"`
	MinZoom        float64 `yaml:"min_zoom"`
	MaxZoom        float64 `yaml:"max_zoom"`

	Bindings BindingsSpec `yaml:"bindings"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	data, err := Load(CameraPrefab)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", CameraPrefab, err)
	}
	spec, err := ParseCameraSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", CameraPrefab, err)
	}
	return spec, nil
}

// ParseCameraSpec decodes a camera prefab, fills unset tunables with the
// stock values and validates the result.
func ParseCameraSpec(data []byte) (*CameraSpec, error) {
	var spec CameraSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal camera spec: %w", err)
	}

	if spec.TargetName == "" {
		spec.TargetName = "player"
	}
	if spec.DeadZoneRadius == 0 {
		spec.DeadZoneRadius = 200
	}
	if spec.MaxLead == 0 {
		spec.MaxLead = 100
	}
	if spec.FollowSpeed == 0 {
		spec.FollowSpeed = 4
	}
	if spec.ZoomSpeed == 0 {
		spec.ZoomSpeed = 4
	}
	if spec.ZoomStep == 0 {
		spec.ZoomStep = 0.1
	}
	if spec.MinZoom == 0 {
		spec.MinZoom = 0.5
	}
	if spec.MaxZoom == 0 {
		spec.MaxZoom = 4
	}

	switch {
	case spec.DeadZoneRadius < 0:
		return nil, fmt.Errorf("%w: dead_zone_radius %v is negative", ErrInvalidSpec, spec.DeadZoneRadius)
	case spec.MaxLead < 0:
		return nil, fmt.Errorf("%w: max_lead %v is negative", ErrInvalidSpec, spec.MaxLead)
	case spec.FollowSpeed < 0 || spec.ZoomSpeed < 0:
		return nil, fmt.Errorf("%w: speeds must not be negative", ErrInvalidSpec)
	case spec.ZoomStep < 0:
		return nil, fmt.Errorf("%w: zoom_step %v must be positive", ErrInvalidSpec, spec.ZoomStep)
	case spec.MinZoom < 0 || spec.MinZoom > spec.MaxZoom:
		return nil, fmt.Errorf("%w: zoom range [%v, %v]", ErrInvalidSpec, spec.MinZoom, spec.MaxZoom)
	}

	return &spec, nil
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	MoveSpeed   float64         `yaml:"move_speed"`
	Transform   TransformSpec   `yaml:"transform"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerPrefab)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// YAMLKey decodes an ebiten key name such as "Equal" or "Numpad0".
type YAMLKey struct {
	ebiten.Key
}

func (k *YAMLKey) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("key must be a string")
	}
	if err := k.Key.UnmarshalText([]byte(value.Value)); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrInvalidSpec, value.Line, err)
	}
	return nil
}

// Keys unwraps a list of decoded keys.
func Keys(keys []YAMLKey) []ebiten.Key {
	if len(keys) == 0 {
		return nil
	}
	out := make([]ebiten.Key, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.Key)
	}
	return out
}
