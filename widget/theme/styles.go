package theme

import (
	_ "embed"
	"fmt"
	"os"

	"gioui.org/layout"
	"gioui.org/unit"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// Style is the presentation configuration of a single component. Lengths
// are in dp. A zero length means the component's own default.
type Style struct {
	MarginLeft  float32 `yaml:"marginLeft"`
	MarginRight float32 `yaml:"marginRight"`
	PaddingX    float32 `yaml:"paddingX"`
	Height      float32 `yaml:"height"`
	Size        float32 `yaml:"size"`
	Position    string  `yaml:"position"`
	Color       string  `yaml:"color"`
}

// Margin returns the horizontal margins of the style as an inset.
func (s Style) Margin() layout.Inset {
	return layout.Inset{
		Left:  unit.Dp(s.MarginLeft),
		Right: unit.Dp(s.MarginRight),
	}
}

// Styles maps component names to their style.
type Styles map[string]Style

// Get returns the style for the named component, or the zero Style.
func (s Styles) Get(name string) Style {
	return s[name]
}

// styleOverride distinguishes absent fields from zero values so that a
// partial override file only changes what it names.
type styleOverride struct {
	MarginLeft  *float32 `yaml:"marginLeft"`
	MarginRight *float32 `yaml:"marginRight"`
	PaddingX    *float32 `yaml:"paddingX"`
	Height      *float32 `yaml:"height"`
	Size        *float32 `yaml:"size"`
	Position    *string  `yaml:"position"`
	Color       *string  `yaml:"color"`
}

func (o styleOverride) apply(s Style) Style {
	if o.MarginLeft != nil {
		s.MarginLeft = *o.MarginLeft
	}
	if o.MarginRight != nil {
		s.MarginRight = *o.MarginRight
	}
	if o.PaddingX != nil {
		s.PaddingX = *o.PaddingX
	}
	if o.Height != nil {
		s.Height = *o.Height
	}
	if o.Size != nil {
		s.Size = *o.Size
	}
	if o.Position != nil {
		s.Position = *o.Position
	}
	if o.Color != nil {
		s.Color = *o.Color
	}
	return s
}

// DefaultStyles returns the built-in component styles.
func DefaultStyles() Styles {
	styles, err := MergeStyles(Styles{}, defaultStyles)
	if err != nil {
		panic(fmt.Errorf("built-in styles are invalid: %w", err))
	}
	return styles
}

// MergeStyles decodes a YAML style document and layers it over base.
// Fields absent from the document keep their value from base. base is
// not modified.
func MergeStyles(base Styles, data []byte) (Styles, error) {
	var overrides map[string]styleOverride
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("couldn't parse styles: %w", err)
	}
	out := make(Styles, len(base)+len(overrides))
	for name, style := range base {
		out[name] = style
	}
	for name, o := range overrides {
		out[name] = o.apply(out[name])
	}
	return out, nil
}

// LoadStyles returns the built-in styles overridden by the YAML file at
// path. An empty path yields the built-in styles.
func LoadStyles(path string) (Styles, error) {
	styles := DefaultStyles()
	if path == "" {
		return styles, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load styles: %w", err)
	}
	return MergeStyles(styles, data)
}
