package libhex

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/fine-structures/honeycomb/gohex"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StyleFile is the YAML form of a style. Omitted keys keep the value of the base preset.
type StyleFile struct {
	Preset            string   `yaml:"preset"`
	CenterX           *float64 `yaml:"center_x"`
	CenterY           *float64 `yaml:"center_y"`
	InterCarbon       *float64 `yaml:"inter_carbon"`
	Thickness         *float64 `yaml:"thickness"`
	Gap               *float64 `yaml:"gap"`
	MiterDepth        *float64 `yaml:"miter_depth"`
	DrawVertices      *bool    `yaml:"draw_vertices"`
	BondStyle         *string  `yaml:"bond_style"`
	VertexStroke      *string  `yaml:"vertex_stroke"`
	VertexStrokeWidth *float64 `yaml:"vertex_stroke_width"`
	VertexFill        *string  `yaml:"vertex_fill"`
	VertexRadius      *float64 `yaml:"vertex_radius"`
	AccentRadius      *float64 `yaml:"accent_radius"`
}

// Apply overlays every key present in sf onto st.
func (sf *StyleFile) Apply(st *gohex.Style) {
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setFloat(&st.Center.X, sf.CenterX)
	setFloat(&st.Center.Y, sf.CenterY)
	setFloat(&st.InterCarbon, sf.InterCarbon)
	setFloat(&st.Thickness, sf.Thickness)
	setFloat(&st.Gap, sf.Gap)
	setFloat(&st.MiterDepth, sf.MiterDepth)
	setFloat(&st.VertexStrokeWidth, sf.VertexStrokeWidth)
	setFloat(&st.VertexRadius, sf.VertexRadius)
	setFloat(&st.AccentRadius, sf.AccentRadius)
	setString(&st.BondStyle, sf.BondStyle)
	setString(&st.VertexStroke, sf.VertexStroke)
	setString(&st.VertexFill, sf.VertexFill)
	if sf.DrawVertices != nil {
		st.DrawVertices = *sf.DrawVertices
	}
}

// DecodeStyle reads a YAML style. If preset is non-empty it overrides the file's own preset key.
func DecodeStyle(r io.Reader, preset string) (gohex.Style, error) {
	var sf StyleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && err != io.EOF {
		return gohex.Style{}, errors.Wrap(gohex.ErrBadStyle, err.Error())
	}

	if preset == "" {
		preset = sf.Preset
	}
	st, err := gohex.PresetStyle(preset)
	if err != nil {
		return gohex.Style{}, err
	}
	sf.Apply(&st)
	return st, nil
}

// LoadStyle builds a style from a preset, an optional YAML file, and HONEYCOMB_* environment overrides, then validates it.
//
// An empty preset defers to the file's preset key (or "simplified").
func LoadStyle(preset, pathname string) (gohex.Style, error) {
	var (
		st  gohex.Style
		err error
	)
	if pathname == "" {
		st, err = gohex.PresetStyle(preset)
	} else {
		var data []byte
		data, err = os.ReadFile(pathname)
		if err != nil {
			return gohex.Style{}, errors.Wrapf(err, "reading style %q", pathname)
		}
		st, err = DecodeStyle(bytes.NewReader(data), preset)
		err = errors.Wrapf(err, "style %q", pathname)
	}
	if err != nil {
		return gohex.Style{}, err
	}

	if err = ApplyEnvOverrides(&st, os.LookupEnv); err != nil {
		return gohex.Style{}, err
	}
	if err = st.Validate(); err != nil {
		return gohex.Style{}, err
	}
	return st, nil
}

// envOverride binds one HONEYCOMB_* variable to a style field.
type envOverride struct {
	envVarName string
	setter     func(st *gohex.Style, v string) error
}

func floatSetter(field func(st *gohex.Style) *float64) func(*gohex.Style, string) error {
	return func(st *gohex.Style, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(st) = f
		return nil
	}
}

var envOverrides = []envOverride{
	{"HONEYCOMB_INTER_CARBON", floatSetter(func(st *gohex.Style) *float64 { return &st.InterCarbon })},
	{"HONEYCOMB_THICKNESS", floatSetter(func(st *gohex.Style) *float64 { return &st.Thickness })},
	{"HONEYCOMB_GAP", floatSetter(func(st *gohex.Style) *float64 { return &st.Gap })},
	{"HONEYCOMB_MITER_DEPTH", floatSetter(func(st *gohex.Style) *float64 { return &st.MiterDepth })},
	{"HONEYCOMB_DRAW_VERTICES", func(st *gohex.Style, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		st.DrawVertices = b
		return nil
	}},
}

// ApplyEnvOverrides applies any HONEYCOMB_* style variables reported by lookup.
func ApplyEnvOverrides(st *gohex.Style, lookup func(key string) (string, bool)) error {
	for _, ov := range envOverrides {
		v, ok := lookup(ov.envVarName)
		if !ok || v == "" {
			continue
		}
		if err := ov.setter(st, v); err != nil {
			return errors.Wrapf(gohex.ErrBadStyle, "%s=%q: %v", ov.envVarName, v, err)
		}
	}
	return nil
}
