package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yaulin/trajplot/chart"
	"gopkg.in/yaml.v3"
)

//StyleConfig holds display settings read from the configuration file.
//Zero values leave the corresponding setting untouched.
type StyleConfig struct {
	Color     string   `yaml:"color"`      //single-record charts only
	LineWidth float64  `yaml:"line_width"` //points
	Width     float64  `yaml:"width"`      //inches
	Height    float64  `yaml:"height"`     //inches
	DPI       int      `yaml:"dpi"`
	Palette   []string `yaml:"palette"` //combined charts only
}

//Config is the content of the configuration file. Command line flags
//take precedence over it.
type Config struct {
	Dir      string      `yaml:"dir"`
	OutDir   string      `yaml:"out_dir"`
	Charts   []string    `yaml:"charts"`
	Record   StyleConfig `yaml:"record"`
	Combined StyleConfig `yaml:"combined"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

//apply returns st with the non-zero settings of sc put in.
func (sc StyleConfig) apply(st chart.Style) (chart.Style, error) {
	if sc.Color != "" {
		c, err := chart.ParseColor(sc.Color)
		if err != nil {
			return st, err
		}
		st.Color = c
	}
	if sc.LineWidth > 0 {
		st.LineWidth = sc.LineWidth
	}
	if sc.Width > 0 {
		st.Width = sc.Width
	}
	if sc.Height > 0 {
		st.Height = sc.Height
	}
	if sc.DPI > 0 {
		st.DPI = sc.DPI
	}
	if len(sc.Palette) > 0 {
		p, err := chart.ParsePalette(sc.Palette)
		if err != nil {
			return st, err
		}
		st.Palette = p
	}
	return st, nil
}
