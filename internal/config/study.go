package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/i474232898/weather-sea-effect/internal/weather"
)

//go:embed study.yaml
var defaultStudy []byte

// Study is the static description of the experiment: cities, groups and fit
// constants. It is loaded once and never modified.
type Study struct {
	Reference  string         `yaml:"reference" validate:"required"`
	Cities     []weather.City `yaml:"cities" validate:"min=2,dive"`
	CloseToSea []string       `yaml:"close_to_sea" validate:"min=1"`
	FarFromSea []string       `yaml:"far_from_sea" validate:"min=1"`
	DayIndex   int            `yaml:"day_index" validate:"gte=0"`
	Buckets    struct {
		NearBelow float64 `yaml:"near_below"`
		FarAbove  float64 `yaml:"far_above"`
	} `yaml:"buckets"`
	SVR struct {
		C       float64 `yaml:"c" validate:"gt=0"`
		Epsilon float64 `yaml:"epsilon" validate:"gte=0"`
	} `yaml:"svr"`
}

// City looks up a city of the study by name.
func (s *Study) City(name string) (weather.City, bool) {
	for _, c := range s.Cities {
		if c.Name == name {
			return c, true
		}
	}
	return weather.City{}, false
}

// DefaultStudy returns the embedded study.
func DefaultStudy() (*Study, error) {
	return loadStudy("")
}

// loadStudy parses the study file at path, or the embedded default if path is empty.
func loadStudy(path string) (*Study, error) {
	data := defaultStudy
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read study file %s: %w", path, err)
		}
		data = b
	}

	var st Study
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse study file: %w", err)
	}
	if err := validate.Struct(&st); err != nil {
		return nil, fmt.Errorf("invalid study: %w", err)
	}

	if _, ok := st.City(st.Reference); !ok {
		return nil, fmt.Errorf("reference city %q is not in the city table", st.Reference)
	}
	for _, name := range append(append([]string{}, st.CloseToSea...), st.FarFromSea...) {
		if _, ok := st.City(name); !ok {
			return nil, fmt.Errorf("grouped city %q is not in the city table", name)
		}
	}
	seen := make(map[string]bool, len(st.Cities))
	for _, c := range st.Cities {
		if seen[c.Name] {
			return nil, fmt.Errorf("city %q listed twice", c.Name)
		}
		seen[c.Name] = true
	}

	return &st, nil
}
