package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Samples holds the fixed data the demo runs on.
type Samples struct {
	V     []int    `yaml:"v"`
	W     []int    `yaml:"w"`
	Count int      `yaml:"count"`
	Words []string `yaml:"words"`
	Chars string   `yaml:"chars"`
}

// DefaultSamples returns the built-in demo data.
func DefaultSamples() *Samples {
	return &Samples{
		V:     []int{1, 2, 3, 4},
		W:     []int{-1, 3, -3, 4},
		Count: 10,
		Words: []string{"hello", "there", "franco", "carlacci"},
		Chars: "abcd",
	}
}

// LoadSamples reads a YAML sample file over the defaults. Keys missing from
// the file keep their default values. An empty path returns the defaults.
func LoadSamples(path string) (*Samples, error) {
	s := DefaultSamples()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse samples: %w", err)
	}
	if s.Count < 0 {
		return nil, fmt.Errorf("invalid samples: count must be >= 0, got %d", s.Count)
	}

	return s, nil
}
