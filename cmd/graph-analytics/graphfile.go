package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-graphanalytics/pkg/graph"
)

// graphFile is the on-disk graph format accepted by analyze.
type graphFile struct {
	Directed bool         `json:"directed" yaml:"directed"`
	Nodes    []graph.Node `json:"nodes" yaml:"nodes"`
	Edges    []graph.Edge `json:"edges" yaml:"edges"`
}

// readGraphFile decodes YAML for .yaml/.yml paths and JSON otherwise.
func readGraphFile(path string) (*graphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	var gf graphFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &gf)
	default:
		err = json.Unmarshal(data, &gf)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &gf, nil
}
