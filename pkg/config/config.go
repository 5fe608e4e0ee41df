// Package config loads animated.yaml documents describing named
// interpolation nodes.
//
// A document looks like:
//
//	version: v1
//	interpolations:
//	  - name: header-height
//	    inputRange: [0, 120]
//	    outputRange: [200, 80]
//	    extrapolate: clamp
//	  - name: header-tint
//	    inputRange: [0, 120]
//	    outputRange: ["#00000000", "#CC000000"]
//	    extrapolateLeft: clamp
//	    extrapolateRight: clamp
//	    outputType: color
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/animated/pkg/animated"
)

// FileName is the document name looked up by LoadOptional.
const FileName = "animated.yaml"

// DefaultVersion is assumed when a document omits version.
const DefaultVersion = "v1"

// Document is a parsed animated.yaml.
type Document struct {
	Version        string              `yaml:"version,omitempty"`
	Interpolations []InterpolationSpec `yaml:"interpolations"`
}

// InterpolationSpec describes one interpolation node. Extrapolate sets both
// sides unless ExtrapolateLeft or ExtrapolateRight override it.
type InterpolationSpec struct {
	Name             string `yaml:"name"`
	InputRange       []any  `yaml:"inputRange"`
	OutputRange      []any  `yaml:"outputRange"`
	Extrapolate      string `yaml:"extrapolate,omitempty"`
	ExtrapolateLeft  string `yaml:"extrapolateLeft,omitempty"`
	ExtrapolateRight string `yaml:"extrapolateRight,omitempty"`
	OutputType       string `yaml:"outputType,omitempty"`
}

// Payload returns the spec in the map form accepted by
// animated.ParseInterpolationConfig.
func (s InterpolationSpec) Payload() map[string]any {
	left, right := s.ExtrapolateLeft, s.ExtrapolateRight
	if left == "" {
		left = s.Extrapolate
	}
	if right == "" {
		right = s.Extrapolate
	}
	return map[string]any{
		"inputRange":       s.InputRange,
		"outputRange":      s.OutputRange,
		"extrapolateLeft":  left,
		"extrapolateRight": right,
		"outputType":       s.OutputType,
	}
}

// Build creates an unattached node for the spec.
func (s InterpolationSpec) Build(tag int) (*animated.InterpolationNode, error) {
	node, err := animated.NewInterpolationNodeFromMap(tag, s.Payload())
	if err != nil {
		return nil, fmt.Errorf("interpolation %q: %w", s.Name, err)
	}
	return node, nil
}

// Entry is a built node paired with its spec name.
type Entry struct {
	Name string
	Node *animated.InterpolationNode
}

// Lookup returns the spec with the given name.
func (d *Document) Lookup(name string) (InterpolationSpec, bool) {
	for _, s := range d.Interpolations {
		if s.Name == name {
			return s, true
		}
	}
	return InterpolationSpec{}, false
}

// BuildAll builds every spec in order, tagging nodes from firstTag upward.
// All failures are collected; the entries that did build are still returned.
func (d *Document) BuildAll(firstTag int) ([]Entry, error) {
	var (
		entries []Entry
		errs    []error
	)
	for i, s := range d.Interpolations {
		node, err := s.Build(firstTag + i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, Entry{Name: s.Name, Node: node})
	}
	return entries, errors.Join(errs...)
}

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads animated.yaml from dir if present. A missing file yields
// an empty document.
func LoadOptional(dir string) (*Document, error) {
	doc, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Document{Version: DefaultVersion}, nil
		}
		return nil, err
	}
	return doc, nil
}

func (d *Document) validate() error {
	version := strings.TrimSpace(d.Version)
	if version == "" {
		version = DefaultVersion
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("version %q is not a valid semantic version", d.Version)
	}
	if major := semver.Major(version); major != semver.Major(DefaultVersion) {
		return fmt.Errorf("unsupported document version %s (want %s.x)", version, DefaultVersion)
	}
	d.Version = version

	seen := make(map[string]bool, len(d.Interpolations))
	for i, s := range d.Interpolations {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("interpolations[%d]: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("interpolations[%d]: duplicate name %q", i, name)
		}
		seen[name] = true
		d.Interpolations[i].Name = name
	}
	return nil
}
