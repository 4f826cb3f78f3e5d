// Package config loads the options of the region tools.
package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options is the "magic options" object. Its text form is a JSON or YAML
// object such as {"keepColors": false, "experimental": false}.
type Options struct {
	// KeepColors shows the tile sheet in its own colors in the picker
	// instead of tinting it with the active foreground/background.
	KeepColors bool `yaml:"keepColors"`
	// Experimental enables unsupported actions such as tile animation.
	Experimental bool `yaml:"experimental"`
}

func Default() Options {
	return Options{KeepColors: false, Experimental: false}
}

// Decode parses data strictly. Empty input yields the defaults; anything
// other than an object is an error.
func Decode(data []byte) (Options, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Default(), nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Default(), fmt.Errorf("config: parse options: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return Default(), fmt.Errorf("config: options must be an object, got %s", kindName(root))
	}
	opts := Default()
	if err := root.Decode(&opts); err != nil {
		return Default(), fmt.Errorf("config: decode options: %w", err)
	}
	return opts, nil
}

// Parse is Decode for callers that cannot act on a bad configuration: it
// logs the problem and returns the defaults.
func Parse(data []byte) Options {
	opts, err := Decode(data)
	if err != nil {
		log.Printf("Incorrect magic options, using defaults: %v", err)
		return Default()
	}
	return opts
}

// Load reads and parses an options file. Only I/O failures are returned.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(data), nil
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		tag := n.ShortTag()
		if tag == "!!null" {
			return "null"
		}
		return "a " + strings.TrimPrefix(tag, "!!") + " value"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "nothing"
	}
}
