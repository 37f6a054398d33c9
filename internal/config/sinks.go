// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mia-platform/ctxlog/internal/logger"
)

const (
	TypeField  = "type"
	PathField  = "path"
	LevelField = "level"
)

var (
	// ErrParsing reports failures that occur while decoding sinks files.
	ErrParsing = errors.New("error parsing")
)

// SinkConfig describes one destination of log messages.
type SinkConfig struct {
	Type  string `json:"type" yaml:"type"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	JSON  bool   `json:"json,omitempty" yaml:"json,omitempty"`
}

// validate returns the problems of the sink, if any.
func (s *SinkConfig) validate() []string {
	errorsList := []string{}

	switch {
	case s.Type == "":
		errorsList = append(errorsList, fmt.Sprintf("missing field '%s'", TypeField))
	case !slices.Contains(availableOutputs, s.Type):
		errorsList = append(errorsList, fmt.Sprintf("unknown value '%s' for field '%s'", s.Type, TypeField))
	case s.Type == OutputFile && s.Path == "":
		errorsList = append(errorsList, fmt.Sprintf("missing field '%s' for file sink", PathField))
	}

	if s.Level != "" {
		if _, err := logger.ParseLevel(s.Level); err != nil {
			errorsList = append(errorsList, fmt.Sprintf("unknown value '%s' for field '%s'", s.Level, LevelField))
		}
	}

	return errorsList
}

// NewSinkConfigsFromPath parses the file at path and returns the sinks it
// contains. A document may hold a single sink or a list of sinks, and a file
// may hold several documents.
func NewSinkConfigsFromPath(path string) ([]*SinkConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	configs := make([]*SinkConfig, 0)
	for {
		var node yaml.Node
		err := decoder.Decode(&node)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
		}

		documentSinks, err := decodeDocument(&node)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
		}

		for _, sink := range documentSinks {
			if errorsList := sink.validate(); len(errorsList) > 0 {
				return nil, fmt.Errorf("%w %q: invalid sink: %s", ErrParsing, path, strings.Join(errorsList, "; "))
			}
			configs = append(configs, sink)
		}
	}

	return configs, nil
}

// decodeDocument decodes a document holding either a sink or a list of sinks.
func decodeDocument(node *yaml.Node) ([]*SinkConfig, error) {
	content := node
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		content = node.Content[0]
	}

	switch content.Kind {
	case yaml.SequenceNode:
		sinks := make([]*SinkConfig, 0, len(content.Content))
		for _, item := range content.Content {
			sink, err := decodeSink(item)
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, sink)
		}
		return sinks, nil
	case yaml.MappingNode:
		sink, err := decodeSink(content)
		if err != nil {
			return nil, err
		}
		return []*SinkConfig{sink}, nil
	case yaml.ScalarNode:
		if content.Tag == "!!null" {
			return nil, nil
		}
	}

	return nil, fmt.Errorf("line %d: expected a sink or a list of sinks", content.Line)
}

// decodeSink decodes a single sink, rejecting unknown fields.
func decodeSink(node *yaml.Node) (*SinkConfig, error) {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(strings.NewReader(string(raw)))
	decoder.KnownFields(true)

	sink := new(SinkConfig)
	if err := decoder.Decode(sink); err != nil {
		return nil, err
	}
	sink.Type = strings.ToLower(sink.Type)
	return sink, nil
}
