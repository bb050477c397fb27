// SPDX-License-Identifier: MIT

package complexes

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/isaiahtx/simplicial-homology/simplex"
)

const methodDecode = "Decode"

// Document is a complex read from YAML or JSON. Two shapes are accepted:
//
//	[[0, 1], [1, 2], [2, 0]]
//
// or
//
//	name: circle
//	faces: [[0, 1], [1, 2], [2, 0]]
type Document struct {
	Name  string         `yaml:"name"`
	Faces []simplex.Face `yaml:"faces"`
}

// Decode reads one document from r and validates its faces. JSON input
// works because it is valid YAML.
func Decode(r io.Reader) (*Document, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, wrapf(methodDecode, "empty document", ErrDecode)
		}
		return nil, wrapf(methodDecode, "", fmt.Errorf("%w: %w", ErrDecode, err))
	}
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}

	doc := &Document{}
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&doc.Faces); err != nil {
			return nil, wrapf(methodDecode, "", fmt.Errorf("%w: %w", ErrDecode, err))
		}
	case yaml.MappingNode:
		if err := root.Decode(doc); err != nil {
			return nil, wrapf(methodDecode, "", fmt.Errorf("%w: %w", ErrDecode, err))
		}
	default:
		return nil, wrapf(methodDecode, fmt.Sprintf("line %d: expected a face list or a mapping", root.Line), ErrDecode)
	}

	if err := simplex.Validate(doc.Faces); err != nil {
		return nil, wrapf(methodDecode, "", err)
	}

	return doc, nil
}

// Encode writes doc as YAML with flow-style faces.
func Encode(w io.Writer, doc *Document) error {
	faces := &yaml.Node{Kind: yaml.SequenceNode}
	for _, f := range doc.Faces {
		face := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range f {
			face.Content = append(face.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
		}
		faces.Content = append(faces.Content, face)
	}
	root := &yaml.Node{Kind: yaml.MappingNode}
	if doc.Name != "" {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "name"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: doc.Name})
	}
	root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "faces"}, faces)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return wrapf("Encode", "", err)
	}

	return enc.Close()
}
