package content

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Source produces a registry.
type Source interface {
	Load(ctx context.Context) (*Registry, error)
}

// Parse decodes a YAML registry. Unknown fields are rejected.
func Parse(data []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Registry
	if err := dec.Decode(&r); err != nil {
		if err == io.EOF {
			return &r, nil
		}
		return nil, errors.Wrap(err, "decode content")
	}
	return &r, nil
}

// Default returns the registry compiled into the binary.
func Default() *Registry {
	r, err := Parse(defaultContent)
	if err != nil {
		panic(errors.Wrap(err, "embedded content"))
	}
	return r
}

// FileSource reads a YAML registry from disk. An empty Path yields the
// embedded default.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (*Registry, error) {
	if s.Path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.Path)
	}
	return Parse(data)
}
