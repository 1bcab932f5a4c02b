package profile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Loader struct {
	reader io.Reader
}

func NewLoader(reader io.Reader) *Loader {
	return &Loader{
		reader: reader,
	}
}

// Load decodes a profile on top of Default, so omitted keys keep their
// default values.
func (l *Loader) Load(validate bool) (*Profile, error) {
	decoder := yaml.NewDecoder(l.reader)
	p := Default()
	if err := decoder.Decode(p); err != nil {
		if err == io.EOF {
			return p, nil
		}
		return nil, fmt.Errorf("parse profile YAML: %w", err)
	}
	if validate {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid profile: %w", err)
		}
	}
	return p, nil
}

func LoadFromFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	defer f.Close()

	return NewLoader(f).Load(true)
}
