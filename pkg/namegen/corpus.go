package namegen

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Corpus holds the two ordered vocabularies a name is built from.
// The generator only reads it.
type Corpus struct {
	First  []string `yaml:"first" json:"first"`
	Second []string `yaml:"second" json:"second"`
}

// DefaultCorpus returns a copy of the built-in vocabularies.
func DefaultCorpus() Corpus {
	return Corpus{
		First:  append([]string(nil), firstParts...),
		Second: append([]string(nil), secondParts...),
	}
}

// Validate returns ErrEmptyCorpus if either list is empty and ErrInvalidCorpus
// if a list contains a blank word.
func (c Corpus) Validate() error {
	if len(c.First) == 0 {
		return fmt.Errorf("%w: first-part list has no words", ErrEmptyCorpus)
	}
	if len(c.Second) == 0 {
		return fmt.Errorf("%w: second-part list has no words", ErrEmptyCorpus)
	}
	for i, w := range c.First {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("%w: blank first-part word at index %d", ErrInvalidCorpus, i)
		}
	}
	for i, w := range c.Second {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("%w: blank second-part word at index %d", ErrInvalidCorpus, i)
		}
	}
	return nil
}

// ParseCorpus decodes a YAML document of the form
//
//	first: [Quantum, Cyber]
//	second: [Oracle, Punk]
//
// and validates the result.
func ParseCorpus(data []byte) (Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Corpus{}, errors.Join(ErrInvalidCorpus, err)
	}
	if err := c.Validate(); err != nil {
		return Corpus{}, err
	}
	return c, nil
}

// LoadCorpus reads and parses a YAML corpus file.
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, errors.Join(ErrInvalidCorpus, err)
	}
	return ParseCorpus(data)
}
