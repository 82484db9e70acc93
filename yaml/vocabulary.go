// Package yaml loads cleaning vocabularies from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/ramendex"
	"github.com/fwojciec/ramendex/clean"
	"gopkg.in/yaml.v3"
)

// LoadVocabulary reads path and overlays it on the built-in vocabulary.
// Keys present in the file replace the defaults; map entries are merged.
// Returns ENOTFOUND if the file does not exist.
func LoadVocabulary(path string) (*clean.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ramendex.Errorf(ramendex.ENOTFOUND, "vocabulary file %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary overlays the YAML document in data on the built-in
// vocabulary. Unknown keys are rejected.
func ParseVocabulary(data []byte) (*clean.Vocabulary, error) {
	v := clean.DefaultVocabulary()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return nil, ramendex.Errorf(ramendex.EINVALID, "invalid vocabulary: %v", err)
	}
	if err := canonicalize(v); err != nil {
		return nil, err
	}
	return v, nil
}

// canonicalize rewrites category names to their canonical spelling and
// checks value ranges.
func canonicalize(v *clean.Vocabulary) error {
	for i, ck := range v.CategoryKeywords {
		cat, ok := ramendex.ParseCategory(string(ck.Category))
		if !ok {
			return ramendex.Errorf(ramendex.EINVALID, "unknown category %q in category_keywords", ck.Category)
		}
		v.CategoryKeywords[i].Category = cat
	}
	for name, c := range v.NameOverrides {
		cat, ok := ramendex.ParseCategory(string(c))
		if !ok {
			return ramendex.Errorf(ramendex.EINVALID, "unknown category %q for override %q", c, name)
		}
		v.NameOverrides[name] = cat
	}
	for code, c := range v.ProductCodes {
		cat, ok := ramendex.ParseCategory(string(c))
		if !ok {
			return ramendex.Errorf(ramendex.EINVALID, "unknown category %q for product code %q", c, code)
		}
		v.ProductCodes[code] = cat
	}
	if v.MojibakeThreshold < 0 || v.MojibakeThreshold > 1 {
		return ramendex.Errorf(ramendex.EINVALID, "mojibake_threshold must be within [0, 1]")
	}
	return nil
}
