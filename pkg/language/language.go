// Package language holds the catalog of supported languages and data
// types that drives the export CLI.
package language

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Language is one supported language with its Wikidata lexeme metadata.
type Language struct {
	Name string `yaml:"name"`
	ISO  string `yaml:"iso"`
	QID  string `yaml:"qid"`
}

// Catalog is the set of languages and data types exports can target.
type Catalog struct {
	Languages []Language `yaml:"languages"`
	DataTypes []string   `yaml:"data_types"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Languages: []Language{
			{Name: "English", ISO: "en", QID: "Q1860"},
			{Name: "French", ISO: "fr", QID: "Q150"},
			{Name: "German", ISO: "de", QID: "Q188"},
			{Name: "Italian", ISO: "it", QID: "Q652"},
			{Name: "Portuguese", ISO: "pt", QID: "Q5146"},
			{Name: "Russian", ISO: "ru", QID: "Q7737"},
			{Name: "Spanish", ISO: "es", QID: "Q1321"},
			{Name: "Swedish", ISO: "sv", QID: "Q9027"},
		},
		DataTypes: []string{
			"adjectives", "adverbs", "emoji-keywords", "nouns", "prepositions", "verbs",
		},
	}
}

// LoadCatalog returns the built-in catalog, overridden by a yaml file
// when one exists at path.
func LoadCatalog(path string) (*Catalog, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(override.Languages) > 0 {
		c.Languages = override.Languages
	}
	if len(override.DataTypes) > 0 {
		c.DataTypes = override.DataTypes
	}
	return c, nil
}

// Names returns all language names sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Languages))
	for _, l := range c.Languages {
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return names
}

// Resolve finds a language by name, case-insensitively.
func (c *Catalog) Resolve(name string) (Language, bool) {
	for _, l := range c.Languages {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Language{}, false
}

// HasDataType reports whether dt is a known data type.
func (c *Catalog) HasDataType(dt string) bool {
	for _, known := range c.DataTypes {
		if strings.EqualFold(known, dt) {
			return true
		}
	}
	return false
}
