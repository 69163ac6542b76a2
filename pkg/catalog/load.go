package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed sample.yaml
	sampleYAML []byte

	//go:embed schema.json
	schemaJSON string

	compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
		return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	})
)

// Load opens the catalog at path. An empty path loads the embedded sample.
// A directory loads every .yaml/.yml file in it, in lexical order.
func Load(path string) (*Store, error) {
	if path == "" {
		return LoadSample()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	var files []string
	if info.IsDir() {
		files, err = listCatalogFiles(path)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no catalog files found in %s", path)
		}
	} else {
		files = []string{path}
	}

	var records []Record
	for _, f := range files {
		recs, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return NewStore(records)
}

// LoadSample returns the catalog compiled into the binary.
func LoadSample() (*Store, error) {
	records, err := Parse(sampleYAML, "sample.yaml")
	if err != nil {
		return nil, err
	}
	return NewStore(records)
}

// LoadFile reads and validates a single catalog file.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data, filepath.Base(path))
}

// Parse validates data against the catalog schema and decodes its records.
// source names the input in error messages.
func Parse(data []byte, source string) ([]Record, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to parse catalog YAML: %w", source, err)
	}
	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: failed to decode catalog: %w", source, err)
	}
	for i := range file.APIs {
		file.APIs[i].BaseURL = ResolveEnvRefs(file.APIs[i].BaseURL)
	}
	return file.APIs, nil
}

// Validate checks a decoded YAML document against the catalog JSON schema.
func Validate(doc interface{}) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile catalog schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate catalog: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(problems, "; "))
}

func listCatalogFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}
