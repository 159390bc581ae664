package plan

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"
)

// Load reads and validates one plan file.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	doc, err := LoadBytes(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// LoadBytes parses and validates plan YAML.
func LoadBytes(content []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Glob loads every plan file matched by the doublestar patterns, in sorted
// path order. A pattern matching nothing is an error.
func Glob(patterns ...string) ([]*Document, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid plan pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no plan files match %q", pattern)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	docs := make([]*Document, 0, len(paths))
	for _, path := range paths {
		doc, err := Load(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Validate checks internal consistency: unique type names, resolvable scalar
// references and fixtures that point at declared types.
func (d *Document) Validate() error {
	seen := make(map[string]bool)
	for i := range d.Types {
		t := &d.Types[i]
		if t.Name == "" {
			return fmt.Errorf("types[%d]: missing name", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("type %q declared twice", t.Name)
		}
		seen[t.Name] = true

		for _, ctor := range t.Constructors {
			if _, err := resolveScalars(ctor.Params); err != nil {
				return fmt.Errorf("type %q constructor: %w", t.Name, err)
			}
		}
		for _, inst := range t.Instantiations {
			if len(t.TypeParams) == 0 {
				return fmt.Errorf("type %q declares instantiations but no type parameters", t.Name)
			}
			if len(inst.TypeArgs) != len(t.TypeParams) {
				return fmt.Errorf("type %q instantiation: %d type argument(s) for %d parameter(s)",
					t.Name, len(inst.TypeArgs), len(t.TypeParams))
			}
			if _, err := resolveScalars(inst.TypeArgs); err != nil {
				return fmt.Errorf("type %q instantiation: %w", t.Name, err)
			}
			if !d.declares(inst.Type) {
				return fmt.Errorf("type %q instantiation references undeclared type %q", t.Name, inst.Type)
			}
		}
	}

	for i, fixture := range d.Fixtures {
		if fixture.Type == "" {
			return fmt.Errorf("fixtures[%d]: missing type", i)
		}
		if !d.declares(fixture.Type) {
			return fmt.Errorf("fixtures[%d]: undeclared type %q", i, fixture.Type)
		}
		if err := fixture.validate(); err != nil {
			return fmt.Errorf("fixtures[%d] (%s): %w", i, fixture.Type, err)
		}
	}
	return nil
}

func (d *Document) declares(name string) bool {
	for i := range d.Types {
		if d.Types[i].Name == name {
			return true
		}
	}
	return false
}

func (f *Fixture) validate() error {
	for _, arg := range f.Args {
		if arg.TypeRef() == "" {
			continue
		}
		if _, err := ScalarType(arg.TypeRef()); err != nil {
			return fmt.Errorf("argument: %w", err)
		}
	}
	if _, err := resolveScalars(f.TypeArgs); err != nil {
		return fmt.Errorf("type arguments: %w", err)
	}
	if f.RunState != "" {
		switch f.RunState {
		case "runnable", "not_runnable", "explicit", "skipped", "ignored":
		default:
			return fmt.Errorf("unknown run state %q", f.RunState)
		}
	}
	return nil
}
