package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/gridwalk/internal/compiler"
	"github.com/aretw0/gridwalk/pkg/adapters/memory"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// FixtureSpec is one entry of a fixture file.
// A grid is given either as Rows or as Text (the plain-text grid format).
type FixtureSpec struct {
	Name   string     `mapstructure:"name" yaml:"name" json:"name"`
	Rows   [][]string `mapstructure:"rows" yaml:"rows,omitempty" json:"rows,omitempty"`
	Text   string     `mapstructure:"text" yaml:"text,omitempty" json:"text,omitempty"`
	Expect string     `mapstructure:"expect" yaml:"expect,omitempty" json:"expect,omitempty"`
}

// FixtureFile represents the structure of a grids.yaml / grids.json file.
type FixtureFile struct {
	Grids []FixtureSpec `mapstructure:"grids" yaml:"grids" json:"grids"`
}

// Loader serves fixtures read from disk. It implements ports.GridLoader.
// Files are read once by Load; later edits are not picked up.
type Loader struct {
	*memory.Loader
	Path string
}

// Load reads a fixture file or every supported file in a directory (non-recursive).
// Supported extensions: .yaml, .yml, .json (fixture files) and .grid, .txt
// (a single plain-text grid named after the file).
func Load(path string) (*Loader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to list fixtures: %w", err)
		}
		files = files[:0]
		for _, entry := range entries {
			if entry.IsDir() || !Supported(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(path, entry.Name()))
		}
		sort.Strings(files)
	}

	l := &Loader{Loader: memory.NewLoader(), Path: path}
	for _, f := range files {
		fixtures, err := readFile(f)
		if err != nil {
			return nil, err
		}
		for _, fx := range fixtures {
			if err := l.Add(fx); err != nil {
				return nil, fmt.Errorf("%s: %w", f, err)
			}
		}
	}
	return l, nil
}

// Supported reports whether the file extension is understood by Load.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json", ".grid", ".txt":
		return true
	}
	return false
}

func readFile(path string) ([]domain.Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".grid" || ext == ".txt" {
		grid, err := compiler.NewParser().Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return []domain.Fixture{{Name: name, Grid: grid}}, nil
	}

	cfg, err := Decode(data, ext == ".json")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Compile(cfg)
}

// Decode parses fixture file content. Both formats are first read into a
// generic tree whose scalars keep their literal source text, then decoded
// with mapstructure. An unquoted `1.50` or `0x10` stays exactly as written.
func Decode(data []byte, isJSON bool) (FixtureFile, error) {
	var raw any
	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return FixtureFile{}, fmt.Errorf("failed to parse fixtures json: %w", err)
		}
		raw = literalJSON(v)
	} else {
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return FixtureFile{}, fmt.Errorf("failed to parse fixtures yaml: %w", err)
		}
		raw = literalYAML(&doc)
	}

	var cfg FixtureFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return FixtureFile{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return FixtureFile{}, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return cfg, nil
}

// Compile turns decoded specs into validated fixtures.
func Compile(cfg FixtureFile) ([]domain.Fixture, error) {
	parser := compiler.NewParser()
	out := make([]domain.Fixture, 0, len(cfg.Grids))
	for i, spec := range cfg.Grids {
		if spec.Name == "" {
			return nil, fmt.Errorf("grid #%d missing name", i)
		}
		if len(spec.Rows) > 0 && spec.Text != "" {
			return nil, fmt.Errorf("grid %s: rows and text are mutually exclusive", spec.Name)
		}

		var grid domain.Grid
		var err error
		if spec.Text != "" {
			grid, err = parser.Parse([]byte(spec.Text))
		} else {
			grid, err = domain.NewGrid(spec.Rows)
		}
		if err != nil {
			return nil, fmt.Errorf("grid %s: %w", spec.Name, err)
		}
		out = append(out, domain.Fixture{Name: spec.Name, Grid: grid, Expect: spec.Expect})
	}
	return out, nil
}

// literalYAML converts a YAML node tree to maps, slices and strings.
// Scalars keep node.Value instead of their resolved type.
func literalYAML(n *yaml.Node) any {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return literalYAML(n.Content[0])
	case yaml.AliasNode:
		return literalYAML(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[n.Content[i].Value] = literalYAML(n.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		items := make([]any, len(n.Content))
		for i, c := range n.Content {
			items[i] = literalYAML(c)
		}
		return items
	default:
		if n.Tag == "!!null" {
			return nil
		}
		return n.Value
	}
}

// literalJSON replaces numbers and booleans with their JSON text.
func literalJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = literalJSON(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = literalJSON(item)
		}
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return v
	}
}
