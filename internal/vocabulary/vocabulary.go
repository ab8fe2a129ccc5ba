// Package vocabulary loads the skill vocabulary used by the skill recognizer.
//
// A vocabulary comes from exactly one source, chosen at startup: a file
// (text, JSON, YAML or TOML), a comma-separated list, or the built-in default.
package vocabulary

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-parser/internal/domain"

	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// DefaultSkills is the built-in vocabulary.
var DefaultSkills = []string{"Java", "Spring Boot", "Python", "SQL", "React", "Docker"}

// Default returns the built-in vocabulary.
func Default() domain.SkillVocabulary {
	return domain.NewSkillVocabulary(DefaultSkills...)
}

// ParseList builds a vocabulary from a comma-separated list.
func ParseList(list string) domain.SkillVocabulary {
	return domain.NewSkillVocabulary(strings.Split(list, ",")...)
}

// Resolve picks the vocabulary source: path wins over list, and the
// built-in default is used when both are empty.
func Resolve(path, list string) (domain.SkillVocabulary, error) {
	switch {
	case strings.TrimSpace(path) != "":
		return Load(path)
	case strings.TrimSpace(list) != "":
		return ParseList(list), nil
	default:
		return Default(), nil
	}
}

// Load reads a vocabulary file. The format is chosen by extension:
// .txt, .json, .yaml/.yml or .toml.
func Load(path string) (domain.SkillVocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SkillVocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}

	var names []string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		names, err = parseText(data)
	case ".json":
		names, err = parseJSON(data)
	case ".yaml", ".yml":
		names, err = parseYAML(data)
	case ".toml":
		names, err = parseTOML(data)
	default:
		return domain.SkillVocabulary{}, fmt.Errorf("unsupported vocabulary format %q", ext)
	}
	if err != nil {
		return domain.SkillVocabulary{}, fmt.Errorf("parse vocabulary %s: %w", filepath.Base(path), err)
	}

	return domain.NewSkillVocabulary(names...), nil
}

// parseText reads one skill per line; blank lines and # comments are skipped.
func parseText(data []byte) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

const jsonSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$defs": {
    "skills": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  },
  "oneOf": [
    {"$ref": "#/$defs/skills"},
    {
      "type": "object",
      "required": ["skills"],
      "properties": {"skills": {"$ref": "#/$defs/skills"}}
    }
  ]
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("vocabulary.json", strings.NewReader(jsonSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("vocabulary.json")
}

// parseJSON accepts ["A","B"] or {"skills":["A","B"]}.
func parseJSON(data []byte) ([]string, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, err
	}

	switch v := doc.(type) {
	case []any:
		return toStrings(v), nil
	case map[string]any:
		list, _ := v["skills"].([]any)
		return toStrings(list), nil
	}
	return nil, nil
}

func toStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// parseYAML accepts a sequence or a mapping with a skills key.
func parseYAML(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var names []string
		err := root.Decode(&names)
		return names, err
	case yaml.MappingNode:
		var file struct {
			Skills []string `yaml:"skills"`
		}
		err := root.Decode(&file)
		return file.Skills, err
	default:
		return nil, fmt.Errorf("expected a list or a skills mapping")
	}
}

// parseTOML reads the top-level skills array.
func parseTOML(data []byte) ([]string, error) {
	var file struct {
		Skills []string `toml:"skills"`
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Skills, nil
}
