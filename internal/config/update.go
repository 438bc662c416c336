package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rileyhilliard/gradtop/internal/errors"
	"gopkg.in/yaml.v3"
)

// Keys lists every setting a config file can hold, in dotted form.
func Keys() []string {
	keys := newViper().AllKeys()
	sort.Strings(keys)
	return keys
}

// Encode renders cfg as YAML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Setting is one dotted key with its current value.
type Setting struct {
	Key   string
	Value string
}

// Settings flattens cfg into dotted keys, sorted by key.
func Settings(cfg *Config) ([]Setting, error) {
	data, err := Encode(cfg)
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	var settings []Setting
	for section, v := range doc {
		fields, ok := v.(map[string]interface{})
		if !ok {
			settings = append(settings, Setting{Key: section, Value: fmt.Sprint(v)})
			continue
		}
		for field, fv := range fields {
			settings = append(settings, Setting{Key: section + "." + field, Value: fmt.Sprint(fv)})
		}
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}

// SetValue writes one dotted key (e.g. "chart.value_title") into the config
// file at configPath, creating the file and section if needed. Existing
// structure and comments are preserved. The result must load and validate
// before anything is written.
func SetValue(configPath, key, value string) error {
	if !isKnownKey(key) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a config key", key),
			"Known keys: "+strings.Join(Keys(), ", "))
	}

	root, err := readDocument(configPath)
	if err != nil {
		return err
	}

	section, field, _ := strings.Cut(key, ".")
	docNode := root.Content[0]
	target := docNode
	if field != "" {
		target = findMapValue(docNode, section)
		if target == nil {
			target = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			docNode.Content = append(docNode.Content, scalar(section), target)
		}
	} else {
		field = section
	}

	if existing := findMapValue(target, field); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = ""
		existing.Value = value
		existing.Content = nil
	} else {
		target.Content = append(target.Content, scalar(field), &yaml.Node{Kind: yaml.ScalarNode, Value: value})
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := validateDocument(buf.Bytes(), configPath); err != nil {
		return err
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check permissions on "+configPath)
	}
	return nil
}

// readDocument parses configPath as a YAML document, or starts an empty one
// if the file doesn't exist yet.
func readDocument(configPath string) (*yaml.Node, error) {
	empty := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return empty, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file",
			"Check the YAML syntax in "+configPath)
	}
	if root.Kind == 0 {
		// Blank file
		return empty, nil
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("invalid YAML document structure")
	}
	if root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected mapping at document root")
	}
	return &root, nil
}

// validateDocument loads data the same way Load would and validates it.
func validateDocument(data []byte, source string) error {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Updated config isn't valid YAML",
			"Check the value you passed")
	}
	cfg, err := parseConfig(v, source)
	if err != nil {
		return err
	}
	return Validate(cfg)
}

func isKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
