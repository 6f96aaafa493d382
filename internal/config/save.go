package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveThemeMode writes theme.mode into the config file. Comments and the
// formatting of every other key are preserved by editing the yaml.Node tree.
func SaveThemeMode(configPath string, mode string) error {
	if err := ValidateTheme(ThemeConfig{Mode: mode}); err != nil {
		return err
	}
	return setScalar(configPath, []string{"theme", "mode"}, mode)
}

// setScalar sets the string value at keyPath, creating intermediate
// mappings as needed, then rewrites the file atomically.
func setScalar(configPath string, keyPath []string, value string) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return fmt.Errorf("parsing config: unexpected document structure")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		// A file holding only comments decodes to a null scalar.
		if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
			*root = yaml.Node{Kind: yaml.MappingNode, HeadComment: root.HeadComment, FootComment: root.FootComment}
		} else {
			return fmt.Errorf("parsing config: top level is not a mapping")
		}
	}

	node := root
	for _, key := range keyPath[:len(keyPath)-1] {
		node, err = mappingChild(node, key)
		if err != nil {
			return err
		}
	}

	last := keyPath[len(keyPath)-1]
	valueNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	replaced := false
	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == last {
			valueNode.LineComment = node.Content[i+1].LineComment
			node.Content[i+1] = valueNode
			replaced = true
			break
		}
	}
	if !replaced {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: last},
			valueNode,
		)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// mappingChild returns the mapping stored under key, creating it when
// missing or when the key holds a null value.
func mappingChild(parent *yaml.Node, key string) (*yaml.Node, error) {
	for i := 0; i < len(parent.Content)-1; i += 2 {
		if parent.Content[i].Value != key {
			continue
		}
		child := parent.Content[i+1]
		switch {
		case child.Kind == yaml.MappingNode:
			return child, nil
		case child.Kind == yaml.ScalarNode && (child.Tag == "!!null" || child.Value == ""):
			child = &yaml.Node{Kind: yaml.MappingNode}
			parent.Content[i+1] = child
			return child, nil
		default:
			return nil, fmt.Errorf("config key %q is not a mapping", key)
		}
	}

	child := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		child,
	)
	return child, nil
}

// writeAtomic writes to a temp file in the same directory, then renames.
func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".txdash.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
