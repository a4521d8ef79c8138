package manifest

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrNotFound reports a missing manifest file.
var ErrNotFound = errors.New("manifest not found")

// Manifest is a loaded taxonomy manifest. It retains the full YAML document
// so saves preserve keys this tool does not interpret.
type Manifest struct {
	doc yaml.Node
}

// Load parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(data, &m.doc); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.mapping() == nil {
		return nil, fmt.Errorf("manifest %s: document is not a mapping", path)
	}
	return m, nil
}

// Names returns the ordered raw class list. An absent, non-sequence, or
// empty "names" entry is an error: the manifest cannot drive a remap.
func (m *Manifest) Names() ([]string, error) {
	node := m.value("names")
	if node == nil {
		return nil, errors.New("manifest: 'names' key missing")
	}
	if node.Kind != yaml.SequenceNode {
		return nil, errors.New("manifest: 'names' is not a list")
	}
	var names []string
	if err := node.Decode(&names); err != nil {
		return nil, fmt.Errorf("manifest: decode 'names': %w", err)
	}
	if len(names) == 0 {
		return nil, errors.New("manifest: 'names' is empty")
	}
	return names, nil
}

// ClassCount returns the declared "nc" value, or -1 when absent.
func (m *Manifest) ClassCount() int {
	node := m.value("nc")
	if node == nil {
		return -1
	}
	count, err := strconv.Atoi(node.Value)
	if err != nil {
		return -1
	}
	return count
}

// SetNames replaces the class list and updates "nc" to match, appending an
// "nc" entry if the document lacks one. All other document content is left
// as parsed.
func (m *Manifest) SetNames(names []string) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, name := range names {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: name,
		})
	}
	m.setValue("names", seq)
	m.setValue("nc", &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: strconv.Itoa(len(names)),
	})
}

// Save writes the manifest document to path.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(&m.doc)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func (m *Manifest) mapping() *yaml.Node {
	if m.doc.Kind != yaml.DocumentNode || len(m.doc.Content) == 0 {
		return nil
	}
	root := m.doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	return root
}

func (m *Manifest) value(key string) *yaml.Node {
	root := m.mapping()
	if root == nil {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			return root.Content[i+1]
		}
	}
	return nil
}

func (m *Manifest) setValue(key string, value *yaml.Node) {
	root := m.mapping()
	if root == nil {
		return
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			root.Content[i+1] = value
			return
		}
	}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}
