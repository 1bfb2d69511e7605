package formula

// yamlNode is the document shape of a node:
//
//	name: and
//	left:
//	    name: A
//	right:
//	    name: B
type yamlNode struct {
	Name  string `yaml:"name"`
	Left  *Node  `yaml:"left,omitempty"`
	Right *Node  `yaml:"right,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (n *Node) MarshalYAML() (any, error) {
	return yamlNode{
		Name:  n.Name(),
		Left:  n.Left,
		Right: n.Right,
	}, nil
}
