package types

// Category represents command categories
type Category string

const (
	CategoryFilesystem Category = "filesystem"
	CategorySystem     Category = "system"
	CategoryShell      Category = "shell"
)

// Service represents a provider definition
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Tools       []Tool   `json:"tools"`
}

// Tool represents one shell command
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

// Parameter represents a positional command argument
type Parameter struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	// Variadic parameters swallow the remaining arguments.
	Variadic bool `json:"variadic,omitempty"`
}

// Usage renders the command with its parameters, e.g. "cp <file> <dest_dir>"
func (t Tool) Usage() string {
	usage := t.ID
	for _, p := range t.Parameters {
		name := p.Name
		if p.Variadic {
			name += "..."
		}
		if p.Required {
			usage += " <" + name + ">"
		} else {
			usage += " [" + name + "]"
		}
	}
	return usage
}
