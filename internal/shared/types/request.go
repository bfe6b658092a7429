package types

// Invocation represents one parsed input line
type Invocation struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

// EntryKind distinguishes listing rows
type EntryKind string

const (
	EntryDirectory EntryKind = "directory"
	EntryFile      EntryKind = "file"
)

// Entry represents one directory listing row. Symbolic links never
// produce an Entry.
type Entry struct {
	Name string    `json:"name"`
	Kind EntryKind `json:"type"`
}
