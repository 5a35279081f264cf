package diff

// Kind classifies a hunk by which sides carry text.
type Kind string

const (
	KindInsert  Kind = "insert"  // old range empty
	KindDelete  Kind = "delete"  // new range empty
	KindReplace Kind = "replace" // both sides non-empty
)

// Status mirrors the change status reported by jj for a file.
type Status string

const (
	StatusAdded    Status = "added"
	StatusModified Status = "modified"
	StatusRemoved  Status = "removed"
	StatusRenamed  Status = "renamed"
	StatusCopied   Status = "copied"
)

// BinaryMode controls how files with non-text content are handled.
type BinaryMode string

const (
	// BinarySkip excludes binary files from all output; they are always
	// left unchanged.
	BinarySkip BinaryMode = "skip"
	// BinaryMark flags binary files without diffing them; only
	// whole-file actions apply.
	BinaryMark BinaryMode = "mark"
	// BinaryInclude represents a binary change as a single opaque
	// replace hunk spanning the whole file.
	BinaryInclude BinaryMode = "include"
)

// LineRange is a 1-based line position plus a line count.
type LineRange struct {
	Start int `json:"start" yaml:"start"`
	Lines int `json:"lines" yaml:"lines"`
}

// Context carries up to one unchanged line on each side of a hunk.
// Display only; it never participates in identity or reconstruction.
type Context struct {
	Before string `json:"pre" yaml:"pre"`
	After  string `json:"post" yaml:"post"`
}

// Hunk is one contiguous region of divergence between the old and new
// content of a file. Removed and Added hold the exact text of each
// side, trailing newlines included.
type Hunk struct {
	Index   int       `json:"index" yaml:"index"`
	ID      string    `json:"id" yaml:"id"`
	Kind    Kind      `json:"type" yaml:"type"`
	Removed string    `json:"removed" yaml:"removed"`
	Added   string    `json:"added" yaml:"added"`
	Before  LineRange `json:"before" yaml:"before"`
	After   LineRange `json:"after" yaml:"after"`
	Context *Context  `json:"context,omitempty" yaml:"context,omitempty"`
}

// FileDiff is the computed diff of one file: an ordered, non-overlapping
// hunk sequence whose gaps are byte-identical in both versions.
// OldSize and NewSize record how many bytes of each side were actually
// diffed; they differ from the full content length only when truncation
// limits applied.
type FileDiff struct {
	Path       string `json:"path" yaml:"path"`
	Status     Status `json:"status" yaml:"status"`
	RenameFrom string `json:"renameFrom,omitempty" yaml:"renameFrom,omitempty"`
	IsBinary   bool   `json:"binary,omitempty" yaml:"binary,omitempty"`
	Truncated  bool   `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Hunks      []Hunk `json:"hunks" yaml:"hunks"`

	OldSize int `json:"-" yaml:"-"`
	NewSize int `json:"-" yaml:"-"`
}

// Options tune a single diff computation.
type Options struct {
	Binary   BinaryMode
	MaxBytes int // 0 = unlimited
	MaxLines int // 0 = unlimited
}
