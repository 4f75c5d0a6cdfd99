package tree

const (
	Branch     = "├── "
	LastBranch = "└── "
	Indent     = "│   "
	LastIndent = "    "
)

// Style holds the glyphs used to draw branches and indentation.
type Style struct {
	Branch     string
	LastBranch string
	Indent     string
	LastIndent string
}

// DefaultStyle returns the box-drawing glyphs.
func DefaultStyle() Style {
	return Style{
		Branch:     Branch,
		LastBranch: LastBranch,
		Indent:     Indent,
		LastIndent: LastIndent,
	}
}
