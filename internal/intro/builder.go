package intro

// Artifact is a fully processed intro page. Artifacts are shared
// between cache consumers and must be treated as read-only.
type Artifact struct {
	Title *string
	TOC   TOC
	Body  Template
}

// Builder assembles artifacts out of raw intro markup.
type Builder struct {
	compiler Compiler
}

// NewBuilder returns a Builder using the given compiler, or the
// html/template compiler when nil.
func NewBuilder(c Compiler) *Builder {
	if c == nil {
		c = HTMLCompiler{}
	}
	return &Builder{compiler: c}
}

// Build parses markup for its outline, strips the first title block
// and compiles the remainder as the body. A malformed outline or a
// compile failure aborts the build. The outline comes from the
// original markup, so the title is extracted before the block is
// removed.
func (b *Builder) Build(name, markup string) (*Artifact, error) {
	outline, err := ParseOutline(markup)
	if err != nil {
		return nil, err
	}
	body, err := b.compiler.Compile(name, StripTitleBlock(markup))
	if err != nil {
		return nil, err
	}
	return &Artifact{Title: outline.Title, TOC: outline.TOC, Body: body}, nil
}
