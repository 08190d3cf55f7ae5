// Package scope builds the scope tree that the parser threads through a
// function body while it parses: which names are declared where, which
// names are referenced, and the function-level flags that later
// compilation stages (strict-mode checks, arguments-object elision,
// super/new.target validation) need without re-walking the AST.
//
// The tree shape is a stack of lightweight per-block records threaded
// through parsing and popped as each construct finishes, rather than a
// scope object built by a separate post-parse pass.
package scope

import "github.com/cwbudde/go-jscore/internal/token"

// FunctionFlags bundles the boolean facts about a function that the
// parser determines while it parses the function's header and body.
type FunctionFlags struct {
	IsStrict              bool
	IsGenerator           bool
	IsAsync               bool
	IsArrow               bool
	IsClassConstructor    bool
	IsDerivedConstructor  bool
	HasEval               bool
	HasWith               bool
	HasThisExpression     bool
	HasSuperOrNewTarget   bool
	HasArrowParameterPlaceHolder   bool
	HasParameterOtherThanIdentifier bool
	AllowSuperCall     bool
	AllowSuperProperty bool
	AllowArguments     bool
	AllowNewTarget     bool
}

// FunctionScope is the scope context for one function (or the top-level
// script/module, which is treated as an implicit outermost function).
type FunctionScope struct {
	Name string

	// Params holds parameter names in declaration order, including
	// destructuring targets flattened to their bound names.
	Params []string
	// ParamCount is len(Params). Length is the count of parameters
	// before the first default-valued or rest parameter, per
	// Function.length semantics.
	ParamCount int
	Length     int

	Flags FunctionFlags

	// VarNames holds every `var`-declared (function-scoped) name,
	// regardless of which nested block textually declared it.
	VarNames []string
	// VarDecls pairs each var name with the deepest block index at
	// which it textually appeared. The name's effective scope is the
	// whole function body, but lexical-collision checks need the block:
	// a `let x` collides only with a `var x` that hoists through its
	// block, not with one declared in a sibling or enclosing block.
	VarDecls []VarDecl

	Children []*FunctionScope
	Blocks   []*BlockScope

	BodyStart token.Position
	BodyEnd   token.Position

	Parent *FunctionScope
}

// NewFunctionScope creates a function scope nested under parent (nil for
// the top-level script/module scope).
func NewFunctionScope(parent *FunctionScope, name string, flags FunctionFlags) *FunctionScope {
	fs := &FunctionScope{Name: name, Flags: flags, Parent: parent}
	if parent != nil {
		parent.Children = append(parent.Children, fs)
	}
	return fs
}

// AddParam records a parameter name. isSimple is false for a
// destructuring or default-valued or rest parameter; Length stops
// advancing at the first non-simple parameter.
func (fs *FunctionScope) AddParam(name string, isSimple bool) {
	fs.Params = append(fs.Params, name)
	fs.ParamCount++
	if isSimple && fs.Length == fs.ParamCount-1 {
		fs.Length++
	}
	if !isSimple {
		fs.Flags.HasParameterOtherThanIdentifier = true
	}
}

// VarDecl is one `var` declaration site: the name plus the deepest
// block it textually appeared in.
type VarDecl struct {
	Name       string
	BlockIndex uint16
}

// AddVar records a function-scoped (`var`) declaration made at
// blockIndex. Name collision checks must consult both this list and
// every ancestor block's lexical-name list.
func (fs *FunctionScope) AddVar(name string, blockIndex uint16) {
	fs.VarNames = append(fs.VarNames, name)
	fs.VarDecls = append(fs.VarDecls, VarDecl{Name: name, BlockIndex: blockIndex})
}

// LexicalKind distinguishes `let` from `const` bindings in a block's
// lexical-name list; `var` never appears there (it is function-scoped).
type LexicalKind uint8

const (
	LexicalLet LexicalKind = iota
	LexicalConst
)

// LexicalName is one block-scoped binding.
type LexicalName struct {
	Name string
	Kind LexicalKind
}

// BlockScope is the scope context for one lexical block (the body of an
// if/for/while/block statement, a switch body, a catch clause, or a
// function body's top-level block).
type BlockScope struct {
	// Index is assigned in source order within the enclosing function,
	// starting at 0.
	Index uint16
	// ParentIndex is the index of the immediately enclosing block
	// within the same function, or the block's own Index if it is the
	// function's top-level block (no enclosing block).
	ParentIndex uint16
	HasParent   bool

	Lexical []LexicalName

	// FunctionNames holds names of function declarations made directly
	// inside this block, tracked separately from Lexical because
	// Annex B sloppy-mode semantics let a block-scoped function
	// declaration also create (or update) a function-scoped var binding
	// of the same name in the enclosing function, under conditions the
	// compiler resolves later.
	FunctionNames []string

	// UsingNames holds every identifier referenced (read or written)
	// anywhere lexically inside this block, including inside nested
	// blocks that have already been collapsed into it.
	UsingNames []string

	// PerIteration marks the body block of a loop whose head binds
	// `let`/`const` names. Such a block survives the collapse pass even
	// when it declares nothing itself: its using-name edge on the head
	// binding is what drives the per-iteration copy a closure captured
	// inside the loop body must observe.
	PerIteration bool

	owner *FunctionScope
}

// AddBlock appends a new block scope to fs, parented under parentIndex
// (ignored, see HasParent, for the function's outermost block), and
// returns it.
func (fs *FunctionScope) AddBlock(parentIndex uint16, hasParent bool) *BlockScope {
	b := &BlockScope{
		Index:       uint16(len(fs.Blocks)),
		ParentIndex: parentIndex,
		HasParent:   hasParent,
		owner:       fs,
	}
	fs.Blocks = append(fs.Blocks, b)
	return b
}

func (b *BlockScope) DeclareLexical(name string, kind LexicalKind) {
	b.Lexical = append(b.Lexical, LexicalName{Name: name, Kind: kind})
}

func (b *BlockScope) DeclareFunction(name string) {
	b.FunctionNames = append(b.FunctionNames, name)
}

func (b *BlockScope) Use(name string) {
	b.UsingNames = append(b.UsingNames, name)
}

// collapseInto merges b's using-names into parent and reassigns every
// block in the same function whose ParentIndex points at b to point at
// parent instead: a block that declared no lexical names and no
// functions carries no information worth keeping a separate scope
// record for. The caller (Collapse) then drops b's record entirely, so
// the scope tree's memory footprint stays proportional to actual
// binding density rather than to brace-nesting depth.
func (b *BlockScope) collapseInto(parent *BlockScope) {
	parent.UsingNames = append(parent.UsingNames, b.UsingNames...)
	for _, other := range b.owner.Blocks {
		if other.HasParent && other.ParentIndex == b.Index && other != b {
			other.ParentIndex = parent.Index
			other.HasParent = true
		}
	}
}

// Collapse runs the collapse pass over every block of fs once, after
// the function body has been fully parsed. It must run bottom-up
// (deepest blocks first) so a chain of empty nested blocks collapses
// all the way to the nearest block that actually declared something.
// Collapsed blocks are removed from fs.Blocks: a `{ statement; }` block
// that bound nothing leaves no residual record, only its using-names
// folded into the parent. PerIteration loop-body blocks are the one
// exemption (see BlockScope.PerIteration). Surviving blocks keep their
// original source-order indices; ParentIndex values always name a
// surviving block, since a block with lexical or function declarations
// is never removed and removal reparents children upward first.
func (fs *FunctionScope) Collapse() {
	removed := make([]bool, len(fs.Blocks))
	for i := len(fs.Blocks) - 1; i >= 0; i-- {
		b := fs.Blocks[i]
		if !b.HasParent {
			continue // function's outermost block: nothing to collapse into
		}
		if len(b.Lexical) != 0 || len(b.FunctionNames) != 0 || b.PerIteration {
			continue
		}
		b.collapseInto(fs.Blocks[b.ParentIndex])
		removed[i] = true
	}
	kept := fs.Blocks[:0]
	for i, b := range fs.Blocks {
		if !removed[i] {
			kept = append(kept, b)
		}
	}
	fs.Blocks = kept
}
