package scan

import (
	"context"
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

const (
	maxParams     = 5  // parameter count above this is flagged
	maxCyclomatic = 10 // per-function cyclomatic above this is flagged
)

// FunctionMetrics holds the per-function numbers computed by the structural pass.
type FunctionMetrics struct {
	Name       string
	Line       int // 1-based start line
	ParamCount int
	Cyclomatic int
	Cognitive  int
	MaxNesting int
}

// StructuralResult is the outcome of one structural analysis pass.
type StructuralResult struct {
	Functions []FunctionMetrics
	Issues    []Issue
	Metrics   ComplexityMetrics
}

// StructuralAnalyzer walks function definitions of a source file and reports
// quality findings plus complexity metrics.
// Implementations: TreeSitterAnalyzer (production), stubs in tests.
type StructuralAnalyzer interface {
	// Analyze parses source and returns per-function metrics and findings.
	Analyze(ctx context.Context, path string, source []byte, lang Language) (*StructuralResult, error)

	// Supports reports whether lang has a registered grammar.
	Supports(lang Language) bool

	// Close releases parser resources.
	Close() error
}

// structuralProfile describes how one language's syntax tree maps onto the
// metrics model: which node kinds open functions, add branches, add nesting,
// and represent exception handlers.
type structuralProfile struct {
	functionKinds map[string]bool
	branchKinds   map[string]bool
	nestingKinds  map[string]bool
	booleanOps    map[string]bool // operator field values of binary expressions
	handlerKind   string          // "" for languages without exception handlers

	// paramCount counts declared parameters of a function node.
	paramCount func(node *tree_sitter.Node, source []byte) int

	// broadCatch reports whether a handler node catches the broadest
	// exception type. Nil when the language has no such notion.
	broadCatch func(node *tree_sitter.Node, source []byte) bool

	// emptyHandler reports whether a handler node's body is empty.
	emptyHandler func(node *tree_sitter.Node, source []byte) bool
}

// Compile-time check: *TreeSitterAnalyzer satisfies StructuralAnalyzer.
var _ StructuralAnalyzer = (*TreeSitterAnalyzer)(nil)

// TreeSitterAnalyzer implements StructuralAnalyzer with tree-sitter grammars
// for Python, Go, TypeScript, and Rust. A parser is created per Analyze call,
// so concurrent calls are safe.
type TreeSitterAnalyzer struct {
	languages map[Language]*tree_sitter.Language
	profiles  map[Language]*structuralProfile
}

// NewTreeSitterAnalyzer registers the four supported grammars.
func NewTreeSitterAnalyzer() *TreeSitterAnalyzer {
	return &TreeSitterAnalyzer{
		languages: map[Language]*tree_sitter.Language{
			LangPython:     tree_sitter.NewLanguage(tree_sitter_python.Language()),
			LangGo:         tree_sitter.NewLanguage(tree_sitter_go.Language()),
			LangTypeScript: tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
			LangRust:       tree_sitter.NewLanguage(tree_sitter_rust.Language()),
		},
		profiles: map[Language]*structuralProfile{
			LangPython:     pyProfile,
			LangGo:         goProfile,
			LangTypeScript: tsProfile,
			LangRust:       rsProfile,
		},
	}
}

// Supports reports whether lang has a registered grammar.
func (a *TreeSitterAnalyzer) Supports(lang Language) bool {
	_, ok := a.languages[lang]
	return ok
}

// Close is a no-op because parsers are created per Analyze call.
func (a *TreeSitterAnalyzer) Close() error {
	return nil
}

// Analyze parses source with the grammar for lang and extracts function
// metrics and quality findings. A parse tree containing errors yields a
// single critical finding at the first error line and zero metrics; the error
// return is reserved for unsupported languages and parser setup failures.
func (a *TreeSitterAnalyzer) Analyze(_ context.Context, path string, source []byte, lang Language) (*StructuralResult, error) {
	tsLang, ok := a.languages[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
	profile := a.profiles[lang]

	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(tsLang); err != nil {
		return nil, fmt.Errorf("set language %s: %w", lang, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter returned nil tree for %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		line := firstErrorLine(root)
		return &StructuralResult{
			Issues: []Issue{{
				Severity: SeverityCritical,
				Category: CategoryQuality,
				Line:     line,
				Message:  "structural parse failure: file contains syntax errors",
				Rule:     "parse-error",
			}},
		}, nil
	}

	res := &StructuralResult{}
	walkTree(root, func(node *tree_sitter.Node) {
		switch {
		case profile.functionKinds[node.Kind()]:
			fn := analyzeFunction(node, source, profile)
			res.Functions = append(res.Functions, fn)
		case node.Kind() == profile.handlerKind && profile.handlerKind != "":
			res.Issues = append(res.Issues, handlerIssues(node, source, profile)...)
		}
	})

	for _, fn := range res.Functions {
		if fn.ParamCount > maxParams {
			res.Issues = append(res.Issues, Issue{
				Severity: SeverityMedium,
				Category: CategoryQuality,
				Line:     fn.Line,
				Message:  fmt.Sprintf("function %q has a long parameter list (%d parameters)", fn.Name, fn.ParamCount),
				Rule:     "long-parameter-list",
			})
		}
		if fn.Cyclomatic > maxCyclomatic {
			res.Issues = append(res.Issues, Issue{
				Severity: SeverityHigh,
				Category: CategoryQuality,
				Line:     fn.Line,
				Message:  fmt.Sprintf("function %q has high cyclomatic complexity (%d)", fn.Name, fn.Cyclomatic),
				Rule:     "high-cyclomatic-complexity",
			})
		}
		res.Metrics.Cyclomatic += fn.Cyclomatic
		res.Metrics.Cognitive += fn.Cognitive
		if fn.MaxNesting > res.Metrics.MaxNesting {
			res.Metrics.MaxNesting = fn.MaxNesting
		}
	}

	return res, nil
}

// analyzeFunction computes the metrics for one function node. The whole
// subtree is counted, so branches of nested functions contribute to their
// enclosing function as well as to their own entry.
func analyzeFunction(fnNode *tree_sitter.Node, source []byte, profile *structuralProfile) FunctionMetrics {
	fn := FunctionMetrics{
		Name:       functionName(fnNode, source),
		Line:       int(fnNode.StartPosition().Row) + 1,
		ParamCount: profile.paramCount(fnNode, source),
		Cyclomatic: 1,
	}

	var walk func(node *tree_sitter.Node, depth int)
	walk = func(node *tree_sitter.Node, depth int) {
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			if child == nil {
				continue
			}
			kind := child.Kind()
			if profile.branchKinds[kind] || isBooleanOp(child, source, profile) ||
				(profile.handlerKind != "" && kind == profile.handlerKind) {
				fn.Cyclomatic++
				fn.Cognitive += 1 + depth
			}
			nextDepth := depth
			if profile.nestingKinds[kind] {
				nextDepth++
				if nextDepth > fn.MaxNesting {
					fn.MaxNesting = nextDepth
				}
			}
			walk(child, nextDepth)
		}
	}
	walk(fnNode, 0)

	return fn
}

// handlerIssues flags exception-handler smells: catching the broadest type
// (medium) and silently swallowing the error with an empty body (high).
// Both can co-occur on the same handler.
func handlerIssues(node *tree_sitter.Node, source []byte, profile *structuralProfile) []Issue {
	line := int(node.StartPosition().Row) + 1
	var issues []Issue
	if profile.broadCatch != nil && profile.broadCatch(node, source) {
		issues = append(issues, Issue{
			Severity: SeverityMedium,
			Category: CategoryQuality,
			Line:     line,
			Message:  "handler catches the broadest exception type",
			Rule:     "broad-exception-caught",
		})
	}
	if profile.emptyHandler != nil && profile.emptyHandler(node, source) {
		issues = append(issues, Issue{
			Severity: SeverityHigh,
			Category: CategoryQuality,
			Line:     line,
			Message:  "empty exception handler silently swallows the error",
			Rule:     "empty-exception-handler",
		})
	}
	return issues
}

// isBooleanOp reports whether node is a binary expression whose operator is
// one of the profile's boolean operators.
func isBooleanOp(node *tree_sitter.Node, source []byte, profile *structuralProfile) bool {
	if len(profile.booleanOps) == 0 {
		return false
	}
	if node.Kind() != "binary_expression" {
		return false
	}
	op := node.ChildByFieldName("operator")
	if op == nil {
		return false
	}
	return profile.booleanOps[op.Utf8Text(source)]
}

// functionName returns the name field of a function node, or "(anonymous)".
func functionName(node *tree_sitter.Node, source []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return "(anonymous)"
	}
	return nameNode.Utf8Text(source)
}

// walkTree visits every named node of the tree in depth-first order.
func walkTree(root *tree_sitter.Node, visit func(node *tree_sitter.Node)) {
	cursor := root.Walk()
	defer cursor.Close()

	var walk func()
	walk = func() {
		visit(cursor.Node())
		if cursor.GotoFirstChild() {
			walk()
			for cursor.GotoNextSibling() {
				walk()
			}
			cursor.GotoParent()
		}
	}
	walk()
}

// firstErrorLine returns the 1-based line of the first ERROR or MISSING node.
func firstErrorLine(root *tree_sitter.Node) int {
	line := int(root.StartPosition().Row) + 1
	found := false
	walkTree(root, func(node *tree_sitter.Node) {
		if found {
			return
		}
		if node.IsError() || node.IsMissing() {
			line = int(node.StartPosition().Row) + 1
			found = true
		}
	})
	return line
}

// namedParamCount counts the named children of a function's parameter list,
// the common case across grammars.
func namedParamCount(fnNode *tree_sitter.Node, field string) int {
	params := fnNode.ChildByFieldName(field)
	if params == nil {
		return 0
	}
	return int(params.NamedChildCount())
}
