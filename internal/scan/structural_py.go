package scan

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// pyProfile maps Python's grammar onto the metrics model. Python is the
// reference language: it carries the full set of handler checks.
var pyProfile = &structuralProfile{
	functionKinds: map[string]bool{
		"function_definition": true,
	},
	branchKinds: map[string]bool{
		"if_statement":           true,
		"elif_clause":            true,
		"for_statement":          true,
		"while_statement":        true,
		"conditional_expression": true,
		"boolean_operator":       true,
		"with_statement":         true,
		"case_clause":            true,
	},
	nestingKinds: map[string]bool{
		"if_statement":        true,
		"for_statement":       true,
		"while_statement":     true,
		"with_statement":      true,
		"try_statement":       true,
		"match_statement":     true,
		"function_definition": true,
		"class_definition":    true,
	},
	handlerKind: "except_clause",
	paramCount: func(fnNode *tree_sitter.Node, _ []byte) int {
		return namedParamCount(fnNode, "parameters")
	},
	broadCatch:   pyBroadCatch,
	emptyHandler: pyEmptyHandler,
}

// pyBroadCatch reports whether an except_clause is bare or names the broadest
// built-in exception classes.
func pyBroadCatch(node *tree_sitter.Node, source []byte) bool {
	caught := pyCaughtType(node, source)
	if caught == "" {
		return true // bare except:
	}
	return caught == "Exception" || caught == "BaseException"
}

// pyCaughtType returns the caught expression text of an except_clause,
// or "" for a bare except.
func pyCaughtType(node *tree_sitter.Node, source []byte) string {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || child.Kind() == "block" {
			continue
		}
		// First non-block named child is the caught type (possibly
		// "Type as name" via as_pattern).
		text := child.Utf8Text(source)
		if idx := strings.Index(text, " as "); idx != -1 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}
	return ""
}

// pyEmptyHandler reports whether the handler body consists only of pass (or
// an ellipsis), i.e. the error is silently swallowed.
func pyEmptyHandler(node *tree_sitter.Node, _ []byte) bool {
	var block *tree_sitter.Node
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Kind() == "block" {
			block = child
			break
		}
	}
	if block == nil {
		return true
	}
	for i := uint(0); i < block.NamedChildCount(); i++ {
		child := block.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "pass_statement", "comment":
			continue
		case "expression_statement":
			if child.NamedChildCount() == 1 {
				if inner := child.NamedChild(0); inner != nil && inner.Kind() == "ellipsis" {
					continue
				}
			}
			return false
		default:
			return false
		}
	}
	return true
}
