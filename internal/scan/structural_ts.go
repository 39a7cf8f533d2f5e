package scan

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// tsProfile maps TypeScript's grammar onto the metrics model. Catch clauses
// are untyped in practice, so only the empty-handler check applies.
var tsProfile = &structuralProfile{
	functionKinds: map[string]bool{
		"function_declaration":           true,
		"generator_function_declaration": true,
		"method_definition":              true,
	},
	branchKinds: map[string]bool{
		"if_statement":       true,
		"for_statement":      true,
		"for_in_statement":   true,
		"while_statement":    true,
		"do_statement":       true,
		"switch_case":        true,
		"ternary_expression": true,
	},
	nestingKinds: map[string]bool{
		"if_statement":         true,
		"for_statement":        true,
		"for_in_statement":     true,
		"while_statement":      true,
		"do_statement":         true,
		"switch_statement":     true,
		"try_statement":        true,
		"function_declaration": true,
		"arrow_function":       true,
	},
	booleanOps:  map[string]bool{"&&": true, "||": true, "??": true},
	handlerKind: "catch_clause",
	paramCount: func(fnNode *tree_sitter.Node, _ []byte) int {
		return namedParamCount(fnNode, "parameters")
	},
	emptyHandler: tsEmptyHandler,
}

// tsEmptyHandler reports whether a catch_clause body has no statements.
func tsEmptyHandler(node *tree_sitter.Node, _ []byte) bool {
	body := node.ChildByFieldName("body")
	if body == nil {
		return true
	}
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		if child != nil && child.Kind() != "comment" {
			return false
		}
	}
	return true
}
