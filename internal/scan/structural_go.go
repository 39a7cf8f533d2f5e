package scan

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// goProfile maps Go's grammar onto the metrics model. Go has no exception
// handlers, so the handler checks are absent by construction.
var goProfile = &structuralProfile{
	functionKinds: map[string]bool{
		"function_declaration": true,
		"method_declaration":   true,
	},
	branchKinds: map[string]bool{
		"if_statement":       true,
		"for_statement":      true,
		"expression_case":    true,
		"type_case":          true,
		"communication_case": true,
	},
	nestingKinds: map[string]bool{
		"if_statement":                true,
		"for_statement":               true,
		"expression_switch_statement": true,
		"type_switch_statement":       true,
		"select_statement":            true,
		"func_literal":                true,
	},
	booleanOps: map[string]bool{"&&": true, "||": true},
	paramCount: goParamCount,
}

// goParamCount counts declared parameter names. A parameter_declaration can
// declare several names sharing one type ("a, b int"), so identifiers are
// counted rather than declarations.
func goParamCount(fnNode *tree_sitter.Node, _ []byte) int {
	params := fnNode.ChildByFieldName("parameters")
	if params == nil {
		return 0
	}
	count := 0
	for i := uint(0); i < params.NamedChildCount(); i++ {
		decl := params.NamedChild(i)
		if decl == nil {
			continue
		}
		names := 0
		for j := uint(0); j < decl.NamedChildCount(); j++ {
			child := decl.NamedChild(j)
			if child != nil && child.Kind() == "identifier" {
				names++
			}
		}
		if names == 0 {
			names = 1 // unnamed parameter, type only
		}
		count += names
	}
	return count
}
