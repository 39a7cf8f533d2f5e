package scan

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// rsProfile maps Rust's grammar onto the metrics model. Errors are values in
// Rust, so the handler checks do not apply.
var rsProfile = &structuralProfile{
	functionKinds: map[string]bool{
		"function_item": true,
	},
	branchKinds: map[string]bool{
		"if_expression":    true,
		"while_expression": true,
		"loop_expression":  true,
		"for_expression":   true,
		"match_arm":        true,
	},
	nestingKinds: map[string]bool{
		"if_expression":      true,
		"while_expression":   true,
		"loop_expression":    true,
		"for_expression":     true,
		"match_expression":   true,
		"closure_expression": true,
	},
	booleanOps: map[string]bool{"&&": true, "||": true},
	paramCount: rsParamCount,
}

// rsParamCount counts declared parameters, excluding the receiver.
func rsParamCount(fnNode *tree_sitter.Node, _ []byte) int {
	params := fnNode.ChildByFieldName("parameters")
	if params == nil {
		return 0
	}
	count := 0
	for i := uint(0); i < params.NamedChildCount(); i++ {
		child := params.NamedChild(i)
		if child == nil || child.Kind() == "self_parameter" {
			continue
		}
		count++
	}
	return count
}
