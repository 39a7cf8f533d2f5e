package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDependencies_Python(t *testing.T) {
	content := `import os
import os
from collections import defaultdict
from app.models import User
`
	deps := ExtractDependencies(content, LangPython)
	assert.Equal(t, []string{"collections", "app.models", "os"}, deps)
}

func TestExtractDependencies_Go(t *testing.T) {
	content := `package main

import "fmt"

import (
	"context"
	_ "embed"
	yaml "gopkg.in/yaml.v3"
)
`
	deps := ExtractDependencies(content, LangGo)
	assert.Equal(t, []string{"fmt", "context", "embed", "gopkg.in/yaml.v3"}, deps)
}

func TestExtractDependencies_TypeScript(t *testing.T) {
	content := `import { api } from "./api";
import "./styles.css";
export { helper } from "../helper";
`
	deps := ExtractDependencies(content, LangTypeScript)
	assert.Contains(t, deps, "./api")
	assert.Contains(t, deps, "./styles.css")
	assert.Contains(t, deps, "../helper")
}

func TestExtractDependencies_Rust(t *testing.T) {
	content := "use std::collections::HashMap;\npub use crate::model;\nextern crate serde;\n"
	deps := ExtractDependencies(content, LangRust)
	assert.Contains(t, deps, "std::collections::HashMap")
	assert.Contains(t, deps, "crate::model")
	assert.Contains(t, deps, "serde")
}

func TestExtractDependencies_Unknown(t *testing.T) {
	assert.Nil(t, ExtractDependencies("import anything\n", LangUnknown))
}
