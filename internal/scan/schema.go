package scan

// --- Enums ---

// Language identifies a programming language detected for a source file.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJava       Language = "java"
	LangCSharp     Language = "csharp"
	LangCpp        Language = "cpp"
	LangGo         Language = "go"
	LangRust       Language = "rust"
	LangPHP        Language = "php"
	LangRuby       Language = "ruby"
	LangSwift      Language = "swift"
	LangUnknown    Language = "unknown"
)

// StructuralLanguages are the languages with tree-sitter grammars registered,
// i.e. the ones that get function-level quality checks and complexity metrics.
var StructuralLanguages = []Language{LangPython, LangGo, LangTypeScript, LangRust}

// Severity orders findings from worst to mildest.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank returns an integer ordering for severities (higher is worse).
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Category classifies an issue by the kind of risk it represents.
type Category string

const (
	CategorySecurity    Category = "security"
	CategoryPerformance Category = "performance"
	CategoryQuality     Category = "quality"
)

// ArchitectureIssueKind classifies codebase-wide structural findings.
type ArchitectureIssueKind string

const (
	ArchCircularDependency ArchitectureIssueKind = "circular-dependency"
	ArchHighFanOut         ArchitectureIssueKind = "high-fan-out"
)

// TestingGapKind classifies coverage findings.
type TestingGapKind string

const (
	GapLowCoverageRatio TestingGapKind = "low-coverage-ratio"
	GapMissingTest      TestingGapKind = "missing-test-for-file"
)

// --- Models ---

// Issue is a single finding attached to one file.
type Issue struct {
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	Line     int      `json:"line"` // 1-based, best effort; 0 if unknown
	Message  string   `json:"message"`
	Rule     string   `json:"rule,omitempty"` // normalized detector rule id
}

// ComplexityMetrics summarizes control-flow complexity for one file.
// All-zero for languages without structural support.
type ComplexityMetrics struct {
	Cyclomatic int `json:"cyclomatic"` // summed per-function, each >= 1
	Cognitive  int `json:"cognitive"`  // nesting-weighted
	MaxNesting int `json:"maxNesting"`
}

// FileAnalysis is the complete per-file result. Immutable once constructed.
type FileAnalysis struct {
	Path              string            `json:"path"` // relative to the scan root
	Language          Language          `json:"language"`
	SizeBytes         int               `json:"sizeBytes"`
	LineCount         int               `json:"lineCount"`
	SecurityIssues    []Issue           `json:"securityIssues"`
	PerformanceIssues []Issue           `json:"performanceIssues"`
	QualityIssues     []Issue           `json:"qualityIssues"`
	Complexity        ComplexityMetrics `json:"complexity"`
	Dependencies      []string          `json:"dependencies"` // deduplicated import tokens
	DocScore          float64           `json:"docScore"`     // [0, 10]
}

// DuplicateBlock records a run of identical non-blank lines shared by two files.
type DuplicateBlock struct {
	FileA      string  `json:"fileA"`
	StartA     int     `json:"startA"` // 1-based
	FileB      string  `json:"fileB"`
	StartB     int     `json:"startB"` // 1-based
	Length     int     `json:"length"`
	Similarity float64 `json:"similarity"` // 1.0 for exact matches
}

// ArchitectureIssue is a codebase-wide structural finding.
type ArchitectureIssue struct {
	Kind     ArchitectureIssueKind `json:"kind"`
	Severity Severity              `json:"severity"`
	Message  string                `json:"message"`
	Files    []string              `json:"files"` // involved paths, in order for cycles
}

// TestingGap is a coverage finding.
type TestingGap struct {
	Kind     TestingGapKind `json:"kind"`
	Severity Severity       `json:"severity"`
	Message  string         `json:"message"`
	File     string         `json:"file,omitempty"`
}

// CodebaseAnalysis is the root aggregate returned by one scan. The JSON shape
// is the stable schema consumed by reporting layers.
type CodebaseAnalysis struct {
	TotalFiles         int                     `json:"totalFiles"`
	Languages          map[Language]int        `json:"languages"`
	FileAnalyses       map[string]FileAnalysis `json:"fileAnalyses"`
	Relationships      map[string][]string     `json:"relationships"` // path -> depends-on paths
	DuplicateBlocks    []DuplicateBlock        `json:"duplicateBlocks"`
	ArchitectureIssues []ArchitectureIssue     `json:"architectureIssues"`
	TestingGaps        []TestingGap            `json:"testingGaps"`
	Scores             map[string]float64      `json:"scores"` // security, performance, maintainability, documentation, complexity, overall
	Incomplete         bool                    `json:"incomplete,omitempty"`
}
