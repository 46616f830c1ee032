package output

// Mode selects how command output is rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"     // text on a TTY, markdown otherwise
	ModeText     Mode = "text"     // styled terminal output
	ModeMarkdown Mode = "markdown" // plain markdown for pipes and agents
	ModeJSON     Mode = "json"     // machine-readable
)

// LintSummary holds totals for a lint run.
type LintSummary struct {
	FilesAnalyzed   int `json:"files_analyzed"`
	FilesWithIssues int `json:"files_with_issues"`
	TotalIssues     int `json:"total_issues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Info            int `json:"info"`
	Hints           int `json:"hints"`
	Baselined       int `json:"baselined,omitempty"`
	Skipped         int `json:"skipped,omitempty"`
}

// LintDiagnostic is one issue in JSON output.
type LintDiagnostic struct {
	RuleID     string `json:"rule_id"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Identifier string `json:"identifier"`
	Category   string `json:"category"`
	Kind       string `json:"kind,omitempty"`
	Reason     string `json:"reason"`
	Suggestion string `json:"suggestion,omitempty"`
	DocURL     string `json:"doc_url,omitempty"`
}

// LintFileResult groups the diagnostics of one file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintOutput is the JSON document written by `namelint lint`.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
}

// CheckViolation is one failed step in JSON output of `namelint check`.
type CheckViolation struct {
	Kind       string   `json:"kind"`
	Slot       string   `json:"slot,omitempty"`
	Tokens     []string `json:"tokens,omitempty"`
	Reason     string   `json:"reason"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// CheckOutput is the JSON document written by `namelint check`.
type CheckOutput struct {
	Identifier string           `json:"identifier"`
	Category   string           `json:"category"`
	Tokens     []string         `json:"tokens"`
	Pattern    string           `json:"pattern,omitempty"`
	OK         bool             `json:"ok"`
	Violations []CheckViolation `json:"violations"`
}

// RunInfo is a stored lint run in JSON output.
type RunInfo struct {
	ID          string `json:"id"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at,omitempty"`
	Files       int    `json:"files"`
	Issues      int    `json:"issues"`
}

// BaselineOutput is the JSON document written by `namelint baseline show`.
type BaselineOutput struct {
	StatePath string    `json:"state_path"`
	Entries   int       `json:"entries"`
	Runs      []RunInfo `json:"runs"`
}
