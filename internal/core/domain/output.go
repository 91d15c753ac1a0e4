package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// partSuffixPattern matches file names produced by PartPath.
var partSuffixPattern = regexp.MustCompile(`_part[0-9]+\.txt$`)

// OutputFile is a part's destination path and the range written to it.
type OutputFile struct {
	// Index is the zero-based part index.
	Index int `json:"index"`

	// Path is the file the part is written to.
	Path string `json:"path"`

	// Start and End are the half-open line range copied from the source.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Lines returns the number of lines written to the file.
func (o OutputFile) Lines() int {
	return o.End - o.Start
}

// PartPath returns {dir}/{baseName}_part{index+1}.txt.
func PartPath(dir, baseName string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_part%d.txt", baseName, index+1))
}

// BaseName returns the file name of path without its extension.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// IsPartFile reports whether name looks like an output written by a split.
func IsPartFile(name string) bool {
	return partSuffixPattern.MatchString(filepath.Base(name))
}

// SplitRequest describes a split to perform.
type SplitRequest struct {
	// Path is the source file.
	Path string

	// Parts is the number of output files to produce.
	Parts int

	// OutputDir overrides where parts are written.
	// Empty uses the configured output directory, then the source directory.
	OutputDir string

	// Encoding overrides the configured source encoding.
	Encoding string

	// StrictParts rejects more parts than lines even when the
	// setting is off.
	StrictParts bool

	// Rollback removes written parts on failure even when the
	// setting is off.
	Rollback bool
}

// SplitPlan describes a split without performing it.
type SplitPlan struct {
	SourcePath string       `json:"source_path"`
	Encoding   string       `json:"encoding"`
	TotalLines int          `json:"total_lines"`
	OutputDir  string       `json:"output_dir"`
	Outputs    []OutputFile `json:"outputs"`
}

// SplitResult describes a completed split.
type SplitResult struct {
	// RunID identifies the run in history.
	RunID string `json:"run_id"`

	SourcePath string       `json:"source_path"`
	TotalLines int          `json:"total_lines"`
	Outputs    []OutputFile `json:"outputs"`

	// Duration is how long reading and writing took.
	Duration time.Duration `json:"duration"`
}

// Paths returns the output file paths in part order.
func (r *SplitResult) Paths() []string {
	paths := make([]string, len(r.Outputs))
	for i := range r.Outputs {
		paths[i] = r.Outputs[i].Path
	}
	return paths
}
