// Package internal defines the JSON shape written to --output-path when it
// names a file ending in .json.
package internal

// OutputResult is the top-level JSON document for a finished run.
type OutputResult struct {
	Language      string       `json:"language"`
	Files         []OutputFile `json:"files"`
	MutationScore float64      `json:"mutation_score"`
	MutantsTotal  int          `json:"mutants_total"`
	Killed        int          `json:"killed"`
	Survived      int          `json:"survived"`
	Unbuildable   int          `json:"unbuildable"`
	Pending       int          `json:"pending"`
	ElapsedTime   float64      `json:"elapsed_time_seconds"`
}

// OutputFile groups the mutations produced from a single source file.
type OutputFile struct {
	Filename  string     `json:"file_name"`
	Mutations []Mutation `json:"mutations"`
}

// Mutation is a single mutant in the OutputResult document.
type Mutation struct {
	Line        int    `json:"line"`
	Status      string `json:"status"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
}
