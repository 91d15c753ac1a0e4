package domain

// SourceDocument is the decoded content of a file being split.
// It is immutable once loaded for a given split operation.
type SourceDocument struct {
	// Path is the absolute path the document was read from.
	Path string

	// Dir is the directory containing the source file.
	Dir string

	// BaseName is the file name without its extension.
	// "notes.txt" has BaseName "notes".
	BaseName string

	// Encoding is the name of the text encoding used to decode the file.
	Encoding string

	// Lines holds the file's lines in order, without line terminators.
	Lines []string
}

// LineCount returns the number of lines in the document.
func (d *SourceDocument) LineCount() int {
	return len(d.Lines)
}

// Slice returns the lines covered by the given part.
func (d *SourceDocument) Slice(p PartSpec) []string {
	return d.Lines[p.Start:p.End]
}
