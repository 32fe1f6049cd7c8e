package interfaces

// IDocumentParser extracts plain text from an uploaded RFP document (PDF or
// DOCX), dispatching on the file name extension.

type IDocumentParser interface {
	Text(filename string, data []byte) (string, error)
}
