package docext

// ElementType mirrors the categories emitted by the hosted
// document-extraction API. Local extractors produce the same set.
type ElementType string

const (
	TypeTitle         ElementType = "Title"
	TypeNarrativeText ElementType = "NarrativeText"
	TypeListItem      ElementType = "ListItem"
	TypeTable         ElementType = "Table"
	TypeHeader        ElementType = "Header"
	TypeFooter        ElementType = "Footer"
	TypeEmailAddress  ElementType = "EmailAddress"
	TypeAddress       ElementType = "Address"
	TypePhoneNumber   ElementType = "PhoneNumber"
)

// Element is a single text fragment extracted from a document.
type Element struct {
	Type        ElementType        `json:"type"`
	Text        string             `json:"text"`
	Metadata    map[string]any     `json:"metadata,omitempty"`
	PageNumber  int                `json:"pageNumber,omitempty"`
	Coordinates map[string]float64 `json:"coordinates,omitempty"`
}

// Document is the complete extraction result for one uploaded file.
type Document struct {
	Filename      string    `json:"filename"`
	FileExtension string    `json:"fileExtension"`
	FileType      string    `json:"fileType"`
	Elements      []Element `json:"elements"`
	Warnings      []string  `json:"warnings"`
}

// TotalElements reports how many elements were extracted.
func (d Document) TotalElements() int { return len(d.Elements) }

// CombinedText joins all element text with newlines.
func (d Document) CombinedText() string {
	n := 0
	for _, el := range d.Elements {
		n += len(el.Text) + 1
	}
	buf := make([]byte, 0, n)
	for i, el := range d.Elements {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, el.Text...)
	}
	return string(buf)
}

// mapCategory maps an extraction API category to our element set.
// Anything unrecognized degrades to NarrativeText.
func mapCategory(category string) ElementType {
	switch category {
	case "Title":
		return TypeTitle
	case "NarrativeText", "UncategorizedText", "Text":
		return TypeNarrativeText
	case "ListItem":
		return TypeListItem
	case "Table":
		return TypeTable
	case "Header":
		return TypeHeader
	case "Footer":
		return TypeFooter
	case "EmailAddress":
		return TypeEmailAddress
	case "Address":
		return TypeAddress
	case "PhoneNumber":
		return TypePhoneNumber
	default:
		return TypeNarrativeText
	}
}

// FileTypeName returns a human-readable file type for an extension.
func FileTypeName(ext string) string {
	switch ext {
	case ".pdf":
		return "PDF Document"
	case ".docx":
		return "Word Document (DOCX)"
	case ".doc":
		return "Word Document (DOC)"
	case ".txt":
		return "Text Document"
	case ".html", ".htm":
		return "HTML Document"
	default:
		return "Unknown Document Type"
	}
}
