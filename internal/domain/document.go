package domain

// Alignment is a paragraph-level (block) alignment value.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// ParseAlignment validates a caller-supplied alignment string.
func ParseAlignment(s string) (Alignment, bool) {
	switch Alignment(s) {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return Alignment(s), true
	}
	return "", false
}

// Mark keys used on text runs.
const (
	MarkBold     = "bold"
	MarkFontSize = "fontSize"
)

// TextRun is an inline node: a piece of text plus its inline styling marks
// (bold, fontSize, ...). Marks is nil until a style is applied.
type TextRun struct {
	Text  string         `json:"text"`
	Marks map[string]any `json:"marks,omitempty"`
}

// Paragraph is a block node holding styled text runs.
type Paragraph struct {
	Children  []TextRun `json:"children"`
	TextAlign Alignment `json:"textAlign,omitempty"`
}

// Document is an ordered sequence of paragraphs, 0-indexed. Paragraph
// indices are only meaningful within one snapshot: every mutation produces
// a fresh copy, so a caller holding an old snapshot never observes changes.
type Document []Paragraph

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for i, p := range d {
		np := Paragraph{TextAlign: p.TextAlign}
		if p.Children != nil {
			np.Children = make([]TextRun, len(p.Children))
			for j, r := range p.Children {
				np.Children[j] = r.clone()
			}
		}
		out[i] = np
	}
	return out
}

func (r TextRun) clone() TextRun {
	nr := TextRun{Text: r.Text}
	if r.Marks != nil {
		nr.Marks = make(map[string]any, len(r.Marks))
		for k, v := range r.Marks {
			nr.Marks[k] = v
		}
	}
	return nr
}
