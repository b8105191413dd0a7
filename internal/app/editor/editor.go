// Package editor implements the document mutation operations. Every
// operation is a pure function: it clones the document, applies the change
// to the clone, and returns it. The input document is never touched.
//
// An out-of-bounds paragraph index is not an error here: the operation
// returns an unmodified copy and applied=false. The dispatch layer decides
// whether that is a silent no-op or, in strict mode, a validation error.
package editor

import "deskpilot/internal/domain"

// SetFontSize sets the fontSize mark on every text run of the paragraph.
func SetFontSize(doc domain.Document, index int, size float64) (domain.Document, bool) {
	next := doc.Clone()
	if index < 0 || index >= len(next) {
		return next, false
	}

	children := next[index].Children
	for i := range children {
		if children[i].Marks == nil {
			children[i].Marks = make(map[string]any, 1)
		}
		children[i].Marks[domain.MarkFontSize] = size
	}

	return next, true
}

// ToggleBold flips the bold mark on every text run of the paragraph.
// An absent mark counts as false, so the first toggle sets true.
func ToggleBold(doc domain.Document, index int) (domain.Document, bool) {
	next := doc.Clone()
	if index < 0 || index >= len(next) {
		return next, false
	}

	children := next[index].Children
	for i := range children {
		if children[i].Marks == nil {
			children[i].Marks = make(map[string]any, 1)
		}
		bold, _ := children[i].Marks[domain.MarkBold].(bool)
		children[i].Marks[domain.MarkBold] = !bold
	}

	return next, true
}

// AlignParagraph sets the block alignment of the paragraph. The alignment
// value is validated by the caller.
func AlignParagraph(doc domain.Document, index int, alignment domain.Alignment) (domain.Document, bool) {
	next := doc.Clone()
	if index < 0 || index >= len(next) {
		return next, false
	}

	next[index].TextAlign = alignment
	return next, true
}
