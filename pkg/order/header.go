package order

import (
	"time"

	"github.com/beevik/etree"

	"github.com/openprocure/go-orderx/pkg/datatype"
)

// SetIsTestDocument marks the document as a test transmission in the
// exchanged document context.
func (b *DocumentBuilder) SetIsTestDocument(test bool) *DocumentBuilder {
	setLeafIndicator(b.context, "ram:TestIndicator", test)
	return b
}

// SetDocumentBusinessProcess sets the business process context parameter.
// An empty id removes the parameter entirely.
func (b *DocumentBuilder) SetDocumentBusinessProcess(id string) *DocumentBuilder {
	removeChildren(b.context, "ram:BusinessProcessSpecifiedDocumentContextParameter")
	if id != "" {
		param := appendChild(b.context, "ram:BusinessProcessSpecifiedDocumentContextParameter")
		setLeafText(param, "ram:ID", id)
	}
	return b
}

// SetDocumentInformation sets the core exchanged document fields: document
// id, type code (220 for an order), issue date and document name. A zero
// issue date and empty strings suppress the respective elements.
func (b *DocumentBuilder) SetDocumentInformation(id, typeCode string, issueDate time.Time, name string) *DocumentBuilder {
	setLeafText(b.document, "ram:ID", id)
	setLeafText(b.document, "ram:Name", name)
	setLeafText(b.document, "ram:TypeCode", typeCode)
	setLeafDate(b.document, "ram:IssueDateTime", issueDate)
	return b
}

// SetDocumentCopyIndicator marks the document as a copy of an original.
func (b *DocumentBuilder) SetDocumentCopyIndicator(isCopy bool) *DocumentBuilder {
	setLeafIndicator(b.document, "ram:CopyIndicator", isCopy)
	return b
}

// SetDocumentLanguage sets the document language code (ISO 639-1).
func (b *DocumentBuilder) SetDocumentLanguage(code string) *DocumentBuilder {
	setLeafText(b.document, "ram:LanguageID", code)
	return b
}

// SetDocumentPurpose sets the purpose code (UNTDID 1225, e.g. 9 = original,
// 7 = duplicate).
func (b *DocumentBuilder) SetDocumentPurpose(code string) *DocumentBuilder {
	setLeafText(b.document, "ram:PurposeCode", code)
	return b
}

// SetDocumentRequestedResponse sets the requested response type code
// (AC = order response expected).
func (b *DocumentBuilder) SetDocumentRequestedResponse(code string) *DocumentBuilder {
	setLeafText(b.document, "ram:RequestedResponseTypeCode", code)
	return b
}

// AddDocumentNote appends a free-text note to the exchanged document.
// Insertion order is preserved; each note is independent. Empty contentCode
// and subjectCode suppress the respective sub-elements.
func (b *DocumentBuilder) AddDocumentNote(content, contentCode, subjectCode string) *DocumentBuilder {
	addNote(b.document, content, contentCode, subjectCode)
	return b
}

// addNote attaches an IncludedNote; shared by the header and line level.
// A note with no content at all is not attached.
func addNote(parent *etree.Element, content, contentCode, subjectCode string) {
	if content == "" && contentCode == "" && subjectCode == "" {
		return
	}
	note := appendChild(parent, "ram:IncludedNote")
	datatype.Text(note, "ram:ContentCode", contentCode)
	datatype.Text(note, "ram:Content", content)
	datatype.Text(note, "ram:SubjectCode", subjectCode)
}
