package order

import (
	"time"

	"github.com/beevik/etree"

	"github.com/openprocure/go-orderx/pkg/datatype"
)

// SetDocumentBuyerReference sets the buyer reference on the header trade
// agreement.
func (b *DocumentBuilder) SetDocumentBuyerReference(reference string) *DocumentBuilder {
	setLeafText(b.headerAgreement(), "ram:BuyerReference", reference)
	return b
}

// refDoc captures the writable fields of a referenced document. Empty
// fields are suppressed.
type refDoc struct {
	issuerAssignedID string
	uriID            string
	lineID           string
	typeCode         string
	name             string
	refTypeCode      string
	issueDate        time.Time
}

// writeRefDoc fills a fresh referenced-document element.
func writeRefDoc(el *etree.Element, d refDoc) {
	datatype.Text(el, "ram:IssuerAssignedID", d.issuerAssignedID)
	datatype.Text(el, "ram:URIID", d.uriID)
	datatype.Text(el, "ram:LineID", d.lineID)
	datatype.Text(el, "ram:TypeCode", d.typeCode)
	datatype.Text(el, "ram:Name", d.name)
	datatype.Text(el, "ram:ReferenceTypeCode", d.refTypeCode)
	if !d.issueDate.IsZero() {
		datatype.FormattedDateTime(el, "ram:FormattedIssueDateTime", d.issueDate)
	}
}

// setRefDoc replaces the single occurrence of tag under parent.
func setRefDoc(parent *etree.Element, tag string, d refDoc) {
	if parent == nil {
		return
	}
	writeRefDoc(replaceChild(parent, tag), d)
}

// addRefDoc appends another occurrence of tag under parent.
func addRefDoc(parent *etree.Element, tag string, d refDoc) {
	if parent == nil {
		return
	}
	writeRefDoc(appendChild(parent, tag), d)
}

func optDate(dates []time.Time) time.Time {
	if len(dates) > 0 {
		return dates[0]
	}
	return time.Time{}
}

// Referenced-document singletons on the header trade agreement. The Add
// variants refresh the single occurrence but never create a second one.

// SetDocumentSellerOrderReferencedDocument sets the seller order reference.
func (b *DocumentBuilder) SetDocumentSellerOrderReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.headerAgreement(), "ram:SellerOrderReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// AddDocumentSellerOrderReferencedDocument updates the seller order
// reference; the document keeps a single occurrence.
func (b *DocumentBuilder) AddDocumentSellerOrderReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	return b.SetDocumentSellerOrderReferencedDocument(id, issueDate...)
}

// SetDocumentBuyerOrderReferencedDocument sets the buyer order reference.
func (b *DocumentBuilder) SetDocumentBuyerOrderReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.headerAgreement(), "ram:BuyerOrderReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// AddDocumentBuyerOrderReferencedDocument updates the buyer order reference;
// the document keeps a single occurrence.
func (b *DocumentBuilder) AddDocumentBuyerOrderReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	return b.SetDocumentBuyerOrderReferencedDocument(id, issueDate...)
}

// SetDocumentQuotationReferencedDocument sets the quotation reference.
func (b *DocumentBuilder) SetDocumentQuotationReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.headerAgreement(), "ram:QuotationReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// AddDocumentQuotationReferencedDocument updates the quotation reference;
// the document keeps a single occurrence.
func (b *DocumentBuilder) AddDocumentQuotationReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	return b.SetDocumentQuotationReferencedDocument(id, issueDate...)
}

// SetDocumentContractReferencedDocument sets the contract reference.
func (b *DocumentBuilder) SetDocumentContractReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.headerAgreement(), "ram:ContractReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// AddDocumentContractReferencedDocument updates the contract reference; the
// document keeps a single occurrence.
func (b *DocumentBuilder) AddDocumentContractReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	return b.SetDocumentContractReferencedDocument(id, issueDate...)
}

// Repeatable referenced documents. Add appends in call order; Set clears
// the group and appends one.

// AddDocumentAdditionalReferencedDocument appends an additional supporting
// document reference.
func (b *DocumentBuilder) AddDocumentAdditionalReferencedDocument(id, typeCode, uriID, name, refTypeCode string, issueDate ...time.Time) *DocumentBuilder {
	addRefDoc(b.headerAgreement(), "ram:AdditionalReferencedDocument", refDoc{
		issuerAssignedID: id, typeCode: typeCode, uriID: uriID,
		name: name, refTypeCode: refTypeCode, issueDate: optDate(issueDate),
	})
	return b
}

// SetDocumentAdditionalReferencedDocument clears the additional references
// and sets a single one.
func (b *DocumentBuilder) SetDocumentAdditionalReferencedDocument(id, typeCode, uriID, name, refTypeCode string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.headerAgreement(), "ram:AdditionalReferencedDocument", refDoc{
		issuerAssignedID: id, typeCode: typeCode, uriID: uriID,
		name: name, refTypeCode: refTypeCode, issueDate: optDate(issueDate),
	})
	return b
}

// AddDocumentUltimateCustomerOrderReferencedDocument appends an ultimate
// customer order reference.
func (b *DocumentBuilder) AddDocumentUltimateCustomerOrderReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	addRefDoc(b.headerAgreement(), "ram:UltimateCustomerOrderReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// SetDocumentUltimateCustomerOrderReferencedDocument clears the ultimate
// customer order references and sets a single one.
func (b *DocumentBuilder) SetDocumentUltimateCustomerOrderReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.headerAgreement(), "ram:UltimateCustomerOrderReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// AddDocumentBlanketOrderReferencedDocument appends a blanket order
// reference.
func (b *DocumentBuilder) AddDocumentBlanketOrderReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	addRefDoc(b.headerAgreement(), "ram:BlanketOrderReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// SetDocumentBlanketOrderReferencedDocument clears the blanket order
// references and sets a single one.
func (b *DocumentBuilder) SetDocumentBlanketOrderReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.headerAgreement(), "ram:BlanketOrderReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// AddDocumentPreviousOrderChangeReferencedDocument appends a previous order
// change reference.
func (b *DocumentBuilder) AddDocumentPreviousOrderChangeReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	addRefDoc(b.headerAgreement(), "ram:PreviousOrderChangeReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// SetDocumentPreviousOrderChangeReferencedDocument clears the previous order
// change references and sets a single one.
func (b *DocumentBuilder) SetDocumentPreviousOrderChangeReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.headerAgreement(), "ram:PreviousOrderChangeReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// AddDocumentPreviousOrderResponseReferencedDocument appends a previous
// order response reference.
func (b *DocumentBuilder) AddDocumentPreviousOrderResponseReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	addRefDoc(b.headerAgreement(), "ram:PreviousOrderResponseReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// SetDocumentPreviousOrderResponseReferencedDocument clears the previous
// order response references and sets a single one.
func (b *DocumentBuilder) SetDocumentPreviousOrderResponseReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.headerAgreement(), "ram:PreviousOrderResponseReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// AddDocumentRequisitionReferencedDocument appends a requisition reference.
func (b *DocumentBuilder) AddDocumentRequisitionReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	addRefDoc(b.headerAgreement(), "ram:RequisitionReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// SetDocumentRequisitionReferencedDocument clears the requisition references
// and sets a single one.
func (b *DocumentBuilder) SetDocumentRequisitionReferencedDocument(id string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.headerAgreement(), "ram:RequisitionReferencedDocument", refDoc{issuerAssignedID: id, issueDate: optDate(issueDate)})
	return b
}

// SetDocumentDeliveryTerms replaces the trade delivery terms. Location id
// and name form the relevant trade location; both empty suppress it.
func (b *DocumentBuilder) SetDocumentDeliveryTerms(code, description, functionCode, locationID, locationName string) *DocumentBuilder {
	terms := replaceChild(b.headerAgreement(), "ram:ApplicableTradeDeliveryTerms")
	datatype.Text(terms, "ram:DeliveryTypeCode", code)
	datatype.Text(terms, "ram:Description", description)
	datatype.Text(terms, "ram:FunctionCode", functionCode)
	if locationID != "" || locationName != "" {
		loc := terms.CreateElement("ram:RelevantTradeLocation")
		datatype.Text(loc, "ram:ID", locationID)
		datatype.Text(loc, "ram:Name", locationName)
	}
	return b
}
