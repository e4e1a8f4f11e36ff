package order

import (
	"time"

	"github.com/beevik/etree"

	"github.com/openprocure/go-orderx/pkg/datatype"
)

// childOrder lists the canonical child sequence for container elements whose
// children are written across multiple builder calls. Attachment helpers use
// it to keep the tree schema-shaped no matter which setter runs first.
// Containers built in a single call are not listed; their write order is the
// canonical order already.
var childOrder = map[string][]string{
	tagRoot: {tagContext, tagDocument, tagTransaction},
	tagContext: {
		"ram:TestIndicator",
		"ram:BusinessProcessSpecifiedDocumentContextParameter",
		"ram:GuidelineSpecifiedDocumentContextParameter",
	},
	tagDocument: {
		"ram:ID", "ram:Name", "ram:TypeCode", "ram:IssueDateTime",
		"ram:CopyIndicator", "ram:LanguageID", "ram:PurposeCode",
		"ram:RequestedResponseTypeCode", "ram:IncludedNote",
	},
	tagTransaction: {
		"ram:IncludedSupplyChainTradeLineItem",
		"ram:ApplicableHeaderTradeAgreement",
		"ram:ApplicableHeaderTradeDelivery",
		"ram:ApplicableHeaderTradeSettlement",
	},
	"ram:ApplicableHeaderTradeAgreement": {
		"ram:BuyerReference",
		"ram:SellerTradeParty", "ram:BuyerTradeParty", "ram:BuyerRequisitionerTradeParty",
		"ram:ApplicableTradeDeliveryTerms",
		"ram:SellerOrderReferencedDocument", "ram:BuyerOrderReferencedDocument",
		"ram:QuotationReferencedDocument", "ram:ContractReferencedDocument",
		"ram:RequisitionReferencedDocument", "ram:AdditionalReferencedDocument",
		"ram:BlanketOrderReferencedDocument",
		"ram:PreviousOrderChangeReferencedDocument",
		"ram:PreviousOrderResponseReferencedDocument",
		"ram:UltimateCustomerOrderReferencedDocument",
	},
	"ram:ApplicableHeaderTradeDelivery": {
		"ram:ShipToTradeParty", "ram:ShipFromTradeParty",
		"ram:RequestedDeliverySupplyChainEvent",
	},
	"ram:ApplicableHeaderTradeSettlement": {
		"ram:OrderCurrencyCode", "ram:InvoiceeTradeParty",
		"ram:SpecifiedTradeSettlementPaymentMeans",
		"ram:ApplicableTradeTax", "ram:SpecifiedTradeAllowanceCharge",
		"ram:SpecifiedTradePaymentTerms",
		"ram:SpecifiedTradeSettlementHeaderMonetarySummation",
		"ram:ReceivableSpecifiedTradeAccountingAccount",
	},
	"ram:IncludedSupplyChainTradeLineItem": {
		"ram:AssociatedDocumentLineDocument", "ram:SpecifiedTradeProduct",
		"ram:SpecifiedLineTradeAgreement", "ram:SpecifiedLineTradeDelivery",
		"ram:SpecifiedLineTradeSettlement",
	},
	"ram:AssociatedDocumentLineDocument": {
		"ram:LineID", "ram:LineStatusCode", "ram:IncludedNote",
	},
	"ram:SpecifiedTradeProduct": {
		"ram:ID", "ram:GlobalID", "ram:SellerAssignedID", "ram:BuyerAssignedID",
		"ram:Name", "ram:Description", "ram:BatchID", "ram:BrandName",
		"ram:ApplicableProductCharacteristic", "ram:DesignatedProductClassification",
		"ram:IndividualTradeProductInstance", "ram:ApplicableSupplyChainPackaging",
		"ram:OriginTradeCountry", "ram:AdditionalReferenceReferencedDocument",
	},
	"ram:SpecifiedLineTradeAgreement": {
		"ram:BuyerOrderReferencedDocument", "ram:QuotationReferencedDocument",
		"ram:AdditionalReferencedDocument",
		"ram:GrossPriceProductTradePrice", "ram:NetPriceProductTradePrice",
	},
	"ram:SpecifiedLineTradeDelivery": {
		"ram:PartialDeliveryAllowedIndicator",
		"ram:RequestedQuantity", "ram:AgreedQuantity",
		"ram:PackageQuantity", "ram:PerPackageUnitQuantity",
		"ram:ShipToTradeParty", "ram:ShipFromTradeParty",
		"ram:RequestedDeliverySupplyChainEvent",
	},
	"ram:SpecifiedLineTradeSettlement": {
		"ram:ApplicableTradeTax", "ram:SpecifiedTradeAllowanceCharge",
		"ram:SpecifiedTradeSettlementLineMonetarySummation",
		"ram:ReceivableSpecifiedTradeAccountingAccount",
	},
	"ram:RequestedDeliverySupplyChainEvent": {
		"ram:OccurrenceDateTime", "ram:OccurrenceSpecifiedPeriod",
	},
}

// partyChildOrder is shared by every trade-party role.
var partyChildOrder = []string{
	"ram:ID", "ram:GlobalID", "ram:Name", "ram:Description",
	"ram:SpecifiedLegalOrganization", "ram:DefinedTradeContact",
	"ram:PostalTradeAddress", "ram:URIUniversalCommunication",
	"ram:SpecifiedTaxRegistration",
}

func init() {
	for _, tag := range []string{
		"ram:SellerTradeParty", "ram:BuyerTradeParty", "ram:BuyerRequisitionerTradeParty",
		"ram:ShipToTradeParty", "ram:ShipFromTradeParty", "ram:InvoiceeTradeParty",
	} {
		childOrder[tag] = partyChildOrder
	}
}

const unrankedChild = 1 << 30

// rankOf returns the canonical position of childTag under parentTag, or
// unrankedChild when either side is not governed by the order table.
func rankOf(parentTag, childTag string) int {
	seq, ok := childOrder[parentTag]
	if !ok {
		return unrankedChild
	}
	for i, tag := range seq {
		if tag == childTag {
			return i
		}
	}
	return unrankedChild
}

// place moves el, which must be the most recently appended child of parent,
// to its canonical position. Same-tag siblings keep insertion order.
func place(parent, el *etree.Element) {
	rank := rankOf(parent.FullTag(), el.FullTag())
	if rank == unrankedChild {
		return
	}
	for i, tok := range parent.Child {
		sib, ok := tok.(*etree.Element)
		if !ok || sib == el {
			continue
		}
		if rankOf(parent.FullTag(), sib.FullTag()) > rank {
			parent.RemoveChild(el)
			parent.InsertChildAt(i, el)
			return
		}
	}
}

// appendChild attaches a new child after all same-tag siblings, at the
// canonical position relative to other tags.
func appendChild(parent *etree.Element, tag string) *etree.Element {
	el := parent.CreateElement(tag)
	place(parent, el)
	return el
}

// ensureChild returns the existing child of tag or attaches a new empty one.
func ensureChild(parent *etree.Element, tag string) *etree.Element {
	if el := parent.SelectElement(tag); el != nil {
		return el
	}
	return appendChild(parent, tag)
}

// replaceChild detaches every existing child of tag and attaches a fresh
// empty one. Prior children of the detached subtree are dropped.
func replaceChild(parent *etree.Element, tag string) *etree.Element {
	removeChildren(parent, tag)
	return appendChild(parent, tag)
}

func removeChildren(parent *etree.Element, tag string) {
	for _, el := range parent.SelectElements(tag) {
		parent.RemoveChild(el)
	}
}

// Leaf write helpers. Set variants replace any existing occurrence; an
// absent value removes the leaf and writes nothing.

func setLeafText(parent *etree.Element, tag, value string) {
	removeChildren(parent, tag)
	if el := datatype.Text(parent, tag, value); el != nil {
		place(parent, el)
	}
}

func setLeafID(parent *etree.Element, tag, value, scheme string) {
	removeChildren(parent, tag)
	if el := datatype.ID(parent, tag, value, scheme); el != nil {
		place(parent, el)
	}
}

func addLeafID(parent *etree.Element, tag, value, scheme string) {
	if el := datatype.ID(parent, tag, value, scheme); el != nil {
		place(parent, el)
	}
}

func setLeafIndicator(parent *etree.Element, tag string, value bool) {
	removeChildren(parent, tag)
	place(parent, datatype.Indicator(parent, tag, value))
}

func setLeafDate(parent *etree.Element, tag string, t time.Time) {
	removeChildren(parent, tag)
	if t.IsZero() {
		return
	}
	place(parent, datatype.DateTime(parent, tag, t))
}

func setLeafAmount(parent *etree.Element, tag string, v float64, attrs datatype.AmountAttrs) {
	removeChildren(parent, tag)
	place(parent, datatype.Amount(parent, tag, v, attrs))
}

func setLeafQuantity(parent *etree.Element, tag string, v float64, unit string) {
	removeChildren(parent, tag)
	place(parent, datatype.Quantity(parent, tag, v, unit))
}
