package order

import (
	"github.com/beevik/etree"

	"github.com/openprocure/go-orderx/pkg/datatype"
)

// Trade parties are structurally identical across roles; the role only
// decides the tag and the attachment parent. Every public role family
// delegates to the helpers below. A nil parent means a position-scoped
// resolver already recorded an error; the helpers then write nothing.

// setParty replaces the whole party subtree of tag under parent.
// An empty name or description suppresses the dependent element while a
// non-empty id is still emitted, and vice versa.
func setParty(parent *etree.Element, tag, name, id, description string) {
	if parent == nil {
		return
	}
	party := replaceChild(parent, tag)
	datatype.Text(party, "ram:ID", id)
	datatype.Text(party, "ram:Name", name)
	datatype.Text(party, "ram:Description", description)
}

// ensureParty returns the existing party of tag or attaches an empty one,
// so sub-structure setters work regardless of call order.
func ensureParty(parent *etree.Element, tag string) *etree.Element {
	if parent == nil {
		return nil
	}
	return ensureChild(parent, tag)
}

func partyAddGlobalID(party *etree.Element, id, scheme string) {
	if party == nil {
		return
	}
	addLeafID(party, "ram:GlobalID", id, scheme)
}

func partyAddTaxRegistration(party *etree.Element, scheme, id string) {
	if party == nil || id == "" {
		return
	}
	reg := appendChild(party, "ram:SpecifiedTaxRegistration")
	datatype.ID(reg, "ram:ID", id, scheme)
}

func partySetAddress(party *etree.Element, line1, line2, line3, postcode, city, country, subdivision string) {
	if party == nil {
		return
	}
	addr := replaceChild(party, "ram:PostalTradeAddress")
	datatype.Text(addr, "ram:PostcodeCode", postcode)
	datatype.Text(addr, "ram:LineOne", line1)
	datatype.Text(addr, "ram:LineTwo", line2)
	datatype.Text(addr, "ram:LineThree", line3)
	datatype.Text(addr, "ram:CityName", city)
	datatype.Text(addr, "ram:CountryID", country)
	datatype.Text(addr, "ram:CountrySubDivisionName", subdivision)
}

func partySetLegalOrganisation(party *etree.Element, id, scheme, tradingName string) {
	if party == nil {
		return
	}
	org := replaceChild(party, "ram:SpecifiedLegalOrganization")
	datatype.ID(org, "ram:ID", id, scheme)
	datatype.Text(org, "ram:TradingBusinessName", tradingName)
}

func partyContact(contact *etree.Element, person, department, phone, fax, email string) {
	datatype.Text(contact, "ram:PersonName", person)
	datatype.Text(contact, "ram:DepartmentName", department)
	if phone != "" {
		tel := contact.CreateElement("ram:TelephoneUniversalCommunication")
		datatype.Text(tel, "ram:CompleteNumber", phone)
	}
	if fax != "" {
		f := contact.CreateElement("ram:FaxUniversalCommunication")
		datatype.Text(f, "ram:CompleteNumber", fax)
	}
	if email != "" {
		mail := contact.CreateElement("ram:EmailURIUniversalCommunication")
		datatype.Text(mail, "ram:URIID", email)
	}
}

func partySetContact(party *etree.Element, person, department, phone, fax, email string) {
	if party == nil {
		return
	}
	partyContact(replaceChild(party, "ram:DefinedTradeContact"), person, department, phone, fax, email)
}

func partyAddContact(party *etree.Element, person, department, phone, fax, email string) {
	if party == nil {
		return
	}
	partyContact(appendChild(party, "ram:DefinedTradeContact"), person, department, phone, fax, email)
}

func partySetElectronicAddress(party *etree.Element, scheme, value string) {
	if party == nil {
		return
	}
	removeChildren(party, "ram:URIUniversalCommunication")
	if value == "" {
		return
	}
	comm := appendChild(party, "ram:URIUniversalCommunication")
	datatype.ID(comm, "ram:URIID", value, scheme)
}

// Seller (header trade agreement).

// SetDocumentSeller sets the seller party. The whole seller subtree is
// replaced; address, contacts and registrations must be re-added afterwards.
func (b *DocumentBuilder) SetDocumentSeller(name, id, description string) *DocumentBuilder {
	setParty(b.headerAgreement(), "ram:SellerTradeParty", name, id, description)
	return b
}

// AddDocumentSellerGlobalID appends a scheme-qualified global id to the
// seller. Call order is emission order.
func (b *DocumentBuilder) AddDocumentSellerGlobalID(id, scheme string) *DocumentBuilder {
	partyAddGlobalID(ensureParty(b.headerAgreement(), "ram:SellerTradeParty"), id, scheme)
	return b
}

// AddDocumentSellerTaxRegistration appends a tax registration (scheme FC or
// VA) to the seller.
func (b *DocumentBuilder) AddDocumentSellerTaxRegistration(scheme, id string) *DocumentBuilder {
	partyAddTaxRegistration(ensureParty(b.headerAgreement(), "ram:SellerTradeParty"), scheme, id)
	return b
}

// SetDocumentSellerAddress replaces the seller postal address.
func (b *DocumentBuilder) SetDocumentSellerAddress(line1, line2, line3, postcode, city, country, subdivision string) *DocumentBuilder {
	partySetAddress(ensureParty(b.headerAgreement(), "ram:SellerTradeParty"), line1, line2, line3, postcode, city, country, subdivision)
	return b
}

// SetDocumentSellerLegalOrganisation replaces the seller legal organization.
func (b *DocumentBuilder) SetDocumentSellerLegalOrganisation(id, scheme, tradingName string) *DocumentBuilder {
	partySetLegalOrganisation(ensureParty(b.headerAgreement(), "ram:SellerTradeParty"), id, scheme, tradingName)
	return b
}

// SetDocumentSellerContact replaces the first seller contact.
func (b *DocumentBuilder) SetDocumentSellerContact(person, department, phone, fax, email string) *DocumentBuilder {
	partySetContact(ensureParty(b.headerAgreement(), "ram:SellerTradeParty"), person, department, phone, fax, email)
	return b
}

// AddDocumentSellerContact appends an independent seller contact.
func (b *DocumentBuilder) AddDocumentSellerContact(person, department, phone, fax, email string) *DocumentBuilder {
	partyAddContact(ensureParty(b.headerAgreement(), "ram:SellerTradeParty"), person, department, phone, fax, email)
	return b
}

// SetDocumentSellerElectronicAddress replaces the seller electronic address.
func (b *DocumentBuilder) SetDocumentSellerElectronicAddress(scheme, value string) *DocumentBuilder {
	partySetElectronicAddress(ensureParty(b.headerAgreement(), "ram:SellerTradeParty"), scheme, value)
	return b
}

// Buyer (header trade agreement).

// SetDocumentBuyer sets the buyer party, replacing the whole subtree.
func (b *DocumentBuilder) SetDocumentBuyer(name, id, description string) *DocumentBuilder {
	setParty(b.headerAgreement(), "ram:BuyerTradeParty", name, id, description)
	return b
}

// AddDocumentBuyerGlobalID appends a scheme-qualified global id to the buyer.
func (b *DocumentBuilder) AddDocumentBuyerGlobalID(id, scheme string) *DocumentBuilder {
	partyAddGlobalID(ensureParty(b.headerAgreement(), "ram:BuyerTradeParty"), id, scheme)
	return b
}

// AddDocumentBuyerTaxRegistration appends a tax registration to the buyer.
func (b *DocumentBuilder) AddDocumentBuyerTaxRegistration(scheme, id string) *DocumentBuilder {
	partyAddTaxRegistration(ensureParty(b.headerAgreement(), "ram:BuyerTradeParty"), scheme, id)
	return b
}

// SetDocumentBuyerAddress replaces the buyer postal address.
func (b *DocumentBuilder) SetDocumentBuyerAddress(line1, line2, line3, postcode, city, country, subdivision string) *DocumentBuilder {
	partySetAddress(ensureParty(b.headerAgreement(), "ram:BuyerTradeParty"), line1, line2, line3, postcode, city, country, subdivision)
	return b
}

// SetDocumentBuyerLegalOrganisation replaces the buyer legal organization.
func (b *DocumentBuilder) SetDocumentBuyerLegalOrganisation(id, scheme, tradingName string) *DocumentBuilder {
	partySetLegalOrganisation(ensureParty(b.headerAgreement(), "ram:BuyerTradeParty"), id, scheme, tradingName)
	return b
}

// SetDocumentBuyerContact replaces the first buyer contact.
func (b *DocumentBuilder) SetDocumentBuyerContact(person, department, phone, fax, email string) *DocumentBuilder {
	partySetContact(ensureParty(b.headerAgreement(), "ram:BuyerTradeParty"), person, department, phone, fax, email)
	return b
}

// AddDocumentBuyerContact appends an independent buyer contact.
func (b *DocumentBuilder) AddDocumentBuyerContact(person, department, phone, fax, email string) *DocumentBuilder {
	partyAddContact(ensureParty(b.headerAgreement(), "ram:BuyerTradeParty"), person, department, phone, fax, email)
	return b
}

// SetDocumentBuyerElectronicAddress replaces the buyer electronic address.
func (b *DocumentBuilder) SetDocumentBuyerElectronicAddress(scheme, value string) *DocumentBuilder {
	partySetElectronicAddress(ensureParty(b.headerAgreement(), "ram:BuyerTradeParty"), scheme, value)
	return b
}

// Buyer requisitioner (header trade agreement).

// SetDocumentRequisitioner sets the buyer requisitioner party.
func (b *DocumentBuilder) SetDocumentRequisitioner(name, id, description string) *DocumentBuilder {
	setParty(b.headerAgreement(), "ram:BuyerRequisitionerTradeParty", name, id, description)
	return b
}

// AddDocumentRequisitionerGlobalID appends a global id to the requisitioner.
func (b *DocumentBuilder) AddDocumentRequisitionerGlobalID(id, scheme string) *DocumentBuilder {
	partyAddGlobalID(ensureParty(b.headerAgreement(), "ram:BuyerRequisitionerTradeParty"), id, scheme)
	return b
}

// AddDocumentRequisitionerTaxRegistration appends a tax registration to the
// requisitioner.
func (b *DocumentBuilder) AddDocumentRequisitionerTaxRegistration(scheme, id string) *DocumentBuilder {
	partyAddTaxRegistration(ensureParty(b.headerAgreement(), "ram:BuyerRequisitionerTradeParty"), scheme, id)
	return b
}

// SetDocumentRequisitionerAddress replaces the requisitioner postal address.
func (b *DocumentBuilder) SetDocumentRequisitionerAddress(line1, line2, line3, postcode, city, country, subdivision string) *DocumentBuilder {
	partySetAddress(ensureParty(b.headerAgreement(), "ram:BuyerRequisitionerTradeParty"), line1, line2, line3, postcode, city, country, subdivision)
	return b
}

// SetDocumentRequisitionerLegalOrganisation replaces the requisitioner legal
// organization.
func (b *DocumentBuilder) SetDocumentRequisitionerLegalOrganisation(id, scheme, tradingName string) *DocumentBuilder {
	partySetLegalOrganisation(ensureParty(b.headerAgreement(), "ram:BuyerRequisitionerTradeParty"), id, scheme, tradingName)
	return b
}

// SetDocumentRequisitionerContact replaces the first requisitioner contact.
func (b *DocumentBuilder) SetDocumentRequisitionerContact(person, department, phone, fax, email string) *DocumentBuilder {
	partySetContact(ensureParty(b.headerAgreement(), "ram:BuyerRequisitionerTradeParty"), person, department, phone, fax, email)
	return b
}

// AddDocumentRequisitionerContact appends a requisitioner contact.
func (b *DocumentBuilder) AddDocumentRequisitionerContact(person, department, phone, fax, email string) *DocumentBuilder {
	partyAddContact(ensureParty(b.headerAgreement(), "ram:BuyerRequisitionerTradeParty"), person, department, phone, fax, email)
	return b
}

// SetDocumentRequisitionerElectronicAddress replaces the requisitioner
// electronic address.
func (b *DocumentBuilder) SetDocumentRequisitionerElectronicAddress(scheme, value string) *DocumentBuilder {
	partySetElectronicAddress(ensureParty(b.headerAgreement(), "ram:BuyerRequisitionerTradeParty"), scheme, value)
	return b
}

// Ship-to (header trade delivery).

// SetDocumentShipTo sets the ship-to party.
func (b *DocumentBuilder) SetDocumentShipTo(name, id, description string) *DocumentBuilder {
	setParty(b.headerDelivery(), "ram:ShipToTradeParty", name, id, description)
	return b
}

// AddDocumentShipToGlobalID appends a global id to the ship-to party.
func (b *DocumentBuilder) AddDocumentShipToGlobalID(id, scheme string) *DocumentBuilder {
	partyAddGlobalID(ensureParty(b.headerDelivery(), "ram:ShipToTradeParty"), id, scheme)
	return b
}

// AddDocumentShipToTaxRegistration appends a tax registration to the
// ship-to party.
func (b *DocumentBuilder) AddDocumentShipToTaxRegistration(scheme, id string) *DocumentBuilder {
	partyAddTaxRegistration(ensureParty(b.headerDelivery(), "ram:ShipToTradeParty"), scheme, id)
	return b
}

// SetDocumentShipToAddress replaces the ship-to postal address.
func (b *DocumentBuilder) SetDocumentShipToAddress(line1, line2, line3, postcode, city, country, subdivision string) *DocumentBuilder {
	partySetAddress(ensureParty(b.headerDelivery(), "ram:ShipToTradeParty"), line1, line2, line3, postcode, city, country, subdivision)
	return b
}

// SetDocumentShipToLegalOrganisation replaces the ship-to legal organization.
func (b *DocumentBuilder) SetDocumentShipToLegalOrganisation(id, scheme, tradingName string) *DocumentBuilder {
	partySetLegalOrganisation(ensureParty(b.headerDelivery(), "ram:ShipToTradeParty"), id, scheme, tradingName)
	return b
}

// SetDocumentShipToContact replaces the first ship-to contact.
func (b *DocumentBuilder) SetDocumentShipToContact(person, department, phone, fax, email string) *DocumentBuilder {
	partySetContact(ensureParty(b.headerDelivery(), "ram:ShipToTradeParty"), person, department, phone, fax, email)
	return b
}

// AddDocumentShipToContact appends a ship-to contact.
func (b *DocumentBuilder) AddDocumentShipToContact(person, department, phone, fax, email string) *DocumentBuilder {
	partyAddContact(ensureParty(b.headerDelivery(), "ram:ShipToTradeParty"), person, department, phone, fax, email)
	return b
}

// SetDocumentShipToElectronicAddress replaces the ship-to electronic address.
func (b *DocumentBuilder) SetDocumentShipToElectronicAddress(scheme, value string) *DocumentBuilder {
	partySetElectronicAddress(ensureParty(b.headerDelivery(), "ram:ShipToTradeParty"), scheme, value)
	return b
}

// Ship-from (header trade delivery).

// SetDocumentShipFrom sets the ship-from party.
func (b *DocumentBuilder) SetDocumentShipFrom(name, id, description string) *DocumentBuilder {
	setParty(b.headerDelivery(), "ram:ShipFromTradeParty", name, id, description)
	return b
}

// AddDocumentShipFromGlobalID appends a global id to the ship-from party.
func (b *DocumentBuilder) AddDocumentShipFromGlobalID(id, scheme string) *DocumentBuilder {
	partyAddGlobalID(ensureParty(b.headerDelivery(), "ram:ShipFromTradeParty"), id, scheme)
	return b
}

// AddDocumentShipFromTaxRegistration appends a tax registration to the
// ship-from party.
func (b *DocumentBuilder) AddDocumentShipFromTaxRegistration(scheme, id string) *DocumentBuilder {
	partyAddTaxRegistration(ensureParty(b.headerDelivery(), "ram:ShipFromTradeParty"), scheme, id)
	return b
}

// SetDocumentShipFromAddress replaces the ship-from postal address.
func (b *DocumentBuilder) SetDocumentShipFromAddress(line1, line2, line3, postcode, city, country, subdivision string) *DocumentBuilder {
	partySetAddress(ensureParty(b.headerDelivery(), "ram:ShipFromTradeParty"), line1, line2, line3, postcode, city, country, subdivision)
	return b
}

// SetDocumentShipFromLegalOrganisation replaces the ship-from legal
// organization.
func (b *DocumentBuilder) SetDocumentShipFromLegalOrganisation(id, scheme, tradingName string) *DocumentBuilder {
	partySetLegalOrganisation(ensureParty(b.headerDelivery(), "ram:ShipFromTradeParty"), id, scheme, tradingName)
	return b
}

// SetDocumentShipFromContact replaces the first ship-from contact.
func (b *DocumentBuilder) SetDocumentShipFromContact(person, department, phone, fax, email string) *DocumentBuilder {
	partySetContact(ensureParty(b.headerDelivery(), "ram:ShipFromTradeParty"), person, department, phone, fax, email)
	return b
}

// AddDocumentShipFromContact appends a ship-from contact.
func (b *DocumentBuilder) AddDocumentShipFromContact(person, department, phone, fax, email string) *DocumentBuilder {
	partyAddContact(ensureParty(b.headerDelivery(), "ram:ShipFromTradeParty"), person, department, phone, fax, email)
	return b
}

// SetDocumentShipFromElectronicAddress replaces the ship-from electronic
// address.
func (b *DocumentBuilder) SetDocumentShipFromElectronicAddress(scheme, value string) *DocumentBuilder {
	partySetElectronicAddress(ensureParty(b.headerDelivery(), "ram:ShipFromTradeParty"), scheme, value)
	return b
}

// Invoicee (header trade settlement).

// SetDocumentInvoicee sets the invoicee party.
func (b *DocumentBuilder) SetDocumentInvoicee(name, id, description string) *DocumentBuilder {
	setParty(b.headerSettlement(), "ram:InvoiceeTradeParty", name, id, description)
	return b
}

// AddDocumentInvoiceeGlobalID appends a global id to the invoicee.
func (b *DocumentBuilder) AddDocumentInvoiceeGlobalID(id, scheme string) *DocumentBuilder {
	partyAddGlobalID(ensureParty(b.headerSettlement(), "ram:InvoiceeTradeParty"), id, scheme)
	return b
}

// AddDocumentInvoiceeTaxRegistration appends a tax registration to the
// invoicee.
func (b *DocumentBuilder) AddDocumentInvoiceeTaxRegistration(scheme, id string) *DocumentBuilder {
	partyAddTaxRegistration(ensureParty(b.headerSettlement(), "ram:InvoiceeTradeParty"), scheme, id)
	return b
}

// SetDocumentInvoiceeAddress replaces the invoicee postal address.
func (b *DocumentBuilder) SetDocumentInvoiceeAddress(line1, line2, line3, postcode, city, country, subdivision string) *DocumentBuilder {
	partySetAddress(ensureParty(b.headerSettlement(), "ram:InvoiceeTradeParty"), line1, line2, line3, postcode, city, country, subdivision)
	return b
}

// SetDocumentInvoiceeLegalOrganisation replaces the invoicee legal
// organization.
func (b *DocumentBuilder) SetDocumentInvoiceeLegalOrganisation(id, scheme, tradingName string) *DocumentBuilder {
	partySetLegalOrganisation(ensureParty(b.headerSettlement(), "ram:InvoiceeTradeParty"), id, scheme, tradingName)
	return b
}

// SetDocumentInvoiceeContact replaces the first invoicee contact.
func (b *DocumentBuilder) SetDocumentInvoiceeContact(person, department, phone, fax, email string) *DocumentBuilder {
	partySetContact(ensureParty(b.headerSettlement(), "ram:InvoiceeTradeParty"), person, department, phone, fax, email)
	return b
}

// AddDocumentInvoiceeContact appends an invoicee contact.
func (b *DocumentBuilder) AddDocumentInvoiceeContact(person, department, phone, fax, email string) *DocumentBuilder {
	partyAddContact(ensureParty(b.headerSettlement(), "ram:InvoiceeTradeParty"), person, department, phone, fax, email)
	return b
}

// SetDocumentInvoiceeElectronicAddress replaces the invoicee electronic
// address.
func (b *DocumentBuilder) SetDocumentInvoiceeElectronicAddress(scheme, value string) *DocumentBuilder {
	partySetElectronicAddress(ensureParty(b.headerSettlement(), "ram:InvoiceeTradeParty"), scheme, value)
	return b
}
