package order

import (
	"time"

	"github.com/beevik/etree"

	"github.com/openprocure/go-orderx/pkg/datatype"
)

// AddNewPosition appends a new line item to the transaction and makes it
// the current position for all position-scoped operations. lineID and
// statusCode are stored verbatim.
func (b *DocumentBuilder) AddNewPosition(lineID, statusCode string) *DocumentBuilder {
	li := appendChild(b.transaction, "ram:IncludedSupplyChainTradeLineItem")
	lineDoc := li.CreateElement("ram:AssociatedDocumentLineDocument")
	datatype.Text(lineDoc, "ram:LineID", lineID)
	datatype.Text(lineDoc, "ram:LineStatusCode", statusCode)
	b.current = li
	return b
}

// RemoveLatestPosition detaches the most recently added line item. The
// previous line item, if any, becomes current. With no line items present
// the call is an idempotent no-op.
func (b *DocumentBuilder) RemoveLatestPosition() *DocumentBuilder {
	items := b.transaction.SelectElements("ram:IncludedSupplyChainTradeLineItem")
	if len(items) == 0 {
		return b
	}
	b.transaction.RemoveChild(items[len(items)-1])
	if len(items) > 1 {
		b.current = items[len(items)-2]
	} else {
		b.current = nil
	}
	return b
}

// currentLine resolves the current line item for op. With no open line item
// it records a *StructuralStateError and returns nil; the caller then
// leaves the tree untouched.
func (b *DocumentBuilder) currentLine(op string) *etree.Element {
	if b.current == nil {
		b.fail(&StructuralStateError{Op: op})
		return nil
	}
	return b.current
}

func (b *DocumentBuilder) lineDocument(op string) *etree.Element {
	li := b.currentLine(op)
	if li == nil {
		return nil
	}
	return ensureChild(li, "ram:AssociatedDocumentLineDocument")
}

func (b *DocumentBuilder) lineProduct(op string) *etree.Element {
	li := b.currentLine(op)
	if li == nil {
		return nil
	}
	return ensureChild(li, "ram:SpecifiedTradeProduct")
}

func (b *DocumentBuilder) lineAgreement(op string) *etree.Element {
	li := b.currentLine(op)
	if li == nil {
		return nil
	}
	return ensureChild(li, "ram:SpecifiedLineTradeAgreement")
}

func (b *DocumentBuilder) lineDelivery(op string) *etree.Element {
	li := b.currentLine(op)
	if li == nil {
		return nil
	}
	return ensureChild(li, "ram:SpecifiedLineTradeDelivery")
}

func (b *DocumentBuilder) lineSettlement(op string) *etree.Element {
	li := b.currentLine(op)
	if li == nil {
		return nil
	}
	return ensureChild(li, "ram:SpecifiedLineTradeSettlement")
}

// AddDocumentPositionNote appends a note to the current line item.
func (b *DocumentBuilder) AddDocumentPositionNote(content, contentCode, subjectCode string) *DocumentBuilder {
	if doc := b.lineDocument("AddDocumentPositionNote"); doc != nil {
		addNote(doc, content, contentCode, subjectCode)
	}
	return b
}

// SetDocumentPositionProductDetails replaces the traded product of the
// current line item. Empty arguments suppress their elements.
func (b *DocumentBuilder) SetDocumentPositionProductDetails(name, description, sellerAssignedID, buyerAssignedID, globalID, globalIDScheme, batchID, brandName string) *DocumentBuilder {
	li := b.currentLine("SetDocumentPositionProductDetails")
	if li == nil {
		return b
	}
	product := replaceChild(li, "ram:SpecifiedTradeProduct")
	datatype.ID(product, "ram:GlobalID", globalID, globalIDScheme)
	datatype.Text(product, "ram:SellerAssignedID", sellerAssignedID)
	datatype.Text(product, "ram:BuyerAssignedID", buyerAssignedID)
	datatype.Text(product, "ram:Name", name)
	datatype.Text(product, "ram:Description", description)
	datatype.Text(product, "ram:BatchID", batchID)
	datatype.Text(product, "ram:BrandName", brandName)
	return b
}

// characteristicSpec holds the optional measurement of a characteristic.
type characteristicSpec struct {
	measureValue float64
	measureUnit  string
	hasMeasure   bool
}

// CharacteristicOption configures a product characteristic.
type CharacteristicOption func(*characteristicSpec)

// WithCharacteristicMeasure adds a measured value and unit.
func WithCharacteristicMeasure(value float64, unit string) CharacteristicOption {
	return func(s *characteristicSpec) {
		s.measureValue = value
		s.measureUnit = unit
		s.hasMeasure = true
	}
}

// AddDocumentPositionProductCharacteristic appends a product characteristic
// (description plus value, with an optional type code and measurement).
func (b *DocumentBuilder) AddDocumentPositionProductCharacteristic(description, value, typeCode string, opts ...CharacteristicOption) *DocumentBuilder {
	product := b.lineProduct("AddDocumentPositionProductCharacteristic")
	if product == nil {
		return b
	}
	var spec characteristicSpec
	for _, opt := range opts {
		opt(&spec)
	}

	ch := appendChild(product, "ram:ApplicableProductCharacteristic")
	datatype.Text(ch, "ram:TypeCode", typeCode)
	datatype.Text(ch, "ram:Description", description)
	if spec.hasMeasure {
		datatype.Measure(ch, "ram:ValueMeasure", spec.measureValue, spec.measureUnit)
	}
	datatype.Text(ch, "ram:Value", value)
	return b
}

// AddDocumentPositionProductClassification appends a product classification
// entry referencing a code list.
func (b *DocumentBuilder) AddDocumentPositionProductClassification(classCode, className, listID, listVersionID string) *DocumentBuilder {
	product := b.lineProduct("AddDocumentPositionProductClassification")
	if product == nil {
		return b
	}
	cls := appendChild(product, "ram:DesignatedProductClassification")
	if code := datatype.Text(cls, "ram:ClassCode", classCode); code != nil {
		if listID != "" {
			code.CreateAttr(datatype.AttrListID, listID)
		}
		if listVersionID != "" {
			code.CreateAttr(datatype.AttrListVersionID, listVersionID)
		}
	}
	datatype.Text(cls, "ram:ClassName", className)
	return b
}

// AddDocumentPositionProductInstance appends an individual product instance
// (batch and serial id).
func (b *DocumentBuilder) AddDocumentPositionProductInstance(batchID, serialID string) *DocumentBuilder {
	product := b.lineProduct("AddDocumentPositionProductInstance")
	if product == nil {
		return b
	}
	inst := appendChild(product, "ram:IndividualTradeProductInstance")
	datatype.Text(inst, "ram:BatchID", batchID)
	datatype.Text(inst, "ram:SerialID", serialID)
	return b
}

// packagingSpec holds the optional spatial dimensions of a packaging entry.
type packagingSpec struct {
	width, length, height             float64
	widthUnit, lengthUnit, heightUnit string
	hasWidth, hasLength, hasHeight    bool
}

// PackagingOption configures a packaging dimension.
type PackagingOption func(*packagingSpec)

// WithPackagingWidth sets the packaging width measure.
func WithPackagingWidth(value float64, unit string) PackagingOption {
	return func(s *packagingSpec) { s.width, s.widthUnit, s.hasWidth = value, unit, true }
}

// WithPackagingLength sets the packaging length measure.
func WithPackagingLength(value float64, unit string) PackagingOption {
	return func(s *packagingSpec) { s.length, s.lengthUnit, s.hasLength = value, unit, true }
}

// WithPackagingHeight sets the packaging height measure.
func WithPackagingHeight(value float64, unit string) PackagingOption {
	return func(s *packagingSpec) { s.height, s.heightUnit, s.hasHeight = value, unit, true }
}

// AddDocumentPositionProductPackaging appends a supply chain packaging entry
// with optional spatial dimensions.
func (b *DocumentBuilder) AddDocumentPositionProductPackaging(typeCode string, opts ...PackagingOption) *DocumentBuilder {
	product := b.lineProduct("AddDocumentPositionProductPackaging")
	if product == nil {
		return b
	}
	var spec packagingSpec
	for _, opt := range opts {
		opt(&spec)
	}

	pkg := appendChild(product, "ram:ApplicableSupplyChainPackaging")
	datatype.Text(pkg, "ram:TypeCode", typeCode)
	if spec.hasWidth || spec.hasLength || spec.hasHeight {
		dim := pkg.CreateElement("ram:LinearSpatialDimension")
		if spec.hasWidth {
			datatype.Measure(dim, "ram:WidthMeasure", spec.width, spec.widthUnit)
		}
		if spec.hasLength {
			datatype.Measure(dim, "ram:LengthMeasure", spec.length, spec.lengthUnit)
		}
		if spec.hasHeight {
			datatype.Measure(dim, "ram:HeightMeasure", spec.height, spec.heightUnit)
		}
	}
	return b
}

// SetDocumentPositionProductOriginCountry replaces the product origin
// country of the current line item.
func (b *DocumentBuilder) SetDocumentPositionProductOriginCountry(code string) *DocumentBuilder {
	product := b.lineProduct("SetDocumentPositionProductOriginCountry")
	if product == nil {
		return b
	}
	removeChildren(product, "ram:OriginTradeCountry")
	if code != "" {
		country := appendChild(product, "ram:OriginTradeCountry")
		datatype.Text(country, "ram:ID", code)
	}
	return b
}

// AddDocumentPositionProductReferencedDocument appends an additional
// referenced document to the traded product.
func (b *DocumentBuilder) AddDocumentPositionProductReferencedDocument(id, typeCode, uriID, name string, issueDate ...time.Time) *DocumentBuilder {
	addRefDoc(b.lineProduct("AddDocumentPositionProductReferencedDocument"), "ram:AdditionalReferenceReferencedDocument", refDoc{
		issuerAssignedID: id, typeCode: typeCode, uriID: uriID, name: name, issueDate: optDate(issueDate),
	})
	return b
}

// SetDocumentPositionBuyerOrderReferencedDocument sets the buyer order line
// reference of the current line item.
func (b *DocumentBuilder) SetDocumentPositionBuyerOrderReferencedDocument(lineID string) *DocumentBuilder {
	setRefDoc(b.lineAgreement("SetDocumentPositionBuyerOrderReferencedDocument"), "ram:BuyerOrderReferencedDocument", refDoc{lineID: lineID})
	return b
}

// SetDocumentPositionQuotationReferencedDocument sets the quotation line
// reference of the current line item.
func (b *DocumentBuilder) SetDocumentPositionQuotationReferencedDocument(id, lineID string, issueDate ...time.Time) *DocumentBuilder {
	setRefDoc(b.lineAgreement("SetDocumentPositionQuotationReferencedDocument"), "ram:QuotationReferencedDocument", refDoc{
		issuerAssignedID: id, lineID: lineID, issueDate: optDate(issueDate),
	})
	return b
}

// AddDocumentPositionAdditionalReferencedDocument appends an additional
// referenced document to the line trade agreement.
func (b *DocumentBuilder) AddDocumentPositionAdditionalReferencedDocument(id, typeCode, uriID, name, refTypeCode string, issueDate ...time.Time) *DocumentBuilder {
	addRefDoc(b.lineAgreement("AddDocumentPositionAdditionalReferencedDocument"), "ram:AdditionalReferencedDocument", refDoc{
		issuerAssignedID: id, typeCode: typeCode, uriID: uriID,
		name: name, refTypeCode: refTypeCode, issueDate: optDate(issueDate),
	})
	return b
}

// priceSpec holds the optional basis quantity of a price.
type priceSpec struct {
	basisQuantity float64
	basisUnit     string
	hasBasis      bool
}

// PriceOption configures a product trade price.
type PriceOption func(*priceSpec)

// WithPriceBasisQuantity sets the quantity the price applies to.
func WithPriceBasisQuantity(value float64, unit string) PriceOption {
	return func(s *priceSpec) {
		s.basisQuantity = value
		s.basisUnit = unit
		s.hasBasis = true
	}
}

func writePrice(price *etree.Element, amount float64, opts []PriceOption) {
	var spec priceSpec
	for _, opt := range opts {
		opt(&spec)
	}
	datatype.Amount(price, "ram:ChargeAmount", amount, datatype.AmountAttrs{FixedFractionDigits: 2})
	if spec.hasBasis {
		datatype.Quantity(price, "ram:BasisQuantity", spec.basisQuantity, spec.basisUnit)
	}
}

// SetDocumentPositionGrossPrice replaces the gross price of the current
// line item. The amount renders with two fractional digits.
func (b *DocumentBuilder) SetDocumentPositionGrossPrice(amount float64, opts ...PriceOption) *DocumentBuilder {
	agreement := b.lineAgreement("SetDocumentPositionGrossPrice")
	if agreement == nil {
		return b
	}
	writePrice(replaceChild(agreement, "ram:GrossPriceProductTradePrice"), amount, opts)
	return b
}

// AddDocumentPositionGrossPriceAllowanceCharge appends an allowance or
// charge applied to the gross price.
func (b *DocumentBuilder) AddDocumentPositionGrossPriceAllowanceCharge(actualAmount float64, isCharge bool, opts ...AllowanceChargeOption) *DocumentBuilder {
	agreement := b.lineAgreement("AddDocumentPositionGrossPriceAllowanceCharge")
	if agreement == nil {
		return b
	}
	var spec allowanceChargeSpec
	for _, opt := range opts {
		opt(&spec)
	}
	price := ensureChild(agreement, "ram:GrossPriceProductTradePrice")
	writeAllowanceCharge(price.CreateElement("ram:AppliedTradeAllowanceCharge"), actualAmount, isCharge, spec)
	return b
}

// SetDocumentPositionNetPrice replaces the net price of the current line
// item. The amount renders with two fractional digits.
func (b *DocumentBuilder) SetDocumentPositionNetPrice(amount float64, opts ...PriceOption) *DocumentBuilder {
	agreement := b.lineAgreement("SetDocumentPositionNetPrice")
	if agreement == nil {
		return b
	}
	writePrice(replaceChild(agreement, "ram:NetPriceProductTradePrice"), amount, opts)
	return b
}

// SetDocumentPositionNetPriceTax sets the tax included in the net price.
func (b *DocumentBuilder) SetDocumentPositionNetPriceTax(categoryCode, typeCode string, rate float64) *DocumentBuilder {
	agreement := b.lineAgreement("SetDocumentPositionNetPriceTax")
	if agreement == nil {
		return b
	}
	price := ensureChild(agreement, "ram:NetPriceProductTradePrice")
	tax := replaceChild(price, "ram:IncludedTradeTax")
	datatype.Text(tax, "ram:TypeCode", typeCode)
	datatype.Text(tax, "ram:CategoryCode", categoryCode)
	datatype.Percent(tax, "ram:RateApplicablePercent", rate)
	return b
}

// SetDocumentPositionPartialDelivery sets whether partial delivery is
// allowed for the current line item.
func (b *DocumentBuilder) SetDocumentPositionPartialDelivery(allowed bool) *DocumentBuilder {
	if delivery := b.lineDelivery("SetDocumentPositionPartialDelivery"); delivery != nil {
		setLeafIndicator(delivery, "ram:PartialDeliveryAllowedIndicator", allowed)
	}
	return b
}

// SetDocumentPositionRequestedQuantity sets the requested delivery quantity.
func (b *DocumentBuilder) SetDocumentPositionRequestedQuantity(value float64, unit string) *DocumentBuilder {
	if delivery := b.lineDelivery("SetDocumentPositionRequestedQuantity"); delivery != nil {
		setLeafQuantity(delivery, "ram:RequestedQuantity", value, unit)
	}
	return b
}

// SetDocumentPositionAgreedQuantity sets the agreed delivery quantity.
func (b *DocumentBuilder) SetDocumentPositionAgreedQuantity(value float64, unit string) *DocumentBuilder {
	if delivery := b.lineDelivery("SetDocumentPositionAgreedQuantity"); delivery != nil {
		setLeafQuantity(delivery, "ram:AgreedQuantity", value, unit)
	}
	return b
}

// SetDocumentPositionPackageQuantity sets the package quantity.
func (b *DocumentBuilder) SetDocumentPositionPackageQuantity(value float64, unit string) *DocumentBuilder {
	if delivery := b.lineDelivery("SetDocumentPositionPackageQuantity"); delivery != nil {
		setLeafQuantity(delivery, "ram:PackageQuantity", value, unit)
	}
	return b
}

// SetDocumentPositionPerPackageUnitQuantity sets the per-package unit
// quantity.
func (b *DocumentBuilder) SetDocumentPositionPerPackageUnitQuantity(value float64, unit string) *DocumentBuilder {
	if delivery := b.lineDelivery("SetDocumentPositionPerPackageUnitQuantity"); delivery != nil {
		setLeafQuantity(delivery, "ram:PerPackageUnitQuantity", value, unit)
	}
	return b
}

// SetDocumentPositionRequestedDeliverySupplyChainEvent replaces the
// line-level requested delivery event.
func (b *DocumentBuilder) SetDocumentPositionRequestedDeliverySupplyChainEvent(occurrence time.Time, opts ...DeliveryEventOption) *DocumentBuilder {
	writeDeliveryEvent(b.lineDelivery("SetDocumentPositionRequestedDeliverySupplyChainEvent"), occurrence, opts)
	return b
}

// Line-level ship-to (line trade delivery).

// SetDocumentPositionShipTo sets the line-level ship-to party.
func (b *DocumentBuilder) SetDocumentPositionShipTo(name, id, description string) *DocumentBuilder {
	setParty(b.lineDelivery("SetDocumentPositionShipTo"), "ram:ShipToTradeParty", name, id, description)
	return b
}

// AddDocumentPositionShipToGlobalID appends a global id to the line-level
// ship-to party.
func (b *DocumentBuilder) AddDocumentPositionShipToGlobalID(id, scheme string) *DocumentBuilder {
	partyAddGlobalID(ensureParty(b.lineDelivery("AddDocumentPositionShipToGlobalID"), "ram:ShipToTradeParty"), id, scheme)
	return b
}

// AddDocumentPositionShipToTaxRegistration appends a tax registration to
// the line-level ship-to party.
func (b *DocumentBuilder) AddDocumentPositionShipToTaxRegistration(scheme, id string) *DocumentBuilder {
	partyAddTaxRegistration(ensureParty(b.lineDelivery("AddDocumentPositionShipToTaxRegistration"), "ram:ShipToTradeParty"), scheme, id)
	return b
}

// SetDocumentPositionShipToAddress replaces the line-level ship-to postal
// address.
func (b *DocumentBuilder) SetDocumentPositionShipToAddress(line1, line2, line3, postcode, city, country, subdivision string) *DocumentBuilder {
	partySetAddress(ensureParty(b.lineDelivery("SetDocumentPositionShipToAddress"), "ram:ShipToTradeParty"), line1, line2, line3, postcode, city, country, subdivision)
	return b
}

// SetDocumentPositionShipToLegalOrganisation replaces the line-level
// ship-to legal organization.
func (b *DocumentBuilder) SetDocumentPositionShipToLegalOrganisation(id, scheme, tradingName string) *DocumentBuilder {
	partySetLegalOrganisation(ensureParty(b.lineDelivery("SetDocumentPositionShipToLegalOrganisation"), "ram:ShipToTradeParty"), id, scheme, tradingName)
	return b
}

// SetDocumentPositionShipToContact replaces the first line-level ship-to
// contact.
func (b *DocumentBuilder) SetDocumentPositionShipToContact(person, department, phone, fax, email string) *DocumentBuilder {
	partySetContact(ensureParty(b.lineDelivery("SetDocumentPositionShipToContact"), "ram:ShipToTradeParty"), person, department, phone, fax, email)
	return b
}

// AddDocumentPositionShipToContact appends a line-level ship-to contact.
func (b *DocumentBuilder) AddDocumentPositionShipToContact(person, department, phone, fax, email string) *DocumentBuilder {
	partyAddContact(ensureParty(b.lineDelivery("AddDocumentPositionShipToContact"), "ram:ShipToTradeParty"), person, department, phone, fax, email)
	return b
}

// SetDocumentPositionShipToElectronicAddress replaces the line-level
// ship-to electronic address.
func (b *DocumentBuilder) SetDocumentPositionShipToElectronicAddress(scheme, value string) *DocumentBuilder {
	partySetElectronicAddress(ensureParty(b.lineDelivery("SetDocumentPositionShipToElectronicAddress"), "ram:ShipToTradeParty"), scheme, value)
	return b
}

// Line-level ship-from (line trade delivery).

// SetDocumentPositionShipFrom sets the line-level ship-from party.
func (b *DocumentBuilder) SetDocumentPositionShipFrom(name, id, description string) *DocumentBuilder {
	setParty(b.lineDelivery("SetDocumentPositionShipFrom"), "ram:ShipFromTradeParty", name, id, description)
	return b
}

// AddDocumentPositionShipFromGlobalID appends a global id to the line-level
// ship-from party.
func (b *DocumentBuilder) AddDocumentPositionShipFromGlobalID(id, scheme string) *DocumentBuilder {
	partyAddGlobalID(ensureParty(b.lineDelivery("AddDocumentPositionShipFromGlobalID"), "ram:ShipFromTradeParty"), id, scheme)
	return b
}

// AddDocumentPositionShipFromTaxRegistration appends a tax registration to
// the line-level ship-from party.
func (b *DocumentBuilder) AddDocumentPositionShipFromTaxRegistration(scheme, id string) *DocumentBuilder {
	partyAddTaxRegistration(ensureParty(b.lineDelivery("AddDocumentPositionShipFromTaxRegistration"), "ram:ShipFromTradeParty"), scheme, id)
	return b
}

// SetDocumentPositionShipFromAddress replaces the line-level ship-from
// postal address.
func (b *DocumentBuilder) SetDocumentPositionShipFromAddress(line1, line2, line3, postcode, city, country, subdivision string) *DocumentBuilder {
	partySetAddress(ensureParty(b.lineDelivery("SetDocumentPositionShipFromAddress"), "ram:ShipFromTradeParty"), line1, line2, line3, postcode, city, country, subdivision)
	return b
}

// SetDocumentPositionShipFromLegalOrganisation replaces the line-level
// ship-from legal organization.
func (b *DocumentBuilder) SetDocumentPositionShipFromLegalOrganisation(id, scheme, tradingName string) *DocumentBuilder {
	partySetLegalOrganisation(ensureParty(b.lineDelivery("SetDocumentPositionShipFromLegalOrganisation"), "ram:ShipFromTradeParty"), id, scheme, tradingName)
	return b
}

// SetDocumentPositionShipFromContact replaces the first line-level
// ship-from contact.
func (b *DocumentBuilder) SetDocumentPositionShipFromContact(person, department, phone, fax, email string) *DocumentBuilder {
	partySetContact(ensureParty(b.lineDelivery("SetDocumentPositionShipFromContact"), "ram:ShipFromTradeParty"), person, department, phone, fax, email)
	return b
}

// AddDocumentPositionShipFromContact appends a line-level ship-from contact.
func (b *DocumentBuilder) AddDocumentPositionShipFromContact(person, department, phone, fax, email string) *DocumentBuilder {
	partyAddContact(ensureParty(b.lineDelivery("AddDocumentPositionShipFromContact"), "ram:ShipFromTradeParty"), person, department, phone, fax, email)
	return b
}

// SetDocumentPositionShipFromElectronicAddress replaces the line-level
// ship-from electronic address.
func (b *DocumentBuilder) SetDocumentPositionShipFromElectronicAddress(scheme, value string) *DocumentBuilder {
	partySetElectronicAddress(ensureParty(b.lineDelivery("SetDocumentPositionShipFromElectronicAddress"), "ram:ShipFromTradeParty"), scheme, value)
	return b
}

// AddDocumentPositionTax appends a trade tax entry to the line settlement.
func (b *DocumentBuilder) AddDocumentPositionTax(categoryCode, typeCode string, rate float64, opts ...TaxOption) *DocumentBuilder {
	settlement := b.lineSettlement("AddDocumentPositionTax")
	if settlement == nil {
		return b
	}
	var spec taxSpec
	for _, opt := range opts {
		opt(&spec)
	}
	writeTax(appendChild(settlement, "ram:ApplicableTradeTax"), categoryCode, typeCode, rate, spec)
	return b
}

// AddDocumentPositionAllowanceCharge appends a line-level allowance or
// charge. Amounts render with two fractional digits.
func (b *DocumentBuilder) AddDocumentPositionAllowanceCharge(actualAmount float64, isCharge bool, opts ...AllowanceChargeOption) *DocumentBuilder {
	settlement := b.lineSettlement("AddDocumentPositionAllowanceCharge")
	if settlement == nil {
		return b
	}
	var spec allowanceChargeSpec
	for _, opt := range opts {
		opt(&spec)
	}
	writeAllowanceCharge(appendChild(settlement, "ram:SpecifiedTradeAllowanceCharge"), actualAmount, isCharge, spec)
	return b
}

// lineSummationSpec holds the optional allowance/charge total of the line
// monetary summation.
type lineSummationSpec struct {
	allowanceChargeTotal *float64
}

// LineSummationOption configures the line monetary summation.
type LineSummationOption func(*lineSummationSpec)

// WithLineTotalAllowanceCharge sets the total allowance/charge amount of
// the line.
func WithLineTotalAllowanceCharge(v float64) LineSummationOption {
	return func(s *lineSummationSpec) { s.allowanceChargeTotal = &v }
}

// SetDocumentPositionLineSummation replaces the line monetary summation.
func (b *DocumentBuilder) SetDocumentPositionLineSummation(lineTotal float64, opts ...LineSummationOption) *DocumentBuilder {
	settlement := b.lineSettlement("SetDocumentPositionLineSummation")
	if settlement == nil {
		return b
	}
	var spec lineSummationSpec
	for _, opt := range opts {
		opt(&spec)
	}

	sum := replaceChild(settlement, "ram:SpecifiedTradeSettlementLineMonetarySummation")
	datatype.Amount(sum, "ram:LineTotalAmount", lineTotal, datatype.AmountAttrs{})
	if spec.allowanceChargeTotal != nil {
		datatype.Amount(sum, "ram:TotalAllowanceChargeAmount", *spec.allowanceChargeTotal, datatype.AmountAttrs{})
	}
	return b
}

// SetDocumentPositionReceivableAccountingAccount replaces the line-level
// receivable accounting account reference.
func (b *DocumentBuilder) SetDocumentPositionReceivableAccountingAccount(id, typeCode string) *DocumentBuilder {
	settlement := b.lineSettlement("SetDocumentPositionReceivableAccountingAccount")
	if settlement == nil {
		return b
	}
	acc := replaceChild(settlement, "ram:ReceivableSpecifiedTradeAccountingAccount")
	datatype.Text(acc, "ram:ID", id)
	datatype.Text(acc, "ram:TypeCode", typeCode)
	return b
}
