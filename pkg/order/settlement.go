package order

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/openprocure/go-orderx/pkg/datatype"
)

// SetDocumentCurrency sets the order currency code (ISO 4217).
func (b *DocumentBuilder) SetDocumentCurrency(code string) *DocumentBuilder {
	setLeafText(b.headerSettlement(), "ram:OrderCurrencyCode", code)
	return b
}

// AddDocumentPaymentMean appends a payment means entry (UNTDID 4461 type
// code plus free-text information).
func (b *DocumentBuilder) AddDocumentPaymentMean(typeCode, information string) *DocumentBuilder {
	pm := appendChild(b.headerSettlement(), "ram:SpecifiedTradeSettlementPaymentMeans")
	datatype.Text(pm, "ram:TypeCode", typeCode)
	datatype.Text(pm, "ram:Information", information)
	return b
}

// AddDocumentPaymentTerm appends a payment terms entry.
func (b *DocumentBuilder) AddDocumentPaymentTerm(description string) *DocumentBuilder {
	terms := appendChild(b.headerSettlement(), "ram:SpecifiedTradePaymentTerms")
	datatype.Text(terms, "ram:Description", description)
	return b
}

// taxSpec holds the optional fields of a trade tax entry.
type taxSpec struct {
	exemptionReason            string
	exemptionReasonCode        string
	basisAmount                *float64
	lineTotalBasisAmount       *float64
	allowanceChargeBasisAmount *float64
}

// TaxOption configures an optional trade tax field.
type TaxOption func(*taxSpec)

// WithTaxExemption sets the exemption reason text and code.
func WithTaxExemption(reason, code string) TaxOption {
	return func(s *taxSpec) {
		s.exemptionReason = reason
		s.exemptionReasonCode = code
	}
}

// WithTaxBasisAmount sets the tax basis amount.
func WithTaxBasisAmount(v float64) TaxOption {
	return func(s *taxSpec) { s.basisAmount = &v }
}

// WithTaxLineTotalBasisAmount sets the line-total basis amount.
func WithTaxLineTotalBasisAmount(v float64) TaxOption {
	return func(s *taxSpec) { s.lineTotalBasisAmount = &v }
}

// WithTaxAllowanceChargeBasisAmount sets the allowance/charge basis amount.
func WithTaxAllowanceChargeBasisAmount(v float64) TaxOption {
	return func(s *taxSpec) { s.allowanceChargeBasisAmount = &v }
}

// writeTax fills an ApplicableTradeTax element in schema order.
func writeTax(tax *etree.Element, categoryCode, typeCode string, rate float64, spec taxSpec) {
	datatype.Text(tax, "ram:TypeCode", typeCode)
	datatype.Text(tax, "ram:ExemptionReason", spec.exemptionReason)
	if spec.basisAmount != nil {
		datatype.Amount(tax, "ram:BasisAmount", *spec.basisAmount, datatype.AmountAttrs{})
	}
	if spec.lineTotalBasisAmount != nil {
		datatype.Amount(tax, "ram:LineTotalBasisAmount", *spec.lineTotalBasisAmount, datatype.AmountAttrs{})
	}
	if spec.allowanceChargeBasisAmount != nil {
		datatype.Amount(tax, "ram:AllowanceChargeBasisAmount", *spec.allowanceChargeBasisAmount, datatype.AmountAttrs{})
	}
	datatype.Text(tax, "ram:CategoryCode", categoryCode)
	datatype.Text(tax, "ram:ExemptionReasonCode", spec.exemptionReasonCode)
	datatype.Percent(tax, "ram:RateApplicablePercent", rate)
}

// AddDocumentTax appends a trade tax entry to the header settlement.
// categoryCode is the UNTDID 5305 category (S, Z, E, ...), typeCode the tax
// type (VAT), rate the applicable percentage.
func (b *DocumentBuilder) AddDocumentTax(categoryCode, typeCode string, rate float64, opts ...TaxOption) *DocumentBuilder {
	var spec taxSpec
	for _, opt := range opts {
		opt(&spec)
	}
	writeTax(appendChild(b.headerSettlement(), "ram:ApplicableTradeTax"), categoryCode, typeCode, rate, spec)
	return b
}

// allowanceChargeSpec holds the optional fields of an allowance/charge.
type allowanceChargeSpec struct {
	sequence           *int
	calculationPercent *float64
	basisAmount        *float64
	reason             string
	reasonCode         string
	taxCategoryCode    string
	taxTypeCode        string
	taxRate            *float64
}

// AllowanceChargeOption configures an optional allowance/charge field.
type AllowanceChargeOption func(*allowanceChargeSpec)

// WithAllowanceChargeSequence sets the sequence number.
func WithAllowanceChargeSequence(n int) AllowanceChargeOption {
	return func(s *allowanceChargeSpec) { s.sequence = &n }
}

// WithAllowanceChargeCalculationPercent sets the calculation percentage.
func WithAllowanceChargeCalculationPercent(p float64) AllowanceChargeOption {
	return func(s *allowanceChargeSpec) { s.calculationPercent = &p }
}

// WithAllowanceChargeBasisAmount sets the basis amount.
func WithAllowanceChargeBasisAmount(v float64) AllowanceChargeOption {
	return func(s *allowanceChargeSpec) { s.basisAmount = &v }
}

// WithAllowanceChargeReason sets the reason text and code.
func WithAllowanceChargeReason(reason, code string) AllowanceChargeOption {
	return func(s *allowanceChargeSpec) {
		s.reason = reason
		s.reasonCode = code
	}
}

// WithAllowanceChargeTax embeds the category tax applying to the
// allowance/charge.
func WithAllowanceChargeTax(categoryCode, typeCode string, rate float64) AllowanceChargeOption {
	return func(s *allowanceChargeSpec) {
		s.taxCategoryCode = categoryCode
		s.taxTypeCode = typeCode
		s.taxRate = &rate
	}
}

// writeAllowanceCharge fills a SpecifiedTradeAllowanceCharge element.
// Amounts render with two fractional digits at every level.
func writeAllowanceCharge(el *etree.Element, actualAmount float64, isCharge bool, spec allowanceChargeSpec) {
	datatype.Indicator(el, "ram:ChargeIndicator", isCharge)
	if spec.sequence != nil {
		datatype.Text(el, "ram:SequenceNumeric", strconv.Itoa(*spec.sequence))
	}
	if spec.calculationPercent != nil {
		datatype.Percent(el, "ram:CalculationPercent", *spec.calculationPercent)
	}
	if spec.basisAmount != nil {
		datatype.Amount(el, "ram:BasisAmount", *spec.basisAmount, datatype.AmountAttrs{FixedFractionDigits: 2})
	}
	datatype.Amount(el, "ram:ActualAmount", actualAmount, datatype.AmountAttrs{FixedFractionDigits: 2})
	datatype.Text(el, "ram:ReasonCode", spec.reasonCode)
	datatype.Text(el, "ram:Reason", spec.reason)
	if spec.taxRate != nil || spec.taxCategoryCode != "" {
		tax := el.CreateElement("ram:CategoryTradeTax")
		datatype.Text(tax, "ram:TypeCode", spec.taxTypeCode)
		datatype.Text(tax, "ram:CategoryCode", spec.taxCategoryCode)
		if spec.taxRate != nil {
			datatype.Percent(tax, "ram:RateApplicablePercent", *spec.taxRate)
		}
	}
}

// AddDocumentAllowanceCharge appends a header-level allowance (isCharge
// false) or charge (isCharge true).
func (b *DocumentBuilder) AddDocumentAllowanceCharge(actualAmount float64, isCharge bool, opts ...AllowanceChargeOption) *DocumentBuilder {
	var spec allowanceChargeSpec
	for _, opt := range opts {
		opt(&spec)
	}
	writeAllowanceCharge(appendChild(b.headerSettlement(), "ram:SpecifiedTradeAllowanceCharge"), actualAmount, isCharge, spec)
	return b
}

// summationSpec holds the optional totals of the header monetary summation.
type summationSpec struct {
	chargeTotal    *float64
	allowanceTotal *float64
	taxBasisTotal  *float64
	taxTotal       *float64
	grandTotal     *float64
}

// SummationOption configures an optional monetary summation total.
type SummationOption func(*summationSpec)

// WithChargeTotal sets the charge total amount.
func WithChargeTotal(v float64) SummationOption {
	return func(s *summationSpec) { s.chargeTotal = &v }
}

// WithAllowanceTotal sets the allowance total amount.
func WithAllowanceTotal(v float64) SummationOption {
	return func(s *summationSpec) { s.allowanceTotal = &v }
}

// WithTaxBasisTotal sets the tax basis total amount.
func WithTaxBasisTotal(v float64) SummationOption {
	return func(s *summationSpec) { s.taxBasisTotal = &v }
}

// WithTaxTotal sets the tax total amount.
func WithTaxTotal(v float64) SummationOption {
	return func(s *summationSpec) { s.taxTotal = &v }
}

// WithGrandTotal sets the grand total amount.
func WithGrandTotal(v float64) SummationOption {
	return func(s *summationSpec) { s.grandTotal = &v }
}

// SetDocumentSummation replaces the header monetary summation. Only the
// line total and the totals supplied through options are emitted; a
// subsequent call drops every total it does not re-specify.
func (b *DocumentBuilder) SetDocumentSummation(lineTotal float64, opts ...SummationOption) *DocumentBuilder {
	var spec summationSpec
	for _, opt := range opts {
		opt(&spec)
	}

	sum := replaceChild(b.headerSettlement(), "ram:SpecifiedTradeSettlementHeaderMonetarySummation")
	datatype.Amount(sum, "ram:LineTotalAmount", lineTotal, datatype.AmountAttrs{})
	if spec.chargeTotal != nil {
		datatype.Amount(sum, "ram:ChargeTotalAmount", *spec.chargeTotal, datatype.AmountAttrs{})
	}
	if spec.allowanceTotal != nil {
		datatype.Amount(sum, "ram:AllowanceTotalAmount", *spec.allowanceTotal, datatype.AmountAttrs{})
	}
	if spec.taxBasisTotal != nil {
		datatype.Amount(sum, "ram:TaxBasisTotalAmount", *spec.taxBasisTotal, datatype.AmountAttrs{})
	}
	if spec.taxTotal != nil {
		datatype.Amount(sum, "ram:TaxTotalAmount", *spec.taxTotal, datatype.AmountAttrs{})
	}
	if spec.grandTotal != nil {
		datatype.Amount(sum, "ram:GrandTotalAmount", *spec.grandTotal, datatype.AmountAttrs{})
	}
	return b
}

// SetDocumentReceivableAccountingAccount replaces the receivable accounting
// account reference.
func (b *DocumentBuilder) SetDocumentReceivableAccountingAccount(id, typeCode string) *DocumentBuilder {
	acc := replaceChild(b.headerSettlement(), "ram:ReceivableSpecifiedTradeAccountingAccount")
	datatype.Text(acc, "ram:ID", id)
	datatype.Text(acc, "ram:TypeCode", typeCode)
	return b
}
