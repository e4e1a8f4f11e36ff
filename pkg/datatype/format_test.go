package datatype

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parent() *etree.Element {
	doc := etree.NewDocument()
	return doc.CreateElement("test:Parent")
}

func TestText_EmptySuppressed(t *testing.T) {
	p := parent()
	el := Text(p, "ram:Name", "")
	assert.Nil(t, el)
	assert.Empty(t, p.ChildElements())

	el = Text(p, "ram:Name", "ACME")
	require.NotNil(t, el)
	assert.Equal(t, "ACME", p.SelectElement("ram:Name").Text())
}

func TestID_SchemeQualified(t *testing.T) {
	p := parent()
	ID(p, "ram:GlobalID", "4000001123452", "0088")

	el := p.SelectElement("ram:GlobalID")
	require.NotNil(t, el)
	assert.Equal(t, "4000001123452", el.Text())
	assert.Equal(t, "0088", el.SelectAttrValue("schemeID", ""))
}

func TestID_BareWithoutScheme(t *testing.T) {
	p := parent()
	ID(p, "ram:ID", "SUP-1", "")

	el := p.SelectElement("ram:ID")
	require.NotNil(t, el)
	assert.Nil(t, el.SelectAttr("schemeID"))
}

func TestID_EmptyValueSuppressed(t *testing.T) {
	p := parent()
	assert.Nil(t, ID(p, "ram:GlobalID", "", "0088"))
	assert.Empty(t, p.ChildElements())
}

func TestDateTime_Format102(t *testing.T) {
	p := parent()
	DateTime(p, "ram:OccurrenceDateTime", time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC))

	inner := p.FindElement("ram:OccurrenceDateTime/udt:DateTimeString")
	require.NotNil(t, inner)
	assert.Equal(t, "20260102", inner.Text())
	assert.Equal(t, "102", inner.SelectAttrValue("format", ""))
}

func TestFormattedDateTime_UsesQualifiedType(t *testing.T) {
	p := parent()
	FormattedDateTime(p, "ram:FormattedIssueDateTime", time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))

	inner := p.FindElement("ram:FormattedIssueDateTime/qdt:DateTimeString")
	require.NotNil(t, inner)
	assert.Equal(t, "20260331", inner.Text())
	assert.Equal(t, "102", inner.SelectAttrValue("format", ""))
}

func TestIndicator_LiteralText(t *testing.T) {
	p := parent()
	Indicator(p, "ram:ChargeIndicator", true)
	Indicator(p, "ram:PartialDeliveryAllowedIndicator", false)

	assert.Equal(t, "true", p.FindElement("ram:ChargeIndicator/udt:Indicator").Text())
	assert.Equal(t, "false", p.FindElement("ram:PartialDeliveryAllowedIndicator/udt:Indicator").Text())
}

func TestFormatAmount_MinimumOneFractionDigit(t *testing.T) {
	assert.Equal(t, "100.0", FormatAmount(100.0, AmountAttrs{}))
	assert.Equal(t, "2.0", FormatAmount(2.00, AmountAttrs{}))
	assert.Equal(t, "119.0", FormatAmount(119, AmountAttrs{}))
	assert.Equal(t, "19.25", FormatAmount(19.25, AmountAttrs{}))
	assert.Equal(t, "0.5", FormatAmount(0.5, AmountAttrs{}))
}

func TestFormatAmount_FixedTwoDigits(t *testing.T) {
	assert.Equal(t, "100.00", FormatAmount(100, AmountAttrs{FixedFractionDigits: 2}))
	assert.Equal(t, "9.90", FormatAmount(9.9, AmountAttrs{FixedFractionDigits: 2}))
	assert.Equal(t, "1.25", FormatAmount(1.25, AmountAttrs{FixedFractionDigits: 2}))
}

func TestAmount_CurrencyAttribute(t *testing.T) {
	p := parent()
	Amount(p, "ram:TaxTotalAmount", 19.0, AmountAttrs{CurrencyID: "EUR"})

	el := p.SelectElement("ram:TaxTotalAmount")
	require.NotNil(t, el)
	assert.Equal(t, "19.0", el.Text())
	assert.Equal(t, "EUR", el.SelectAttrValue("currencyID", ""))
}

func TestQuantity_UnitCode(t *testing.T) {
	p := parent()
	Quantity(p, "ram:RequestedQuantity", 12.5, "C62")

	el := p.SelectElement("ram:RequestedQuantity")
	require.NotNil(t, el)
	assert.Equal(t, "12.5", el.Text())
	assert.Equal(t, "C62", el.SelectAttrValue("unitCode", ""))
}

func TestPercent_TwoDigits(t *testing.T) {
	p := parent()
	Percent(p, "ram:RateApplicablePercent", 19.0)
	assert.Equal(t, "19.00", p.SelectElement("ram:RateApplicablePercent").Text())
}
