package datatype

import (
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// Date format code for the 8-digit YYYYMMDD encoding (UNTDID 2379).
const DateFormatCalendar = "102"

// Attribute names used across Order-X leaf elements.
const (
	AttrSchemeID      = "schemeID"
	AttrUnitCode      = "unitCode"
	AttrListID        = "listID"
	AttrListVersionID = "listVersionID"
	AttrFormat        = "format"
	AttrCurrencyID    = "currencyID"
)

// AmountAttrs controls how an amount leaf is rendered.
//
// The zero value selects the default convention: trailing zeros are trimmed
// down to a minimum of one fractional digit (100 renders as "100.0").
// FixedFractionDigits selects an exact digit count instead (2 renders
// 100 as "100.00"). CurrencyID, when set, is emitted as an attribute.
type AmountAttrs struct {
	FixedFractionDigits int
	CurrencyID          string
}

// Text attaches <tag>value</tag> to parent. An empty value attaches
// nothing and returns nil.
func Text(parent *etree.Element, tag, value string) *etree.Element {
	if value == "" {
		return nil
	}
	el := parent.CreateElement(tag)
	el.SetText(value)
	return el
}

// ID attaches a scheme-qualified identifier element. An empty scheme yields
// a bare identifier; an empty value attaches nothing.
func ID(parent *etree.Element, tag, value, schemeID string) *etree.Element {
	el := Text(parent, tag, value)
	if el != nil && schemeID != "" {
		el.CreateAttr(AttrSchemeID, schemeID)
	}
	return el
}

// DateTime attaches an occurrence date in the unqualified-datatype shape:
//
//	<tag><udt:DateTimeString format="102">20260102</udt:DateTimeString></tag>
func DateTime(parent *etree.Element, tag string, t time.Time) *etree.Element {
	return wrappedDate(parent, tag, "udt:DateTimeString", t)
}

// FormattedDateTime attaches a business-semantic date (referenced-document
// issue dates) in the qualified-datatype shape:
//
//	<tag><qdt:DateTimeString format="102">20260102</qdt:DateTimeString></tag>
func FormattedDateTime(parent *etree.Element, tag string, t time.Time) *etree.Element {
	return wrappedDate(parent, tag, "qdt:DateTimeString", t)
}

func wrappedDate(parent *etree.Element, tag, inner string, t time.Time) *etree.Element {
	el := parent.CreateElement(tag)
	s := el.CreateElement(inner)
	s.CreateAttr(AttrFormat, DateFormatCalendar)
	s.SetText(t.Format("20060102"))
	return el
}

// Indicator attaches a wrapped boolean:
//
//	<tag><udt:Indicator>true</udt:Indicator></tag>
func Indicator(parent *etree.Element, tag string, value bool) *etree.Element {
	el := parent.CreateElement(tag)
	inner := el.CreateElement("udt:Indicator")
	if value {
		inner.SetText("true")
	} else {
		inner.SetText("false")
	}
	return el
}

// Amount attaches a monetary amount rendered per attrs.
func Amount(parent *etree.Element, tag string, value float64, attrs AmountAttrs) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(FormatAmount(value, attrs))
	if attrs.CurrencyID != "" {
		el.CreateAttr(AttrCurrencyID, attrs.CurrencyID)
	}
	return el
}

// Quantity attaches a value/unit pair:
//
//	<tag unitCode="C62">12.5</tag>
func Quantity(parent *etree.Element, tag string, value float64, unitCode string) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(FormatAmount(value, AmountAttrs{}))
	if unitCode != "" {
		el.CreateAttr(AttrUnitCode, unitCode)
	}
	return el
}

// Measure attaches a measured value (package dimensions, characteristic
// measurements). Shape is identical to Quantity.
func Measure(parent *etree.Element, tag string, value float64, unitCode string) *etree.Element {
	return Quantity(parent, tag, value, unitCode)
}

// Percent attaches a percentage rendered with two fractional digits.
func Percent(parent *etree.Element, tag string, value float64) *etree.Element {
	return Amount(parent, tag, value, AmountAttrs{FixedFractionDigits: 2})
}

// FormatAmount renders value as decimal text per attrs. The default trims
// trailing zeros but always keeps at least one fractional digit.
func FormatAmount(value float64, attrs AmountAttrs) string {
	d := decimal.NewFromFloat(value)
	if attrs.FixedFractionDigits > 0 {
		return d.StringFixed(int32(attrs.FixedFractionDigits))
	}
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
