// Copyright (c) 2026 OpenProcure
// SPDX-License-Identifier: BSD-2-Clause

/*
Package datatype renders scalar values into UN/CEFACT-typed XML fragments.

Order-X leaf elements follow a small, fixed vocabulary of datatypes from the
UnqualifiedDataType (udt) and QualifiedDataType (qdt) namespaces. This
package provides helpers that attach correctly shaped leaf elements to an
etree parent:

	datatype.Text(parent, "ram:Name", "ACME GmbH")
	datatype.ID(parent, "ram:GlobalID", "4000001123452", "0088")
	datatype.DateTime(parent, "ram:IssueDateTime", issueDate)
	datatype.Amount(parent, "ram:LineTotalAmount", 100.0, datatype.AmountAttrs{})
	datatype.Quantity(parent, "ram:RequestedQuantity", 12.5, "C62")

Every helper omits the element entirely when the value is absent (empty
string for text-like helpers); writing nothing is how optional content is
suppressed throughout the builder.

# Formatting Rules

  - Dates render as an 8-digit YYYYMMDD string wrapped in a DateTimeString
    element carrying format="102".
  - Indicators render as a wrapped udt:Indicator with the literal text
    "true" or "false".
  - Amounts render as decimal text. The fractional-digit count is a
    per-field rule carried by AmountAttrs: the default trims trailing zeros
    down to a minimum of one fractional digit (header monetary summation),
    while fields created with FixedFractionDigits emit exactly that many
    digits (line-level prices and allowance/charge amounts use two).
  - Scheme-qualified identifiers carry their scheme in a schemeID
    attribute; an empty scheme yields a bare identifier element.
*/
package datatype
