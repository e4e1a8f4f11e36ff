// Copyright (c) 2026 OpenProcure
// SPDX-License-Identifier: BSD-2-Clause

/*
Package order builds UN/CEFACT Cross-Industry Order ("Order-X") documents.

The package exposes a fluent, stateful builder over a namespace-qualified
XML tree. Operations mutate the tree incrementally; the tree can be queried
at any point and serialized at the end (serialization is not terminal, the
graph stays mutable).

# Building a Document

	b, err := order.New(profile.Extended)
	if err != nil {
	    // unknown profile
	}

	b.SetDocumentInformation("PO-2026-0815", "220", issueDate, "Purchase Order").
	    SetDocumentBuyerReference("DEPT-42").
	    SetDocumentSeller("ACME GmbH", "SUP-1", "").
	    AddDocumentSellerGlobalID("4000001123452", "0088").
	    SetDocumentSellerAddress("Lieferantenstraße 20", "", "", "80333", "München", "DE", "").
	    SetDocumentBuyer("Kraxlhuber AG", "BY-7", "").
	    SetDocumentCurrency("EUR")

	b.AddNewPosition("1", "")
	b.SetDocumentPositionProductDetails("Widget", "", "W-1", "", "", "", "", "").
	    SetDocumentPositionNetPrice(9.90).
	    SetDocumentPositionRequestedQuantity(100, "C62")

	if err := b.WriteFile("order.xml"); err != nil {
	    // accumulated build error or sink failure
	}

# Set versus Add

Set operations destructively replace their target: a singleton substructure
is rebuilt from exactly the arguments given, and leaves not re-specified
are dropped. Add operations append to repeatable groups in call order, with
0-based index access through the query handle. On repeatable groups, Set
clears the group and appends one.

Empty string arguments suppress the dependent optional element: a party set
with an empty name and a non-empty id emits the id element and no name
element.

# Line Items

AddNewPosition opens a line item and makes it the current position; every
SetDocumentPosition... and AddDocumentPosition... operation targets the
current position. RemoveLatestPosition discards the most recent line item (a no-op
when none exist). Position-scoped calls with no open line item record a
*StructuralStateError, surfaced by Err, Finish and WriteFile.

# Querying

The document is queryable while being built:

	q := b.Query()
	total, _ := q.Text("//ram:SpecifiedTradeSettlementHeaderMonetarySummation/ram:LineTotalAmount")
	scheme, _ := q.AttrAt("//ram:SellerTradeParty/ram:GlobalID", 1, "schemeID")

# References

  - Order-X specification: https://fnfe-mpe.org/factur-x/order-x/
  - UN/CEFACT Cross Industry Order (SCRDMCCBDACIOMessageStructure)
*/
package order
