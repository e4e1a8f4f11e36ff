// Copyright (c) 2026 OpenProcure
// SPDX-License-Identifier: BSD-2-Clause

/*
Package goorderx implements a builder for Order-X electronic purchase order
documents based on the UN/CEFACT Cross-Industry Order.

# Overview

go-orderx is a Go library for producing Order-X XML documents, the order
format jointly published by FNFE-MPE and FeRD as the ordering counterpart
to Factur-X. It builds the rsm:SCRDMCCBDACIOMessage structure incrementally
through a fluent builder, keeps the element tree schema-shaped regardless of
the order setters run in, and serializes the result to any io.Writer.

# Specifications Implemented

This library implements the following specifications:

  - Order-X 1.0: https://fnfe-mpe.org/factur-x/order-x/
  - UN/CEFACT Cross-Industry Order, SCRDMCCBDACIOMessageStructure:100
  - UN/CEFACT Reusable Aggregate Business Information Entity:100
  - UN/CEFACT Qualified and Unqualified Data Type:100

# Package Structure

The library is organized into the following packages:

	github.com/openprocure/go-orderx/pkg/order    - Document builder, queries, serialization
	github.com/openprocure/go-orderx/pkg/profile  - Conformance profiles and guideline URNs
	github.com/openprocure/go-orderx/pkg/datatype - UN/CEFACT typed leaf encoding

# Quick Start

To build an order document:

	import (
	    "github.com/openprocure/go-orderx/pkg/order"
	    "github.com/openprocure/go-orderx/pkg/profile"
	)

	// Create builder
	b, err := order.New(profile.Comfort)
	if err != nil {
	    log.Fatal(err)
	}
	b.SetDocumentInformation("PO-2026-0042", "220", time.Now(), "").
	    SetDocumentSeller("Seller GmbH", "", "").
	    SetDocumentBuyer("Buyer Inc", "", "").
	    SetDocumentCurrency("EUR")

	// Add a line item
	b.AddNewPosition("1", "").
	    SetDocumentPositionProductDetails("Widget", "", "W-1", "", "", "", "", "").
	    SetDocumentPositionNetPrice(9.90).
	    SetDocumentPositionRequestedQuantity(10, "C62")

	// Totals and output
	b.SetDocumentSummation(99.00, order.WithGrandTotal(117.81))
	if err := b.WriteFile("order.xml"); err != nil {
	    log.Fatal(err)
	}

Errors accumulate inside the builder and surface when the document is
finished or serialized, so call chains stay linear.

# Profiles

Order-X defines three conformance profiles with increasing field coverage:

  - BASIC: core order data
  - COMFORT: adds references, contacts and settlement detail
  - EXTENDED: full field coverage including line-level logistics

The profile selects the guideline URN written into the document context and
is fixed for the lifetime of a builder.

# Set versus Add

Setter pairs follow a uniform rule: Set replaces whatever occurrence exists,
Add appends and preserves insertion order. Referenced documents that the
schema caps at one occurrence are replaced even through their Add variant.

# References

  - FNFE-MPE: https://fnfe-mpe.org/factur-x/order-x/
  - FeRD: https://www.ferd-net.de/
  - UN/CEFACT: https://unece.org/trade/uncefact

# License

BSD-2-Clause License
*/
package goorderx
