// Copyright (c) 2026 OpenProcure
// SPDX-License-Identifier: BSD-2-Clause

/*
Package profile provides the Order-X conformance profile registry.

An Order-X document declares the profile it conforms to through the
guideline context parameter in its ExchangedDocumentContext section. The
profile decides which optional structures a receiver may expect to be
populated; structurally, it only changes the URN stamped into the document.

# Profiles

Three profiles are defined by the Order-X 1.0 specification:

	Basic    - urn:order-x.eu:1p0:basic
	Comfort  - urn:order-x.eu:1p0:comfort
	Extended - urn:order-x.eu:1p0:extended

# Resolving Profiles

Profiles are resolved from their name:

	p, err := profile.FromString("EXTENDED")
	if err != nil {
	    // unknown profile identifier
	}
	fmt.Println(p.GuidelineURN())

The registry is a read-only table initialized at process start; it is safe
for concurrent use.

# References

  - Order-X specification: https://fnfe-mpe.org/factur-x/order-x/
  - UN/CEFACT Cross Industry Order: https://unece.org/trade/uncefact
*/
package profile
