package order

import (
	"github.com/beevik/etree"

	"github.com/openprocure/go-orderx/pkg/profile"
)

// DocumentBuilder incrementally constructs one Cross-Industry Order
// document. All mutating operations are fluent; errors raised by an
// operation accumulate on the builder and surface through Err, Finish or
// WriteFile. A builder is owned by one caller and is not safe for
// concurrent use.
type DocumentBuilder struct {
	doc         *etree.Document
	root        *etree.Element
	context     *etree.Element
	document    *etree.Element
	transaction *etree.Element

	// current is an advisory back-reference to the line item targeted by
	// position-scoped operations; nil when no line item is open.
	current *etree.Element

	profile profile.Profile
	errs    []error
}

// New allocates the document skeleton for the given profile: root message
// element with namespace declarations, exchanged document context carrying
// the profile's guideline URN, exchanged document, and the trade
// transaction. An unregistered profile returns a *profile.ConfigurationError.
func New(p profile.Profile) (*DocumentBuilder, error) {
	if !p.Valid() {
		return nil, &profile.ConfigurationError{Identifier: p.String()}
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(tagRoot)
	for _, ns := range namespaceDecls {
		root.CreateAttr(ns.attr, ns.uri)
	}

	b := &DocumentBuilder{
		doc:         doc,
		root:        root,
		context:     root.CreateElement(tagContext),
		document:    root.CreateElement(tagDocument),
		transaction: root.CreateElement(tagTransaction),
		profile:     p,
	}

	guideline := b.context.CreateElement("ram:GuidelineSpecifiedDocumentContextParameter")
	guideline.CreateElement("ram:ID").SetText(p.GuidelineURN())

	return b, nil
}

// Profile returns the profile the document was initialized with.
func (b *DocumentBuilder) Profile() profile.Profile {
	return b.profile
}

// Err returns the first error raised by a builder operation, or nil.
func (b *DocumentBuilder) Err() error {
	if len(b.errs) > 0 {
		return b.errs[0]
	}
	return nil
}

// Finish reports whether the build sequence completed without errors. The
// graph stays mutable afterwards.
func (b *DocumentBuilder) Finish() error {
	return b.Err()
}

func (b *DocumentBuilder) fail(err error) {
	b.errs = append(b.errs, err)
}

// Section resolvers. Each allocates its container on first use so setters
// always have a non-nil attachment point.

func (b *DocumentBuilder) headerAgreement() *etree.Element {
	return ensureChild(b.transaction, "ram:ApplicableHeaderTradeAgreement")
}

func (b *DocumentBuilder) headerDelivery() *etree.Element {
	return ensureChild(b.transaction, "ram:ApplicableHeaderTradeDelivery")
}

func (b *DocumentBuilder) headerSettlement() *etree.Element {
	return ensureChild(b.transaction, "ram:ApplicableHeaderTradeSettlement")
}
