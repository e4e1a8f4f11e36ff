package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDocumentBuyerReference(t *testing.T) {
	b := newBuilder(t)
	b.SetDocumentBuyerReference("DEPT-42")

	ref, err := b.Query().Text("//ram:ApplicableHeaderTradeAgreement/ram:BuyerReference")
	require.NoError(t, err)
	assert.Equal(t, "DEPT-42", ref)
}

func TestBuyerOrderReference_AddNeverDuplicates(t *testing.T) {
	b := newBuilder(t)
	b.SetDocumentBuyerOrderReferencedDocument("PO-1")
	b.AddDocumentBuyerOrderReferencedDocument("PO-2")
	b.AddDocumentBuyerOrderReferencedDocument("PO-3")

	q := b.Query()
	assert.Equal(t, 1, q.Count("//ram:BuyerOrderReferencedDocument"))
	id, err := q.Text("//ram:BuyerOrderReferencedDocument/ram:IssuerAssignedID")
	require.NoError(t, err)
	assert.Equal(t, "PO-3", id)
}

func TestQuotationReference_IssueDateUsesQualifiedType(t *testing.T) {
	b := newBuilder(t)
	b.SetDocumentQuotationReferencedDocument("Q-77", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	q := b.Query()
	date, err := q.Text("//ram:QuotationReferencedDocument/ram:FormattedIssueDateTime/qdt:DateTimeString")
	require.NoError(t, err)
	assert.Equal(t, "20260201", date)
}

func TestAdditionalReferencedDocument_AppendSemantics(t *testing.T) {
	b := newBuilder(t)
	b.AddDocumentAdditionalReferencedDocument("DOC-1", "916", "", "Drawing", "").
		AddDocumentAdditionalReferencedDocument("DOC-2", "916", "http://example.com/d2", "", "").
		AddDocumentAdditionalReferencedDocument("DOC-3", "50", "", "", "")

	q := b.Query()
	path := "//ram:ApplicableHeaderTradeAgreement/ram:AdditionalReferencedDocument"
	require.Equal(t, 3, q.Count(path))

	for i, want := range []string{"DOC-1", "DOC-2", "DOC-3"} {
		got, err := q.TextAt(path+"/ram:IssuerAssignedID", i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	uri, err := q.Text(path + "/ram:URIID")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/d2", uri)
}

func TestAdditionalReferencedDocument_SetClearsGroup(t *testing.T) {
	b := newBuilder(t)
	b.AddDocumentAdditionalReferencedDocument("DOC-1", "916", "", "", "").
		AddDocumentAdditionalReferencedDocument("DOC-2", "916", "", "", "")
	b.SetDocumentAdditionalReferencedDocument("DOC-9", "916", "", "", "")

	q := b.Query()
	assert.Equal(t, 1, q.Count("//ram:AdditionalReferencedDocument"))
	id, err := q.Text("//ram:AdditionalReferencedDocument/ram:IssuerAssignedID")
	require.NoError(t, err)
	assert.Equal(t, "DOC-9", id)
}

func TestUltimateCustomerOrderReferences_Repeatable(t *testing.T) {
	b := newBuilder(t)
	b.AddDocumentUltimateCustomerOrderReferencedDocument("UC-1").
		AddDocumentUltimateCustomerOrderReferencedDocument("UC-2")

	assert.Equal(t, 2, b.Query().Count("//ram:UltimateCustomerOrderReferencedDocument"))
}

func TestAgreement_CanonicalChildOrder(t *testing.T) {
	b := newBuilder(t)
	// Reverse of schema order on purpose.
	b.AddDocumentBlanketOrderReferencedDocument("BL-1")
	b.SetDocumentContractReferencedDocument("CT-1")
	b.SetDocumentSeller("ACME GmbH", "", "")
	b.SetDocumentBuyerReference("REF-1")

	agreement := b.ContentTree().FindElement("//ram:ApplicableHeaderTradeAgreement")
	require.NotNil(t, agreement)
	var tags []string
	for _, el := range agreement.ChildElements() {
		tags = append(tags, el.Tag)
	}
	assert.Equal(t, []string{
		"BuyerReference",
		"SellerTradeParty",
		"ContractReferencedDocument",
		"BlanketOrderReferencedDocument",
	}, tags)
}

func TestSetDocumentDeliveryTerms(t *testing.T) {
	b := newBuilder(t)
	b.SetDocumentDeliveryTerms("FCA", "Free Carrier", "7", "DE MUC", "München Cargo")

	q := b.Query()
	code, err := q.Text("//ram:ApplicableTradeDeliveryTerms/ram:DeliveryTypeCode")
	require.NoError(t, err)
	assert.Equal(t, "FCA", code)
	loc, err := q.Text("//ram:ApplicableTradeDeliveryTerms/ram:RelevantTradeLocation/ram:ID")
	require.NoError(t, err)
	assert.Equal(t, "DE MUC", loc)

	// Without location data the wrapper is suppressed.
	b.SetDocumentDeliveryTerms("EXW", "", "", "", "")
	assert.False(t, q.Exists("//ram:ApplicableTradeDeliveryTerms/ram:RelevantTradeLocation"))
}

func TestSetDocumentRequestedDeliverySupplyChainEvent(t *testing.T) {
	b := newBuilder(t)
	occ := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	b.SetDocumentRequestedDeliverySupplyChainEvent(occ,
		WithDeliveryPeriod(
			time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		))

	q := b.Query()
	event := "//ram:ApplicableHeaderTradeDelivery/ram:RequestedDeliverySupplyChainEvent"

	date, err := q.Text(event + "/ram:OccurrenceDateTime/udt:DateTimeString")
	require.NoError(t, err)
	assert.Equal(t, "20260915", date)

	start, err := q.Text(event + "/ram:OccurrenceSpecifiedPeriod/ram:StartDateTime/udt:DateTimeString")
	require.NoError(t, err)
	assert.Equal(t, "20260910", start)

	// Point-in-time only: the period is suppressed.
	b.SetDocumentRequestedDeliverySupplyChainEvent(occ)
	assert.False(t, q.Exists(event+"/ram:OccurrenceSpecifiedPeriod"))
	assert.Equal(t, 1, q.Count(event))
}
