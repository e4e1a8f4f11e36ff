package order

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openprocure/go-orderx/pkg/profile"
)

func newBuilder(t *testing.T) *DocumentBuilder {
	t.Helper()
	b, err := New(profile.Extended)
	require.NoError(t, err)
	return b
}

func TestNew_Skeleton(t *testing.T) {
	b := newBuilder(t)

	root := b.ContentTree().Root()
	require.NotNil(t, root)
	assert.Equal(t, "rsm:SCRDMCCBDACIOMessage", root.FullTag())

	require.NotNil(t, root.SelectElement("rsm:ExchangedDocumentContext"))
	require.NotNil(t, root.SelectElement("rsm:ExchangedDocument"))
	require.NotNil(t, root.SelectElement("rsm:SupplyChainTradeTransaction"))

	urn, err := b.Query().Text("//ram:GuidelineSpecifiedDocumentContextParameter/ram:ID")
	require.NoError(t, err)
	assert.Equal(t, "urn:order-x.eu:1p0:extended", urn)
}

func TestNew_UnknownProfile(t *testing.T) {
	b, err := New(profile.Unknown)
	require.Error(t, err)
	assert.Nil(t, b)

	var confErr *profile.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestNew_ProfileStampsGuidelineURN(t *testing.T) {
	for _, p := range []profile.Profile{profile.Basic, profile.Comfort, profile.Extended} {
		b, err := New(p)
		require.NoError(t, err)

		urn, err := b.Query().Text("//ram:GuidelineSpecifiedDocumentContextParameter/ram:ID")
		require.NoError(t, err)
		assert.Equal(t, p.GuidelineURN(), urn)
	}
}

func TestDocumentBuilder_HeaderInformation(t *testing.T) {
	b := newBuilder(t)
	issue := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	b.SetDocumentInformation("PO-2026-0815", "220", issue, "Purchase Order")

	q := b.Query()
	id, err := q.Text("//rsm:ExchangedDocument/ram:ID")
	require.NoError(t, err)
	assert.Equal(t, "PO-2026-0815", id)

	date, err := q.Text("//ram:IssueDateTime/udt:DateTimeString")
	require.NoError(t, err)
	assert.Equal(t, "20260815", date)

	format, err := q.Attr("//ram:IssueDateTime/udt:DateTimeString", "format")
	require.NoError(t, err)
	assert.Equal(t, "102", format)
}

func TestDocumentBuilder_NotesPreserveOrder(t *testing.T) {
	b := newBuilder(t)
	b.AddDocumentNote("first note", "", "AAI").
		AddDocumentNote("second note", "ST3", "").
		AddDocumentNote("third note", "", "")

	q := b.Query()
	assert.Equal(t, 3, q.Count("//rsm:ExchangedDocument/ram:IncludedNote"))

	for i, want := range []string{"first note", "second note", "third note"} {
		got, err := q.TextAt("//rsm:ExchangedDocument/ram:IncludedNote/ram:Content", i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	subject, err := q.TextAt("//ram:IncludedNote/ram:SubjectCode", 0)
	require.NoError(t, err)
	assert.Equal(t, "AAI", subject)
}

func TestDocumentBuilder_TestIndicator(t *testing.T) {
	b := newBuilder(t)
	b.SetIsTestDocument(true)

	text, err := b.Query().Text("//rsm:ExchangedDocumentContext/ram:TestIndicator/udt:Indicator")
	require.NoError(t, err)
	assert.Equal(t, "true", text)

	// Context order: the test indicator precedes the guideline parameter.
	ctx := b.ContentTree().FindElement("//rsm:ExchangedDocumentContext")
	children := ctx.ChildElements()
	require.Len(t, children, 2)
	assert.Equal(t, "TestIndicator", children[0].Tag)
	assert.Equal(t, "GuidelineSpecifiedDocumentContextParameter", children[1].Tag)
}

func TestSetDocumentBusinessProcess(t *testing.T) {
	b := newBuilder(t)
	b.SetDocumentBusinessProcess("A1")

	q := b.Query()
	id, err := q.Text("//rsm:ExchangedDocumentContext/ram:BusinessProcessSpecifiedDocumentContextParameter/ram:ID")
	require.NoError(t, err)
	assert.Equal(t, "A1", id)

	// An empty id removes the parameter, no empty wrapper stays behind.
	b.SetDocumentBusinessProcess("")
	assert.False(t, q.Exists("//ram:BusinessProcessSpecifiedDocumentContextParameter"))
}

func TestSerialize_RoundTripWellFormed(t *testing.T) {
	b := newBuilder(t)
	b.SetDocumentInformation("PO-1", "220", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), "").
		SetDocumentSeller("ACME GmbH", "SUP-1", "").
		SetDocumentBuyer("Kraxlhuber AG", "", "").
		SetDocumentCurrency("EUR").
		SetDocumentSummation(100.0, WithGrandTotal(119.0), WithTaxTotal(19.0))
	b.AddNewPosition("1", "")
	b.SetDocumentPositionProductDetails("Widget", "", "W-1", "", "", "", "", "").
		SetDocumentPositionNetPrice(9.90).
		SetDocumentPositionRequestedQuantity(10, "C62")

	var buf bytes.Buffer
	require.NoError(t, b.Write(&buf))

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(buf.Bytes()))
	require.NotNil(t, parsed.Root())
	assert.Equal(t, "SCRDMCCBDACIOMessage", parsed.Root().Tag)

	xml := buf.String()
	assert.Contains(t, xml, `xmlns:rsm="`+NsRSM+`"`)
	assert.Contains(t, xml, `xmlns:ram="`+NsRAM+`"`)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
}

func TestSerialize_NotTerminal(t *testing.T) {
	b := newBuilder(t)
	b.SetDocumentCurrency("EUR")

	_, err := b.SerializeBytes()
	require.NoError(t, err)

	// The graph stays mutable after serialization.
	b.SetDocumentCurrency("USD")
	cur, err := b.Query().Text("//ram:OrderCurrencyCode")
	require.NoError(t, err)
	assert.Equal(t, "USD", cur)
}

func TestSerialize_DoesNotPolluteLiveTree(t *testing.T) {
	b := newBuilder(t)
	b.SetDocumentCurrency("EUR")

	before := b.Query().Count("//ram:ApplicableHeaderTradeSettlement")
	_, err := b.SerializeBytes()
	require.NoError(t, err)

	// Indentation happens on a copy; the live tree keeps no extra tokens.
	settlement := b.ContentTree().FindElement("//ram:ApplicableHeaderTradeSettlement")
	require.NotNil(t, settlement)
	assert.Len(t, settlement.Child, 1)
	assert.Equal(t, before, b.Query().Count("//ram:ApplicableHeaderTradeSettlement"))
}

func TestWriteFile_PersistsAndParses(t *testing.T) {
	b := newBuilder(t)
	b.SetDocumentInformation("PO-9", "220", time.Now().UTC(), "")

	path := t.TempDir() + "/order.xml"
	require.NoError(t, b.WriteFile(path))

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromFile(path))
	id := parsed.FindElement("//ram:ID")
	require.NotNil(t, id)
	assert.Equal(t, "PO-9", id.Text())
}

func TestWriteFile_SinkFailure(t *testing.T) {
	b := newBuilder(t)
	err := b.WriteFile(t.TempDir() + "/missing/order.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orderx: write")
}
