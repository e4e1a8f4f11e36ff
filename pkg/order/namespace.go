package order

// Namespace constants for the UN/CEFACT Cross-Industry Order message.
const (
	NsRSM = "urn:un:unece:uncefact:data:standard:SCRDMCCBDACIOMessageStructure:100"
	NsRAM = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100"
	NsQDT = "urn:un:unece:uncefact:data:standard:QualifiedDataType:100"
	NsUDT = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100"
)

// Root and section element names.
const (
	tagRoot        = "rsm:SCRDMCCBDACIOMessage"
	tagContext     = "rsm:ExchangedDocumentContext"
	tagDocument    = "rsm:ExchangedDocument"
	tagTransaction = "rsm:SupplyChainTradeTransaction"
)

// namespaceDecls maps the prefix declarations stamped onto the root element.
// Declaration order is fixed so serialized output is stable.
var namespaceDecls = []struct {
	attr string
	uri  string
}{
	{"xmlns:rsm", NsRSM},
	{"xmlns:ram", NsRAM},
	{"xmlns:qdt", NsQDT},
	{"xmlns:udt", NsUDT},
}
