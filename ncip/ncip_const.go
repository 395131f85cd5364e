package ncip

const NCIP_V2_02_XSD = "http://www.niso.org/ncip/v2_02/imp1/xsd/ncip_v2_02.xsd"

const NCIP_NS = "http://www.niso.org/2008/ncip"

type ProblemTypeMessage string

// Just a few from Appendix A of NCIP 2.02
const (
	MissingVersion            ProblemTypeMessage = "Missing Version"
	UnsupportedService        ProblemTypeMessage = "Unsupported Service"
	NeededDataMissing         ProblemTypeMessage = "Needed Data Missing"
	InvalidMessageSyntaxError ProblemTypeMessage = "Invalid Message Syntax Error"
	UnknownUser               ProblemTypeMessage = "Unknown User"
	UnknownItem               ProblemTypeMessage = "Unknown Item"
	UnknownRequest            ProblemTypeMessage = "Unknown Request"
	ItemNotCheckedOut         ProblemTypeMessage = "Item Not Checked Out"
	DuplicateItem             ProblemTypeMessage = "Duplicate Item"
)

// Request types and scopes used by RequestItem and CancelRequestItem
const (
	RequestTypeHold    = "Hold"
	RequestTypeRecall  = "Recall"
	RequestTypeLoan    = "Loan"
	RequestScopeItem   = "Item"
	RequestScopeTitle  = "Bibliographic Item"
	ItemElementBibDesc = "Bibliographic Description"
	ItemElementStatus  = "Circulation Status"
	ItemElementDesc    = "Item Description"
	UserElementName    = "Name Information"
	UserElementAddress = "User Address Information"
	UserElementBlock   = "Block Or Trap"
	UserIdentifierType = "Barcode"
	ItemIdentifierType = "Barcode"
)
