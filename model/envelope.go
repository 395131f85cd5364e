package model

import "strings"

const (
	RequestTypeRetrieval    = "RETRIEVAL"
	RequestTypeEdd          = "EDD"
	RequestTypeRecall       = "RECALL"
	RequestTypeBorrowDirect = "BORROW_DIRECT"
)

// RequestEnvelope is the canonical request shape accepted by every circulation operation.
// ItemBarcodes is ordered; the first element is the primary barcode.
type RequestEnvelope struct {
	RequestingInstitution string   `json:"requestingInstitution,omitempty"`
	ItemOwningInstitution string   `json:"itemOwningInstitution,omitempty"`
	ItemBarcodes          []string `json:"itemBarcodes,omitempty"`
	PatronBarcode         string   `json:"patronBarcode,omitempty"`
	BibId                 string   `json:"bibId,omitempty"`
	RequestType           string   `json:"requestType,omitempty"`
	ExpirationDate        string   `json:"expirationDate,omitempty"`
	PickupLocation        string   `json:"pickupLocation,omitempty"`
	DeliveryLocation      string   `json:"deliveryLocation,omitempty"`
	TrackingId            string   `json:"trackingId,omitempty"`
	TitleIdentifier       string   `json:"titleIdentifier,omitempty"`
	Author                string   `json:"author,omitempty"`
	CallNumber            string   `json:"callNumber,omitempty"`
	CustomerCode          string   `json:"customerCode,omitempty"`
	EmailAddress          string   `json:"emailAddress,omitempty"`
	StartPage             string   `json:"startPage,omitempty"`
	EndPage               string   `json:"endPage,omitempty"`
	ChapterTitle          string   `json:"chapterTitle,omitempty"`
	Volume                string   `json:"volume,omitempty"`
	Issue                 string   `json:"issue,omitempty"`
	RequestNotes          string   `json:"requestNotes,omitempty"`
	Username              string   `json:"username,omitempty"`
	ArticleAuthor         string   `json:"articleAuthor,omitempty"`
	ArticleTitle          string   `json:"articleTitle,omitempty"`
}

// PrimaryBarcode returns the first non-blank barcode and false when there is none.
func (e *RequestEnvelope) PrimaryBarcode() (string, bool) {
	if e == nil {
		return "", false
	}
	barcodes := e.Barcodes()
	if len(barcodes) == 0 {
		return "", false
	}
	return barcodes[0], true
}

// Barcodes returns the trimmed, non-blank barcodes in input order.
func (e *RequestEnvelope) Barcodes() []string {
	var out []string
	for _, b := range e.ItemBarcodes {
		b = strings.TrimSpace(b)
		if b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (e *RequestEnvelope) IsRequestType(requestType string) bool {
	return strings.EqualFold(strings.TrimSpace(e.RequestType), requestType)
}

// IsEddOrBorrowDirect reports whether delivery checks are skipped for this request.
func (e *RequestEnvelope) IsEddOrBorrowDirect() bool {
	return e.IsRequestType(RequestTypeEdd) || e.IsRequestType(RequestTypeBorrowDirect)
}

// RetrievalLike request types are refused for items that are not available.
func (e *RequestEnvelope) IsRetrievalLike() bool {
	return e.IsRequestType(RequestTypeRetrieval) || e.IsEddOrBorrowDirect()
}
