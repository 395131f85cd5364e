package model

const DefaultFailureMessage = "Request failed"

// ResponseItem is the part shared by every canonical response.
type ResponseItem struct {
	Success               bool   `json:"success"`
	ScreenMessage         string `json:"screenMessage"`
	ItemBarcode           string `json:"itemBarcode,omitempty"`
	ItemOwningInstitution string `json:"itemOwningInstitution,omitempty"`
	PatronIdentifier      string `json:"patronIdentifier,omitempty"`
	TitleIdentifier       string `json:"titleIdentifier,omitempty"`
	BibId                 string `json:"bibId,omitempty"`
	DueDate               string `json:"dueDate,omitempty"`
	TransactionDate       string `json:"transactionDate,omitempty"`
}

// Fail marks the response unsuccessful; an empty message is replaced so that
// a failed response never has a blank screen message.
func (r *ResponseItem) Fail(msg string) {
	if msg == "" {
		msg = DefaultFailureMessage
	}
	r.Success = false
	r.ScreenMessage = msg
}

func (r *ResponseItem) Succeed(msg string) {
	r.Success = true
	r.ScreenMessage = msg
}

type CheckoutResponse struct {
	ResponseItem
	Renewal       bool   `json:"renewal"`
	MagneticMedia bool   `json:"magneticMedia"`
	Desensitize   bool   `json:"desensitize"`
	JobId         string `json:"jobId,omitempty"`
}

type CheckinResponse struct {
	ResponseItem
	Alert         bool   `json:"alert"`
	MagneticMedia bool   `json:"magneticMedia"`
	Resensitize   bool   `json:"resensitize"`
	JobId         string `json:"jobId,omitempty"`
}

type HoldResponse struct {
	ResponseItem
	Available      bool   `json:"available"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	QueuePosition  string `json:"queuePosition,omitempty"`
	PickupLocation string `json:"pickupLocation,omitempty"`
	TrackingId     string `json:"trackingId,omitempty"`
	JobId          string `json:"jobId,omitempty"`
}

type RecallResponse struct {
	ResponseItem
	Available      bool   `json:"available"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	PickupLocation string `json:"pickupLocation,omitempty"`
	QueuePosition  string `json:"queuePosition,omitempty"`
}

type RefileResponse struct {
	ResponseItem
	RequestId int64 `json:"requestId,omitempty"`
}

type CreateBibResponse struct {
	ResponseItem
}

type ItemInformationResponse struct {
	ResponseItem
	CirculationStatus     string `json:"circulationStatus,omitempty"`
	HoldQueueLength       string `json:"holdQueueLength,omitempty"`
	CurrentLocation       string `json:"currentLocation,omitempty"`
	PermanentLocation     string `json:"permanentLocation,omitempty"`
	CallNumber            string `json:"callNumber,omitempty"`
	Author                string `json:"author,omitempty"`
	RecallDate            string `json:"recallDate,omitempty"`
	HoldPickupDate        string `json:"holdPickupDate,omitempty"`
	ItemId                int64  `json:"itemId,omitempty"`
	RequestId             int64  `json:"requestId,omitempty"`
	RequestingInstitution string `json:"requestingInstitution,omitempty"`
	RequestType           string `json:"requestType,omitempty"`
	EmailAddress          string `json:"emailAddress,omitempty"`
	DeliveryLocation      string `json:"deliveryLocation,omitempty"`
	CustomerCode          string `json:"customerCode,omitempty"`
	RequestNotes          string `json:"requestNotes,omitempty"`
	Username              string `json:"username,omitempty"`
	StartPage             string `json:"startPage,omitempty"`
	EndPage               string `json:"endPage,omitempty"`
	ChapterTitle          string `json:"chapterTitle,omitempty"`
	Volume                string `json:"volume,omitempty"`
	Issue                 string `json:"issue,omitempty"`
	RequestStatus         string `json:"requestStatus,omitempty"`
}

type PatronInformationResponse struct {
	ResponseItem
	PatronName    string `json:"patronName,omitempty"`
	Email         string `json:"email,omitempty"`
	PatronBarcode string `json:"patronBarcode,omitempty"`
	Blocked       bool   `json:"blocked"`
}

// PatronValidationResponse is the body of the bulk patron validation endpoint.
type PatronValidationResponse struct {
	RequestingInstitution string `json:"requestingInstitution"`
	PatronBarcode         string `json:"patronBarcode"`
	Valid                 bool   `json:"valid"`
	ErrorMessage          string `json:"errorMessage,omitempty"`
}

// ValidationResponse is the body of the item validation endpoint.
type ValidationResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
