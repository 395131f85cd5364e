package catalog

// Item is a physical item copy in the shared registry together with its bibliographic records.
type Item struct {
	ItemId               int64  `db:"item_id"`
	Barcode              string `db:"barcode"`
	AvailabilityStatusId int32  `db:"item_avail_status_id"`
	CustomerCode         string `db:"customer_code"`
	OwningInstitution    string `db:"institution_code"`
	CallNumber           string `db:"call_number"`

	Bibliographics []Bibliographic `db:"-"`
}

type Bibliographic struct {
	BibliographicId        int64  `db:"bibliographic_id"`
	OwningInstitutionBibId string `db:"owning_institution_bib_id"`
	Title                  string `db:"title"`
}

type CustomerCode struct {
	CustomerCodeId       int64  `db:"customer_code_id"`
	Code                 string `db:"customer_code"`
	Description          string `db:"description"`
	OwningInstitution    string `db:"institution_code"`
	DeliveryRestrictions string `db:"delivery_restrictions"`
}

type RequestItem struct {
	RequestId             int64
	ItemId                int64
	RequestType           string
	RequestingInstitution string
	PatronBarcode         string
	DeliveryLocation      string
	EmailAddress          string
	Notes                 string
	Status                string
	TrackingId            string
}

type itemBibRow struct {
	ItemId int64 `db:"item_id"`
	Bibliographic
}

type itemStatusRow struct {
	StatusCode string `db:"status_code"`
}
