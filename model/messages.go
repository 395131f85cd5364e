package model

// Screen messages shared with external consumers that may match on the exact text.
const (
	WrongItemBarcode               = "Item Barcode(s) not available in SCSB database"
	RetrievalNotForUnavailableItem = "Retrieval request for this Item is not allowed as the item is not available"
	RecallNotForAvailableItem      = "Recall request for this item is not allowed as the item is available"
	InvalidItemBarcode             = "Item barcode(s) is not available to request"
	InvalidCustomerCode            = "Delivery location is not valid for the requested item"
	InvalidDeliveryCode            = "Delivery location is not allowed for the requested item"
	ItemBarcodeWithDifferentBib    = "Item barcodes are associated with different bibliographic records"
	ValidRequest                   = "All request parameters are valid.Patron is eligible to raise a request"
	RequestItemBarcodeNotFound     = "BARCODE NOT FOUND"
	ItemIdNotFound                 = "Item Id not found"
	IlsInvalidResponse             = "ILS returned a invalid response"
	ItemBarcodeAlreadyExist        = "Item Barcode already Exist"
	EddRequestSuccess              = "EDD requests is successfull"
	RequestStatusPending           = "PENDING"
	RequestStatusEdd               = "EDD_ORDER_PLACED"
	ItemStatusAvailable            = "Available"
	ItemStatusNotAvailable         = "Not Available"
)

// Item availability status ids in the catalog.
const (
	ItemStatusIdAvailable    int32 = 1
	ItemStatusIdNotAvailable int32 = 2
)
