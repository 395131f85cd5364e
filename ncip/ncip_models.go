package ncip

import (
	"encoding/xml"

	"github.com/indexdata/go-utils/utils"
)

// Subset of the NCIP 2.02 schema covering the services the circulation
// connectors use. Element names follow the XSD.

type NCIPMessage struct {
	XMLName                   xml.Name                   `xml:"http://www.niso.org/2008/ncip NCIPMessage"`
	Version                   string                     `xml:"version,attr"`
	Problem                   []Problem                  `xml:"Problem,omitempty"`
	LookupItem                *LookupItem                `xml:"LookupItem,omitempty"`
	LookupItemResponse        *LookupItemResponse        `xml:"LookupItemResponse,omitempty"`
	LookupUser                *LookupUser                `xml:"LookupUser,omitempty"`
	LookupUserResponse        *LookupUserResponse        `xml:"LookupUserResponse,omitempty"`
	CheckOutItem              *CheckOutItem              `xml:"CheckOutItem,omitempty"`
	CheckOutItemResponse      *CheckOutItemResponse      `xml:"CheckOutItemResponse,omitempty"`
	CheckInItem               *CheckInItem               `xml:"CheckInItem,omitempty"`
	CheckInItemResponse       *CheckInItemResponse       `xml:"CheckInItemResponse,omitempty"`
	RequestItem               *RequestItem               `xml:"RequestItem,omitempty"`
	RequestItemResponse       *RequestItemResponse       `xml:"RequestItemResponse,omitempty"`
	CancelRequestItem         *CancelRequestItem         `xml:"CancelRequestItem,omitempty"`
	CancelRequestItemResponse *CancelRequestItemResponse `xml:"CancelRequestItemResponse,omitempty"`
	RecallItem                *RecallItem                `xml:"RecallItem,omitempty"`
	RecallItemResponse        *RecallItemResponse        `xml:"RecallItemResponse,omitempty"`
	CreateItem                *CreateItem                `xml:"CreateItem,omitempty"`
	CreateItemResponse        *CreateItemResponse        `xml:"CreateItemResponse,omitempty"`
}

type SchemeValuePair struct {
	Scheme string `xml:"Scheme,attr,omitempty"`
	Text   string `xml:",chardata"`
}

type FromAgencyId struct {
	AgencyId SchemeValuePair `xml:"AgencyId"`
}

type ToAgencyId struct {
	AgencyId SchemeValuePair `xml:"AgencyId"`
}

type InitiationHeader struct {
	FromAgencyId             FromAgencyId `xml:"FromAgencyId"`
	ToAgencyId               ToAgencyId   `xml:"ToAgencyId"`
	FromAgencyAuthentication string       `xml:"FromAgencyAuthentication,omitempty"`
}

type Problem struct {
	ProblemType    SchemeValuePair `xml:"ProblemType"`
	ProblemDetail  string          `xml:"ProblemDetail,omitempty"`
	ProblemElement string          `xml:"ProblemElement,omitempty"`
	ProblemValue   string          `xml:"ProblemValue,omitempty"`
}

type UserId struct {
	AgencyId            *SchemeValuePair `xml:"AgencyId,omitempty"`
	UserIdentifierType  *SchemeValuePair `xml:"UserIdentifierType,omitempty"`
	UserIdentifierValue string           `xml:"UserIdentifierValue"`
}

type ItemId struct {
	AgencyId            *SchemeValuePair `xml:"AgencyId,omitempty"`
	ItemIdentifierType  *SchemeValuePair `xml:"ItemIdentifierType,omitempty"`
	ItemIdentifierValue string           `xml:"ItemIdentifierValue"`
}

type RequestId struct {
	AgencyId               *SchemeValuePair `xml:"AgencyId,omitempty"`
	RequestIdentifierValue string           `xml:"RequestIdentifierValue"`
}

type BibliographicRecordId struct {
	BibliographicRecordIdentifier string           `xml:"BibliographicRecordIdentifier"`
	AgencyId                      *SchemeValuePair `xml:"AgencyId,omitempty"`
}

type BibliographicId struct {
	BibliographicRecordId *BibliographicRecordId `xml:"BibliographicRecordId,omitempty"`
}

type BibliographicDescription struct {
	Author                string                 `xml:"Author,omitempty"`
	BibliographicRecordId *BibliographicRecordId `xml:"BibliographicRecordId,omitempty"`
	Title                 string                 `xml:"Title,omitempty"`
}

type ItemDescription struct {
	CallNumber string `xml:"CallNumber,omitempty"`
}

type Location struct {
	LocationType SchemeValuePair `xml:"LocationType"`
	LocationName string          `xml:"LocationName>LocationNameInstance>LocationNameValue"`
}

type ItemOptionalFields struct {
	BibliographicDescription *BibliographicDescription `xml:"BibliographicDescription,omitempty"`
	CirculationStatus        *SchemeValuePair          `xml:"CirculationStatus,omitempty"`
	HoldQueueLength          *int                      `xml:"HoldQueueLength,omitempty"`
	ItemDescription          *ItemDescription          `xml:"ItemDescription,omitempty"`
	Location                 []Location                `xml:"Location,omitempty"`
}

type AuthenticationInput struct {
	AuthenticationInputData      string          `xml:"AuthenticationInputData"`
	AuthenticationDataFormatType SchemeValuePair `xml:"AuthenticationDataFormatType"`
	AuthenticationInputType      SchemeValuePair `xml:"AuthenticationInputType"`
}

type PersonalNameInformation struct {
	UnstructuredPersonalUserName string `xml:"UnstructuredPersonalUserName,omitempty"`
}

type NameInformation struct {
	PersonalNameInformation *PersonalNameInformation `xml:"PersonalNameInformation,omitempty"`
}

type ElectronicAddress struct {
	ElectronicAddressType SchemeValuePair `xml:"ElectronicAddressType"`
	ElectronicAddressData string          `xml:"ElectronicAddressData"`
}

type UserAddressInformation struct {
	UserAddressRoleType SchemeValuePair    `xml:"UserAddressRoleType"`
	ElectronicAddress   *ElectronicAddress `xml:"ElectronicAddress,omitempty"`
}

type BlockOrTrap struct {
	AgencyId        SchemeValuePair `xml:"AgencyId"`
	BlockOrTrapType SchemeValuePair `xml:"BlockOrTrapType"`
}

type UserOptionalFields struct {
	NameInformation        *NameInformation         `xml:"NameInformation,omitempty"`
	UserAddressInformation []UserAddressInformation `xml:"UserAddressInformation,omitempty"`
	BlockOrTrap            []BlockOrTrap            `xml:"BlockOrTrap,omitempty"`
	UserId                 []UserId                 `xml:"UserId,omitempty"`
}

type LookupItem struct {
	InitiationHeader *InitiationHeader `xml:"InitiationHeader,omitempty"`
	ItemId           *ItemId           `xml:"ItemId,omitempty"`
	ItemElementType  []SchemeValuePair `xml:"ItemElementType,omitempty"`
}

type LookupItemResponse struct {
	Problem            []Problem           `xml:"Problem,omitempty"`
	ItemId             *ItemId             `xml:"ItemId,omitempty"`
	HoldPickupDate     *utils.XSDDateTime  `xml:"HoldPickupDate,omitempty"`
	DateRecalled       *utils.XSDDateTime  `xml:"DateRecalled,omitempty"`
	ItemOptionalFields *ItemOptionalFields `xml:"ItemOptionalFields,omitempty"`
}

type LookupUser struct {
	InitiationHeader    *InitiationHeader     `xml:"InitiationHeader,omitempty"`
	UserId              *UserId               `xml:"UserId,omitempty"`
	AuthenticationInput []AuthenticationInput `xml:"AuthenticationInput,omitempty"`
	UserElementType     []SchemeValuePair     `xml:"UserElementType,omitempty"`
}

type LookupUserResponse struct {
	Problem            []Problem           `xml:"Problem,omitempty"`
	UserId             *UserId             `xml:"UserId,omitempty"`
	UserOptionalFields *UserOptionalFields `xml:"UserOptionalFields,omitempty"`
}

type CheckOutItem struct {
	InitiationHeader *InitiationHeader  `xml:"InitiationHeader,omitempty"`
	UserId           *UserId            `xml:"UserId,omitempty"`
	ItemId           ItemId             `xml:"ItemId"`
	RequestId        *RequestId         `xml:"RequestId,omitempty"`
	DesiredDateDue   *utils.XSDDateTime `xml:"DesiredDateDue,omitempty"`
}

type CheckOutItemResponse struct {
	Problem   []Problem          `xml:"Problem,omitempty"`
	RequestId *RequestId         `xml:"RequestId,omitempty"`
	ItemId    *ItemId            `xml:"ItemId,omitempty"`
	UserId    *UserId            `xml:"UserId,omitempty"`
	DateDue   *utils.XSDDateTime `xml:"DateDue,omitempty"`
}

type CheckInItem struct {
	InitiationHeader *InitiationHeader `xml:"InitiationHeader,omitempty"`
	ItemId           ItemId            `xml:"ItemId"`
	RequestId        *RequestId        `xml:"RequestId,omitempty"`
	ItemElementType  []SchemeValuePair `xml:"ItemElementType,omitempty"`
}

type CheckInItemResponse struct {
	Problem            []Problem           `xml:"Problem,omitempty"`
	ItemId             *ItemId             `xml:"ItemId,omitempty"`
	UserId             *UserId             `xml:"UserId,omitempty"`
	ItemOptionalFields *ItemOptionalFields `xml:"ItemOptionalFields,omitempty"`
}

type RequestItem struct {
	InitiationHeader   *InitiationHeader   `xml:"InitiationHeader,omitempty"`
	UserId             *UserId             `xml:"UserId,omitempty"`
	ItemId             []ItemId            `xml:"ItemId,omitempty"`
	BibliographicId    []BibliographicId   `xml:"BibliographicId,omitempty"`
	RequestId          *RequestId          `xml:"RequestId,omitempty"`
	RequestType        SchemeValuePair     `xml:"RequestType"`
	RequestScopeType   SchemeValuePair     `xml:"RequestScopeType"`
	ItemOptionalFields *ItemOptionalFields `xml:"ItemOptionalFields,omitempty"`
	PickupLocation     *SchemeValuePair    `xml:"PickupLocation,omitempty"`
	PickupExpiryDate   *utils.XSDDateTime  `xml:"PickupExpiryDate,omitempty"`
}

type RequestItemResponse struct {
	Problem           []Problem          `xml:"Problem,omitempty"`
	ItemId            *ItemId            `xml:"ItemId,omitempty"`
	RequestId         *RequestId         `xml:"RequestId,omitempty"`
	UserId            *UserId            `xml:"UserId,omitempty"`
	DateAvailable     *utils.XSDDateTime `xml:"DateAvailable,omitempty"`
	HoldQueuePosition *int               `xml:"HoldQueuePosition,omitempty"`
}

type CancelRequestItem struct {
	InitiationHeader *InitiationHeader `xml:"InitiationHeader,omitempty"`
	UserId           *UserId           `xml:"UserId,omitempty"`
	ItemId           *ItemId           `xml:"ItemId,omitempty"`
	RequestId        *RequestId        `xml:"RequestId,omitempty"`
	RequestType      SchemeValuePair   `xml:"RequestType"`
}

type CancelRequestItemResponse struct {
	Problem   []Problem  `xml:"Problem,omitempty"`
	ItemId    *ItemId    `xml:"ItemId,omitempty"`
	RequestId *RequestId `xml:"RequestId,omitempty"`
	UserId    *UserId    `xml:"UserId,omitempty"`
}

type RecallItem struct {
	InitiationHeader *InitiationHeader  `xml:"InitiationHeader,omitempty"`
	ItemId           ItemId             `xml:"ItemId"`
	DesiredDateDue   *utils.XSDDateTime `xml:"DesiredDateDue,omitempty"`
}

type RecallItemResponse struct {
	Problem []Problem          `xml:"Problem,omitempty"`
	ItemId  *ItemId            `xml:"ItemId,omitempty"`
	DateDue *utils.XSDDateTime `xml:"DateDue,omitempty"`
}

type CreateItem struct {
	InitiationHeader   *InitiationHeader   `xml:"InitiationHeader,omitempty"`
	ItemId             *ItemId             `xml:"ItemId,omitempty"`
	RequestId          *RequestId          `xml:"RequestId,omitempty"`
	ItemOptionalFields *ItemOptionalFields `xml:"ItemOptionalFields,omitempty"`
}

type CreateItemResponse struct {
	Problem []Problem `xml:"Problem,omitempty"`
	ItemId  *ItemId   `xml:"ItemId,omitempty"`
}
