package events

import (
	"time"

	"github.com/indexdata/circbroker/model"
)

// Notice is the payload published on a request topic after an EDD request was processed.
type Notice struct {
	Topic                 string                         `json:"topic"`
	RequestingInstitution string                         `json:"requestingInstitution"`
	RequestType           string                         `json:"requestType"`
	Timestamp             time.Time                      `json:"timestamp"`
	Response              *model.ItemInformationResponse `json:"response"`
}

// Notification is a notice received by a Listener.
type Notification struct {
	Channel string
	Notice  Notice
}
