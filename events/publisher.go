package events

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/model"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// postgres rejects NOTIFY payloads of 8000 bytes or more
const maxPayloadSize = 7999

var ErrPayloadTooLarge = errors.New("notification payload too large")

var topicUnsafe = regexp.MustCompile(`[^a-z0-9_]+`)

type Publisher interface {
	Publish(ctx common.ExtendedContext, topic string, response *model.ItemInformationResponse) error
}

// TopicName derives the channel a request is announced on, e.g. circ_pul_edd.
func TopicName(institution string, requestType string) string {
	name := "circ_" + strings.ToLower(strings.TrimSpace(institution)) + "_" + strings.ToLower(strings.TrimSpace(requestType))
	name = topicUnsafe.ReplaceAllString(name, "_")
	if len(name) > 63 {
		name = name[:63]
	}
	return name
}

type PgNotifyPublisher struct {
	repo EventRepo
}

func NewPgNotifyPublisher(repo EventRepo) *PgNotifyPublisher {
	return &PgNotifyPublisher{repo: repo}
}

func (p *PgNotifyPublisher) Publish(ctx common.ExtendedContext, topic string, response *model.ItemInformationResponse) error {
	notice := Notice{
		Topic:     topic,
		Timestamp: time.Now().UTC(),
		Response:  response,
	}
	if response != nil {
		notice.RequestingInstitution = response.RequestingInstitution
		notice.RequestType = response.RequestType
	}
	bytes, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to encode notice: %w", err)
	}
	if len(bytes) > maxPayloadSize {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(bytes))
	}
	ctx.Logger().Debug("publishing notice", "topic", topic, "size", len(bytes))
	// the notification is only delivered once the stored copy commits
	return p.repo.WithTxFunc(ctx, func(eventRepo EventRepo) error {
		_, err := eventRepo.SaveNotice(ctx, topic, string(bytes))
		if err != nil {
			return err
		}
		return eventRepo.Notify(ctx, topic, string(bytes))
	})
}
