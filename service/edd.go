package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/indexdata/circbroker/adapter"
	"github.com/indexdata/circbroker/catalog"
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/events"
	"github.com/indexdata/circbroker/model"
)

// RequestStore persists an accepted request and returns its id.
type RequestStore interface {
	SaveRequest(ctx common.ExtendedContext, env *model.RequestEnvelope, itemId int64, status string) (int64, error)
}

type CatalogRequestStore struct {
	repo catalog.CatalogRepo
}

func NewCatalogRequestStore(repo catalog.CatalogRepo) *CatalogRequestStore {
	return &CatalogRequestStore{repo: repo}
}

func (s *CatalogRequestStore) SaveRequest(ctx common.ExtendedContext, env *model.RequestEnvelope, itemId int64, status string) (int64, error) {
	return s.repo.SaveRequestItem(ctx, catalog.RequestItem{
		ItemId:                itemId,
		RequestType:           env.RequestType,
		RequestingInstitution: env.RequestingInstitution,
		PatronBarcode:         env.PatronBarcode,
		DeliveryLocation:      env.DeliveryLocation,
		EmailAddress:          env.EmailAddress,
		Notes:                 env.RequestNotes,
		Status:                status,
		TrackingId:            env.TrackingId,
	})
}

type EddService struct {
	items     adapter.ItemLookupAdapter
	store     RequestStore
	publisher events.Publisher
	// queue requests for the storage system instead of marking them placed directly
	UseQueueLasCall bool
}

func NewEddService(items adapter.ItemLookupAdapter, store RequestStore, publisher events.Publisher, useQueueLasCall bool) *EddService {
	return &EddService{items: items, store: store, publisher: publisher, UseQueueLasCall: useQueueLasCall}
}

// EddRequestItem records an electronic delivery request for the first matching item and
// announces the outcome on the topic of the requesting institution. Storing and publishing
// are best effort; their failures are logged and the response is returned as built.
func (s *EddService) EddRequestItem(ctx common.ExtendedContext, in *model.RequestEnvelope) *model.ItemInformationResponse {
	args := ctx.LoggerArgs()
	args.Operation = "eddRequest"
	args.Institution = in.RequestingInstitution
	ctx = ctx.WithArgs(&args)

	env := *in
	resp := &model.ItemInformationResponse{}
	barcodes := env.Barcodes()
	if len(barcodes) == 0 {
		resp.Fail(model.WrongItemBarcode)
		s.publish(ctx, &env, resp)
		return resp
	}
	items, err := s.items.FindByBarcodes(ctx, barcodes)
	if err != nil {
		ctx.Logger().Error("item lookup failed", "error", err)
		resp.ItemBarcode = barcodes[0]
		resp.Fail(err.Error())
		return resp
	}
	if len(items) == 0 {
		resp.Fail(model.WrongItemBarcode)
	} else {
		item := orderByBarcodes(items, barcodes)[0]
		enrich(&env, item)
		resp.ItemId = item.ItemId
		resp.PatronIdentifier = env.PatronBarcode
		if strings.TrimSpace(env.TrackingId) == "" {
			env.TrackingId = uuid.NewString()
		}
		status := model.RequestStatusEdd
		if s.UseQueueLasCall {
			status = model.RequestStatusPending
		}
		resp.RequestStatus = status
		resp.Succeed(model.EddRequestSuccess)
		requestId, err := s.store.SaveRequest(ctx, &env, item.ItemId, status)
		if err != nil {
			ctx.Logger().Error("failed to store EDD request", "itemId", item.ItemId, "error", err)
		} else {
			resp.RequestId = requestId
		}
	}
	fillResponse(resp, &env, barcodes[0])
	s.publish(ctx, &env, resp)
	return resp
}

func (s *EddService) publish(ctx common.ExtendedContext, env *model.RequestEnvelope, resp *model.ItemInformationResponse) {
	if s.publisher == nil {
		return
	}
	topic := events.TopicName(env.RequestingInstitution, env.RequestType)
	if err := s.publisher.Publish(ctx, topic, resp); err != nil {
		ctx.Logger().Error("failed to publish EDD notice", "topic", topic, "error", err)
	}
}

func enrich(env *model.RequestEnvelope, item catalog.Item) {
	env.ItemOwningInstitution = item.OwningInstitution
	env.CustomerCode = item.CustomerCode
	if len(item.Bibliographics) > 0 {
		bib := item.Bibliographics[0]
		if strings.TrimSpace(env.BibId) == "" {
			env.BibId = bib.OwningInstitutionBibId
		}
		env.TitleIdentifier = common.Pick(env.TitleIdentifier, bib.Title)
	}
	env.RequestNotes = eddNotes(env)
}

func eddNotes(env *model.RequestEnvelope) string {
	notes := ""
	if strings.TrimSpace(env.RequestNotes) != "" {
		notes = fmt.Sprintf("User: %s", env.RequestNotes)
	}
	notes += fmt.Sprintf("\nStart Page: %s ;End Page: %s ;Volume Number: %s ;Issue: %s ;Article Author: %s ;Article/Chapter Title: %s ",
		env.StartPage, env.EndPage, env.Volume, env.Issue,
		common.Pick(env.ArticleAuthor, env.Author), common.Pick(env.ChapterTitle, env.ArticleTitle))
	return notes
}

func fillResponse(resp *model.ItemInformationResponse, env *model.RequestEnvelope, barcode string) {
	resp.ItemBarcode = barcode
	resp.ItemOwningInstitution = env.ItemOwningInstitution
	resp.DueDate = env.ExpirationDate
	resp.RequestingInstitution = env.RequestingInstitution
	resp.TitleIdentifier = env.TitleIdentifier
	resp.BibId = env.BibId
	resp.RequestType = env.RequestType
	resp.EmailAddress = env.EmailAddress
	resp.DeliveryLocation = env.DeliveryLocation
	resp.CustomerCode = env.CustomerCode
	resp.Username = env.Username
	resp.StartPage = env.StartPage
	resp.EndPage = env.EndPage
	resp.ChapterTitle = env.ChapterTitle
	resp.Volume = env.Volume
	resp.Issue = env.Issue
	if resp.Success {
		resp.RequestNotes = env.RequestNotes
	} else {
		resp.RequestNotes = resp.ScreenMessage + "\n" + env.RequestNotes
	}
}
