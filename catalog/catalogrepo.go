package catalog

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/repo"
)

type CatalogRepo interface {
	FindItemsByBarcodes(ctx common.ExtendedContext, barcodes []string) ([]Item, error)
	GetItemStatusCode(ctx common.ExtendedContext, statusId int32) (string, error)
	GetCustomerCode(ctx common.ExtendedContext, code string) (*CustomerCode, error)
	SaveRequestItem(ctx common.ExtendedContext, request RequestItem) (int64, error)
}

type PgCatalogRepo struct {
	repo.PgBaseRepo[CatalogRepo]
}

// FindItemsByBarcodes returns the non-deleted items carrying any of the barcodes, with their
// bibliographic records attached. Result order is by item id, not by input order.
func (r *PgCatalogRepo) FindItemsByBarcodes(ctx common.ExtendedContext, barcodes []string) ([]Item, error) {
	if len(barcodes) == 0 {
		return []Item{}, nil
	}
	ds := repo.Sql.From(goqu.T("item").As("i")).
		Join(goqu.T("institution").As("inst"), goqu.On(goqu.I("i.owning_institution_id").Eq(goqu.I("inst.institution_id")))).
		Select(
			goqu.I("i.item_id"),
			goqu.I("i.barcode"),
			goqu.I("i.item_avail_status_id"),
			goqu.I("i.customer_code"),
			goqu.I("inst.institution_code"),
			goqu.COALESCE(goqu.I("i.call_number"), "").As("call_number"),
		).
		Where(goqu.Ex{"i.barcode": barcodes, "i.is_deleted": false}).
		Order(goqu.I("i.item_id").Asc())
	items, err := repo.QueryAll[Item](ctx, r.GetConnOrTx(), ds)
	if err != nil {
		return nil, fmt.Errorf("failed to find items by barcode: %w", err)
	}
	if len(items) == 0 {
		return items, nil
	}
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ItemId)
	}
	bibDs := repo.Sql.From(goqu.T("bibliographic_item").As("bi")).
		Join(goqu.T("bibliographic").As("b"), goqu.On(goqu.I("bi.bibliographic_id").Eq(goqu.I("b.bibliographic_id")))).
		Select(
			goqu.I("bi.item_id"),
			goqu.I("b.bibliographic_id"),
			goqu.I("b.owning_institution_bib_id"),
			goqu.COALESCE(goqu.I("b.title"), "").As("title"),
		).
		Where(goqu.Ex{"bi.item_id": ids}).
		Order(goqu.I("b.bibliographic_id").Asc())
	rows, err := repo.QueryAll[itemBibRow](ctx, r.GetConnOrTx(), bibDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find bibliographic records: %w", err)
	}
	byItem := make(map[int64][]Bibliographic, len(items))
	for _, row := range rows {
		byItem[row.ItemId] = append(byItem[row.ItemId], row.Bibliographic)
	}
	for i := range items {
		items[i].Bibliographics = byItem[items[i].ItemId]
	}
	return items, nil
}

// GetItemStatusCode maps a status id to its code, "" when the id is unknown.
func (r *PgCatalogRepo) GetItemStatusCode(ctx common.ExtendedContext, statusId int32) (string, error) {
	ds := repo.Sql.From("item_status").
		Select("status_code").
		Where(goqu.Ex{"item_status_id": statusId})
	row, err := repo.QueryOne[itemStatusRow](ctx, r.GetConnOrTx(), ds)
	if err != nil {
		return "", fmt.Errorf("failed to get item status: %w", err)
	}
	if row == nil {
		return "", nil
	}
	return row.StatusCode, nil
}

// GetCustomerCode matches the code exactly; nil when absent.
func (r *PgCatalogRepo) GetCustomerCode(ctx common.ExtendedContext, code string) (*CustomerCode, error) {
	ds := repo.Sql.From(goqu.T("customer_code").As("cc")).
		LeftJoin(goqu.T("institution").As("inst"), goqu.On(goqu.I("cc.owning_institution_id").Eq(goqu.I("inst.institution_id")))).
		Select(
			goqu.I("cc.customer_code_id"),
			goqu.I("cc.customer_code"),
			goqu.COALESCE(goqu.I("cc.description"), "").As("description"),
			goqu.COALESCE(goqu.I("inst.institution_code"), "").As("institution_code"),
			goqu.COALESCE(goqu.I("cc.delivery_restrictions"), "").As("delivery_restrictions"),
		).
		Where(goqu.I("cc.customer_code").Eq(code))
	cc, err := repo.QueryOne[CustomerCode](ctx, r.GetConnOrTx(), ds)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer code: %w", err)
	}
	return cc, nil
}

func (r *PgCatalogRepo) SaveRequestItem(ctx common.ExtendedContext, request RequestItem) (int64, error) {
	ds := repo.Sql.Insert("request_item").
		Rows(goqu.Record{
			"item_id":                request.ItemId,
			"request_type":           request.RequestType,
			"requesting_institution": request.RequestingInstitution,
			"patron_barcode":         request.PatronBarcode,
			"stop_code":              request.DeliveryLocation,
			"email_id":               request.EmailAddress,
			"notes":                  request.Notes,
			"request_status":         request.Status,
			"tracking_id":            request.TrackingId,
		}).
		Returning("request_id")
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}
	var id int64
	err = r.GetConnOrTx().QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save request item: %w", err)
	}
	return id, nil
}
