package utils

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

type SeedCustomerCode struct {
	Code                 string
	Description          string
	Institution          string
	DeliveryRestrictions string
}

type SeedItem struct {
	Barcode      string
	StatusId     int32
	CustomerCode string
	Institution  string
	BibIds       []string
	Title        string
}

// SeedCatalog inserts institutions, customer codes and items into a migrated database.
func SeedCatalog(connStr string, institutions []string, codes []SeedCustomerCode, items []SeedItem) error {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return err
	}
	defer db.Close()
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	instIds := map[string]int64{}
	for _, inst := range institutions {
		var id int64
		err = tx.QueryRow(`INSERT INTO institution (institution_code, institution_name) VALUES ($1, $2)
			ON CONFLICT (institution_code) DO UPDATE SET institution_name = EXCLUDED.institution_name
			RETURNING institution_id`, inst, inst).Scan(&id)
		if err != nil {
			return fmt.Errorf("institution %s: %w", inst, err)
		}
		instIds[inst] = id
	}
	for _, cc := range codes {
		_, err = tx.Exec(`INSERT INTO customer_code (customer_code, description, owning_institution_id, delivery_restrictions)
			VALUES ($1, $2, $3, $4)`, cc.Code, cc.Description, instIds[cc.Institution], cc.DeliveryRestrictions)
		if err != nil {
			return fmt.Errorf("customer code %s: %w", cc.Code, err)
		}
	}
	bibIds := map[string]int64{}
	for _, it := range items {
		var itemId int64
		err = tx.QueryRow(`INSERT INTO item (barcode, item_avail_status_id, customer_code, owning_institution_id)
			VALUES ($1, $2, $3, $4) RETURNING item_id`, it.Barcode, it.StatusId, it.CustomerCode, instIds[it.Institution]).Scan(&itemId)
		if err != nil {
			return fmt.Errorf("item %s: %w", it.Barcode, err)
		}
		for _, bib := range it.BibIds {
			key := it.Institution + "/" + bib
			bibId, ok := bibIds[key]
			if !ok {
				err = tx.QueryRow(`INSERT INTO bibliographic (owning_institution_id, owning_institution_bib_id, title)
					VALUES ($1, $2, $3) RETURNING bibliographic_id`, instIds[it.Institution], bib, it.Title).Scan(&bibId)
				if err != nil {
					return fmt.Errorf("bib %s: %w", bib, err)
				}
				bibIds[key] = bibId
			}
			_, err = tx.Exec(`INSERT INTO bibliographic_item (bibliographic_id, item_id) VALUES ($1, $2)`, bibId, itemId)
			if err != nil {
				return fmt.Errorf("bib item %s: %w", bib, err)
			}
		}
	}
	return tx.Commit()
}
