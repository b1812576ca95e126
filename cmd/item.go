package main

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// order lines funded from these accounts flag plate-fund purchases
var plateFunds = []string{"p2053", "p2052"}

type folioDialog struct {
	token    string                 // okapi token for this request
	raw      []byte                 // raw inventory query response, for json passthrough
	item     map[string]interface{} // the inventory item, mutated in place by enrichment
	holdings *folioHoldingsRecord
	location *folioLocation
	instance *folioInstance
	fund     string
}

type itemContext struct {
	svc     *serviceContext
	client  *clientContext
	barcode string
	folio   folioDialog
}

type itemResponse struct {
	status      int    // http status code
	contentType string // media type of data
	data        []byte // response body
	err         error  // error, if any
}

func (i *itemContext) init(svc *serviceContext, c *clientContext) {
	i.svc = svc
	i.client = c
}

func (i *itemContext) log(format string, args ...interface{}) {
	i.client.log(format, args...)
}

func (i *itemContext) err(format string, args ...interface{}) {
	i.client.err(format, args...)
}

// cleanBarcode strips the legacy query suffix SpineOMatic hardcodes onto the
// barcode path parameter (appended as '&apikey=...') and ensures what is
// left is numeric.
func cleanBarcode(raw string) (string, error) {
	barcode := strings.SplitN(raw, "&", 2)[0]

	if barcode == "" {
		return "", fmt.Errorf("missing barcode")
	}

	if strings.IndexFunc(barcode, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		return "", fmt.Errorf("invalid barcode: [%s]", barcode)
	}

	return barcode, nil
}

// fetchRelatedRecords retrieves the records hanging off the item: the
// holdings record first, then its fund code, permanent location and
// bibliographic instance. the latter three depend only on the holdings
// record and are fetched concurrently.
func (i *itemContext) fetchRelatedRecords() error {
	holdingsID, _ := i.folio.item["holdingsRecordId"].(string)

	holdings, err := i.getHoldingsRecord(holdingsID)
	if err != nil {
		return err
	}

	i.folio.holdings = holdings

	var wg sync.WaitGroup
	var fundErr, locationErr, instanceErr error

	wg.Add(3)

	go func() {
		defer wg.Done()
		i.folio.fund, fundErr = i.getFundCode(holdingsID)
	}()

	go func() {
		defer wg.Done()
		i.folio.location, locationErr = i.getLocation(holdings)
	}()

	go func() {
		defer wg.Done()
		i.folio.instance, instanceErr = i.getInstance(holdings.InstanceID)
	}()

	wg.Wait()

	for _, err := range []error{fundErr, locationErr, instanceErr} {
		if err != nil {
			return err
		}
	}

	// enrich the item record in place

	i.folio.item["effectiveLocation"] = map[string]interface{}{
		"id":   i.folio.location.ID,
		"name": i.folio.location.Name,
	}

	if i.folio.fund != "" {
		i.log("attaching fund: [%s]", i.folio.fund)
		i.folio.item["fund"] = i.folio.fund
	}

	return nil
}

// applyReplacements loads the rule table and rewrites the (normalized)
// call number prefix and suffix in the item record.
func (i *itemContext) applyReplacements(prefix string, suffix string) error {
	rules, err := loadReplacementRules(i.svc.config.Service.RuleFile)
	if err != nil {
		return err
	}

	comps, ok := i.folio.item["effectiveCallNumberComponents"].(map[string]interface{})
	if ok == false {
		return nil
	}

	if prefix != "" {
		replacer, err := newFieldReplacer(rules, "prefix")
		if err != nil {
			return err
		}

		comps["prefix"] = replacer.apply(prefix)
	}

	if suffix != "" {
		replacer, err := newFieldReplacer(rules, "suffix")
		if err != nil {
			return err
		}

		comps["suffix"] = replacer.apply(suffix)
	}

	return nil
}

func (i *itemContext) handleItemRequest() itemResponse {
	barcode, barcodeErr := cleanBarcode(i.client.ginCtx.Param("barcode"))
	if barcodeErr != nil {
		return itemResponse{status: http.StatusBadRequest, err: barcodeErr}
	}

	i.barcode = barcode

	if err := i.folioLogin(); err != nil {
		return itemResponse{status: http.StatusInternalServerError, err: err}
	}

	fetchErr := i.getItemByBarcode()

	// raw passthrough bypasses all enrichment, including the not-found check
	if i.client.opts.format == "json" {
		if fetchErr != nil && fetchErr != errItemNotFound {
			return itemResponse{status: http.StatusInternalServerError, err: fetchErr}
		}

		return itemResponse{status: http.StatusOK, contentType: "application/json", data: i.folio.raw}
	}

	if fetchErr == errItemNotFound {
		i.log("no item found for barcode [%s]", i.barcode)
		return itemResponse{status: http.StatusOK, contentType: "application/xml", data: buildErrorDocument(i.barcode)}
	}

	if fetchErr != nil {
		return itemResponse{status: http.StatusInternalServerError, err: fetchErr}
	}

	if err := i.fetchRelatedRecords(); err != nil {
		return itemResponse{status: http.StatusInternalServerError, err: err}
	}

	prefix, suffix := normalizeCallNumberComponents(i.folio.item)

	if i.client.opts.replace == true {
		if err := i.applyReplacements(prefix, suffix); err != nil {
			return itemResponse{status: http.StatusInternalServerError, err: err}
		}
	}

	var xmlBytes []byte

	if i.client.opts.transform == true {
		alma, err := i.buildAlmaItem()
		if err != nil {
			return itemResponse{status: http.StatusInternalServerError, err: err}
		}

		xmlBytes, err = xml.Marshal(alma)
		if err != nil {
			i.err("Marshal() failed: %s", err.Error())
			return itemResponse{status: http.StatusInternalServerError, err: fmt.Errorf("failed to marshal item record")}
		}
	} else {
		xmlBytes = genericItemXML(i.folio.item)
	}

	return itemResponse{status: http.StatusOK, contentType: "application/xml", data: xmlBytes}
}
