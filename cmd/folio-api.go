package main

// structs representing the FOLIO (Okapi) API responses this service consumes.
// the inventory item itself is carried as a raw map so that the generic XML
// rendering and the json passthrough see every field FOLIO returns; this is
// the typed view of the handful of item fields the pipeline reads.

type folioCallNumberComponents struct {
	CallNumber string `json:"callNumber"`
	Prefix     string `json:"prefix"`
	Suffix     string `json:"suffix"`
}

type folioLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type folioItem struct {
	ID                            string                    `json:"id"`
	Barcode                       string                    `json:"barcode"`
	HoldingsRecordID              string                    `json:"holdingsRecordId"`
	EffectiveCallNumberComponents folioCallNumberComponents `json:"effectiveCallNumberComponents"`
	EffectiveLocation             folioLocation             `json:"effectiveLocation"`
	Fund                          string                    `json:"fund"`
}

type folioItemsResponse struct {
	Items        []map[string]interface{} `json:"items"`
	TotalRecords int                      `json:"totalRecords"`
}

type folioHoldingsRecord struct {
	ID                  string `json:"id"`
	PermanentLocationID string `json:"permanentLocationId"`
	InstanceID          string `json:"instanceId"`
	CallNumberTypeID    string `json:"callNumberTypeId"`
}

type folioHoldingSummary struct {
	PoLineID     string `json:"poLineId"`
	PoLineNumber string `json:"poLineNumber"`
}

type folioHoldingSummariesResponse struct {
	HoldingSummaries []folioHoldingSummary `json:"holdingSummaries"`
}

type folioFundDistribution struct {
	Code   string `json:"code"`
	FundID string `json:"fundId"`
}

type folioOrderLine struct {
	ID               string                  `json:"id"`
	FundDistribution []folioFundDistribution `json:"fundDistribution"`
}

type folioPublication struct {
	Publisher         string `json:"publisher"`
	DateOfPublication string `json:"dateOfPublication"`
}

type folioInstanceNote struct {
	InstanceNoteTypeID string `json:"instanceNoteTypeId"`
	Note               string `json:"note"`
}

type folioInstance struct {
	ID          string              `json:"id"`
	HRID        string              `json:"hrid"`
	Title       string              `json:"title"`
	Publication []folioPublication  `json:"publication"`
	Notes       []folioInstanceNote `json:"notes"`
}

type folioNoteType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type folioNoteTypesResponse struct {
	InstanceNoteTypes []folioNoteType `json:"instanceNoteTypes"`
}

type folioCallNumberType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
