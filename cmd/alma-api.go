package main

import "encoding/xml"

// structs representing the subset of the Alma item record schema that
// SpineOMatic reads when printing spine labels. element names and nesting
// follow https://developers.exlibrisgroup.com/alma/apis/docs/xsd/rest_item.xsd/

type almaCodeDesc struct {
	Text string `xml:",chardata"`
	Desc string `xml:"desc,attr"`
}

type almaBibData struct {
	MmsID             string `xml:"mms_id"`
	Title             string `xml:"title,omitempty"`
	DateOfPublication string `xml:"date_of_publication"`
}

type almaHoldingData struct {
	HoldingID        string       `xml:"holding_id,omitempty"`
	CallNumberType   almaCodeDesc `xml:"call_number_type"`
	CallNumber       string       `xml:"call_number"`
	CallNumberPrefix string       `xml:"call_number_prefix"`
	CallNumberSuffix string       `xml:"call_number_suffix"`
}

type almaItemData struct {
	Pid             string       `xml:"pid,omitempty"`
	Barcode         string       `xml:"barcode"`
	Location        almaCodeDesc `xml:"location"`
	PublicNote      string       `xml:"public_note"`
	FulfillmentNote string       `xml:"fulfillment_note,omitempty"`
}

type almaItem struct {
	XMLName     xml.Name        `xml:"item"`
	BibData     almaBibData     `xml:"bib_data"`
	HoldingData almaHoldingData `xml:"holding_data"`
	ItemData    almaItemData    `xml:"item_data"`
}

type errorDocument struct {
	XMLName xml.Name `xml:"error"`
	Message string   `xml:"message"`
}
