package main

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// functions that render the enriched FOLIO item as XML: either a generic
// document mirroring the upstream record, or the Alma item record shape.

const collectionNoteTypeName = "Collection name"

func buildErrorDocument(barcode string) []byte {
	doc := errorDocument{Message: fmt.Sprintf("No item found for barcode %s", barcode)}

	// marshalling a two-element static struct cannot fail
	xmlBytes, _ := xml.Marshal(doc)

	return xmlBytes
}

func encodeGenericValue(buf *bytes.Buffer, name string, value interface{}) {
	switch v := value.(type) {
	case map[string]interface{}:
		buf.WriteString(fmt.Sprintf("<%s>", name))

		// maps are unordered; sort keys so output is deterministic
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			encodeGenericValue(buf, key, v[key])
		}

		buf.WriteString(fmt.Sprintf("</%s>", name))

	case []interface{}:
		// lists become repeated elements
		for _, entry := range v {
			encodeGenericValue(buf, name, entry)
		}

	case nil:
		buf.WriteString(fmt.Sprintf("<%s></%s>", name, name))

	default:
		buf.WriteString(fmt.Sprintf("<%s>", name))
		xml.EscapeText(buf, []byte(fmt.Sprintf("%v", v)))
		buf.WriteString(fmt.Sprintf("</%s>", name))
	}
}

// genericItemXML serializes the (enriched) item record as-is, wrapped in a
// single "item" root element.
func genericItemXML(item map[string]interface{}) []byte {
	var buf bytes.Buffer

	encodeGenericValue(&buf, "item", item)

	return buf.Bytes()
}

// getCollectionName returns the text of the instance's "Collection name"
// note, or an empty string if the note type is undefined or the instance
// carries no such note.
func (i *itemContext) getCollectionName() (string, error) {
	noteTypeID, err := i.getNoteTypeID(collectionNoteTypeName)
	if err != nil {
		return "", err
	}

	if noteTypeID == "" {
		return "", nil
	}

	for _, note := range i.folio.instance.Notes {
		if note.InstanceNoteTypeID == noteTypeID {
			return note.Note, nil
		}
	}

	return "", nil
}

// buildAlmaItem transforms the enriched item record into the Alma item
// record shape, then patches in the instance-derived fields and the mapped
// call number type.
func (i *itemContext) buildAlmaItem() (*almaItem, error) {
	// typed view of the mutated item map
	var item folioItem

	cfg := &mapstructure.DecoderConfig{
		Metadata:   nil,
		Result:     &item,
		TagName:    "json",
		ZeroFields: true,
	}

	dec, _ := mapstructure.NewDecoder(cfg)

	if mapDecErr := dec.Decode(i.folio.item); mapDecErr != nil {
		i.err("mapstructure.Decode() failed: %s", mapDecErr.Error())
		return nil, fmt.Errorf("failed to decode item record")
	}

	alma := almaItem{
		HoldingData: almaHoldingData{
			HoldingID:        item.HoldingsRecordID,
			CallNumber:       item.EffectiveCallNumberComponents.CallNumber,
			CallNumberPrefix: item.EffectiveCallNumberComponents.Prefix,
			CallNumberSuffix: item.EffectiveCallNumberComponents.Suffix,
		},
		ItemData: almaItemData{
			Pid:             item.ID,
			Barcode:         item.Barcode,
			Location:        almaCodeDesc{Text: item.EffectiveLocation.ID, Desc: item.EffectiveLocation.Name},
			FulfillmentNote: item.Fund,
		},
	}

	// patch bib_data and item_data/public_note from the instance record

	instance := i.folio.instance

	alma.BibData.MmsID = instance.HRID
	alma.BibData.Title = instance.Title

	if len(instance.Publication) == 0 {
		return nil, fmt.Errorf("instance %s missing publication entry", instance.ID)
	}

	alma.BibData.DateOfPublication = instance.Publication[0].DateOfPublication

	collectionName, err := i.getCollectionName()
	if err != nil {
		return nil, err
	}

	alma.ItemData.PublicNote = collectionName

	// patch holding_data/call_number_type from the holdings record

	if i.folio.holdings.CallNumberTypeID == "" {
		return nil, fmt.Errorf("holdings record %s missing call number type", i.folio.holdings.ID)
	}

	name, err := i.getCallNumberTypeName(i.folio.holdings.CallNumberTypeID)
	if err != nil {
		return nil, err
	}

	mapped := mapCallNumberType(name)

	alma.HoldingData.CallNumberType = almaCodeDesc{
		Text: strconv.Itoa(mapped.code),
		Desc: mapped.name,
	}

	return &alma, nil
}
