package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// outbound FOLIO (Okapi) calls. every call is request-scoped: the login token
// obtained at the start of a request is reused for the calls that follow, and
// nothing is cached between requests.

var errItemNotFound = fmt.Errorf("no item found")

func (i *itemContext) folioLogin() error {
	loginURL := fmt.Sprintf("%s/authn/login", i.svc.folio.url)

	creds := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{
		Username: i.svc.folio.username,
		Password: i.svc.folio.password,
	}

	jsonBytes, jsonErr := json.Marshal(creds)
	if jsonErr != nil {
		return fmt.Errorf("failed to marshal login request")
	}

	req, reqErr := http.NewRequest("POST", loginURL, strings.NewReader(string(jsonBytes)))
	if reqErr != nil {
		i.err("NewRequest() failed: %s", reqErr.Error())
		return fmt.Errorf("failed to create login request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Okapi-Tenant", i.svc.folio.tenant)

	start := time.Now()
	res, resErr := i.svc.folio.client.Do(req)
	elapsedMS := int64(time.Since(start) / time.Millisecond)

	if resErr != nil {
		i.err("client.Do() failed: %s", resErr.Error())
		return fmt.Errorf("failed to receive login response")
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		i.err("failed response from POST %s - %d. elapsed: %d (ms)", loginURL, res.StatusCode, elapsedMS)
		return fmt.Errorf("login failed with status %d", res.StatusCode)
	}

	token := res.Header.Get("X-Okapi-Token")
	if token == "" {
		return fmt.Errorf("login response missing token header")
	}

	i.log("successful login response from POST %s. elapsed: %d (ms)", loginURL, elapsedMS)

	i.folio.token = token

	return nil
}

// folioGetRaw performs an authenticated GET against an okapi path and returns
// the raw body bytes. any non-success status is an error.
func (i *itemContext) folioGetRaw(path string, params url.Values) ([]byte, error) {
	folioURL := fmt.Sprintf("%s%s", i.svc.folio.url, path)

	req, reqErr := http.NewRequest("GET", folioURL, nil)
	if reqErr != nil {
		i.err("NewRequest() failed: %s", reqErr.Error())
		return nil, fmt.Errorf("failed to create okapi request")
	}

	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Okapi-Tenant", i.svc.folio.tenant)
	req.Header.Set("X-Okapi-Token", i.folio.token)

	start := time.Now()
	res, resErr := i.svc.folio.client.Do(req)
	elapsedMS := int64(time.Since(start) / time.Millisecond)

	if resErr != nil {
		i.err("client.Do() failed: %s", resErr.Error())
		return nil, fmt.Errorf("failed to receive okapi response")
	}

	defer res.Body.Close()

	body, readErr := io.ReadAll(res.Body)
	if readErr != nil {
		i.err("ReadAll() failed: %s", readErr.Error())
		return nil, fmt.Errorf("failed to read okapi response")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		i.err("failed response from GET %s - %d. elapsed: %d (ms)", req.URL.String(), res.StatusCode, elapsedMS)
		return nil, fmt.Errorf("okapi request %s failed with status %d", path, res.StatusCode)
	}

	i.log("successful okapi response from GET %s. elapsed: %d (ms)", req.URL.String(), elapsedMS)

	return body, nil
}

func (i *itemContext) folioGet(path string, params url.Values, out interface{}) error {
	body, err := i.folioGetRaw(path, params)
	if err != nil {
		return err
	}

	if decErr := json.Unmarshal(body, out); decErr != nil {
		i.err("Unmarshal() failed: %s", decErr.Error())
		return fmt.Errorf("failed to decode okapi response for %s", path)
	}

	return nil
}

// requireUUID guards fetch-by-id urls against garbage ids in upstream records
func requireUUID(id string, label string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid %s: [%s]", label, id)
	}

	return nil
}

// getItemByBarcode queries the inventory for the barcode. the endpoint always
// returns a collection; the single element is selected here, and an empty
// collection maps to errItemNotFound. the raw response bytes are preserved
// for the json passthrough.
func (i *itemContext) getItemByBarcode() error {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("(barcode==%s)", i.barcode))

	body, err := i.folioGetRaw("/inventory/items", params)
	if err != nil {
		return err
	}

	i.folio.raw = body

	var items folioItemsResponse
	if decErr := json.Unmarshal(body, &items); decErr != nil {
		i.err("Unmarshal() failed: %s", decErr.Error())
		return fmt.Errorf("failed to decode inventory items response")
	}

	if len(items.Items) == 0 {
		return errItemNotFound
	}

	i.folio.item = items.Items[0]

	return nil
}

func (i *itemContext) getHoldingsRecord(holdingsID string) (*folioHoldingsRecord, error) {
	if err := requireUUID(holdingsID, "holdings record id"); err != nil {
		return nil, err
	}

	var holdings folioHoldingsRecord
	if err := i.folioGet(fmt.Sprintf("/holdings-storage/holdings/%s", holdingsID), nil, &holdings); err != nil {
		return nil, err
	}

	return &holdings, nil
}

// getFundCode consults the holding summaries for the holdings record and, if
// an order line exists, returns the first fund distribution code found in the
// allow-set. only the first holding summary is consulted. an empty return
// means no fund applies; that is not an error.
func (i *itemContext) getFundCode(holdingsID string) (string, error) {
	var summaries folioHoldingSummariesResponse
	if err := i.folioGet(fmt.Sprintf("/orders/holding-summary/%s", holdingsID), nil, &summaries); err != nil {
		return "", err
	}

	if len(summaries.HoldingSummaries) == 0 {
		return "", nil
	}

	poLineID := summaries.HoldingSummaries[0].PoLineID

	var orderLine folioOrderLine
	if err := i.folioGet(fmt.Sprintf("/orders/order-lines/%s", poLineID), nil, &orderLine); err != nil {
		return "", err
	}

	for _, fund := range orderLine.FundDistribution {
		if sliceContainsString(plateFunds, fund.Code) == true {
			return fund.Code, nil
		}
	}

	return "", nil
}

// getLocation resolves the permanent location of the holdings record. a
// missing location id or a location without a name is a data integrity
// failure, not a recoverable condition.
func (i *itemContext) getLocation(holdings *folioHoldingsRecord) (*folioLocation, error) {
	if holdings.PermanentLocationID == "" {
		return nil, fmt.Errorf("holdings record %s missing permanent location", holdings.ID)
	}

	if err := requireUUID(holdings.PermanentLocationID, "location id"); err != nil {
		return nil, err
	}

	var location folioLocation
	if err := i.folioGet(fmt.Sprintf("/locations/%s", holdings.PermanentLocationID), nil, &location); err != nil {
		return nil, err
	}

	if location.Name == "" {
		return nil, fmt.Errorf("location %s missing name", holdings.PermanentLocationID)
	}

	return &location, nil
}

func (i *itemContext) getInstance(instanceID string) (*folioInstance, error) {
	if err := requireUUID(instanceID, "instance id"); err != nil {
		return nil, err
	}

	var instance folioInstance
	if err := i.folioGet(fmt.Sprintf("/inventory/instances/%s", instanceID), nil, &instance); err != nil {
		return nil, err
	}

	return &instance, nil
}

// getNoteTypeID resolves an instance note type name to its id. an undefined
// note type is not an error; it just means no note of that type can match.
func (i *itemContext) getNoteTypeID(name string) (string, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf(`(name=="%s")`, name))

	var noteTypes folioNoteTypesResponse
	if err := i.folioGet("/instance-note-types", params, &noteTypes); err != nil {
		return "", err
	}

	if len(noteTypes.InstanceNoteTypes) == 0 {
		return "", nil
	}

	return noteTypes.InstanceNoteTypes[0].ID, nil
}

func (i *itemContext) getCallNumberTypeName(callNumberTypeID string) (string, error) {
	if err := requireUUID(callNumberTypeID, "call number type id"); err != nil {
		return "", err
	}

	var callNumberType folioCallNumberType
	if err := i.folioGet(fmt.Sprintf("/call-number-types/%s", callNumberTypeID), nil, &callNumberType); err != nil {
		return "", err
	}

	return callNumberType.Name, nil
}
