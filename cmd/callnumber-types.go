package main

// mapping of FOLIO call number type names to the codes and names defined by
// the Alma item record schema:
// https://developers.exlibrisgroup.com/alma/apis/docs/xsd/rest_item.xsd/?tags=GET#holding_data

type callNumberType struct {
	name string
	code int
}

var callNumberTypeMap = map[string]callNumberType{
	"Library of Congress classification":           {name: "Library of Congress classification", code: 0},
	"LC Modified":                                  {name: "Library of Congress classification", code: 0},
	"Dewey Decimal classification":                 {name: "Dewey Decimal classification", code: 1},
	"National Library of Medicine classification":  {name: "National Library of Medicine classification", code: 2},
	"Superintendent of Documents classification":   {name: "Superintendent of Documents classification", code: 3},
	"Shelving control number":                      {name: "Shelving control number", code: 4},
	"Title":                                        {name: "Title", code: 5},
	"Shelved separately":                           {name: "Shelved separately", code: 6},
}

// mapCallNumberType is total: any name not in the table maps to the catch-all
// "Other scheme" entry.
func mapCallNumberType(name string) callNumberType {
	if mapped, ok := callNumberTypeMap[name]; ok == true {
		return mapped
	}

	return callNumberType{name: "Other scheme", code: 8}
}
