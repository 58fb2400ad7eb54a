package services

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// listJSON marshals a string list into a JSONB column value. A nil list maps
// to JSON null, which keeps "field absent" distinguishable from "[]".
func listJSON(items []string) datatypes.JSON {
	if items == nil {
		return nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
