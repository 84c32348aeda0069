package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields checks which query parameters are set and which of them
// can be used directly in a gorm query.
//
// queryFields contains all field names that can be passed to a gorm Where
// statement to select the fields filtered on. As gorm uses any as type for
// these arguments, the slice is []any.
//
// setFields contains the names of all fields set in the query parameters.
// This allows filtering for zero values without pointer fields.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		// filterField marks fields that are processed by explicit logic in
		// the controller instead of being used in the Where statement
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if query.Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}

	return queryFields, setFields
}
