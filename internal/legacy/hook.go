package legacy

import (
	"encoding/base64"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Base64Hook decodes base64 strings into []byte fields.
func Base64Hook() mapstructure.DecodeHookFuncType {
	bytesType := reflect.TypeOf([]byte(nil))
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != bytesType {
			return data, nil
		}
		return base64.StdEncoding.DecodeString(data.(string))
	}
}
