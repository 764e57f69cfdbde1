package config

import (
	"reflect"

	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/go-viper/mapstructure/v2"
)

var colorType = reflect.TypeOf(colorphrase.Color(0))

// stringToColorHookFunc decodes color strings such as "#E6454A" or
// "0xFFE6454A" into a colorphrase.Color. Integers fall through to
// mapstructure's own numeric conversion.
func stringToColorHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != colorType || f.Kind() != reflect.String {
			return data, nil
		}
		return colorphrase.ParseColor(data.(string))
	}
}
