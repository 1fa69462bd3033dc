package validator

import (
	"reflect"

	"github.com/benedict2310/scrollyctl/pkg/model"
)

// IsPendingValue reports whether src is an asynchronous placeholder. The placeholder is
// never resolved here.
func IsPendingValue(src model.Source) bool {
	async, ok := model.Deref(src).(model.AsyncSource)
	return ok && async.Resolve != nil
}

// acceptSource reports whether src is usable as narration or data under version.
// Paths are only accepted when allowPath is set.
func acceptSource(src model.Source, allowPath bool) bool {
	switch s := model.Deref(src).(type) {
	case model.InlineSource:
		return isNonEmptyContainer(s.Value)
	case model.PathSource:
		return allowPath && IsAcceptedSourcePath(s.Path)
	case model.AsyncSource:
		return IsPendingValue(s)
	default:
		return false
	}
}

// isNonEmptyContainer reports whether v is a map, slice, array or struct holding
// at least one element or field. Scalars never qualify.
func isNonEmptyContainer(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() > 0
	case reflect.Struct:
		return rv.NumField() > 0
	default:
		return false
	}
}
