package outcome

import "reflect"

// IsNil reports whether i is a nil interface or a typed nil pointer.
func IsNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errs flattens err into its parts, unwrapping errors joined with
// errors.Join. A nil err yields an empty slice.
func Errs(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
