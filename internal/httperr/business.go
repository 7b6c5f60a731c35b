package httperr

import "errors"

// BusinessError is a typed domain failure identified by a stable code.
// Storage-layer failures (duplicate keys, connection errors) are NOT
// wrapped in it; they propagate raw.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AnyBusiness reports whether err is a BusinessError of any code.
func AnyBusiness(err error) bool {
	var be BusinessError
	return errors.As(err, &be)
}

// Codes shared across the services.
const (
	CodeProductNotFound    = "product_not_found"
	CodeUserNotFound       = "user_not_found"
	CodeRestaurantNotFound = "restaurant_not_found"
	CodeOwnerNotFound      = "owner_not_found"
	CodeOwnerInvalidRole   = "owner_not_restaurant_owner"
)
