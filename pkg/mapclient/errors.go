package mapclient

import "errors"

var (
	// ErrTransport is a failure to reach the gateway or read its response
	ErrTransport = errors.New("mapclient: gateway transport failure")

	// ErrHTTPStatus is a non-200 gateway response
	ErrHTTPStatus = errors.New("mapclient: unexpected gateway status")

	// ErrDecode is a gateway or sample body that is not the expected JSON
	ErrDecode = errors.New("mapclient: malformed response body")

	// ErrNoResults means the search succeeded but found no merchants.
	// It is reported to the user, not treated as a failure.
	ErrNoResults = errors.New("mapclient: no interesting merchant found")

	// ErrNoGeometry means an autocomplete selection carried no location
	ErrNoGeometry = errors.New("mapclient: selection has no geometry")

	// ErrGeocode means reverse geocoding failed or found nothing
	ErrGeocode = errors.New("mapclient: reverse geocoding failed")

	// ErrNoMap means no map has been attached yet
	ErrNoMap = errors.New("mapclient: no map attached")

	// ErrClosed means the controller has been closed
	ErrClosed = errors.New("mapclient: controller closed")
)
