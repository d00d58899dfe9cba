package submit

import "strings"

// secureMarker is the substring that marks an endpoint as real. It is a
// sentinel, not a scheme check.
const secureMarker = "https"

// IsRealEndpointConfigured reports whether endpoint routes to the network.
// Empty endpoints and endpoints without the secure marker are simulated.
func IsRealEndpointConfigured(endpoint string) bool {
	return endpoint != "" && strings.Contains(endpoint, secureMarker)
}
