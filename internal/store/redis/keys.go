package redis

// Keys written by the monitor. This service only reads them.
const (
	// KeyPrefixService prefixes one JSON ServiceSummary per service
	KeyPrefixService = "releasewatch:service:"
	// KeyPrefixWebHooks prefixes one hash of webhook ID -> JSON WebHookSummary per service
	KeyPrefixWebHooks = "releasewatch:webhooks:"
	// KeyAllServices is the set of all service IDs
	KeyAllServices = "releasewatch:services:all"
	// KeyOrder is the list of service IDs in display order
	KeyOrder = "releasewatch:order"
)

// ServiceKey returns the Redis key for a service summary
func ServiceKey(id string) string {
	return KeyPrefixService + id
}

// WebHooksKey returns the Redis key for a service's webhook states
func WebHooksKey(serviceID string) string {
	return KeyPrefixWebHooks + serviceID
}
