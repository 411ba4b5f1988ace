package context

import "context"

type (
	Key string
)

const (
	ServiceKey       Key = "service"
	ClientVersionKey Key = "x-client-version"
	DeviceIdKey      Key = "x-device-id"
)

// GetStringValue returns the string stored under key, or an empty string if the key
// is missing or holds a value of another type.
func GetStringValue(ctx context.Context, key Key) string {
	if ctx == nil {
		return ""
	}
	if strValue, ok := ctx.Value(key).(string); ok {
		return strValue
	}

	return ""
}
