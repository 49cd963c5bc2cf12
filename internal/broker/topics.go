package broker

import "strings"

const (
	requestPrefix  = "transform/requests"
	responsePrefix = "transform/responses"

	// RequestWildcard is the subscription filter covering every request
	// topic, with or without the source platform segment.
	RequestWildcard = requestPrefix + "/#"
)

// RequestTopic builds the request topic for a source platform. An empty
// platform publishes to the bare requests topic.
func RequestTopic(sourcePlatform string) string {
	if sourcePlatform == "" {
		return requestPrefix
	}
	return requestPrefix + "/" + strings.ToLower(sourcePlatform)
}

// ResponseTopic builds the per-request response topic.
func ResponseTopic(requestID string) string {
	return responsePrefix + "/" + requestID
}

// ParseRequestTopic extracts the optional source platform segment from a
// request topic.
func ParseRequestTopic(topic string) (sourcePlatform string, ok bool) {
	if !strings.HasPrefix(topic, requestPrefix) {
		return "", false
	}
	rest := strings.TrimPrefix(topic, requestPrefix)
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		return "", true
	}
	return strings.Split(rest, "/")[0], true
}
