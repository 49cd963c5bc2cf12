package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestTopic(t *testing.T) {
	assert.Equal(t, "transform/requests/ringcentral", RequestTopic("RingCentral"))
	assert.Equal(t, "transform/requests", RequestTopic(""))
}

func TestResponseTopic(t *testing.T) {
	assert.Equal(t, "transform/responses/req-42", ResponseTopic("req-42"))
}

func TestParseRequestTopic(t *testing.T) {
	platform, ok := ParseRequestTopic("transform/requests/dialpad")
	assert.True(t, ok)
	assert.Equal(t, "dialpad", platform)

	platform, ok = ParseRequestTopic("transform/requests")
	assert.True(t, ok)
	assert.Equal(t, "", platform)

	_, ok = ParseRequestTopic("orders/created")
	assert.False(t, ok)
}
