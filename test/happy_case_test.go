package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

var (
	gatewayURL = getEnv("GATEWAY_URL", "http://localhost:3001")
	brokerURL  = getEnv("BROKER_URL", "tcp://localhost:1883")
	apiKey     = getEnv("GATEWAY_API_KEY", "test-key-789")
)

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func sitePayload() map[string]interface{} {
	return map[string]interface{}{
		"id":   "site-001",
		"name": "Main Office",
		"businessAddress": map[string]interface{}{
			"street":  "123 Main St",
			"city":    "Springfield",
			"state":   "IL",
			"zip":     "62701",
			"country": "United States",
		},
	}
}

// TestHappyCaseHTTP drives a transformation through the HTTP endpoint of a
// running gateway. Set E2E=1 with the gateway and broker up to run it.
func TestHappyCaseHTTP(t *testing.T) {
	if os.Getenv("E2E") == "" {
		t.Skip("set E2E=1 to run against a running gateway")
	}

	body, _ := json.Marshal(map[string]interface{}{
		"source_platform": "ringcentral",
		"target_platform": "zoom",
		"job_type_code":   "rc_zoom_sites",
		"data":            sitePayload(),
	})

	resp, err := http.Post(gatewayURL+"/api/transform", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to call gateway: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Gateway error: %d", resp.StatusCode)
	}

	var result struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if result.Data["site_code"] != "MAIN_OFFICE" {
		t.Fatalf("Expected site_code MAIN_OFFICE, got %v", result.Data["site_code"])
	}
	if result.Data["auto_receptionist_name"] != "Main Office (NIU)" {
		t.Fatalf("Unexpected auto_receptionist_name: %v", result.Data["auto_receptionist_name"])
	}
}

// TestHappyCaseBroker drives the same transformation through the message
// broker: publish to transform/requests, read transform/responses/{id}.
func TestHappyCaseBroker(t *testing.T) {
	if os.Getenv("E2E") == "" {
		t.Skip("set E2E=1 to run against a running gateway")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(fmt.Sprintf("test-subscriber-%d", time.Now().UnixNano()))

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		t.Fatal("Broker connection timeout")
	}
	if token.Error() != nil {
		t.Fatalf("Broker connection error: %v", token.Error())
	}
	defer client.Disconnect(1000)

	requestID := uuid.New().String()
	received := make(chan map[string]interface{}, 1)

	subToken := client.Subscribe("transform/responses/"+requestID, 1, func(c mqtt.Client, m mqtt.Message) {
		var msg map[string]interface{}
		if err := json.Unmarshal(m.Payload(), &msg); err == nil {
			received <- msg
		}
	})
	if !subToken.WaitTimeout(5 * time.Second) {
		t.Fatal("Subscribe timeout")
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"request_id":      requestID,
		"api_key":         apiKey,
		"source_platform": "ringcentral",
		"target_platform": "zoom",
		"job_type_code":   "rc_zoom_sites",
		"data":            sitePayload(),
	})

	pubToken := client.Publish("transform/requests/ringcentral", 1, false, payload)
	if pubToken.Wait() && pubToken.Error() != nil {
		t.Fatalf("Failed to publish request: %v", pubToken.Error())
	}

	select {
	case msg := <-received:
		if msg["success"] != true {
			t.Fatalf("Transformation failed: %v", msg["error"])
		}
		data, _ := msg["data"].(map[string]interface{})
		if data["site_code"] != "MAIN_OFFICE" {
			t.Fatalf("Expected site_code MAIN_OFFICE, got %v", data["site_code"])
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Response NOT received from broker (timeout)")
	}
}
