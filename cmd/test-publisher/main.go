package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/broker"
	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/domains"
)

func main() {
	godotenv.Load()

	// Flags
	source := flag.String("source", "ringcentral", "Source platform (ringcentral, ssot, dialpad)")
	target := flag.String("target", "zoom", "Target platform")
	jobType := flag.String("job", "rc_zoom_sites", "Job type code or numeric id")
	apiKey := flag.String("key", "test-key-789", "API key")
	dataFile := flag.String("data", "", "Path to a JSON file holding the record to transform")
	flag.Parse()

	data := sampleRecord()
	if *dataFile != "" {
		raw, err := os.ReadFile(*dataFile)
		if err != nil {
			log.Fatalf("Failed to read data file: %v", err)
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			log.Fatalf("Failed to parse data file: %v", err)
		}
	}

	// Connect to broker
	brokerURL := os.Getenv("BROKER_URL")
	if brokerURL == "" {
		brokerURL = "tcp://localhost:1883"
	}

	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID("test-publisher-" + fmt.Sprintf("%d", time.Now().Unix()))

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("Failed to connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	log.Printf("Connected to broker: %s", brokerURL)

	// Build request
	requestID := uuid.New().String()
	req := domains.TransformRequest{
		RequestID:      requestID,
		APIKey:         *apiKey,
		SourcePlatform: *source,
		TargetPlatform: *target,
		JobTypeCode:    *jobType,
		Data:           data,
	}

	payload, _ := json.MarshalIndent(req, "", "  ")
	topic := broker.RequestTopic(*source)

	log.Printf("Publishing to: %s", topic)
	log.Printf("Payload:\n%s", string(payload))

	// Publish request
	token := client.Publish(topic, 1, false, payload)
	if token.Wait() && token.Error() != nil {
		log.Fatalf("Failed to publish: %v", token.Error())
	}

	log.Println("Request published!")

	// Subscribe to response
	responseTopic := broker.ResponseTopic(requestID)
	log.Printf("Waiting for response on: %s", responseTopic)

	received := make(chan []byte, 1)
	client.Subscribe(responseTopic, 1, func(c mqtt.Client, m mqtt.Message) {
		received <- m.Payload()
	})

	// Wait for response with timeout
	select {
	case resp := <-received:
		var prettyResp map[string]interface{}
		json.Unmarshal(resp, &prettyResp)
		pretty, _ := json.MarshalIndent(prettyResp, "", "  ")
		log.Printf("Response received:\n%s", string(pretty))
	case <-time.After(30 * time.Second):
		log.Println("Timeout waiting for response")
	}
}

// sampleRecord is the default payload, a small RingCentral site.
func sampleRecord() map[string]interface{} {
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
		"regionalSettings": map[string]interface{}{
			"timezone": map[string]interface{}{
				"id":   "58",
				"name": "Eastern Time",
			},
		},
	}
}
