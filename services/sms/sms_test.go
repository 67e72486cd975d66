package sms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/promovia/promovia-api/config"
)

func TestSend(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Failed to decode gateway payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(&config.Config{
		SMSGatewayURL: server.URL,
		SMSAPIKey:     "key-1",
		SMSSenderID:   "PROMOV",
	})

	if err := client.Send("9876543210", "Your login code is 123456"); err != nil {
		t.Fatalf("Expected send to succeed, got %v", err)
	}

	if got["apiKey"] != "key-1" {
		t.Errorf("Expected apiKey key-1, got %q", got["apiKey"])
	}
	if got["senderId"] != "PROMOV" {
		t.Errorf("Expected senderId PROMOV, got %q", got["senderId"])
	}
	if got["phone"] != "9876543210" {
		t.Errorf("Expected phone 9876543210, got %q", got["phone"])
	}
	if got["message"] != "Your login code is 123456" {
		t.Errorf("Expected the message text, got %q", got["message"])
	}
}

func TestSendGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid sender", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(&config.Config{SMSGatewayURL: server.URL})
	err := client.Send("9876543210", "hello")
	if err == nil {
		t.Fatal("Expected an error for a gateway failure")
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("Expected the gateway status in the error, got %v", err)
	}
}

func TestSendTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(&config.Config{SMSGatewayURL: server.URL})
	if err := client.Send("9876543210", "hello"); err == nil {
		t.Fatal("Expected an error when the gateway is unreachable")
	}
}
