package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRootEndpoint(t *testing.T) {
	server := newTestServer(t, &converterStub{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status code = %v, want %v", w.Code, http.StatusOK)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if body["message"] != "Temperature Conversion API" {
		t.Errorf("message = %v", body["message"])
	}

	endpoints, ok := body["endpoints"].(map[string]any)
	if !ok {
		t.Fatal("endpoints should be an object")
	}
	for _, key := range []string{"health", "fahrenheit_to_celsius", "celsius_to_fahrenheit", "batch_conversion"} {
		if endpoints[key] == "" || endpoints[key] == nil {
			t.Errorf("endpoints missing %q", key)
		}
	}
}

func TestNotFound(t *testing.T) {
	server := newTestServer(t, &converterStub{})

	for _, target := range []string{"/nope", "/convert", "/convert/kelvin"} {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()

			server.Handler.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Status code = %v, want %v", w.Code, http.StatusNotFound)
			}

			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if body["error"] == "" {
				t.Error("404 response should carry an error message")
			}
		})
	}
}

func TestServer_Integration(t *testing.T) {
	server := newTestServer(t, &converterStub{})

	ts := httptest.NewServer(server.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/convert/ftc?temperature=32")
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer func() {
		_ = resp.Body.Close() // Error ignored in test
	}()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status code = %v, want %v", resp.StatusCode, http.StatusOK)
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["original"] != "32" || result["converted"] != "0" {
		t.Errorf("result = %v", result)
	}
}
