package fetchkit

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestMethod_Validate(t *testing.T) {
	valid := []Method{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch}
	for _, m := range valid {
		t.Run(string(m), func(t *testing.T) {
			if err := m.Validate(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	invalid := []Method{"", "TRACE", "OPTIONS", "get"}
	for _, m := range invalid {
		t.Run("invalid_"+string(m), func(t *testing.T) {
			if err := m.Validate(); err == nil {
				t.Errorf("expected error for method %q", string(m))
			}
		})
	}
}

func TestBuildWireRequest_NoBody(t *testing.T) {
	headers := map[string]string{"X-Trace": "abc"}

	req, err := buildWireRequest("https://api.example.com/u/1", headers, MethodGet, nil, JSONCodec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != MethodGet {
		t.Errorf("expected GET, got %s", req.Method)
	}
	if req.Body != nil {
		t.Errorf("expected absent body, got %q", req.Body)
	}
	if req.Headers["X-Trace"] != "abc" {
		t.Errorf("expected X-Trace=abc, got %q", req.Headers["X-Trace"])
	}

	// The built request must not observe later mutations of the input map.
	headers["X-Trace"] = "mutated"
	if req.Headers["X-Trace"] != "abc" {
		t.Error("header map was not copied")
	}
}

func TestBuildWireRequest_NilHeaders(t *testing.T) {
	req, err := buildWireRequest("https://api.example.com", nil, MethodDelete, nil, JSONCodec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Headers == nil {
		t.Error("expected empty header map, got nil")
	}
	if len(req.Headers) != 0 {
		t.Errorf("expected no headers, got %v", req.Headers)
	}
}

func TestBuildWireRequest_EncodesBody(t *testing.T) {
	body := map[string]string{"name": "Ann"}

	req, err := buildWireRequest("https://api.example.com/u", nil, MethodPost, body, JSONCodec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, _ := json.Marshal(body)
	if !bytes.Equal(req.Body, want) {
		t.Errorf("body = %q, want %q", req.Body, want)
	}
}

func TestBuildWireRequest_EncodeFailure(t *testing.T) {
	// channels are not JSON-encodable
	_, err := buildWireRequest("https://api.example.com", nil, MethodPost, make(chan int), JSONCodec{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsBuild(err) {
		t.Errorf("expected build error, got %v", err)
	}
}

func TestBuildWireRequest_InvalidMethod(t *testing.T) {
	_, err := buildWireRequest("https://api.example.com", nil, Method("TRACE"), nil, JSONCodec{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsBuild(err) {
		t.Errorf("expected build error, got %v", err)
	}
}
