package logger

import (
	"net/http"
	"testing"
)

func TestMaskAuthorization(t *testing.T) {
	got := MaskAuthorization("Bearer abcdef1234")
	want := "Bearer ****1234"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMaskPhone(t *testing.T) {
	got := MaskPhone("9876543210")
	want := "****3210"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMaskHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer abcdef1234")
	headers.Set("Content-Type", "application/json")

	masked := MaskHeaders(headers)
	if masked["Authorization"] != "****1234" {
		t.Fatalf("expected masked authorization, got %q", masked["Authorization"])
	}
	if masked["Content-Type"] != "application/json" {
		t.Fatalf("expected content type untouched, got %q", masked["Content-Type"])
	}
}

func TestMaskJSON(t *testing.T) {
	input := map[string]any{
		"customer_phone": "9876543210",
		"doctor_name":    "Dr. Mehta",
		"nested": map[string]any{
			"token": "abc12345",
		},
		"item_code": "PCM500",
	}
	masked := MaskJSON(input)
	if masked["customer_phone"] != "****3210" {
		t.Fatalf("expected masked phone, got %v", masked["customer_phone"])
	}
	if masked["doctor_name"] != "****ehta" {
		t.Fatalf("expected masked doctor name, got %v", masked["doctor_name"])
	}
	nested, ok := masked["nested"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map")
	}
	if nested["token"] != "****2345" {
		t.Fatalf("expected masked token, got %v", nested["token"])
	}
	if masked["item_code"] != "PCM500" {
		t.Fatalf("expected item code untouched, got %v", masked["item_code"])
	}
}
