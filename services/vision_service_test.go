package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const validEstimate = `{"items":[{"food_name":"Margherita Pizza","grams":250,"kcal":663,"proteins":27,"carbs":83,"fats":25}],"total_kcal":663,"confidence":"high"}`

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"anonymous fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFence(tc.in); got != tc.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseFoodEstimate_Valid(t *testing.T) {
	est := ParseFoodEstimate(validEstimate)
	if est.Error != "" {
		t.Fatalf("unexpected parse error: %s", est.Error)
	}
	if len(est.Items) != 1 || est.Items[0].FoodName != "Margherita Pizza" {
		t.Errorf("items = %+v", est.Items)
	}
	if est.TotalKcal != 663 || est.Confidence != "high" {
		t.Errorf("estimate = %+v", est)
	}
}

func TestParseFoodEstimate_Fenced(t *testing.T) {
	est := ParseFoodEstimate("```json\n" + validEstimate + "\n```")
	if est.Error != "" || est.TotalKcal != 663 {
		t.Errorf("fenced response should parse: %+v", est)
	}
}

// Unparseable model output degrades: empty items, zero kcal, low
// confidence, raw reply echoed back. Never an error to the caller.
func TestParseFoodEstimate_Malformed(t *testing.T) {
	for _, raw := range []string{
		"I think that's a pizza, roughly 600 kcal.",
		"```json\nnot even json\n```",
		"",
	} {
		est := ParseFoodEstimate(raw)
		if len(est.Items) != 0 {
			t.Errorf("items = %+v, want empty", est.Items)
		}
		if est.TotalKcal != 0 {
			t.Errorf("total_kcal = %v, want 0", est.TotalKcal)
		}
		if est.Confidence != "low" {
			t.Errorf("confidence = %q, want low", est.Confidence)
		}
		if est.Error == "" {
			t.Error("degraded estimate must carry an error marker")
		}
	}
}

func TestParseFoodEstimate_TruncatesRawResponse(t *testing.T) {
	raw := strings.Repeat("x", 2000)
	est := ParseFoodEstimate(raw)
	if len(est.RawResponse) != 500 {
		t.Errorf("raw_response length = %d, want 500", len(est.RawResponse))
	}
}

func TestAnalyzeFoodImage_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "```json\n" + validEstimate + "\n```"}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	t.Setenv("VISION_BASE_URL", srv.URL)
	t.Setenv("VISION_API_KEY", "test-key")

	est, err := NewVisionService().AnalyzeFoodImage("aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.TotalKcal != 663 || est.Confidence != "high" {
		t.Errorf("estimate = %+v", est)
	}
}

// A transport-level failure surfaces as an error, unlike malformed
// model content.
func TestAnalyzeFoodImage_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	t.Setenv("VISION_BASE_URL", srv.URL)

	if _, err := NewVisionService().AnalyzeFoodImage("aGVsbG8="); err == nil {
		t.Fatal("expected error for non-200 upstream")
	}
}
