package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/models"
)

// VisionService wraps the external food recognition model: an
// OpenAI-compatible chat completions endpoint with image input.
type VisionService struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewVisionService() *VisionService {
	base := strings.TrimSpace(os.Getenv("VISION_BASE_URL"))
	if base == "" {
		base = "https://api.openai.com"
	}
	model := strings.TrimSpace(os.Getenv("VISION_MODEL"))
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &VisionService{
		baseURL: base,
		apiKey:  strings.TrimSpace(os.Getenv("VISION_API_KEY")),
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// FoodEstimate is what the model is instructed to return. On malformed
// model output the estimate degrades (empty items, zero kcal, low
// confidence) instead of failing the request.
type FoodEstimate struct {
	Items       []models.FoodEntry `json:"items"`
	TotalKcal   float64            `json:"total_kcal"`
	Confidence  string             `json:"confidence"`
	Error       string             `json:"error,omitempty"`
	RawResponse string             `json:"raw_response,omitempty"`
}

const visionInstruction = `Identify the food in this photo and estimate its nutritional content.
Return ONLY a JSON object with this schema, no markdown fences, no prose:
{
  "items": [{"food_name": "string", "grams": number, "kcal": number, "proteins": number, "carbs": number, "fats": number}],
  "total_kcal": number,
  "confidence": "high" | "medium" | "low"
}`

type visionChatReq struct {
	Model    string          `json:"model"`
	Messages []visionMessage `json:"messages"`
}

type visionMessage struct {
	Role    string        `json:"role"`
	Content []visionChunk `json:"content"`
}

type visionChunk struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *visionImageURL `json:"image_url,omitempty"`
}

type visionImageURL struct {
	URL string `json:"url"`
}

type visionChatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AnalyzeFoodImage sends one recognition request. A transport or HTTP
// failure is an error for the caller to surface; unparseable model
// output is not.
func (s *VisionService) AnalyzeFoodImage(imageBase64 string) (*FoodEstimate, error) {
	dataURI := imageBase64
	if !strings.HasPrefix(dataURI, "data:") {
		dataURI = "data:image/jpeg;base64," + imageBase64
	}

	payload, err := json.Marshal(visionChatReq{
		Model: s.model,
		Messages: []visionMessage{{
			Role: "user",
			Content: []visionChunk{
				{Type: "text", Text: visionInstruction},
				{Type: "image_url", ImageURL: &visionImageURL{URL: dataURI}},
			},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vision payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call vision API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read vision response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API error %d: %s", resp.StatusCode, string(body))
	}

	var chat visionChatResp
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("failed to parse vision JSON: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("vision API returned no choices")
	}

	estimate := ParseFoodEstimate(chat.Choices[0].Message.Content)
	return &estimate, nil
}

// ParseFoodEstimate extracts the structured estimate from the model's
// reply. Models wrap JSON in fenced code blocks despite instructions,
// so fences are stripped first; anything still unparseable yields the
// degraded low-confidence result with the raw reply echoed back
// (truncated) for debugging.
func ParseFoodEstimate(content string) FoodEstimate {
	cleaned := StripCodeFence(content)

	var est FoodEstimate
	if err := json.Unmarshal([]byte(cleaned), &est); err != nil {
		return FoodEstimate{
			Items:       []models.FoodEntry{},
			TotalKcal:   0,
			Confidence:  "low",
			Error:       "could not parse recognition response",
			RawResponse: truncate(content, 500),
		}
	}
	if est.Items == nil {
		est.Items = []models.FoodEntry{}
	}
	if est.Confidence == "" {
		est.Confidence = "low"
	}
	return est
}

// StripCodeFence unwraps ```json ... ``` (or bare ```) fencing around a
// reply, leaving other content untouched.
func StripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	// drop an optional language tag on the opening fence
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
		first := strings.TrimSpace(trimmed[:i])
		if first == "json" || first == "" {
			trimmed = trimmed[i+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
