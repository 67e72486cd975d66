package extraction

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/promovia/promovia-api/config"
)

// DefaultPrompt is used when neither the brand record nor the environment
// supplies one.
const DefaultPrompt = "You are given a photo of a food delivery app screen or a printed receipt. " +
	"Respond with a single JSON object containing any of these fields you can read: " +
	"orderId, totalBill, deliveryAddress, orderPlaced, promoVoucher, customerName, phone. " +
	"Omit fields that are not visible. Respond with JSON only."

// Result is the loosely typed JSON object returned by the inference
// service. Values may arrive as strings or numbers depending on the model,
// so access goes through the tolerant getters below.
type Result map[string]any

func (r Result) OrderID() string         { return r.str("orderId") }
func (r Result) TotalBill() string       { return r.str("totalBill") }
func (r Result) DeliveryAddress() string { return r.str("deliveryAddress") }
func (r Result) OrderPlaced() string     { return r.str("orderPlaced") }
func (r Result) PromoVoucher() string    { return r.str("promoVoucher") }
func (r Result) CustomerName() string    { return r.str("customerName", "name") }
func (r Result) Phone() string           { return r.str("phone") }

func (r Result) str(keys ...string) string {
	for _, key := range keys {
		switch v := r[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// Client calls an OpenAI-compatible vision endpoint.
type Client struct {
	http  *resty.Client
	url   string
	model string
}

func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetTimeout(90 * time.Second).
		SetHeader("Authorization", "Bearer "+cfg.InferenceAPIKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:  httpClient,
		url:   cfg.InferenceURL,
		model: cfg.InferenceModel,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string     `json:"role"`
	Content []chatPart `json:"content"`
}

type chatPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Extract sends one image with the given prompt and returns whatever JSON
// object the model produced. Extraction is best effort: any transport,
// inference or parse failure is logged and an empty Result returned. A
// single attempt is made per image, there are no retries.
func (c *Client) Extract(image []byte, contentType, prompt string) Result {
	if contentType == "" {
		contentType = "image/jpeg"
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []chatPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &chatImageURL{
					URL: "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}

	resp, err := c.http.R().SetBody(body).Post(c.url)
	if err != nil {
		log.Printf("Error calling inference service: %v", err)
		return Result{}
	}
	if resp.StatusCode() != 200 {
		log.Printf("Inference service returned status %d: %s", resp.StatusCode(), resp.Body())
		return Result{}
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		log.Printf("Error parsing inference response: %v", err)
		return Result{}
	}
	if len(parsed.Choices) == 0 {
		return Result{}
	}
	return parseContent(parsed.Choices[0].Message.Content)
}

// parseContent pulls a JSON object out of a completion that may wrap it in
// markdown fences or surrounding prose.
func parseContent(content string) Result {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return Result{}
	}

	var result Result
	if err := json.Unmarshal([]byte(content[start:end+1]), &result); err != nil {
		log.Printf("Inference completion was not valid JSON: %v", err)
		return Result{}
	}
	return result
}
