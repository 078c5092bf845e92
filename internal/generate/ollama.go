package generate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls a local Ollama server for topic content generation.
// Responses stream as NDJSON; fragments are concatenated in arrival order.
type Client struct {
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client

	Stats *LLMStats
}

func NewClient(baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		timeout: timeout,
		httpClient: &http.Client{
			// Per-call deadline is enforced via context; the transport
			// timeout only guards a wedged connection.
			Timeout: timeout + 30*time.Second,
		},
		Stats: NewLLMStats(time.Hour),
	}
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// chatFragment is one NDJSON line of a streamed chat response. Servers
// differ in where they put the text, so three shapes are accepted.
type chatFragment struct {
	Message *struct {
		Content string `json:"content"`
	} `json:"message"`
	Content string `json:"content"`
	Choices []struct {
		Message *struct {
			Content string `json:"content"`
		} `json:"message"`
		Text string `json:"text"`
	} `json:"choices"`
}

// Chat sends a system/user prompt pair and returns the accumulated
// response text. Transport failures, timeouts and non-200 statuses come
// back as *RetryableError; the caller owns the retry policy.
func (c *Client) Chat(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: true,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.recordFailure()
		return "", &RetryableError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.recordFailure()
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	text, err := collectStream(resp.Body)
	if err != nil {
		c.recordFailure()
		return "", &RetryableError{Message: "read stream: " + err.Error()}
	}
	if c.Stats != nil {
		c.Stats.Record(time.Since(start).Milliseconds())
	}
	return text, nil
}

// collectStream reads NDJSON lines and concatenates content fragments.
// Lines that fail to decode are skipped.
func collectStream(r io.Reader) (string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var frag chatFragment
		if err := json.Unmarshal(line, &frag); err != nil {
			continue
		}
		switch {
		case frag.Message != nil:
			sb.WriteString(frag.Message.Content)
		case frag.Content != "":
			sb.WriteString(frag.Content)
		default:
			for _, ch := range frag.Choices {
				if ch.Message != nil {
					sb.WriteString(ch.Message.Content)
				} else if ch.Text != "" {
					sb.WriteString(ch.Text)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}

func (c *Client) recordFailure() {
	if c.Stats != nil {
		c.Stats.RecordFailure()
	}
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
