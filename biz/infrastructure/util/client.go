package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"class-hive/biz/infrastructure/config"
	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/util/log"
)

var client *HttpClient

// HttpClient talks to the hosted generation/grading model endpoints.
type HttpClient struct {
	Client *http.Client
}

func NewHttpClient() *HttpClient {
	return &HttpClient{
		Client: &http.Client{},
	}
}

func GetHttpClient() *HttpClient {
	if client == nil {
		client = NewHttpClient()
	}
	return client
}

// SendRequest posts body as JSON and decodes the JSON response.
func (c *HttpClient) SendRequest(ctx context.Context, method, url string, headers map[string]string, body interface{}) (map[string]interface{}, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("failed to close response body: %v", closeErr)
		}
	}()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, responseBody)
	}

	var responseMap map[string]interface{}
	if err := json.Unmarshal(responseBody, &responseMap); err != nil {
		return nil, fmt.Errorf("failed to deserialize response: %w", err)
	}

	return responseMap, nil
}

func (c *HttpClient) defaultHeader() map[string]string {
	header := make(map[string]string)
	header["Content-Type"] = consts.ContentTypeJson
	header["Charset"] = consts.CharSetUTF8
	if config.GetConfig().State == "test" {
		header["X-Env"] = "test"
	}
	return header
}

// GeneratePaper asks the model to build a question paper from the batch's
// source documents plus seed questions from the bank.
func (c *HttpClient) GeneratePaper(ctx context.Context, name string, documents []string, seeds []string, questionCount int64) (map[string]interface{}, error) {
	body := make(map[string]interface{})
	body["name"] = name
	body["documents"] = documents
	body["seedQuestions"] = seeds
	body["questionCount"] = questionCount

	resp, err := c.SendRequest(ctx, consts.Post, config.GetConfig().Api.GeneratePaperURL, c.defaultHeader(), body)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GradeAnswer asks the model to mark an answer against a question.
func (c *HttpClient) GradeAnswer(ctx context.Context, question, answer string, maxMarks int64) (map[string]interface{}, error) {
	body := make(map[string]interface{})
	body["question"] = question
	body["answer"] = answer
	body["maxMarks"] = maxMarks

	resp, err := c.SendRequest(ctx, consts.Post, config.GetConfig().Api.GradeAnswerURL, c.defaultHeader(), body)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
