package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // No timeout, generation can be slow
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func report(name string, resp *http.Response, body []byte, err error) bool {
	if err != nil {
		color.Red("✗ %s: %v", name, err)
		return false
	}
	if resp.StatusCode >= 400 {
		color.Red("✗ %s: HTTP %d", name, resp.StatusCode)
	} else {
		color.Green("✓ %s: HTTP %d", name, resp.StatusCode)
	}

	var parsed map[string]interface{}
	if json.Unmarshal(body, &parsed) == nil {
		prettyPrint(parsed)
	} else {
		fmt.Println(string(body))
	}
	return resp.StatusCode < 400
}

func main() {
	color.Cyan("=== Course Assistant API smoke test ===")

	ok := true

	resp, body, err := sendRequest(http.MethodPost, "/file/v1/upload", map[string]interface{}{
		"files": []map[string]string{
			{
				"file_id":   "smoke-file-1",
				"file_name": "intro.txt",
				"file_url":  "data/intro.txt",
				"course_id": "smoke-course",
			},
		},
	})
	ok = report("upload file", resp, body, err) && ok

	resp, body, err = sendRequest(http.MethodPost, "/chat/v1/answer", map[string]string{
		"user_id":  "smoke-user",
		"chat_id":  "smoke-chat",
		"question": "What courses cover climate change?",
	})
	ok = report("answer question", resp, body, err) && ok

	resp, body, err = sendRequest(http.MethodGet, "/chat/v1/history?user_id=smoke-user&limit=5", nil)
	ok = report("fetch history", resp, body, err) && ok

	resp, body, err = sendRequest(http.MethodPost, "/chat/v1/provider", map[string]string{
		"provider": "GROQ",
	})
	ok = report("switch provider", resp, body, err) && ok

	if !ok {
		color.Red("Some checks failed")
		os.Exit(1)
	}
	color.Green("All checks passed")
}
