//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3001/api"

const samplePolicy = `This policy covers planned and emergency hospitalization.

Knee surgery and other orthopedic procedures are covered after a waiting period of twenty four months.

Maternity benefits become available after thirty six months of continuous coverage.

Pre-authorization is required for all planned surgeries at network hospitals in Pune and Mumbai.`

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
func sendJSON(method, url string, body interface{}) (*http.Response, []byte, error) {
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

	client := &http.Client{} // No timeout, LLM calls can be slow
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func uploadSample() (*http.Response, []byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("files", "sample_policy.txt")
	if err != nil {
		return nil, nil, err
	}
	part.Write([]byte(samplePolicy))
	w.Close()

	req, err := http.NewRequest("POST", baseURL+"/document/v1/upload", &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Policy QA Pipeline Test\n")

	// 1. Upload a sample policy document
	color.Yellow("\n1. Upload Sample Policy Document")
	resp, body, err := uploadSample()
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var uploadResp map[string]interface{}
	json.Unmarshal(body, &uploadResp)
	prettyPrint(uploadResp)

	// 2. List documents (summary may still be pending)
	color.Yellow("\n2. List Documents")
	resp, body, err = sendJSON("GET", "/document/v1", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var listResp map[string]interface{}
	json.Unmarshal(body, &listResp)
	prettyPrint(listResp)

	// 3. Conversational ask
	color.Yellow("\n3. Ask: 'Is knee surgery covered?'")
	askReq := map[string]interface{}{
		"query": "Is knee surgery covered?",
	}
	resp, body, err = sendJSON("POST", "/assistant/v1/ask", askReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var askResp map[string]interface{}
	json.Unmarshal(body, &askResp)
	// Concise printing to avoid dumping every source chunk
	if data, ok := askResp["data"].(map[string]interface{}); ok {
		fmt.Printf("Response: %s\n", data["response"])
		if conf, ok := data["confidence"].(map[string]interface{}); ok {
			fmt.Printf("Confidence: %v (%v)\n", conf["score"], conf["level"])
		}
		if chunks, ok := data["source_chunks"].([]interface{}); ok {
			fmt.Printf("Source Chunks: %d\n", len(chunks))
		}
	} else {
		prettyPrint(askResp)
	}

	// 4. Smart ask with structured decision
	color.Yellow("\n4. Smart Ask (Structured): '46M, knee surgery, Pune, 3-month policy'")
	smartReq := map[string]interface{}{
		"query":             "46M, knee surgery, Pune, 3-month policy",
		"return_structured": true,
	}
	resp, body, err = sendJSON("POST", "/assistant/v1/ask-smart", smartReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var smartResp map[string]interface{}
	json.Unmarshal(body, &smartResp)
	if data, ok := smartResp["data"].(map[string]interface{}); ok {
		fmt.Println("Parsed Query:")
		prettyPrint(data["parsed_query"])
		fmt.Println("Decision:")
		prettyPrint(data["decision"])
	} else {
		prettyPrint(smartResp)
	}

	// 5. Raw similarity search (bare array, no envelope)
	color.Yellow("\n5. Raw Search: 'waiting period'")
	resp, body, err = sendJSON("POST", "/assistant/v1/search", map[string]interface{}{
		"query": "waiting period",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var hits []map[string]interface{}
	json.Unmarshal(body, &hits)
	fmt.Printf("Hits: %d\n", len(hits))
	for _, h := range hits {
		fmt.Printf("  score=%v file=%v\n", h["score"], h["payload"].(map[string]interface{})["fileName"])
	}

	// 6. Cleanup
	color.Yellow("\n6. Cleanup: Clear All Documents")
	resp, body, err = sendJSON("DELETE", "/document/v1", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var clearResp map[string]interface{}
	json.Unmarshal(body, &clearResp)
	prettyPrint(clearResp)

	color.Cyan("\n✅ Test Sequence Complete")
}
