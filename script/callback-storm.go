package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// CallbackPayload mirrors the gateway's webhook body
type CallbackPayload struct {
	ExternalReference string         `json:"external_reference"`
	Status            string         `json:"status"`
	Success           bool           `json:"success"`
	TransactionID     string         `json:"transaction_id"`
	Result            CallbackResult `json:"result"`
}

// CallbackResult is the nested result object of the webhook
type CallbackResult struct {
	ResultCode         int     `json:"ResultCode"`
	ResultDesc         string  `json:"ResultDesc"`
	MpesaReceiptNumber string  `json:"MpesaReceiptNumber"`
	Amount             float64 `json:"Amount"`
	Phone              string  `json:"Phone"`
}

// AckResponse is what the webhook endpoint answers with
type AckResponse struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// StatementResponse is the user statement answer
type StatementResponse struct {
	Balance int64 `json:"balance"`
}

// StormStats aggregates the delivery results
type StormStats struct {
	Acked      int
	Rejected   int
	Errors     int
	StatusDist map[int]int
	Lock       sync.Mutex
}

// This tool hammers one webhook endpoint with identical callback
// deliveries to verify that the balance moves exactly once no matter
// how many duplicates race each other. Run it against a deposit
// reference that is still pending.
func main() {
	baseURL := flag.String("url", "http://localhost:3000", "Base URL for the API")
	reference := flag.String("ref", "", "Payment reference to storm (required)")
	userID := flag.String("user", "", "User ID to check the balance of before and after")
	amount := flag.Float64("amount", 100, "Callback amount field")
	concurrency := flag.Int("c", 20, "Number of concurrent deliveries")
	path := flag.String("path", "/deposit-callback", "Webhook path to deliver to")
	flag.Parse()

	if *reference == "" {
		fmt.Println("Error: -ref is required")
		flag.Usage()
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}

	balanceBefore := int64(-1)
	if *userID != "" {
		balanceBefore = fetchBalance(client, *baseURL, *userID)
		fmt.Printf("Balance before storm: %d\n", balanceBefore)
	}

	payload := CallbackPayload{
		ExternalReference: *reference,
		Status:            "completed",
		Success:           true,
		TransactionID:     "STORM-" + *reference,
		Result: CallbackResult{
			ResultCode:         0,
			ResultDesc:         "The service request is processed successfully.",
			MpesaReceiptNumber: "STORMRCPT",
			Amount:             *amount,
			Phone:              "254712345678",
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error: failed to marshal payload: %v\n", err)
		return
	}

	stats := &StormStats{StatusDist: make(map[int]int)}
	start := time.Now()

	// Release all deliveries at once so they race inside the server
	gate := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-gate
			deliver(client, *baseURL+*path, body, stats)
		}()
	}
	close(gate)
	wg.Wait()

	elapsed := time.Since(start)

	fmt.Printf("\n=== Callback storm results ===\n")
	fmt.Printf("Deliveries:  %d in %v\n", *concurrency, elapsed)
	fmt.Printf("Acked:       %d\n", stats.Acked)
	fmt.Printf("Rejected:    %d\n", stats.Rejected)
	fmt.Printf("Errors:      %d\n", stats.Errors)
	fmt.Printf("Status dist: %v\n", stats.StatusDist)

	if stats.Acked != *concurrency {
		fmt.Println("FAIL: every duplicate delivery should be acknowledged")
	}

	if *userID != "" {
		balanceAfter := fetchBalance(client, *baseURL, *userID)
		fmt.Printf("Balance after storm: %d\n", balanceAfter)

		expected := balanceBefore + int64(*amount)
		if balanceAfter == expected {
			fmt.Printf("OK: balance moved exactly once (+%d)\n", int64(*amount))
		} else {
			fmt.Printf("FAIL: expected %d, got %d\n", expected, balanceAfter)
		}
	}
}

func deliver(client *http.Client, url string, body []byte, stats *StormStats) {
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		stats.Lock.Lock()
		stats.Errors++
		stats.Lock.Unlock()
		return
	}
	defer resp.Body.Close()

	var ack AckResponse
	acked := false
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&ack); err == nil && ack.ResultCode == 0 {
			acked = true
		}
	}

	stats.Lock.Lock()
	defer stats.Lock.Unlock()
	stats.StatusDist[resp.StatusCode]++
	if acked {
		stats.Acked++
	} else {
		stats.Rejected++
	}
}

func fetchBalance(client *http.Client, baseURL, userID string) int64 {
	resp, err := client.Get(baseURL + "/user/" + userID)
	if err != nil {
		fmt.Printf("Warning: balance fetch failed: %v\n", err)
		return -1
	}
	defer resp.Body.Close()

	var statement StatementResponse
	if err := json.NewDecoder(resp.Body).Decode(&statement); err != nil {
		fmt.Printf("Warning: balance decode failed: %v\n", err)
		return -1
	}
	return statement.Balance
}
