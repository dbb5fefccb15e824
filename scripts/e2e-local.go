//go:build ignore

// e2e-local.go - posts one event of every kind to a running events API and
// checks that the server agrees with the offline hash.
//
// Usage:
//
//	go run scripts/e2e-local.go -api http://localhost:8080
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge/ethbridgetest"
	"github.com/chainsafe/ethbridge-events/pkg/events"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "Events API base URL")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	failed := false

	for _, ev := range ethbridgetest.AllKinds() {
		if err := check(client, *apiURL, ev); err != nil {
			fmt.Printf("✗ %s: %v\n", ev.Kind(), err)
			failed = true
			continue
		}
		fmt.Printf("✓ %s\n", ev.Kind())
	}

	if failed {
		os.Exit(1)
	}
}

func check(client *http.Client, apiURL string, ev ethbridge.Event) error {
	want, err := ethbridge.HashEvent(ev)
	if err != nil {
		return err
	}
	body, err := json.Marshal(events.EventRequest{Event: &ethbridge.EventJSON{Event: ev}})
	if err != nil {
		return err
	}

	var hashed events.HashResponse
	if err := post(client, apiURL+"/v1/events/hash", body, http.StatusOK, &hashed); err != nil {
		return err
	}
	if hashed.Hash != want {
		return fmt.Errorf("server hash %s, offline hash %s", hashed.Hash, want)
	}

	var stored events.StoreResponse
	if err := post(client, apiURL+"/v1/events", body, 0, &stored); err != nil {
		return err
	}
	if stored.Hash != want {
		return fmt.Errorf("stored under %s, want %s", stored.Hash, want)
	}
	// a second store of the same event is a duplicate
	return post(client, apiURL+"/v1/events", body, http.StatusOK, &stored)
}

func post(client *http.Client, url string, body []byte, wantStatus int, out any) error {
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if wantStatus != 0 && resp.StatusCode != wantStatus {
		return fmt.Errorf("POST %s: status %d: %s", url, resp.StatusCode, data)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("POST %s: status %d: %s", url, resp.StatusCode, data)
	}
	return json.Unmarshal(data, out)
}
