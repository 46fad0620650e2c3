package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// sweep triggers an expiry sweep through a running API instance so the
// removals are broadcast to connected map clients. Intended for cron.
func main() {
	_ = godotenv.Load()

	baseURL := flag.String("api", envOr("API_BASE_URL", "http://localhost:8080"), "base URL of the running API")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	client := &http.Client{Timeout: *timeout}
	req, err := http.NewRequest(http.MethodDelete, *baseURL+"/api/donations/cleanup", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweep: %v\n", err)
		os.Exit(1)
	}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweep: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "sweep: unexpected status %s\n", resp.Status)
		os.Exit(1)
	}

	var result struct {
		Removed int `json:"removed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		fmt.Fprintf(os.Stderr, "sweep: decode response: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("removed %d expired donations\n", result.Removed)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
