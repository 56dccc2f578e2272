package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	entriesPerHour = 100 // Entries generated for every populated hour
)

// populatedHours lists the hours that receive entries and their relative load.
// Hour 23 gets a double share so the busiest hour and the wrapping two-hour
// window are unambiguous.
var populatedHours = map[int]int{
	0:  entriesPerHour,
	1:  entriesPerHour / 2,
	14: entriesPerHour,
	23: entriesPerHour * 2,
}

// ### End - fixed configs

type report struct {
	LogID                   string    `json:"logId"`
	LogName                 string    `json:"logName"`
	Format                  string    `json:"format"`
	TotalAccesses           int64     `json:"totalAccesses"`
	BusiestHour             int       `json:"busiestHour"`
	QuietestHour            int       `json:"quietestHour"`
	BusiestTwoHourStart     int       `json:"busiestTwoHourStart"`
	BusiestMonth            int       `json:"busiestMonth"`
	QuietestMonth           int       `json:"quietestMonth"`
	AverageAccessesPerMonth int64     `json:"averageAccessesPerMonth"`
	HourCounts              [24]int64 `json:"hourCounts"`
	MonthCounts             [12]int64 `json:"monthCounts"`
}

// main runs the e2e scenario: 001_upload_and_report
//
// This scenario tests the end-to-end flow of logfile upload, asynchronous
// analysis, and report retrieval. It generates a deterministic simple-format
// logfile, uploads it via POST /logs, and polls the report endpoints until the
// background consumer has produced the analysis.
//
// What it tests:
//   - Logfile upload via POST /logs with log name, format, and idempotency key
//   - Idempotency key handling for duplicate upload detection (409 Conflict)
//   - Analysis request event production and consumption
//   - Report building and storage
//   - Report retrieval via GET /reports/{logID}
//   - Plain-text count tables via GET /reports/{logID}/hourly and /monthly
//
// Expected results:
//   - Original upload returns 202 Accepted with the idempotency key as logId
//   - Re-uploading with the same idempotency key returns 409 Conflict
//   - The report becomes available within the polling window
//   - totalAccesses equals the number of generated entries
//   - busiestHour is 23, quietestHour is 1, busiestTwoHourStart is 23 (wraps to 0)
//   - busiestMonth is 10 and averageAccessesPerMonth equals totalAccesses/12
//   - The hourly table lists 24 hour lines matching the report's hourCounts
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"                                 // Base URL of the access analytics API server
	logName := "e2e-access.log"                                        // Log name sent in the x-log-name header
	idempotencyKey := fmt.Sprintf("e2e-001-%d", time.Now().UnixNano()) // Unique key per run so reruns need no cleanup
	pollTimeout := 30 * time.Second                                    // How long to wait for the background analysis
	pollInterval := 250 * time.Millisecond                             // Delay between report polls

	fmt.Println("Starting e2e scenario: 001_upload_and_report")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("LOG_NAME: %s\n", logName)
	fmt.Printf("IDEMPOTENCY_KEY: %s\n", idempotencyKey)
	fmt.Println()

	// Generate the logfile
	content, totalEntries := generateLogfile()
	fmt.Printf("Generated logfile with %d entries across %d populated hours\n", totalEntries, len(populatedHours))
	fmt.Println()

	client := &http.Client{Timeout: 30 * time.Second}

	// Upload the logfile
	status, logID, err := uploadLogfile(client, baseURL, logName, idempotencyKey, content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Upload failed: %v\n", err)
		os.Exit(1)
	}
	if status != http.StatusAccepted {
		fmt.Fprintf(os.Stderr, "ERROR: Expected 202 Accepted, got %d\n", status)
		os.Exit(1)
	}
	if logID != idempotencyKey {
		fmt.Fprintf(os.Stderr, "ERROR: Expected logId %q, got %q\n", idempotencyKey, logID)
		os.Exit(1)
	}
	fmt.Printf("Upload accepted (logId=%s)\n", logID)

	// Re-upload with the same idempotency key, expect 409
	status, _, err = uploadLogfile(client, baseURL, logName, idempotencyKey, content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Duplicate upload failed: %v\n", err)
		os.Exit(1)
	}
	if status != http.StatusConflict {
		fmt.Fprintf(os.Stderr, "ERROR: Expected 409 Conflict for duplicate upload, got %d\n", status)
		os.Exit(1)
	}
	fmt.Println("Duplicate upload rejected with 409 Conflict")
	fmt.Println()

	// Poll for the report
	rep, err := pollReport(client, baseURL, logID, pollTimeout, pollInterval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Report available after polling (totalAccesses=%d)\n", rep.TotalAccesses)

	// Verify derived statistics
	failures := 0
	check := func(name string, got, want any) {
		if fmt.Sprint(got) != fmt.Sprint(want) {
			fmt.Fprintf(os.Stderr, "MISMATCH: %s = %v, want %v\n", name, got, want)
			failures++
		}
	}

	check("logName", rep.LogName, logName)
	check("format", rep.Format, "simple")
	check("totalAccesses", rep.TotalAccesses, totalEntries)
	check("busiestHour", rep.BusiestHour, 23)
	check("quietestHour", rep.QuietestHour, 1)
	check("busiestTwoHourStart", rep.BusiestTwoHourStart, 23)
	check("busiestMonth", rep.BusiestMonth, 10)
	check("quietestMonth", rep.QuietestMonth, 10)
	check("averageAccessesPerMonth", rep.AverageAccessesPerMonth, int64(totalEntries)/12)
	for hour, want := range populatedHours {
		check(fmt.Sprintf("hourCounts[%d]", hour), rep.HourCounts[hour], want)
	}

	// Verify the plain-text tables
	hourlyBody, err := fetchText(client, baseURL+"/reports/"+logID+"/hourly")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to fetch hourly table: %v\n", err)
		os.Exit(1)
	}
	hourlyLines := strings.Split(strings.TrimRight(hourlyBody, "\n"), "\n")
	check("hourly table line count", len(hourlyLines), 25)
	check("hourly table header", hourlyLines[0], "Hr: Count")
	check("hourly table hour 23", hourlyLines[24], fmt.Sprintf("23: %d", rep.HourCounts[23]))

	monthlyBody, err := fetchText(client, baseURL+"/reports/"+logID+"/monthly")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to fetch monthly table: %v\n", err)
		os.Exit(1)
	}
	monthlyLines := strings.Split(strings.TrimRight(monthlyBody, "\n"), "\n")
	check("monthly table line count", len(monthlyLines), 13)
	check("monthly table header", monthlyLines[0], "Month: Count")
	check("monthly table month 10", monthlyLines[10], fmt.Sprintf("10: %d", totalEntries))

	fmt.Println()
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d checks failed\n", failures)
		os.Exit(1)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Total entries sent: %d\n", totalEntries)
	fmt.Printf("Busiest hour: %d\n", rep.BusiestHour)
	fmt.Printf("Quietest hour: %d\n", rep.QuietestHour)
	fmt.Printf("Busiest two-hour start: %d\n", rep.BusiestTwoHourStart)
	fmt.Println("Scenario completed successfully")
}

// generateLogfile builds a simple-format logfile. Every entry lands in
// October 2024 so the month statistics are deterministic too.
func generateLogfile() ([]byte, int) {
	var buf bytes.Buffer
	total := 0
	for hour := 0; hour < 24; hour++ {
		count := populatedHours[hour]
		for i := 0; i < count; i++ {
			day := (i % 28) + 1
			minute := i % 60
			fmt.Fprintf(&buf, "2024 10 %d %d %d\n", day, hour, minute)
			total++
		}
	}
	return buf.Bytes(), total
}

func uploadLogfile(client *http.Client, baseURL, logName, idempotencyKey string, content []byte) (int, string, error) {
	req, err := http.NewRequest("POST", baseURL+"/logs", bytes.NewReader(content))
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-log-name", logName)
	req.Header.Set("x-log-format", "simple")
	req.Header.Set("idempotency-key", idempotencyKey)

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return resp.StatusCode, "", nil
	}

	var body struct {
		LogID string `json:"logId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	return resp.StatusCode, body.LogID, nil
}

func pollReport(client *http.Client, baseURL, logID string, timeout, interval time.Duration) (*report, error) {
	deadline := time.Now().Add(timeout)
	for {
		resp, err := client.Get(baseURL + "/reports/" + logID)
		if err != nil {
			return nil, fmt.Errorf("report request failed: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			var rep report
			err := json.NewDecoder(resp.Body).Decode(&rep)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to decode report: %w", err)
			}
			return &rep, nil
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			return nil, fmt.Errorf("unexpected report status %d", resp.StatusCode)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("report for %s not available after %s", logID, timeout)
		}
		time.Sleep(interval)
	}
}

func fetchText(client *http.Client, url string) (string, error) {
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return string(body), nil
}
