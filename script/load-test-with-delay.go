package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RowDelta mirrors the per-row change accepted by /reconciliation/deltas
type RowDelta struct {
	Reconciled      *bool   `json:"reconciled,omitempty"`
	ExpenseCategory *string `json:"expenseCategory,omitempty"`
}

// DeltaRequest is the /reconciliation/deltas payload
type DeltaRequest struct {
	Deltas map[string]RowDelta `json:"deltas"`
}

// Snapshot is the subset of the working copy response the test reads
type Snapshot struct {
	Rows []json.RawMessage `json:"rows"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one request shape issued by the workers
type Scenario struct {
	Name   string
	Weight int
	Run    func(client *http.Client, baseURL string, workerID, jobID int) (int, error)
}

var categories = []string{"Alimentacion", "Combustible", "Peajes", "Transporte", "Otro"}

var descriptions = []string{"SUPERMERCADO LIDER", "COPEC RUTA 68", "PEAJE AUTOPISTA CENTRAL", "UBER TRIP", "FARMACIA CRUZ VERDE"}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	lines := flag.Int("lines", 20, "Transaction lines per generated statement")
	flag.Parse()

	scenarios := []Scenario{
		{"Upload", 2, uploadScenario(*lines)},
		{"View", 4, viewScenario},
		{"Delta+Save", 3, deltaSaveScenario},
		{"Monthly", 1, monthlyScenario},
	}

	fmt.Printf("Load testing %s\n", *baseURL)
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, scenarios, jobs, results)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	if result.ResponseTime < s.MinResponseTime {
		s.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > s.MaxResponseTime {
		s.MaxResponseTime = result.ResponseTime
	}
}

func worker(id int, baseURL string, delayMs int, scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 30 * time.Second}

	totalWeight := 0
	for _, s := range scenarios {
		totalWeight += s.Weight
	}

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := pick(scenarios, rand.Intn(totalWeight))

		startTime := time.Now()
		status, err := scenario.Run(client, baseURL, id, jobID)
		results <- TestResult{
			Scenario:     scenario.Name,
			Success:      err == nil,
			ResponseTime: time.Since(startTime),
			StatusCode:   status,
			Error:        err,
		}
	}
}

func pick(scenarios []Scenario, n int) Scenario {
	for _, s := range scenarios {
		if n < s.Weight {
			return s
		}
		n -= s.Weight
	}
	return scenarios[len(scenarios)-1]
}

// uploadScenario posts a freshly generated statement. The embedded uuid keeps
// every fingerprint unique so nothing is rejected as a duplicate.
func uploadScenario(lines int) func(*http.Client, string, int, int) (int, error) {
	return func(client *http.Client, baseURL string, workerID, jobID int) (int, error) {
		body := &bytes.Buffer{}
		form := multipart.NewWriter(body)
		part, err := form.CreateFormFile("files", fmt.Sprintf("load-%d-%d.txt", workerID, jobID))
		if err != nil {
			return 0, err
		}
		if _, err := part.Write(statement(lines)); err != nil {
			return 0, err
		}
		if err := form.Close(); err != nil {
			return 0, err
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+"/documents", body)
		if err != nil {
			return 0, err
		}
		req.Header.Set("Content-Type", form.FormDataContentType())
		return send(client, req, nil)
	}
}

func statement(lines int) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "NOMBRE DEL TITULAR CARGA %s\n", randomName())
	fmt.Fprintf(&b, "FECHA ESTADO DE CUENTA %s\n", time.Now().Format("02/01/2006"))
	fmt.Fprintf(&b, "REF %s\n", uuid.NewString())
	for i := 0; i < lines; i++ {
		day := 1 + rand.Intn(28)
		month := 1 + rand.Intn(12)
		amount := 1000 + rand.Intn(90000)
		fmt.Fprintf(&b, "%02d/%02d/24 %s $ %s $ %s\n", day, month, descriptions[rand.Intn(len(descriptions))], thousands(amount), thousands(amount))
	}
	return b.Bytes()
}

func randomName() string {
	names := []string{"ANA", "LUIS", "MARTA", "PEDRO"}
	return names[rand.Intn(len(names))]
}

func thousands(n int) string {
	s := fmt.Sprintf("%d", n)
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	return string(out)
}

func viewScenario(client *http.Client, baseURL string, _, _ int) (int, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/reconciliation", nil)
	if err != nil {
		return 0, err
	}
	return send(client, req, nil)
}

// deltaSaveScenario edits one random row of the working copy and saves it
func deltaSaveScenario(client *http.Client, baseURL string, _, _ int) (int, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/reconciliation", nil)
	if err != nil {
		return 0, err
	}
	var snapshot Snapshot
	if status, err := send(client, req, &snapshot); err != nil {
		return status, err
	}
	if len(snapshot.Rows) == 0 {
		return http.StatusOK, nil
	}

	reconciled := rand.Intn(2) == 0
	category := categories[rand.Intn(len(categories))]
	payload, err := json.Marshal(DeltaRequest{Deltas: map[string]RowDelta{
		fmt.Sprintf("%d", rand.Intn(len(snapshot.Rows))): {Reconciled: &reconciled, ExpenseCategory: &category},
	}})
	if err != nil {
		return 0, err
	}

	req, err = http.NewRequest(http.MethodPost, baseURL+"/reconciliation/deltas", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if status, err := send(client, req, nil); err != nil {
		return status, err
	}

	req, err = http.NewRequest(http.MethodPost, baseURL+"/reconciliation/save", nil)
	if err != nil {
		return 0, err
	}
	return send(client, req, nil)
}

func monthlyScenario(client *http.Client, baseURL string, _, _ int) (int, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/analytics/monthly", nil)
	if err != nil {
		return 0, err
	}
	return send(client, req, nil)
}

func send(client *http.Client, req *http.Request, out any) (int, error) {
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, fmt.Errorf("%s %s: HTTP status code %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
		return resp.StatusCode, nil
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func printResults(stats *TestStats) {
	throughput := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)
		sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f successful requests/s\n", throughput)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-60s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
