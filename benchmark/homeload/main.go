package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
)

var maxUsers int = 50
var readingsPerUser int = 20
var baseURL string = "http://127.0.0.1:1080"

// the account must exist (see APP_SEED_USERS_FILE); start the server with
// APP_LOGIN_RATE=0 and APP_LOGIN_BURST=0 or the parallel logins get throttled
var username string = "bench"
var password string = "bench"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

type temperature struct {
	ID    uint    `json:"id"`
	Value float64 `json:"value"`
}

func main() {
	if v := os.Getenv("HOMELOAD_BASE_URL"); v != "" {
		baseURL = v
	}
	if v := os.Getenv("HOMELOAD_USERNAME"); v != "" {
		username = v
	}
	if v := os.Getenv("HOMELOAD_PASSWORD"); v != "" {
		password = v
	}

	client := resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second)

	resp, err := client.R().Get("/healthz")
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Fatal("HTTP server not available")
	}
	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	tokens := make([]string, maxUsers)
	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxUsers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens[i] = login(client)
			fmt.Printf("\rlogged in session %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rlogged in %v sessions: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers)/usedTime.Seconds(),
	)

	var failures atomic.Int64
	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxUsers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			failures.Add(doActions(client, tokens[i]))
			fmt.Printf("\rfinished actions for session %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	actions := maxUsers * readingsPerUser * 3
	fmt.Printf(
		"\n\rdid %v actions (%v failed): used time=%v seconds, throughput=%v action/second\n",
		actions, failures.Load(), usedTime.Seconds(), float64(actions)/usedTime.Seconds(),
	)
}

func login(client *resty.Client) string {
	resp, err := client.R().
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/api/sessions")
	if err != nil {
		log.Fatal("login failed:", err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Fatalf("login rejected: %v %s", resp.StatusCode(), resp.String())
	}
	return resp.Header().Get("X-Session-Token")
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

// doActions creates, reads back and deletes readingsPerUser temperatures and
// returns how many calls did not answer 200.
func doActions(client *resty.Client, token string) int64 {
	var failed int64

	for range readingsPerUser {
		var created temperature
		resp, err := client.R().
			SetAuthToken(token).
			SetBody(map[string]any{"value": rndFloat64(-10.0, 40.0, 2)}).
			SetResult(&created).
			Post("/api/temperatures")
		if err != nil || resp.StatusCode() != http.StatusOK {
			fmt.Printf("\nerror creating temperature: %v %v\n", err, resp)
			failed += 3
			continue
		}

		resp, err = client.R().SetAuthToken(token).Get("/api/temperatures/last")
		if err != nil || resp.StatusCode() != http.StatusOK {
			failed++
		}

		resp, err = client.R().SetAuthToken(token).Delete(fmt.Sprintf("/api/temperatures/%d", created.ID))
		if err != nil || resp.StatusCode() != http.StatusOK {
			failed++
		}
	}
	return failed
}
