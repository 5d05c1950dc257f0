package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Hammers the booking endpoint with concurrent random requests and tallies
// outcomes. Conflicts are expected: two workers racing for the same slot
// must produce exactly one success.

type counters struct {
	total    int64
	success  int64
	conflict int64
	notFound int64
	errors   int64
}

type listEnvelope struct {
	Success bool `json:"success"`
	Data    []struct {
		ID int `json:"id"`
	} `json:"data"`
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "API base URL")
	workers := flag.Int("workers", 8, "concurrent workers")
	duration := flag.Duration("duration", 15*time.Second, "how long to run")
	days := flag.Int("days", 5, "book within the next N days")
	flag.Parse()

	log.SetFlags(log.LstdFlags)

	client := &http.Client{Timeout: 5 * time.Second}

	professionals, err := fetchIDs(client, *baseURL+"/api/professionals")
	if err != nil {
		log.Fatalf("fetch professionals: %v", err)
	}
	patients, err := fetchIDs(client, *baseURL+"/api/patients")
	if err != nil {
		log.Fatalf("fetch patients: %v", err)
	}
	if len(professionals) == 0 || len(patients) == 0 {
		log.Fatal("no professionals or patients available, seed the store first")
	}

	slots := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"}
	types := []string{"Cleaning", "Evaluation", "Extraction", "Root Canal", "Whitening"}

	log.Printf("simulating: workers=%d duration=%s professionals=%d patients=%d",
		*workers, *duration, len(professionals), len(patients))

	var c counters
	deadline := time.Now().Add(*duration)
	var wg sync.WaitGroup

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))

			for time.Now().Before(deadline) {
				body, _ := json.Marshal(map[string]any{
					"patientId":      patients[rng.Intn(len(patients))],
					"professionalId": professionals[rng.Intn(len(professionals))],
					"date":           time.Now().AddDate(0, 0, 1+rng.Intn(*days)).Format("2006-01-02"),
					"time":           slots[rng.Intn(len(slots))],
					"type":           types[rng.Intn(len(types))],
					"notes":          gofakeit.Sentence(6),
				})

				resp, err := client.Post(*baseURL+"/api/appointments/schedule", "application/json", bytes.NewReader(body))
				atomic.AddInt64(&c.total, 1)
				if err != nil {
					atomic.AddInt64(&c.errors, 1)
					continue
				}
				switch resp.StatusCode {
				case http.StatusCreated:
					atomic.AddInt64(&c.success, 1)
				case http.StatusBadRequest:
					atomic.AddInt64(&c.conflict, 1)
				case http.StatusNotFound:
					atomic.AddInt64(&c.notFound, 1)
				default:
					atomic.AddInt64(&c.errors, 1)
				}
				resp.Body.Close()
			}
		}(time.Now().UnixNano() + int64(w))
	}

	wg.Wait()

	fmt.Printf("total=%d success=%d conflict=%d not_found=%d errors=%d\n",
		c.total, c.success, c.conflict, c.notFound, c.errors)
}

func fetchIDs(client *http.Client, url string) ([]int, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	var env listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(env.Data))
	for _, item := range env.Data {
		ids = append(ids, item.ID)
	}
	return ids, nil
}
