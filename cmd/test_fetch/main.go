package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"notary-profile/internal/adapter/repository"
	"notary-profile/internal/usecase"
	"notary-profile/pkg/directory"
	"notary-profile/pkg/infrastructure"
)

// Manual harness: a mock directory API, one fetch cycle through the real
// client and processor, then HTML and PDF output with the real renderer.

const mockAddr = "127.0.0.1:8001"

func startMockDirectory(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/directory/getUserDetails", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req map[string]interface{}
		_ = json.Unmarshal(body, &req)
		username, _ := req["username"].(string)

		switch username {
		case "":
			w.WriteHeader(http.StatusBadRequest)
			return
		case "unavailable":
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		case "nobody":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"userDirectory":null}`))
			return
		}

		record := map[string]interface{}{
			"userDirectory": map[string]interface{}{
				"userId": map[string]interface{}{
					"fullName":    "Test Notary Agent",
					"email":       "agent@example.com",
					"phoneNumber": "415 555-0100",
				},
				"companyName":      "Bay Signings",
				"businessSince":    "2006-01-17",
				"billingAddress":   map[string]interface{}{"address1": "1 Market St", "city": "San Francisco", "state": "CA", "zip": "94105"},
				"commisionDetails": map[string]interface{}{"commissionNumber": "1234567", "commissionExpiration": 1770163200000},
				"fullServices": []interface{}{
					map[string]interface{}{"name": "Single loan refi w/edocs", "cost": "125.00"},
					map[string]interface{}{"name": "Travel", "cost": "call"},
				},
				"spokenLanguages": []interface{}{"English", map[string]interface{}{"name": "Spanish"}},
				"websites":        []interface{}{"https://www.baysignings.example.com"},
				"customFields":    map[string]interface{}{"preferredTitleCompany": "Any"},
				"capabilities":    map[string]interface{}{"email": true, "fax": false, "ron capable": true},
				"availability":    map[string]interface{}{"monday": true, "tuesday": true, "am": true},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(record)
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("mock directory server failed: %v", err)
		}
	}()
	return srv
}

func main() {
	username := "Testing"
	if len(os.Args) > 1 {
		username = os.Args[1]
	}

	srv := startMockDirectory(mockAddr)
	defer srv.Shutdown(context.Background())
	time.Sleep(100 * time.Millisecond)

	client := directory.NewClient("http://" + mockAddr + "/directory/getUserDetails")
	processor := usecase.NewProcessor(client, repository.NewStateRepo(), username, usecase.WithSampleOnEmpty(true))

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	state, err := processor.Refresh(ctx)
	if err != nil {
		fmt.Printf("Refresh failed: %v\n", err)
		return
	}
	fmt.Printf("state=%s seq=%d message=%q\n", state.Status, state.Seq, state.Message)
	if state.Profile == nil {
		return
	}

	outDir := filepath.Join("profile-data", "generated")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	exporter := usecase.NewExporter(infrastructure.NewChromedpRenderer(os.Getenv("CHROME_PATH")), nil)
	for _, format := range []string{usecase.FormatJSON, usecase.FormatHTML, usecase.FormatPDF} {
		b, err := exporter.Export(ctx, state, format)
		if err != nil {
			fmt.Printf("%s export failed: %v\n", format, err)
			continue
		}
		path := filepath.Join(outDir, "profile."+format)
		if err := os.WriteFile(path, b, 0o644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(b))
	}
}
