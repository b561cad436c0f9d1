//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

type spotSubmission struct {
	Name               string   `json:"name"`
	Location           string   `json:"location"`
	PreferredTransport string   `json:"preferredTransport"`
	OtherTransport     string   `json:"otherTransport,omitempty"`
	PreferredTime      string   `json:"preferredTime"`
	Interests          []string `json:"interests"`
	AdditionalNotes    string   `json:"additionalNotes,omitempty"`
}

// Seeds a handful of Kerala spots through the public API so the map has
// something to show during local development.
func main() {
	apiURL := flag.String("api", "http://localhost:5000", "API base URL")
	flag.Parse()

	spots := []spotSubmission{
		{
			Name:               "Tea House",
			Location:           "Munnar, Kerala",
			PreferredTransport: "car",
			PreferredTime:      "morning",
			Interests:          []string{"April-July"},
		},
		{
			Name:               "Backwater Jetty",
			Location:           "Alleppey, Kerala",
			PreferredTransport: "train",
			PreferredTime:      "afternoon",
			Interests:          []string{"houseboats", "November-February"},
			AdditionalNotes:    "Best at sunset",
		},
		{
			Name:               "Fort Kochi Beach",
			Location:           "Fort Kochi, Kerala",
			PreferredTransport: "others",
			OtherTransport:     "ferry",
			PreferredTime:      "evening",
			Interests:          []string{"chinese fishing nets"},
		},
	}

	client := &http.Client{Timeout: 15 * time.Second}

	for _, spot := range spots {
		body, err := json.Marshal(spot)
		if err != nil {
			log.Fatalf("Failed to marshal spot %q: %v", spot.Name, err)
		}

		resp, err := client.Post(*apiURL+"/api/tourist-info", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("Failed to submit spot %q: %v", spot.Name, err)
		}

		var out map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			log.Printf("Spot %q: cannot decode response: %v", spot.Name, err)
		}
		resp.Body.Close()

		fmt.Printf("%s -> %d %v\n", spot.Name, resp.StatusCode, out["message"])

		// Stay polite to the public Nominatim instance behind the API.
		time.Sleep(1 * time.Second)
	}
}
