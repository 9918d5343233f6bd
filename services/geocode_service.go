package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	config "github.com/chalkroute/teacher_match/configs"
)

type geocodeResponse struct {
	Results []struct {
		Region string `json:"region"`
	} `json:"results"`
}

var (
	regionCache     = make(map[string]string)
	regionCacheMu   sync.RWMutex
	geocodeDisabled bool
)

// ResolveRegion maps a free-text location onto a coarse region (county or
// metro area) used for partial location credit when the raw strings differ.
// Returns "" when no geographic signal can be obtained; the scorer treats
// that as "no signal", never as an error.
func ResolveRegion(location string) string {
	if location == "" || geocodeDisabled {
		return ""
	}

	regionCacheMu.RLock()
	if region, ok := regionCache[location]; ok {
		regionCacheMu.RUnlock()
		return region
	}
	regionCacheMu.RUnlock()

	apiKey := config.Config("GEOCODE_API_KEY")
	if apiKey == "" {
		geocodeDisabled = true
		log.Println("⚠️ Geocode API key not configured, location scoring falls back to exact string match")
		return ""
	}

	endpoint := fmt.Sprintf("https://api.geocode.earth/v1/search?api_key=%s&text=%s",
		apiKey, url.QueryEscape(location))

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(endpoint)
	if err != nil {
		log.Printf("Geocode lookup failed for %q: %v", location, err)
		return ""
	}
	defer resp.Body.Close()

	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("Geocode response parse failed for %q: %v", location, err)
		return ""
	}

	region := ""
	if len(data.Results) > 0 {
		region = data.Results[0].Region
	}

	regionCacheMu.Lock()
	regionCache[location] = region
	regionCacheMu.Unlock()

	return region
}
