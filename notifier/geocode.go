package notifier

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/Biomedionics123/Biomedionics/configs"
)

type nominatimResponse struct {
	Address struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Postcode    string `json:"postcode"`
		Country     string `json:"country"`
	} `json:"address"`
}

// ReverseGeocode looks latitude/longitude up against Nominatim and returns a
// single display address. Best effort, one attempt, no retry.
func ReverseGeocode(lat, lon string) (string, error) {
	cfg := config.LoadGeocodingConfig()

	endpoint := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		cfg.BaseURL, url.QueryEscape(lat), url.QueryEscape(lon))

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Reverse geocoding failed for %s,%s: %v", lat, lon, err)
		return "", fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Geocoding API returned status %d for %s,%s", resp.StatusCode, lat, lon)
		return "", fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var data nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	addr := data.Address
	city := addr.City
	if city == "" {
		city = addr.Town
	}
	if city == "" {
		city = addr.Village
	}

	var parts []string
	for _, p := range []string{addr.Road, addr.HouseNumber, city, addr.State, addr.Postcode, addr.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no address details found")
	}
	return strings.Join(parts, ", "), nil
}

// GET /geocode/reverse?lat=..&lon=..
func ReverseGeocodeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, lon := c.Query("lat"), c.Query("lon")
		if lat == "" || lon == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
			return
		}

		address, err := ReverseGeocode(lat, lon)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not retrieve address. Please enter it manually."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"address": address})
	}
}
