package webserver

import (
	"context"
	"drone-delivery-service/internal/domain"
	"fmt"
	"strings"
)

type wordsResponse struct {
	Words       string `json:"words"`
	Coordinates *struct {
		Lng float64 `json:"lng"`
		Lat float64 `json:"lat"`
	} `json:"coordinates"`
}

// wordsPath maps "first.second.third" to the details document path.
func wordsPath(code string) (string, error) {
	parts := strings.Split(code, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("location code %q must have three dot-separated words", code)
	}
	for _, p := range parts {
		if p == "" {
			return "", fmt.Errorf("location code %q has an empty word", code)
		}
	}
	return fmt.Sprintf("/words/%s/%s/%s/details.json", parts[0], parts[1], parts[2]), nil
}

// fetchWords resolves one location code via its details document.
func (c *Client) fetchWords(ctx context.Context, code string) (domain.Position, error) {
	path, err := wordsPath(code)
	if err != nil {
		return domain.Position{}, err
	}

	var decoded wordsResponse
	if err := c.getJSON(ctx, path, &decoded); err != nil {
		return domain.Position{}, err
	}

	if decoded.Coordinates == nil {
		return domain.Position{}, fmt.Errorf("no coordinates in details for %q", code)
	}

	p := domain.NewPosition(decoded.Coordinates.Lng, decoded.Coordinates.Lat)
	if !domain.Finite(p) {
		return domain.Position{}, fmt.Errorf("invalid coordinates for %q", code)
	}

	return p, nil
}
