package providers

import (
	"context"
	"net/http"
	"net/url"
)

// UbisoftProvider serves the FPS category (Rainbow Six style stats), mapped onto the
// standardized FPS keys (current_rank, kills, deaths, kd_ratio, wins, losses).
type UbisoftProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewUbisoftProvider(baseURL, apiKey string) *UbisoftProvider {
	return &UbisoftProvider{baseURL: baseURL, apiKey: apiKey, client: newHTTPClient()}
}

func (p *UbisoftProvider) Fetch(ctx context.Context, handle string) (map[string]interface{}, error) {
	raw, err := fetchJSON(ctx, p.client,
		p.baseURL+"/players/"+url.PathEscape(handle)+"/stats",
		map[string]string{"Authorization": "Bearer " + p.apiKey})
	if err != nil {
		return nil, err
	}

	stats := map[string]interface{}{}
	copyField(stats, raw, "player_level", "level")
	copyField(stats, raw, "current_rank", "rank")
	copyField(stats, raw, "kills", "kills")
	copyField(stats, raw, "deaths", "deaths")
	copyField(stats, raw, "wins", "wins")
	copyField(stats, raw, "losses", "losses")

	kills, kok := number(raw["kills"])
	deaths, dok := number(raw["deaths"])
	if kok && dok && deaths > 0 {
		stats["kd_ratio"] = kills / deaths
	}
	return stats, nil
}
