package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"giftstore/internal/domain"
)

// Client fetches the daily shop rotation from a fortniteapi.io-shaped
// endpoint. Fetch failures are returned as errors; an empty rotation is a
// valid empty slice, never conflated with a failed fetch.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *log.Logger
}

// NewClient builds a Client for the given API base URL and key.
func NewClient(baseURL, apiKey string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

type rawShopResponse struct {
	Result bool          `json:"result"`
	Error  string        `json:"error"`
	Shop   []rawShopItem `json:"shop"`
}

// rawShopItem mirrors the upstream payload. Every field is optional;
// missing values degrade to zero values in the mapped item.
type rawShopItem struct {
	MainID             string `json:"mainId"`
	OfferID            string `json:"offerId"`
	DisplayName        string `json:"displayName"`
	DisplayDescription string `json:"displayDescription"`
	Price              struct {
		RegularPrice int64 `json:"regularPrice"`
		FinalPrice   int64 `json:"finalPrice"`
		FloorPrice   int64 `json:"floorPrice"`
	} `json:"price"`
	Rarity struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"rarity"`
	Categories    []string `json:"categories"`
	DisplayAssets []struct {
		URL            string `json:"url"`
		FullBackground string `json:"full_background"`
	} `json:"displayAssets"`
	Images struct {
		Icon           string `json:"icon"`
		Featured       string `json:"featured"`
		FullBackground string `json:"full_background"`
	} `json:"images"`
}

// FetchDailyShop retrieves and maps the current shop rotation.
func (c *Client) FetchDailyShop(ctx context.Context) ([]domain.ShopItem, error) {
	url := c.baseURL + "/v2/shop?lang=en"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build shop request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch daily shop: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch daily shop: unexpected status %d", resp.StatusCode)
	}

	var payload rawShopResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode shop response: %w", err)
	}
	if !payload.Result {
		if payload.Error != "" {
			return nil, fmt.Errorf("shop api error: %s", payload.Error)
		}
		return nil, fmt.Errorf("shop api reported failure")
	}

	items := make([]domain.ShopItem, 0, len(payload.Shop))
	for _, raw := range payload.Shop {
		items = append(items, mapShopItem(raw))
	}
	c.logger.Printf("shop client: fetched rotation count=%d", len(items))
	return items, nil
}

func mapShopItem(raw rawShopItem) domain.ShopItem {
	id := raw.MainID
	if id == "" {
		id = raw.OfferID
	}

	var images []string
	for _, asset := range raw.DisplayAssets {
		if asset.FullBackground != "" {
			images = append(images, asset.FullBackground)
		} else if asset.URL != "" {
			images = append(images, asset.URL)
		}
	}
	if len(images) == 0 {
		for _, u := range []string{raw.Images.FullBackground, raw.Images.Featured, raw.Images.Icon} {
			if u != "" {
				images = append(images, u)
				break
			}
		}
	}

	return domain.ShopItem{
		ID:          id,
		DisplayName: raw.DisplayName,
		Description: raw.DisplayDescription,
		Price: domain.ShopPrice{
			Regular: raw.Price.RegularPrice,
			Final:   raw.Price.FinalPrice,
			Floor:   raw.Price.FloorPrice,
		},
		Rarity: domain.ShopRarity{
			ID:   raw.Rarity.ID,
			Name: raw.Rarity.Name,
		},
		Categories: raw.Categories,
		Images:     images,
	}
}
