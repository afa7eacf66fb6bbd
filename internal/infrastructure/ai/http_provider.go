package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kjanat/poo-tracker/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// HTTPProvider implements Provider against an opaque HTTP nutrition-estimation
// model endpoint. The wire format is a small JSON request/response envelope;
// a model swap only needs a new baseURL and apiKey, not a new Provider.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPProvider builds an HTTPProvider. An empty apiKey is valid: the
// adapter degrades to the fallback result on every call rather than erroring,
// same as an unreachable endpoint would.
func NewHTTPProvider(baseURL, apiKey string, logger *zap.Logger) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
		logger: logger,
	}
}

type analyzeRequest struct {
	ImageHandle  string `json:"image_handle,omitempty"`
	Description  string `json:"description,omitempty"`
	LocationKind string `json:"location_kind,omitempty"`
	ClockBucket  string `json:"clock_bucket,omitempty"`
}

type ingredientWire struct {
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	Calories      float64 `json:"calories"`
	ProteinG      float64 `json:"protein_g"`
	FatG          float64 `json:"fat_g"`
	SaturatedFatG float64 `json:"saturated_fat_g"`
	CarbsG        float64 `json:"carbs_g"`
	FiberG        float64 `json:"fiber_g"`
	SugarG        float64 `json:"sugar_g"`
	SodiumMg      float64 `json:"sodium_mg"`
}

type analyzeResponse struct {
	Confidence  float64          `json:"confidence"`
	Ingredients []ingredientWire `json:"ingredients"`
}

func (c *HTTPProvider) Analyze(ctx context.Context, req Request) (*Result, error) {
	if c.apiKey == "" {
		return nil, &Error{Kind: FailureTransport, Err: fmt.Errorf("no API key configured")}
	}

	body, err := json.Marshal(analyzeRequest{
		ImageHandle:  req.ImageHandle,
		Description:  req.Description,
		LocationKind: req.LocationKind,
		ClockBucket:  req.ClockBucket,
	})
	if err != nil {
		return nil, &Error{Kind: FailureParse, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: FailureTransport, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &Error{Kind: FailureTimeout, Err: err}
		}
		return nil, &Error{Kind: FailureTransport, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: FailureTransport, Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &Error{Kind: FailureRateLimited, Err: fmt.Errorf("adapter returned 429"), RawResponse: string(respBody)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: FailureTransport, Err: fmt.Errorf("adapter returned status %d", resp.StatusCode), RawResponse: string(respBody)}
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		c.logger.Warn("adapter response failed to parse", zap.Error(err))
		return nil, &Error{Kind: FailureParse, Err: err, RawResponse: string(respBody)}
	}

	return toResult(parsed, string(respBody)), nil
}

func toResult(parsed analyzeResponse, rawResponse string) *Result {
	result := &Result{Confidence: parsed.Confidence, RawResponse: rawResponse}

	var totalCalories, totalProtein, totalFat, totalSatFat, totalCarbs, totalFiber, totalSugar, totalSodium float64
	for _, ing := range parsed.Ingredients {
		totalCalories += ing.Calories
		totalProtein += ing.ProteinG
		totalFat += ing.FatG
		totalSatFat += ing.SaturatedFatG
		totalCarbs += ing.CarbsG
		totalFiber += ing.FiberG
		totalSugar += ing.SugarG
		totalSodium += ing.SodiumMg

		result.Ingredients = append(result.Ingredients, IngredientEstimate{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Nutrition: shared.NutritionFields{
				Calories:      shared.Float64Ptr(ing.Calories),
				ProteinG:      shared.Float64Ptr(ing.ProteinG),
				FatG:          shared.Float64Ptr(ing.FatG),
				SaturatedFatG: shared.Float64Ptr(ing.SaturatedFatG),
				CarbsG:        shared.Float64Ptr(ing.CarbsG),
				FiberG:        shared.Float64Ptr(ing.FiberG),
				SugarG:        shared.Float64Ptr(ing.SugarG),
				SodiumMg:      shared.Float64Ptr(ing.SodiumMg),
			},
		})
	}

	result.Nutrition = shared.NutritionFields{
		Calories:      shared.Float64Ptr(totalCalories),
		ProteinG:      shared.Float64Ptr(totalProtein),
		FatG:          shared.Float64Ptr(totalFat),
		SaturatedFatG: shared.Float64Ptr(totalSatFat),
		CarbsG:        shared.Float64Ptr(totalCarbs),
		FiberG:        shared.Float64Ptr(totalFiber),
		SugarG:        shared.Float64Ptr(totalSugar),
		SodiumMg:      shared.Float64Ptr(totalSodium),
	}
	return result
}
