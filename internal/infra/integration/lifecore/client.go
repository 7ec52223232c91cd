package lifecore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xavierca1/insura-microsite/internal/entity"
)

// Client talks to the lifecore insurance-administration API. Every request
// carries the API key and a session-scoped idempotency key generated once
// per client and reused for its whole lifetime.
type Client struct {
	baseURL string
	apiKey  string
	idemKey string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL, apiKey string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		idemKey: uuid.New().String(),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     logger,
	}
}

// IdempotencyKey exposes the session key, mostly for diagnostics and tests.
func (c *Client) IdempotencyKey() string {
	return c.idemKey
}

func (c *Client) Products(ctx context.Context, slug, search string) ([]entity.ProductListItem, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	data, err := c.get(ctx, fmt.Sprintf("/microsite/%s/products", slug), query)
	if err != nil {
		return nil, err
	}
	return MapProductList(data), nil
}

func (c *Client) ProductDetail(ctx context.Context, slug, code string) (*entity.ProductDetail, error) {
	data, err := c.get(ctx, fmt.Sprintf("/microsite/%s/products/%s", slug, code), nil)
	if err != nil {
		return nil, err
	}
	return MapProductDetail(data), nil
}

func (c *Client) ComputePremium(ctx context.Context, slug string, input ComputePremiumInput) (entity.Premium, error) {
	data, err := c.post(ctx, fmt.Sprintf("/microsite/%s/compute-premium", slug), input)
	if err != nil {
		return entity.Premium{}, err
	}
	return MapComputePremium(data), nil
}

func (c *Client) BankBranches(ctx context.Context, slug string) ([]entity.Option, error) {
	data, err := c.get(ctx, fmt.Sprintf("/microsite/%s/bank-branches", slug), nil)
	if err != nil {
		return nil, err
	}
	return MapBranchOptions(data), nil
}

func (c *Client) LookupZip(ctx context.Context, postalCode string) (entity.ZipLookup, error) {
	query := url.Values{}
	query.Set("q", postalCode)
	data, err := c.get(ctx, "/microsite/address-by-zip", query)
	if err != nil {
		return entity.ZipLookup{}, err
	}
	return MapZipLookup(data), nil
}

func (c *Client) Provinces(ctx context.Context) ([]entity.Option, error) {
	data, err := c.get(ctx, "/microsite/province", nil)
	if err != nil {
		return nil, err
	}
	return MapProvinceOptions(data), nil
}

func (c *Client) Cities(ctx context.Context, province string) ([]entity.Option, error) {
	data, err := c.get(ctx, fmt.Sprintf("/microsite/province/%s/city", province), nil)
	if err != nil {
		return nil, err
	}
	return MapCityOptions(data), nil
}

func (c *Client) Districts(ctx context.Context, province, city string) ([]entity.Option, error) {
	data, err := c.get(ctx, fmt.Sprintf("/microsite/province/%s/city/%s/district", province, city), nil)
	if err != nil {
		return nil, err
	}
	return MapDistrictOptions(data), nil
}

func (c *Client) Subdistricts(ctx context.Context, province, city, district string) ([]entity.Option, error) {
	data, err := c.get(ctx, fmt.Sprintf("/microsite/province/%s/city/%s/district/%s/subdistrict", province, city, district), nil)
	if err != nil {
		return nil, err
	}
	return MapSubdistrictOptions(data), nil
}

func (c *Client) Questions(ctx context.Context, slug, code, questionType string) ([]entity.QuestionGroup, error) {
	query := url.Values{}
	if questionType != "" {
		query.Set("type", questionType)
	}
	data, err := c.get(ctx, fmt.Sprintf("/microsite/%s/product/%s/question", slug, code), query)
	if err != nil {
		return nil, err
	}
	return MapHealthQuestionGroups(data), nil
}

func (c *Client) GenerateRiplay(ctx context.Context, slug, code string, input GenerateRiplayInput) (entity.Document, error) {
	data, err := c.post(ctx, fmt.Sprintf("/microsite/%s/product/%s/generate-riplay", slug, code), input)
	if err != nil {
		return entity.Document{}, err
	}
	return MapDocumentResponse(data), nil
}

// CheckAvailability returns the eligibility verdict. A negative decision is
// a normal result; only transport problems surface as errors.
func (c *Client) CheckAvailability(ctx context.Context, input CheckAvailabilityInput) (entity.Eligibility, error) {
	data, err := c.post(ctx, "/check-availability", input)
	if err != nil {
		return entity.Eligibility{}, err
	}
	return MapEligibility(data), nil
}

func (c *Client) CreateSPAJ(ctx context.Context) (entity.SPAJ, error) {
	data, err := c.get(ctx, "/proposal/create-spaj", nil)
	if err != nil {
		return entity.SPAJ{}, err
	}
	return MapCreateSPAJResponse(data), nil
}

func (c *Client) SubmitProposal(ctx context.Context, input SubmitProposalInput) (any, error) {
	data, err := c.post(ctx, "/proposal/submit", input)
	if err != nil {
		return nil, err
	}
	return MapUnknownData(data, map[string]any{}), nil
}

func (c *Client) ProposalStatus(ctx context.Context, spajNumber string) (entity.ProposalStatus, error) {
	data, err := c.get(ctx, fmt.Sprintf("/proposal/%s/status", spajNumber), nil)
	if err != nil {
		return entity.ProposalStatus{}, err
	}
	return MapProposalStatus(data), nil
}

func (c *Client) PaymentInstructions(ctx context.Context, spajNumber string) (entity.Payment, error) {
	data, err := c.get(ctx, fmt.Sprintf("/proposal/%s/payment", spajNumber), nil)
	if err != nil {
		return entity.Payment{}, err
	}
	return MapPaymentResponse(data), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// do performs the request and unwraps the envelope. Transport failures
// (network errors, non-2xx) propagate unchanged to the caller; shape
// problems inside data are the mappers' job, not an error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s body: %w", path, err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lifecore request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		c.log.Error().
			Str("path", path).
			Int("status", resp.StatusCode).
			Bytes("body", raw).
			Msg("lifecore rejected request")
		return nil, fmt.Errorf("lifecore %s %s: status %d", method, path, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode lifecore response: %w", err)
	}
	return env.Data, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("API-KEY", c.apiKey)
	req.Header.Set("Idempotency-Key", c.idemKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "InsuraMicrosite/1.0")
}
