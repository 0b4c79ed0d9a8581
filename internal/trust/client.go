// Package trust is a client for the Academies API trust directory.
//
// Lookups return (nil, nil) when the directory does not know the trust and an
// error for any other failure, which is the contract trustcache.Directory
// expects.
package trust

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/dfe-complete/complete-api/internal/domain"
)

const tracerName = "github.com/dfe-complete/complete-api/internal/trust"

// errNotFound is internal; callers see (nil, nil).
var errNotFound = errors.New("trust not found")

// Client calls the Academies API. The zero value is not usable; use NewClient.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	tracer  trace.Tracer
}

// NewClient returns a Client for the API rooted at baseURL.
// apiKey is sent in the ApiKey header when non-empty.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		tracer:  otel.Tracer(tracerName),
	}
}

// trustDto is the wire shape of a trust. The API sends UKPRN as a string.
type trustDto struct {
	Name                 string `json:"name"`
	Ukprn                string `json:"ukprn"`
	ReferenceNumber      string `json:"referenceNumber"`
	CompaniesHouseNumber string `json:"companiesHouseNumber"`
	Address              struct {
		Street     string `json:"street"`
		Locality   string `json:"locality"`
		Additional string `json:"additional"`
		Town       string `json:"town"`
		County     string `json:"county"`
		Postcode   string `json:"postcode"`
	} `json:"address"`
}

func (d trustDto) toDomain() *domain.Trust {
	ukprn, _ := strconv.Atoi(strings.TrimSpace(d.Ukprn))
	return &domain.Trust{
		Ukprn:                domain.Ukprn(ukprn),
		ReferenceNumber:      d.ReferenceNumber,
		Name:                 d.Name,
		CompaniesHouseNumber: d.CompaniesHouseNumber,
		Address: domain.TrustAddress{
			Street:     d.Address.Street,
			Locality:   d.Address.Locality,
			Additional: d.Address.Additional,
			Town:       d.Address.Town,
			County:     d.Address.County,
			Postcode:   d.Address.Postcode,
		},
	}
}

// GetByUkprn fetches one trust by UKPRN.
func (c *Client) GetByUkprn(ctx context.Context, ukprn domain.Ukprn) (*domain.Trust, error) {
	ctx, span := c.tracer.Start(ctx, "trust.GetByUkprn", trace.WithAttributes(
		attribute.Int("trust.ukprn", int(ukprn)),
	))
	defer span.End()

	var dto trustDto
	err := c.get(ctx, "/v4/trust/"+url.PathEscape(ukprn.String()), nil, &dto)
	return c.single(span, "trust.Client.GetByUkprn", dto, err)
}

// GetByTrn fetches one trust by its trust reference number.
func (c *Client) GetByTrn(ctx context.Context, trn string) (*domain.Trust, error) {
	ctx, span := c.tracer.Start(ctx, "trust.GetByTrn", trace.WithAttributes(
		attribute.String("trust.reference_number", trn),
	))
	defer span.End()

	var dto trustDto
	err := c.get(ctx, "/v4/trust/trustReferenceNumber/"+url.PathEscape(trn), nil, &dto)
	return c.single(span, "trust.Client.GetByTrn", dto, err)
}

// GetByUkprns fetches every listed trust in one call. Unknown UKPRNs are
// simply absent from the result.
func (c *Client) GetByUkprns(ctx context.Context, ukprns []domain.Ukprn) ([]*domain.Trust, error) {
	ctx, span := c.tracer.Start(ctx, "trust.GetByUkprns", trace.WithAttributes(
		attribute.Int("trust.count", len(ukprns)),
	))
	defer span.End()

	if len(ukprns) == 0 {
		return nil, nil
	}

	q := url.Values{}
	for _, u := range ukprns {
		q.Add("ukprns", u.String())
	}

	var dtos []trustDto
	err := c.get(ctx, "/v4/trusts/bulk", q, &dtos)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("trust.Client.GetByUkprns: %w", err)
	}

	out := make([]*domain.Trust, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (c *Client) single(span trace.Span, op string, dto trustDto, err error) (*domain.Trust, error) {
	if errors.Is(err, errNotFound) {
		span.SetAttributes(attribute.Bool("trust.found", false))
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	span.SetAttributes(attribute.Bool("trust.found", true))
	return dto.toDomain(), nil
}

// get issues a GET and decodes a 2xx JSON body into out.
// 404 maps to errNotFound; any other non-2xx status is an error.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("ApiKey", c.apiKey)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
