package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-import/internal/utils"
)

// record is implemented by every vault entity kind.
type record interface {
	RecordID() string
}

// revisionResponse is returned by create and update endpoints.
type revisionResponse struct {
	ID       string `json:"id"`
	Revision string `json:"revision"`
}

// listRequest selects the detail level of list endpoints.
type listRequest struct {
	Details string `json:"details,omitempty"`
}

func listRecords[T record](ctx context.Context, client *utils.HTTPClient, kind string) (map[string]T, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(listRequest{Details: "model"}).
		Post(endpoint(kind, "list"))
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []T
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode %s list response: %w", kind, err)
	}

	out := make(map[string]T, len(items))
	for _, item := range items {
		out[item.RecordID()] = item
	}
	return out, nil
}

func createRecord(ctx context.Context, client *utils.HTTPClient, kind string, body any) (revisionResponse, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(endpoint(kind, "create"))
	if err != nil {
		return revisionResponse{}, fmt.Errorf("create %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return revisionResponse{}, err
	}

	var rev revisionResponse
	if err = json.Unmarshal(resp.Body(), &rev); err != nil {
		return revisionResponse{}, fmt.Errorf("decode %s create response: %w", kind, err)
	}
	if rev.ID == "" {
		return revisionResponse{}, fmt.Errorf("create %s: vault returned no id", kind)
	}
	return rev, nil
}

func updateRecord(ctx context.Context, client *utils.HTTPClient, kind string, body any) error {
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Patch(endpoint(kind, "update"))
	if err != nil {
		return fmt.Errorf("update %s request: %w", kind, err)
	}

	return mapHTTPError(resp)
}

func endpoint(kind, action string) string {
	return "/api/1.0/" + kind + "/" + action
}
