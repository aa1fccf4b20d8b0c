// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-import/internal/config"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/internal/utils"
	"github.com/MKhiriev/go-pass-import/models"
)

const (
	kindTag      = "tag"
	kindFolder   = "folder"
	kindPassword = "password"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs an HTTP/REST implementation of
// [VaultAdapter]. It normalises the base URL from cfg.HTTPAddress, applies
// the request timeout and, when cfg.User is set, HTTP basic authentication
// with the application token.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPVaultAdapter(cfg config.Adapter, log *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")
	if cfg.User != "" {
		client.SetBasicAuth(cfg.User, cfg.Token)
	}

	return &httpVaultAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpVaultAdapter) ListTags(ctx context.Context) (map[string]models.Tag, error) {
	tags, err := listRecords[models.Tag](ctx, h.client, kindTag)
	if err != nil {
		return nil, err
	}
	h.logger.Debug().Int("count", len(tags)).Msg("listed vault tags")
	return tags, nil
}

func (h *httpVaultAdapter) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	tag.ID = ""
	tag.Revision = ""
	rev, err := createRecord(ctx, h.client, kindTag, tag)
	if err != nil {
		return models.Tag{}, err
	}

	tag.ID, tag.Revision = rev.ID, rev.Revision
	return tag, nil
}

func (h *httpVaultAdapter) UpdateTag(ctx context.Context, tag models.Tag) error {
	return updateRecord(ctx, h.client, kindTag, tag)
}

func (h *httpVaultAdapter) ListFolders(ctx context.Context) (map[string]models.Folder, error) {
	folders, err := listRecords[models.Folder](ctx, h.client, kindFolder)
	if err != nil {
		return nil, err
	}
	h.logger.Debug().Int("count", len(folders)).Msg("listed vault folders")
	return folders, nil
}

func (h *httpVaultAdapter) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	folder.ID = ""
	folder.Revision = ""
	rev, err := createRecord(ctx, h.client, kindFolder, folder)
	if err != nil {
		return models.Folder{}, err
	}

	folder.ID, folder.Revision = rev.ID, rev.Revision
	return folder, nil
}

func (h *httpVaultAdapter) UpdateFolder(ctx context.Context, folder models.Folder) error {
	return updateRecord(ctx, h.client, kindFolder, folder)
}

func (h *httpVaultAdapter) ListPasswords(ctx context.Context) (map[string]models.Password, error) {
	passwords, err := listRecords[models.Password](ctx, h.client, kindPassword)
	if err != nil {
		return nil, err
	}
	h.logger.Debug().Int("count", len(passwords)).Msg("listed vault passwords")
	return passwords, nil
}

// CreatePassword stores a new password. Share and Editable describe the
// stored record and are never sent.
func (h *httpVaultAdapter) CreatePassword(ctx context.Context, password models.Password) (models.Password, error) {
	password.ID = ""
	password.Revision = ""
	password.Share = nil
	password.Editable = nil
	rev, err := createRecord(ctx, h.client, kindPassword, password)
	if err != nil {
		return models.Password{}, err
	}

	password.ID, password.Revision = rev.ID, rev.Revision
	return password, nil
}

func (h *httpVaultAdapter) UpdatePassword(ctx context.Context, password models.Password) error {
	password.Share = nil
	password.Editable = nil
	return updateRecord(ctx, h.client, kindPassword, password)
}
