// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/comicindex/internal/api"
	"github.com/taibuivan/comicindex/internal/core/catalog"
	"github.com/taibuivan/comicindex/internal/core/cloud"
	"github.com/taibuivan/comicindex/internal/core/search"
	"github.com/taibuivan/comicindex/internal/platform/config"
	"github.com/taibuivan/comicindex/internal/platform/constants"
)

// completerOnly serves autocomplete; every other storage call is unused here.
type completerOnly struct {
	search.Repository
}

func (completerOnly) CompleteTitles(context.Context, string, int) ([]search.Completion, error) {
	return []search.Completion{{Kind: search.CompletionTitle, Label: "Fantomen", Slug: "fantomen"}}, nil
}

func (completerOnly) CompleteCreators(context.Context, string, int) ([]search.Completion, error) {
	return nil, nil
}

func (completerOnly) CompleteRefKeys(context.Context, string, int) ([]search.Completion, error) {
	return nil, nil
}

type emptyRankings struct{}

func (emptyRankings) RankTitles(context.Context, int) ([]cloud.Counted[catalog.Title], error) {
	return nil, nil
}

func (emptyRankings) RankCreators(context.Context, int) ([]cloud.Counted[catalog.Creator], error) {
	return nil, nil
}

func (emptyRankings) RankKeywords(context.Context, int) ([]cloud.Counted[catalog.RefKey], error) {
	return nil, nil
}

func newTestServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	liveness, readiness := api.NewHealthHandlers(deps, logger)
	cfg := &config.Config{ServerPort: "0", Environment: "test", CloudSize: 50}

	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Search:    search.NewHandler(search.NewService(completerOnly{}, logger)),
		Cloud:     cloud.NewHandler(cloud.NewService(emptyRankings{}, nil, 0, logger), cfg.CloudSize),
	})
	return server.Handler()
}

func get(handler http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

/*
TestServer_Routes mounts every handler under the versioned prefix.
*/
func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	tests := []struct {
		target string
		status int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/api/v1/search/autocomplete?q=fan", http.StatusOK},
		{"/api/v1/clouds/titles", http.StatusOK},
		{"/api/v1/clouds/keywords?n=0", http.StatusBadRequest},
		{"/search/autocomplete?q=fan", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(handler, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(constants.HeaderXRequestID))
		})
	}
}

/*
TestServer_Autocomplete returns the suggestion envelope.
*/
func TestServer_Autocomplete(t *testing.T) {
	rec := get(newTestServer(t, api.HealthDependencies{}), "/api/v1/search/autocomplete?q=fan")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"kind":"t","label":"Fantomen","slug":"fantomen"}]}`, rec.Body.String())
}

/*
TestReadiness_Degraded answers 503 when a dependency fails.
*/
func TestReadiness_Degraded(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("redis: connection refused") },
	})

	rec := get(handler, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Data struct {
			Status string `json:"status"`
			Checks []struct {
				Name string `json:"name"`
				OK   bool   `json:"ok"`
			} `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "degraded", body.Data.Status)
	require.Len(t, body.Data.Checks, 2)
	assert.True(t, body.Data.Checks[0].OK)
	assert.False(t, body.Data.Checks[1].OK)
}
