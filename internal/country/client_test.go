package country

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchCountries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/all" {
			t.Errorf("Expected path /v2/all, got %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "name,region,area", r.URL.Query().Get("fields"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Peru","region":"Americas","area":1285216},
			{"name":"Antarctica","region":"Polar"},
			{"name":"Lithuania","region":"Europe","area":65300.5,"independent":false}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/v2/", time.Second)
	client.HTTPClient = server.Client()

	records, err := client.FetchCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Peru", records[0].Name)
	assert.Equal(t, "Americas", records[0].Region)
	require.NotNil(t, records[0].Area)
	assert.InDelta(t, 1285216.0, *records[0].Area, 0.001)

	assert.Nil(t, records[1].Area)
	assert.False(t, records[1].HasArea())

	assert.InDelta(t, 65300.5, records[2].AreaValue(), 0.001)
}

func TestClient_FetchCountries_Errors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantOp     string
		wantStatus int
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantOp:     OpStatus,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "not found",
			handler:    http.NotFound,
			wantOp:     OpStatus,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[{"name":`))
			},
			wantOp:     OpDecode,
			wantStatus: http.StatusOK,
		},
		{
			name: "object instead of array",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"status":404,"message":"Not Found"}`))
			},
			wantOp:     OpDecode,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, time.Second)
			client.HTTPClient = server.Client()

			records, err := client.FetchCountries(context.Background())
			require.Error(t, err)
			assert.Nil(t, records)

			var fe *FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantOp, fe.Op)
			assert.Equal(t, tt.wantStatus, fe.StatusCode)
			assert.True(t, IsFetchError(err))
			assert.Contains(t, err.Error(), "fetch countries")
		})
	}
}

func TestClient_FetchCountries_StatusWrapsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.FetchCountries(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestClient_FetchCountries_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, time.Second)
	_, err := client.FetchCountries(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, OpRequest, fe.Op)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", 0)
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
	assert.Equal(t, DefaultTimeout, client.HTTPClient.Timeout)
	assert.Equal(t, "https://restcountries.com/v2/all?fields=name,region,area", client.AllURL())
}

func TestProviderFunc(t *testing.T) {
	want := []Record{{Name: "Peru"}}
	var p Provider = ProviderFunc(func(context.Context) ([]Record, error) {
		return want, nil
	})
	got, err := p.FetchCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	failing := ProviderFunc(func(context.Context) ([]Record, error) {
		return nil, errors.New("offline")
	})
	_, err = failing.FetchCountries(context.Background())
	assert.EqualError(t, err, "offline")
}

func TestRecord_HasArea(t *testing.T) {
	assert.True(t, Record{Area: Area(1)}.HasArea())
	assert.False(t, Record{Area: Area(0)}.HasArea())
	assert.False(t, Record{}.HasArea())
	assert.Equal(t, 0.0, Record{}.AreaValue())
}
