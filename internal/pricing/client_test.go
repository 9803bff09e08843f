package pricing

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PredictGrocery(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		req     GroceryRequest
		want    Prediction
	}{
		{
			name: "model_response_used",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"bestPrice": 120.5, "demandScore": 0.8, "seasonality": "winter"}`)
			},
			req:  GroceryRequest{MRP: 100},
			want: Prediction{BestPrice: 120.5, DemandScore: 0.8, Seasonality: "winter"},
		},
		{
			name: "zero_best_price_defaults_to_mrp",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"demandScore": 0.4}`)
			},
			req:  GroceryRequest{MRP: 55},
			want: Prediction{BestPrice: 55, DemandScore: 0.4, Seasonality: "year-round"},
		},
		{
			name: "server_error_falls_back",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			req:  GroceryRequest{MRP: 80},
			want: Prediction{BestPrice: 80, Seasonality: "year-round"},
		},
		{
			name: "garbage_body_falls_back",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "not json")
			},
			req:  GroceryRequest{MRP: 80},
			want: Prediction{BestPrice: 80, Seasonality: "year-round"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := NewClient(server.URL, time.Second)
			got := c.PredictGrocery(context.Background(), tt.req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_PredictOther_Fallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bestPrice": 900}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	got := c.PredictOther(context.Background(), OtherRequest{MRP: 800})
	assert.Equal(t, Prediction{BestPrice: 900, MarketTrend: "stable"}, got)
}

func TestClient_Unconfigured(t *testing.T) {
	c := NewClient("", time.Second)
	require.False(t, c.Configured())

	got := c.PredictGrocery(context.Background(), GroceryRequest{MRP: 42})
	assert.Equal(t, Prediction{BestPrice: 42, Seasonality: "year-round"}, got)

	other := c.PredictOther(context.Background(), OtherRequest{MRP: 42})
	assert.Equal(t, Prediction{BestPrice: 42, MarketTrend: "stable"}, other)
}

func TestClient_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"bestPrice": 70, "demandScore": 0.2, "seasonality": "summer"}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	got := c.PredictGrocery(context.Background(), GroceryRequest{MRP: 60})

	assert.Equal(t, Prediction{BestPrice: 70, DemandScore: 0.2, Seasonality: "summer"}, got)
	assert.EqualValues(t, 3, calls.Load())
}
