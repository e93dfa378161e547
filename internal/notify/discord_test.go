package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDealAlert(profit float64) DealAlert {
	return DealAlert{
		ItemID:      "abc123def456",
		Name:        "Storm Spire",
		TypeLine:    "Opal Sceptre",
		Category:    "Sceptre",
		League:      "Standard",
		ListedChaos: 20.0,
		Estimate:    20.0 + profit,
		Profit:      profit,
		TopBuckets: []BucketWeight{
			{Label: "15-20 chaos", Percent: 41.22},
			{Label: "20-25 chaos", Percent: 30.10},
		},
	}
}

func TestDiscordNotifier_SendDeal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		alert      DealAlert
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
	}{
		{
			name:       "valid alert sends embed",
			alert:      testDealAlert(25.0),
			statusCode: http.StatusNoContent,
			wantColor:  colorYellow,
		},
		{
			name:       "profit double the list price uses green",
			alert:      testDealAlert(45.0),
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
		},
		{
			name:       "profit below list price uses orange",
			alert:      testDealAlert(15.0),
			statusCode: http.StatusNoContent,
			wantErr:    false,
			wantColor:  colorOrange,
		},
		{
			name:       "discord returns 429 rate limited",
			alert:      testDealAlert(25.0),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			alert:      testDealAlert(25.0),
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			err := d.SendDeal(context.Background(), &tt.alert)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, webhookUsername, received.Username)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Contains(t, embed.Title, tt.alert.Name)
			assert.Contains(t, embed.Title, tt.alert.TypeLine)

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				fieldMap[f.Name] = f.Value
			}
			assert.Equal(t, "20.0 chaos", fieldMap["Listed"])
			assert.Equal(t, tt.alert.Category, fieldMap["Category"])
			assert.Contains(t, fieldMap["Prediction"], "15-20 chaos: 41.22%")
		})
	}
}

func TestDiscordNotifier_SendDeal_NoName(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	alert := testDealAlert(25.0)
	alert.Name = ""

	d := NewDiscordNotifier(srv.URL)
	err := d.SendDeal(context.Background(), &alert)
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	assert.Equal(t, "Opal Sceptre", received.Embeds[0].Title)
}

func TestDiscordNotifier_SendDealBatch(t *testing.T) {
	t.Parallel()

	t.Run("small batch sends one embed per deal", func(t *testing.T) {
		t.Parallel()

		var received discordWebhookPayload

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := json.NewDecoder(r.Body).Decode(&received)
			assert.NoError(t, err)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		alerts := make([]DealAlert, 3)
		for i := range alerts {
			alerts[i] = testDealAlert(float64(20 + i*10))
		}

		d := NewDiscordNotifier(srv.URL)
		err := d.SendDealBatch(context.Background(), alerts)
		require.NoError(t, err)

		assert.Len(t, received.Embeds, 3)
	})

	t.Run("large batch is capped with a summary embed", func(t *testing.T) {
		t.Parallel()

		var received discordWebhookPayload

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := json.NewDecoder(r.Body).Decode(&received)
			assert.NoError(t, err)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		alerts := make([]DealAlert, 14)
		for i := range alerts {
			alerts[i] = testDealAlert(25.0)
		}

		d := NewDiscordNotifier(srv.URL)
		err := d.SendDealBatch(context.Background(), alerts)
		require.NoError(t, err)

		require.Len(t, received.Embeds, 11)
		assert.Contains(t, received.Embeds[10].Title, "4 more deals")
	})
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	alert := testDealAlert(25.0)
	err := d.SendDeal(context.Background(), &alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	alert := testDealAlert(25.0)
	err := d.SendDeal(context.Background(), &alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}
