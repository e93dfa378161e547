package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/exilemarket/item-price-scanner/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // profit at least double the list price
	colorYellow = 0xF1C40F // profit above the list price
	colorOrange = 0xE67E22 // everything else that qualified
)

const webhookUsername = "item-price-scanner"

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Username string         `json:"username"`
	Embeds   []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendDeal sends a single alert as a Discord embed.
func (d *DiscordNotifier) SendDeal(ctx context.Context, alert *DealAlert) error {
	payload := discordWebhookPayload{
		Username: webhookUsername,
		Embeds:   []discordEmbed{buildEmbed(alert)},
	}
	return d.post(ctx, payload)
}

// SendDealBatch sends multiple alerts as a single Discord message.
func (d *DiscordNotifier) SendDealBatch(ctx context.Context, alerts []DealAlert) error {
	embeds := make([]discordEmbed, 0, len(alerts))

	// Discord allows max 10 embeds per message.
	limit := min(len(alerts), 10)

	for i := range limit {
		embeds = append(embeds, buildEmbed(&alerts[i]))
	}

	if len(alerts) > 10 {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more deals", len(alerts)-10),
			Color:       colorYellow,
			Description: "Query the deals endpoint for the full list.",
		})
	}

	payload := discordWebhookPayload{Username: webhookUsername, Embeds: embeds}
	return d.post(ctx, payload)
}

func buildEmbed(alert *DealAlert) discordEmbed {
	title := alert.Name
	if title == "" {
		title = alert.TypeLine
	} else if alert.TypeLine != "" {
		title = title + ", " + alert.TypeLine
	}

	embed := discordEmbed{
		Title: title,
		Color: profitColor(alert),
		Fields: []discordEmbedField{
			{Name: "Listed", Value: fmt.Sprintf("%.1f chaos", alert.ListedChaos), Inline: true},
			{Name: "Estimate", Value: fmt.Sprintf("%.1f chaos", alert.Estimate), Inline: true},
			{Name: "Profit", Value: fmt.Sprintf("%.1f chaos", alert.Profit), Inline: true},
			{Name: "Category", Value: alert.Category, Inline: true},
			{Name: "League", Value: alert.League, Inline: true},
		},
	}

	if len(alert.TopBuckets) > 0 {
		lines := make([]string, 0, len(alert.TopBuckets))
		for _, b := range alert.TopBuckets {
			lines = append(lines, fmt.Sprintf("%s: %.2f%%", b.Label, b.Percent))
		}
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:  "Prediction",
			Value: strings.Join(lines, "\n"),
		})
	}

	return embed
}

func profitColor(alert *DealAlert) int {
	switch {
	case alert.Profit >= 2*alert.ListedChaos:
		return colorGreen
	case alert.Profit >= alert.ListedChaos:
		return colorYellow
	default:
		return colorOrange
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		metrics.NotificationFailuresTotal.Inc()
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.NotificationFailuresTotal.Inc()
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
