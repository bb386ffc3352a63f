package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherlockhq/leakengine/internal/benchmark"
	"github.com/sherlockhq/leakengine/internal/models"
)

func newComposer() *Composer {
	return New(benchmark.New(nil, 0, 0))
}

func TestComposeNoneReturnsNil(t *testing.T) {
	c := newComposer()
	assert.Nil(t, c.Compose(models.SelectionContext{Kind: models.SelectionNone}))
	assert.Nil(t, c.Compose(models.SelectionContext{}))
	// Kind without payload is treated as no selection too.
	assert.Nil(t, c.Compose(models.SelectionContext{Kind: models.SelectionLeak}))
}

func TestComposeLeakSelection(t *testing.T) {
	c := newComposer()
	msg := c.Compose(models.SelectionContext{
		Kind: models.SelectionLeak,
		Leak: &models.LeakSelection{LeakType: "mobile_ux", Impact: 8000, Date: "2024-01-01"},
	})

	require.NotNil(t, msg)
	assert.Equal(t, models.RoleAssistant, msg.Role)
	assert.False(t, msg.Timestamp.IsZero())
	assert.Contains(t, strings.ToLower(msg.Content), "mobile")
	assert.Contains(t, msg.Content, "Mobile Ux")
	assert.Contains(t, msg.Content, "January 1, 2024")
	assert.Contains(t, msg.Content, "$8,000")
	assert.Contains(t, msg.Content, "Use mobile-first form design")
	assert.Contains(t, msg.Content, "Why this happens")
}

func TestComposeLeakSelectionUnknownType(t *testing.T) {
	c := newComposer()
	msg := c.Compose(models.SelectionContext{
		Kind: models.SelectionLeak,
		Leak: &models.LeakSelection{LeakType: "warehouse_fire", Impact: 1234, Date: "2024-02-10"},
	})

	require.NotNil(t, msg)
	assert.Contains(t, msg.Content, "warehouse fire")
	assert.Contains(t, msg.Content, "$1,234")
	assert.Contains(t, msg.Content, "Ask me specific questions")
}

func TestComposeChannelUnderperforming(t *testing.T) {
	c := newComposer()
	// Google Ads benchmark is 3.75; 1% observed is far below.
	msg := c.Compose(models.SelectionContext{
		Kind:    models.SelectionChannel,
		Channel: &models.ChannelSelection{Channel: "Google Ads", Sessions: 1000, Conversions: 10, Revenue: 1500},
	})

	require.NotNil(t, msg)
	assert.Contains(t, msg.Content, "⚠️")
	assert.Contains(t, msg.Content, "Google Ads is underperforming")
	assert.Contains(t, msg.Content, "Revenue opportunity")
	// round((1000*0.0375 - 10) * 120) = 3300
	assert.Contains(t, msg.Content, "$3,300")
}

func TestComposeChannelNearBenchmark(t *testing.T) {
	c := newComposer()
	// Facebook benchmark is 2.5; 2% observed is within one point.
	msg := c.Compose(models.SelectionContext{
		Kind:    models.SelectionChannel,
		Channel: &models.ChannelSelection{Channel: "Facebook", Sessions: 1000, Conversions: 20, Revenue: 2400},
	})

	require.NotNil(t, msg)
	assert.Contains(t, msg.Content, "✅")
	assert.Contains(t, msg.Content, "performing close to benchmark")
	assert.Contains(t, msg.Content, "Potential upside")
}

func TestComposeChannelOutperforming(t *testing.T) {
	c := newComposer()
	// Email benchmark is 5.0; 6% observed exceeds it.
	msg := c.Compose(models.SelectionContext{
		Kind:    models.SelectionChannel,
		Channel: &models.ChannelSelection{Channel: "Email", Sessions: 1000, Conversions: 60, Revenue: 9000},
	})

	require.NotNil(t, msg)
	assert.Contains(t, msg.Content, "🎉")
	assert.Contains(t, msg.Content, "exceeding expectations")
	assert.Contains(t, msg.Content, "Increasing ad spend")
}

func TestComposeChannelZeroSessions(t *testing.T) {
	c := newComposer()
	msg := c.Compose(models.SelectionContext{
		Kind:    models.SelectionChannel,
		Channel: &models.ChannelSelection{Channel: "TikTok", Sessions: 0, Conversions: 0, Revenue: 0},
	})

	require.NotNil(t, msg)
	assert.Contains(t, msg.Content, "no sessions")
	assert.NotContains(t, msg.Content, "NaN")
}

func TestComposeIsIdempotentInContent(t *testing.T) {
	c := newComposer()
	sel := models.SelectionContext{
		Kind:    models.SelectionChannel,
		Channel: &models.ChannelSelection{Channel: "Direct", Sessions: 1600, Conversions: 64, Revenue: 7680},
	}
	first := c.Compose(sel)
	second := c.Compose(sel)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.Content, second.Content)
}

func TestAppend(t *testing.T) {
	c := newComposer()
	var log Log

	log = Append(log, c.Compose(models.SelectionContext{Kind: models.SelectionNone}))
	assert.Empty(t, log)

	sel := models.SelectionContext{
		Kind: models.SelectionLeak,
		Leak: &models.LeakSelection{LeakType: "cart_abandonment", Impact: 5000, Date: "2024-03-01"},
	}
	log = Append(log, c.Compose(sel))
	log = Append(log, c.Compose(sel))
	// Duplicate selections append duplicate messages.
	require.Len(t, log, 2)
	assert.Equal(t, log[0].Content, log[1].Content)
}
