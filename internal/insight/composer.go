// Package insight composes the assistant's explanatory messages from chart
// selections. Composition is pure: the caller owns the conversation log and
// decides when to append.
package insight

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sherlockhq/leakengine/internal/benchmark"
	"github.com/sherlockhq/leakengine/internal/catalog"
	"github.com/sherlockhq/leakengine/internal/models"
)

// Log is an append-only conversation transcript owned by the caller.
type Log []models.Message

// Append adds a composed message to the log. A nil message (selection kind
// "none") leaves the log unchanged. Repeated identical selections append
// duplicate messages; no deduplication happens here.
func Append(log Log, msg *models.Message) Log {
	if msg == nil {
		return log
	}
	return append(log, *msg)
}

// Composer renders narratives for chart selections.
type Composer struct {
	eval *benchmark.Evaluator
	p    *message.Printer
	now  func() time.Time
}

func New(eval *benchmark.Evaluator) *Composer {
	if eval == nil {
		eval = benchmark.New(nil, 0, 0)
	}
	return &Composer{
		eval: eval,
		p:    message.NewPrinter(language.English),
		now:  time.Now,
	}
}

// Compose turns a selection into an assistant message, or nil when there is
// nothing selected. Same selection in, same content out.
func (c *Composer) Compose(sel models.SelectionContext) *models.Message {
	var content string
	switch {
	case sel.Kind == models.SelectionLeak && sel.Leak != nil:
		content = c.leakMessage(*sel.Leak)
	case sel.Kind == models.SelectionChannel && sel.Channel != nil:
		content = c.channelMessage(*sel.Channel)
	default:
		return nil
	}
	return &models.Message{
		Role:      models.RoleAssistant,
		Content:   content,
		Timestamp: c.now(),
	}
}

func (c *Composer) leakMessage(sel models.LeakSelection) string {
	name := prettyLeakName(sel.LeakType)
	impact := c.p.Sprintf("$%.0f", sel.Impact)

	var b strings.Builder
	fmt.Fprintf(&b, "I see you clicked on **%s** on %s.\n\n", name, prettyDate(sel.Date))
	fmt.Fprintf(&b, "This leak had an estimated impact of **%s**.\n\n", impact)

	exp := catalog.Explain(sel.LeakType)
	if exp.Generic {
		fmt.Fprintf(&b, "This is a **%s** issue with %s in revenue at risk.\n\n", strings.ToLower(name), impact)
		b.WriteString("Ask me specific questions about this leak and I'll help you understand what's causing it and how to fix it.")
		return b.String()
	}

	b.WriteString("Let me explain what's causing this:\n\n")
	b.WriteString("**Why this happens:**\n")
	for _, cause := range exp.Causes {
		fmt.Fprintf(&b, "- %s\n", cause)
	}
	b.WriteString("\n**How to fix:**\n")
	for i, fix := range exp.Fixes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, fix)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *Composer) channelMessage(sel models.ChannelSelection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You selected **%s**.\n\n", sel.Channel)

	if sel.Sessions <= 0 {
		b.WriteString("This channel recorded no sessions in the selected period, so there is no conversion data to evaluate yet.")
		return b.String()
	}

	rate := float64(sel.Conversions) / float64(sel.Sessions) * 100
	b.WriteString("**Performance:**\n")
	fmt.Fprintf(&b, "- Sessions: %s\n", c.p.Sprintf("%d", sel.Sessions))
	fmt.Fprintf(&b, "- Conversions: %s\n", c.p.Sprintf("%d", sel.Conversions))
	fmt.Fprintf(&b, "- Revenue: %s\n", c.p.Sprintf("$%.0f", sel.Revenue))
	fmt.Fprintf(&b, "- Conversion Rate: %.2f%%\n\n", rate)

	res := c.eval.EvaluateChannel(sel.Channel, rate, sel.Sessions, sel.Conversions)
	opportunity := c.p.Sprintf("$%.0f", res.OpportunityRevenue)

	switch res.Classification {
	case benchmark.Underperforming:
		fmt.Fprintf(&b, "⚠️ **%s is underperforming.**\n\n", sel.Channel)
		fmt.Fprintf(&b, "Your conversion rate (%.2f%%) is **%.1f%%** below the %s benchmark (%.2f%%).\n\n",
			rate, res.Gap, sel.Channel, res.Benchmark)
		b.WriteString("**Potential issues:**\n")
		b.WriteString("- Landing page doesn't match ad promise\n")
		b.WriteString("- Wrong audience targeting\n")
		b.WriteString("- Poor mobile experience (if mobile traffic)\n")
		b.WriteString("- Weak call-to-action\n\n")
		fmt.Fprintf(&b, "**Revenue opportunity:** If you reach benchmark conversion rate, you could generate an additional **%s** in revenue.", opportunity)
	case benchmark.NearBenchmark:
		fmt.Fprintf(&b, "✅ **%s is performing close to benchmark.**\n\n", sel.Channel)
		fmt.Fprintf(&b, "Your conversion rate (%.2f%%) is only %.1f%% below the %s benchmark (%.2f%%).\n\n",
			rate, res.Gap, sel.Channel, res.Benchmark)
		b.WriteString("Small optimization opportunities:\n")
		b.WriteString("- A/B test different CTAs\n")
		b.WriteString("- Optimize product page layout\n")
		b.WriteString("- Improve page speed\n\n")
		fmt.Fprintf(&b, "**Potential upside:** %s", opportunity)
	default:
		fmt.Fprintf(&b, "🎉 **%s is exceeding expectations!**\n\n", sel.Channel)
		fmt.Fprintf(&b, "Your conversion rate (%.2f%%) is **%.1f%%** above the %s benchmark (%.2f%%).\n\n",
			rate, -res.Gap, sel.Channel, res.Benchmark)
		b.WriteString("Keep doing what's working and consider:\n")
		b.WriteString("- Increasing ad spend on this channel\n")
		b.WriteString("- Applying similar strategies to other channels\n")
		b.WriteString("- Documenting what makes this channel successful")
	}
	return b.String()
}

// prettyLeakName turns a snake_case key into a display name.
func prettyLeakName(leakType string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(leakType, "_", " "))
}

// prettyDate renders a YYYY-MM-DD day in long form; unparseable input is
// shown as-is.
func prettyDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}
