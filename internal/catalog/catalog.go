// Package catalog holds the static leak-type knowledge base: for every known
// revenue-leak category, the usual causes and the recommended fixes. The
// table is immutable after init; lookups for unknown keys resolve to a
// generic fallback and never fail.
package catalog

// Explanation describes one leak category. Causes and Fixes keep their
// authored order.
type Explanation struct {
	LeakType string
	Causes   []string
	Fixes    []string
	// Generic marks the fallback entry returned for uncatalogued keys.
	Generic bool
}

var entries = map[string]Explanation{
	"cart_abandonment": {
		LeakType: "cart_abandonment",
		Causes: []string{
			"Unexpected shipping costs at checkout",
			"Complex checkout process (too many steps)",
			"No guest checkout option",
			"Lack of trust signals",
		},
		Fixes: []string{
			"Show total price early in the funnel",
			"Offer free shipping threshold",
			"Reduce checkout to 2 steps max",
			"Add trust badges and security seals",
		},
	},
	"mobile_ux": {
		LeakType: "mobile_ux",
		Causes: []string{
			"Slow mobile page load (>3s)",
			"Buttons too small to tap",
			"Forms not optimized for mobile",
			"Images not responsive",
		},
		Fixes: []string{
			"Compress images and lazy load",
			"Increase button tap targets to 44x44px",
			"Use mobile-first form design",
			"Test on real devices",
		},
	},
	"pricing_gap": {
		LeakType: "pricing_gap",
		Causes: []string{
			"Competitors offering better prices",
			"No value proposition clarity",
			"Missing discount/promotion visibility",
		},
		Fixes: []string{
			"Run competitive price analysis",
			"Highlight unique value (not just price)",
			"Show savings clearly",
			"Consider dynamic pricing",
		},
	},
	"poor_conversion": {
		LeakType: "poor_conversion",
		Causes: []string{
			"Landing page doesn't match ad promise",
			"Weak call-to-action",
			"Too many choices (paradox of choice)",
			"Slow page load",
		},
		Fixes: []string{
			"A/B test different CTAs",
			"Reduce product options per page",
			"Match landing page to ad copy exactly",
			"Optimize page speed",
		},
	},
	"social_gap": {
		LeakType: "social_gap",
		Causes: []string{
			"Weak social proof (reviews/testimonials)",
			"No user-generated content",
			"Missing social share incentives",
		},
		Fixes: []string{
			"Add customer reviews prominently",
			"Create Instagram hashtag campaign",
			"Offer referral discounts",
			"Show real-time purchase notifications",
		},
	},
	"trust_signals": {
		LeakType: "trust_signals",
		Causes: []string{
			"Missing security badges",
			"No clear return policy",
			"Anonymous brand (no about us)",
			"Poor customer service visibility",
		},
		Fixes: []string{
			"Add SSL badge and payment icons",
			"Show 30-day return policy prominently",
			"Add team photos and story",
			"Live chat or phone number visible",
		},
	},
	"checkout_friction": {
		LeakType: "checkout_friction",
		Causes: []string{
			"Too many form fields",
			"Account creation required",
			"No auto-fill support",
			"Hidden fees appearing late",
		},
		Fixes: []string{
			"Enable guest checkout",
			"Reduce fields to essential only",
			"Support Apple Pay / Google Pay",
			"Show all fees upfront",
		},
	},
	"seo_issues": {
		LeakType: "seo_issues",
		Causes: []string{
			"Poor organic rankings",
			"Missing meta descriptions",
			"Slow site speed",
			"No backlinks",
		},
		Fixes: []string{
			"Optimize title tags and meta descriptions",
			"Build quality backlinks",
			"Create content targeting long-tail keywords",
			"Fix technical SEO issues",
		},
	},
	"product_optimization": {
		LeakType: "product_optimization",
		Causes: []string{
			"Poor product images",
			"Missing product details",
			"No size/fit guidance",
			"Weak product descriptions",
		},
		Fixes: []string{
			"Use high-res images with zoom",
			"Add video demonstrations",
			"Include size charts and fit guides",
			"Write benefit-focused copy",
		},
	},
	"personalization": {
		LeakType: "personalization",
		Causes: []string{
			"Generic experience for all visitors",
			"No product recommendations",
			"Cart abandonment emails missing",
		},
		Fixes: []string{
			"Implement product recommendation engine",
			"Show \"customers also bought\"",
			"Send cart abandonment emails (3-hour delay)",
			"Personalize homepage based on behavior",
		},
	},
	"performance": {
		LeakType: "performance",
		Causes: []string{
			"Slow page load time (>3s)",
			"Unoptimized images",
			"Too many third-party scripts",
			"No CDN",
		},
		Fixes: []string{
			"Compress and lazy-load images",
			"Use CDN for static assets",
			"Minimize JavaScript",
			"Enable browser caching",
		},
	},
}

// Explain resolves a leak type to its explanation. Unknown keys return a
// generic entry carrying the raw key; there is no error path.
func Explain(leakType string) Explanation {
	if e, ok := entries[leakType]; ok {
		return e
	}
	return Explanation{LeakType: leakType, Generic: true}
}

// Known reports whether a leak type has a catalogued explanation.
func Known(leakType string) bool {
	_, ok := entries[leakType]
	return ok
}

// Types lists the catalogued leak types, one per entry.
func Types() []string {
	out := make([]string, 0, len(entries))
	for k := range entries {
		out = append(out, k)
	}
	return out
}
