package content

import "github.com/starford/sitekit/internal/site"

func marginalGains() *site.Document {
	return &site.Document{
		Metadata: site.Metadata{
			Name:    "Marginal Gains",
			Tagline: "Small AI wins, compounded",
		},
		Sections: []site.Entry{
			{
				Type:     site.TypeHero,
				Enabled:  true,
				AnchorID: "top",
				Props: site.HeroProps{
					Headline:     "One percent better, every week",
					Subheadline:  "A monthly retainer that finds and ships small automations across your operations.",
					ContactLabel: "Talk to us",
				},
			},
			{
				Type:     site.TypeTwoColumn,
				Enabled:  true,
				AnchorID: "why",
				Props: site.TwoColumnProps{
					Heading: "Why small beats big",
					Body:    "Most AI programmes stall on the big bet. We ship the boring wins that nobody else prioritises.",
					Reverse: true,
				},
			},
			{
				Type:     site.TypeDemo,
				Enabled:  true,
				AnchorID: "report",
				Props: site.DemoProps{
					Heading: "Your weekly gains report",
					Caption: "Every Friday an agent compiles what shipped and what it saved.",
					Script:  "report-reveal",
				},
			},
			{
				Type:     site.TypeNewsletter,
				Enabled:  true,
				AnchorID: "newsletter",
				Props: site.NewsletterProps{
					Heading: "The Friday gains digest",
				},
			},
			{
				Type:     site.TypeFinalCTA,
				Enabled:  true,
				AnchorID: "contact",
				Props: site.FinalCTAProps{
					Heading: "Find your first ten gains",
				},
			},
			footer("Marginal Gains"),
		},
	}
}
