package content

import "github.com/starford/sitekit/internal/site"

func speedrun() *site.Document {
	return &site.Document{
		Metadata: site.Metadata{
			Name:      "Speedrun",
			Tagline:   "From idea to working AI prototype in ten days",
			PageTitle: "Speedrun | AI prototypes in ten days",
		},
		Sections: []site.Entry{
			{
				Type:     site.TypeHero,
				Enabled:  true,
				AnchorID: "top",
				Variant:  "dark",
				Props: site.HeroProps{
					Eyebrow:      "Speedrun",
					Headline:     "Ten days. One prototype. Real users.",
					Subheadline:  "A fixed-scope sprint that turns your riskiest AI idea into something people can click.",
					ContactLabel: "Reserve a sprint",
				},
			},
			{
				Type:     site.TypeDemo,
				Enabled:  true,
				AnchorID: "demo",
				Props: site.DemoProps{
					Heading: "Day three, in thirty seconds",
					Script:  "chat-typing",
				},
			},
			{
				Type:     site.TypeFeaturePanel,
				Enabled:  true,
				AnchorID: "sprint",
				Props: site.FeaturePanelProps{
					Heading: "The sprint",
					Features: []site.Feature{
						{Icon: "target", Title: "Day 1-2: Frame", Description: "Pick the one question the prototype must answer."},
						{Icon: "bolt", Title: "Day 3-8: Build", Description: "Daily demos, no slide decks."},
						{Icon: "users", Title: "Day 9-10: Test", Description: "Five real users, recorded sessions, a clear verdict."},
					},
				},
			},
			{
				Type:     site.TypeTwoColumn,
				Enabled:  false,
				AnchorID: "case-study",
				Props: site.TwoColumnProps{
					Heading: "Case study: claims triage",
					Body:    "Coming soon.",
				},
			},
			{
				Type:     site.TypeFAQ,
				Enabled:  true,
				AnchorID: "faq",
				Props: site.FAQProps{
					Heading: "Sprint FAQ",
					Items: []site.FAQItem{
						{Question: "What do we get at the end?", Answer: "A deployed prototype, the code, and a written recommendation."},
						{Question: "What if the idea does not work?", Answer: "Then you found out in ten days instead of ten months."},
					},
				},
			},
			{
				Type:     site.TypeFinalCTA,
				Enabled:  true,
				AnchorID: "contact",
				Props: site.FinalCTAProps{
					Heading:     "Next sprint starts Monday",
					ButtonLabel: "Grab a slot",
				},
			},
			footer("Speedrun"),
		},
	}
}
