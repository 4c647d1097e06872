package content

import "github.com/starford/sitekit/internal/site"

func levelUp() *site.Document {
	return &site.Document{
		Metadata: site.Metadata{
			Name:            "LevelUp",
			Tagline:         "AI enablement for teams that ship",
			PageDescription: "Hands-on coaching that gets your engineers building with AI agents in weeks, not quarters.",
		},
		Sections: []site.Entry{
			{
				Type:     site.TypeHero,
				Enabled:  true,
				AnchorID: "top",
				Props: site.HeroProps{
					Eyebrow:      "AI enablement",
					Headline:     "Level up how your team builds with AI",
					Subheadline:  "We embed with your engineers, pair on real work and leave behind habits that compound.",
					ContactLabel: "Book a discovery call",
					Secondary:    &site.Link{Label: "See it in action", Href: "#demo"},
				},
			},
			{
				Type:     site.TypeDemo,
				Enabled:  true,
				AnchorID: "demo",
				Props: site.DemoProps{
					Heading: "An agent at work",
					Caption: "A coding agent picks up a ticket, runs the tests and opens a pull request.",
					Script:  "agent-terminal",
				},
			},
			{
				Type:     site.TypeFeaturePanel,
				Enabled:  true,
				AnchorID: "approach",
				Props: site.FeaturePanelProps{
					Heading: "How the engagement works",
					Intro:   "Six weeks, one team, measurable change.",
					Features: []site.Feature{
						{Icon: "compass", Title: "Assess", Description: "We map where AI already helps and where it quietly hurts."},
						{Icon: "wrench", Title: "Pair", Description: "Senior practitioners pair with your engineers on live tickets."},
						{Icon: "chart", Title: "Measure", Description: "Cycle time and review load tracked before and after."},
					},
				},
			},
			{
				Type:     site.TypeTwoColumn,
				Enabled:  true,
				AnchorID: "outcomes",
				Props: site.TwoColumnProps{
					Heading: "What changes after six weeks",
					Body:    "Teams stop treating AI tools as autocomplete and start delegating whole tasks.",
					Bullets: []string{
						"Shared prompt and review playbooks",
						"Agent workflows wired into CI",
						"A champion on every squad",
					},
					Image: &site.Image{Src: "/static/img/outcomes.png", Alt: "Before and after cycle time chart"},
				},
			},
			{
				Type:     site.TypePodcast,
				Enabled:  true,
				AnchorID: "podcast",
				Props: site.PodcastProps{
					Heading:    "From the podcast",
					Intro:      "Conversations with engineering leaders rolling out AI.",
					Limit:      3,
					ChannelURL: "https://www.youtube.com/@levelup-studio",
				},
			},
			{
				Type:     site.TypeFAQ,
				Enabled:  true,
				AnchorID: "faq",
				Props: site.FAQProps{
					Heading: "Questions we hear a lot",
					Items: []site.FAQItem{
						{Question: "Do you need access to our code?", Answer: "Only what the pairing sessions touch, under your existing access controls."},
						{Question: "Which tools do you use?", Answer: "Whatever your team already pays for. We are tool-agnostic."},
						{Question: "How big should the team be?", Answer: "Between four and twelve engineers works best."},
					},
				},
			},
			{
				Type:     site.TypeNewsletter,
				Enabled:  true,
				AnchorID: "newsletter",
				Props: site.NewsletterProps{
					Heading:     "One practical AI workflow a week",
					Body:        "No hype, just what worked for a real team.",
					Placeholder: "you@company.com",
					ButtonLabel: "Subscribe",
				},
			},
			{
				Type:     site.TypeFinalCTA,
				Enabled:  true,
				AnchorID: "contact",
				Props: site.FinalCTAProps{
					Heading:     "Ready to level up?",
					Body:        "Tell us about your team and we will come back within two working days.",
					ButtonLabel: "Start the conversation",
				},
			},
			footer("LevelUp"),
		},
	}
}
