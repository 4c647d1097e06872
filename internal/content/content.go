// Package content holds the built-in site documents for the three variants.
// They are authored as plain Go data and never mutated at runtime.
package content

import "github.com/starford/sitekit/internal/site"

// Variant slugs.
const (
	LevelUp       = "levelup"
	Speedrun      = "speedrun"
	MarginalGains = "marginal-gains"
)

// Builtin returns fresh copies of the built-in documents keyed by slug.
func Builtin() map[string]*site.Document {
	return map[string]*site.Document{
		LevelUp:       levelUp(),
		Speedrun:      speedrun(),
		MarginalGains: marginalGains(),
	}
}

func footer(name string) site.Entry {
	return site.Entry{
		Type:     site.TypeFooter,
		Enabled:  true,
		AnchorID: "footer",
		Props: site.FooterProps{
			Copyright: "© 2026 " + name,
			Email:     "hello@levelup.studio",
			Links: []site.Link{
				{Label: "LevelUp", Href: "/sites/levelup"},
				{Label: "Speedrun", Href: "/sites/speedrun"},
				{Label: "Marginal Gains", Href: "/sites/marginal-gains"},
			},
		},
	}
}
