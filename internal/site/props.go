package site

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Props is the typed property payload of a section. Each section type has
// exactly one concrete record; SectionType reports which one.
type Props interface {
	SectionType() SectionType
}

// Link is a labelled href.
type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// Validate validates the link.
func (l Link) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Label, validation.Required),
		validation.Field(&l.Href, validation.Required),
	)
}

// Image references a static asset.
type Image struct {
	Src string `yaml:"src" json:"src"`
	Alt string `yaml:"alt" json:"alt"`
}

// HeroProps is the opening section with the headline and the contact
// call to action.
type HeroProps struct {
	Eyebrow      string `yaml:"eyebrow,omitempty"`
	Headline     string `yaml:"headline"`
	Subheadline  string `yaml:"subheadline,omitempty"`
	ContactLabel string `yaml:"contactLabel,omitempty"`
	Secondary    *Link  `yaml:"secondary,omitempty"`
}

// SectionType implements Props.
func (HeroProps) SectionType() SectionType { return TypeHero }

// Validate validates the Hero properties.
func (p HeroProps) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Headline, validation.Required),
		validation.Field(&p.Secondary),
	)
}

// TwoColumnProps is copy beside an optional image.
type TwoColumnProps struct {
	Heading string   `yaml:"heading"`
	Body    string   `yaml:"body,omitempty"`
	Bullets []string `yaml:"bullets,omitempty"`
	Image   *Image   `yaml:"image,omitempty"`
	Reverse bool     `yaml:"reverse,omitempty"`
}

// SectionType implements Props.
func (TwoColumnProps) SectionType() SectionType { return TypeTwoColumn }

// Validate validates the TwoColumn properties.
func (p TwoColumnProps) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Heading, validation.Required),
	)
}

// Feature is one tile of a feature panel.
type Feature struct {
	Icon        string `yaml:"icon,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Validate validates the feature.
func (f Feature) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
	)
}

// FeaturePanelProps is a grid of features under a heading.
type FeaturePanelProps struct {
	Heading  string    `yaml:"heading"`
	Intro    string    `yaml:"intro,omitempty"`
	Features []Feature `yaml:"features"`
}

// SectionType implements Props.
func (FeaturePanelProps) SectionType() SectionType { return TypeFeaturePanel }

// Validate validates the FeaturePanel properties.
func (p FeaturePanelProps) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Heading, validation.Required),
		validation.Field(&p.Features, validation.Required),
	)
}

// FAQItem is a question with its answer.
type FAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Validate validates the item.
func (i FAQItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Question, validation.Required),
		validation.Field(&i.Answer, validation.Required),
	)
}

// FAQProps lists questions and answers.
type FAQProps struct {
	Heading string    `yaml:"heading"`
	Items   []FAQItem `yaml:"items"`
}

// SectionType implements Props.
func (FAQProps) SectionType() SectionType { return TypeFAQ }

// Validate validates the FAQ properties.
func (p FAQProps) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Items, validation.Required),
	)
}

// FinalCTAProps is the closing call to action.
type FinalCTAProps struct {
	Heading     string `yaml:"heading"`
	Body        string `yaml:"body,omitempty"`
	ButtonLabel string `yaml:"buttonLabel,omitempty"`
}

// SectionType implements Props.
func (FinalCTAProps) SectionType() SectionType { return TypeFinalCTA }

// Validate validates the FinalCTA properties.
func (p FinalCTAProps) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Heading, validation.Required),
	)
}

// NewsletterProps configures the subscription form.
type NewsletterProps struct {
	Heading     string `yaml:"heading"`
	Body        string `yaml:"body,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	ButtonLabel string `yaml:"buttonLabel,omitempty"`
}

// SectionType implements Props.
func (NewsletterProps) SectionType() SectionType { return TypeNewsletter }

// PodcastProps lists recent episodes from the feed snapshot.
type PodcastProps struct {
	Heading    string `yaml:"heading"`
	Intro      string `yaml:"intro,omitempty"`
	Limit      int    `yaml:"limit,omitempty"`
	ChannelURL string `yaml:"channelUrl,omitempty"`
}

// SectionType implements Props.
func (PodcastProps) SectionType() SectionType { return TypePodcast }

// Validate validates the Podcast properties.
func (p PodcastProps) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Limit, validation.Min(0)),
	)
}

// DemoProps points a demo section at a named sequencer script.
type DemoProps struct {
	Heading string `yaml:"heading,omitempty"`
	Caption string `yaml:"caption,omitempty"`
	Script  string `yaml:"script"`
}

// SectionType implements Props.
func (DemoProps) SectionType() SectionType { return TypeDemo }

// Validate validates the Demo properties.
func (p DemoProps) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Script, validation.Required),
	)
}

// FooterProps is the page footer.
type FooterProps struct {
	Copyright string `yaml:"copyright"`
	Email     string `yaml:"email,omitempty"`
	Links     []Link `yaml:"links,omitempty"`
}

// SectionType implements Props.
func (FooterProps) SectionType() SectionType { return TypeFooter }

// Validate validates the Footer properties.
func (p FooterProps) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Links),
	)
}

// RawProps keeps the untyped property bag of an entry whose type is not
// in the closed set, so the renderer can still report it.
type RawProps struct {
	Kind   SectionType
	Fields map[string]any
}

// SectionType returns the unregistered type key.
func (r RawProps) SectionType() SectionType { return r.Kind }
