// Package site defines site content documents: the ordered, per-variant
// list of page sections and their typed properties.
package site

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SectionType identifies which component renders a section.
type SectionType string

// Known section types. The set is closed; adding a type means adding a
// Props record here and a registry entry in the section package.
const (
	TypeHero         SectionType = "hero"
	TypeTwoColumn    SectionType = "twoColumn"
	TypeFeaturePanel SectionType = "featurePanel"
	TypeFAQ          SectionType = "faq"
	TypeFinalCTA     SectionType = "finalCta"
	TypeNewsletter   SectionType = "newsletter"
	TypePodcast      SectionType = "podcast"
	TypeDemo         SectionType = "demo"
	TypeFooter       SectionType = "footer"
)

var knownTypes = []SectionType{
	TypeHero,
	TypeTwoColumn,
	TypeFeaturePanel,
	TypeFAQ,
	TypeFinalCTA,
	TypeNewsletter,
	TypePodcast,
	TypeDemo,
	TypeFooter,
}

// Types returns the closed set of section types in declaration order.
func Types() []SectionType {
	out := make([]SectionType, len(knownTypes))
	copy(out, knownTypes)
	return out
}

// IsKnown reports whether t belongs to the closed set.
func IsKnown(t SectionType) bool {
	for _, k := range knownTypes {
		if k == t {
			return true
		}
	}
	return false
}

var anchorRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Metadata describes a site variant.
type Metadata struct {
	Name            string `yaml:"name" json:"name"`
	Tagline         string `yaml:"tagline" json:"tagline"`
	PageTitle       string `yaml:"pageTitle,omitempty" json:"page_title,omitempty"`
	PageDescription string `yaml:"pageDescription,omitempty" json:"page_description,omitempty"`
}

// Title returns the page title, falling back to name and tagline.
func (m Metadata) Title() string {
	if m.PageTitle != "" {
		return m.PageTitle
	}
	if m.Tagline == "" {
		return m.Name
	}
	return m.Name + " | " + m.Tagline
}

// Description returns the page description, falling back to the tagline.
func (m Metadata) Description() string {
	if m.PageDescription != "" {
		return m.PageDescription
	}
	return m.Tagline
}

// Validate validates the metadata.
func (m Metadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required),
	)
}

// Entry is one section of a page. Disabled entries stay in the document
// but are never rendered.
type Entry struct {
	Type     SectionType
	Enabled  bool
	AnchorID string
	Variant  string
	Props    Props
}

// Validate checks the entry. An unknown Type is not an error here: whether
// a type can be rendered is decided against a registry at render time.
func (e Entry) Validate() error {
	if err := validation.ValidateStruct(&e,
		validation.Field(&e.Type, validation.Required),
		validation.Field(&e.AnchorID, validation.Match(anchorRe)),
		validation.Field(&e.Props),
	); err != nil {
		return err
	}
	if e.Props != nil && e.Props.SectionType() != e.Type {
		return fmt.Errorf("properties of type %q attached to %q section", e.Props.SectionType(), e.Type)
	}
	return nil
}

// Document is the static description of one site variant.
type Document struct {
	Metadata Metadata `yaml:"metadata"`
	Sections []Entry  `yaml:"sections"`
}

// Validate validates the document, including anchor uniqueness.
func (d *Document) Validate() error {
	if err := validation.ValidateStruct(d,
		validation.Field(&d.Metadata),
		validation.Field(&d.Sections),
	); err != nil {
		return err
	}
	seen := make(map[string]int, len(d.Sections))
	for i, e := range d.Sections {
		if e.AnchorID == "" {
			continue
		}
		if prev, ok := seen[e.AnchorID]; ok {
			return fmt.Errorf("sections: anchor %q used by entries %d and %d", e.AnchorID, prev, i)
		}
		seen[e.AnchorID] = i
	}
	return nil
}

// Enabled returns the enabled entries in document order.
func (d *Document) Enabled() []Entry {
	out := make([]Entry, 0, len(d.Sections))
	for _, e := range d.Sections {
		if e.Enabled {
			out = append(out, e)
		}
	}
	return out
}
