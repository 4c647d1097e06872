package site

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// entryDoc is the on-disk shape of an Entry.
type entryDoc struct {
	Type       SectionType `yaml:"type"`
	Enabled    *bool       `yaml:"enabled,omitempty"`
	AnchorID   string      `yaml:"anchorId,omitempty"`
	Variant    string      `yaml:"variant,omitempty"`
	Properties yaml.Node   `yaml:"properties,omitempty"`
}

// UnmarshalYAML decodes an entry, dispatching the properties block on the
// entry type. An omitted enabled flag means enabled.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	var doc entryDoc
	if err := decodeStrict(node, &doc); err != nil {
		return err
	}
	props, err := decodeProps(doc.Type, &doc.Properties)
	if err != nil {
		return fmt.Errorf("section %q: %w", doc.Type, err)
	}
	*e = Entry{
		Type:     doc.Type,
		Enabled:  doc.Enabled == nil || *doc.Enabled,
		AnchorID: doc.AnchorID,
		Variant:  doc.Variant,
		Props:    props,
	}
	return nil
}

// MarshalYAML encodes an entry in the same shape UnmarshalYAML reads.
func (e Entry) MarshalYAML() (any, error) {
	enabled := e.Enabled
	out := struct {
		Type       SectionType `yaml:"type"`
		Enabled    *bool       `yaml:"enabled"`
		AnchorID   string      `yaml:"anchorId,omitempty"`
		Variant    string      `yaml:"variant,omitempty"`
		Properties any         `yaml:"properties,omitempty"`
	}{
		Type:     e.Type,
		Enabled:  &enabled,
		AnchorID: e.AnchorID,
		Variant:  e.Variant,
	}
	switch p := e.Props.(type) {
	case nil:
	case RawProps:
		if len(p.Fields) > 0 {
			out.Properties = p.Fields
		}
	default:
		out.Properties = p
	}
	return out, nil
}

func decodeProps(t SectionType, n *yaml.Node) (Props, error) {
	switch t {
	case TypeHero:
		return decodeAs[HeroProps](n)
	case TypeTwoColumn:
		return decodeAs[TwoColumnProps](n)
	case TypeFeaturePanel:
		return decodeAs[FeaturePanelProps](n)
	case TypeFAQ:
		return decodeAs[FAQProps](n)
	case TypeFinalCTA:
		return decodeAs[FinalCTAProps](n)
	case TypeNewsletter:
		return decodeAs[NewsletterProps](n)
	case TypePodcast:
		return decodeAs[PodcastProps](n)
	case TypeDemo:
		return decodeAs[DemoProps](n)
	case TypeFooter:
		return decodeAs[FooterProps](n)
	}
	raw := RawProps{Kind: t}
	if n.Kind != 0 {
		if err := n.Decode(&raw.Fields); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

func decodeAs[T Props](n *yaml.Node) (Props, error) {
	var p T
	if n.Kind == 0 {
		return p, nil
	}
	if err := decodeStrict(n, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// decodeStrict decodes n rejecting unknown keys. yaml.Node.Decode does not
// carry KnownFields from the outer decoder, so the node is re-encoded.
func decodeStrict(n *yaml.Node, v any) error {
	raw, err := yaml.Marshal(n)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(v)
}

// Decode parses and validates a YAML site document.
func Decode(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("site: decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("site: validate: %w", err)
	}
	return &doc, nil
}

// Encode renders doc as YAML.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("site: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("site: encode: %w", err)
	}
	return buf.Bytes(), nil
}
