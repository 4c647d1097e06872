package mcpserver

// DocumentFormat describes the YAML site document format that LLM
// consumers should follow when drafting or editing a site variant.
const DocumentFormat = `# Sitekit Site Document Format

A site document is one YAML file per site variant, stored as
` + "`" + `<slug>.yaml` + "`" + ` in the content directory. A file whose slug matches a
built-in variant replaces it.

## Structure

` + "```" + `yaml
metadata:
  name: LevelUp                     # REQUIRED
  tagline: AI enablement for teams  # OPTIONAL
  pageTitle: LevelUp                # OPTIONAL, defaults to "name | tagline"
  pageDescription: ...              # OPTIONAL, defaults to tagline
sections:
  - type: hero                      # REQUIRED, see sitekit://section-types
    enabled: true                   # OPTIONAL, defaults to true
    anchorId: top                   # OPTIONAL, lower-case kebab-case, unique
    variant: dark                   # OPTIONAL, free-form styling hint
    properties:                     # typed per section type
      headline: Level up how your team builds with AI
` + "```" + `

## Rules

1. **Order is layout.** Sections render top to bottom in list order.
2. **Disabled sections stay.** Set ` + "`" + `enabled: false` + "`" + ` to hide a section
   without deleting it.
3. **Properties are typed.** Unknown property keys are rejected. Required
   fields: hero ` + "`" + `headline` + "`" + `, twoColumn ` + "`" + `heading` + "`" + `, featurePanel
   ` + "`" + `heading` + "`" + ` and ` + "`" + `features` + "`" + `, faq ` + "`" + `items` + "`" + `, finalCta ` + "`" + `heading` + "`" + `,
   demo ` + "`" + `script` + "`" + `.
4. **Unknown section types** are accepted by the loader but render as a
   diagnostic in development and are dropped in production. Use
   ` + "`" + `render_outline` + "`" + ` to check.
5. **Demo scripts** must be one of the names returned by ` + "`" + `list_demo_scripts` + "`" + `.
6. **Contact buttons** in hero and finalCta open the contact dialog; do not
   add an href for them.
`
