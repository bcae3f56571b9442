package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProfile() BrandProfileInput {
	return BrandProfileInput{
		BrandName:      "Brandforge",
		Tagline:        "Crafted identities",
		Keywords:       []string{"modern", "approachable"},
		TargetAudience: "startup founders",
		Tone:           []string{"confident"},
	}
}

func TestColorPalettePrompt(t *testing.T) {
	prompt := colorPalettePrompt(testProfile())

	assert.Contains(t, prompt, "- Brand name: Brandforge")
	assert.Contains(t, prompt, "- Tagline: Crafted identities")
	assert.Contains(t, prompt, "- Keywords: modern, approachable")
	assert.Contains(t, prompt, `"primary": [{"name": "Color Name", "hex": "#HEXCODE", "meaning": "Meaning"}]`)

	// Missing optional fields read as N/A, not as empty lines.
	bare := colorPalettePrompt(BrandProfileInput{BrandName: "Bare"})
	assert.Contains(t, bare, "- Tagline: N/A")
	assert.Contains(t, bare, "- Industry: N/A")
}

func TestTypographyPrompt(t *testing.T) {
	prompt := typographyPrompt(testProfile())

	assert.Contains(t, prompt, "Google Fonts")
	assert.Contains(t, prompt, `"headingFont": "Font Name"`)
	assert.Contains(t, prompt, "H1, H2, H3, H4 headings")
}

func TestBrandStoryPrompt(t *testing.T) {
	profile := testProfile()
	profile.MissionStatement = "Help small teams ship a brand"
	prompt := brandStoryPrompt(profile)

	assert.Contains(t, prompt, "- Mission statement: Help small teams ship a brand")
	assert.Contains(t, prompt, `"voiceAndTone"`)
	assert.Contains(t, prompt, `"dos"`)
}

func TestGuidelinePrompts_EmbedArtifacts(t *testing.T) {
	palette := ColorPaletteOutput{
		Primary: []PaletteColor{{Name: "Forge Orange", Hex: "#E85000", Meaning: "energy"}},
	}
	typography := TypographyOutput{HeadingFont: "Space Grotesk", BodyFont: "Inter"}

	logo := logoGuidelinesPrompt(testProfile(), palette)
	assert.Contains(t, logo, "#E85000", "palette is embedded as JSON")
	assert.Contains(t, logo, "Logo clear space requirements")

	digital := digitalGuidelinesPrompt(testProfile(), palette, typography)
	assert.Contains(t, digital, "Space Grotesk")
	assert.Contains(t, digital, "Digital accessibility standards")

	printed := printGuidelinesPrompt(testProfile(), palette, typography)
	assert.Contains(t, printed, "Business card specifications")
	assert.True(t, strings.HasSuffix(printed, "Format your response as JSON."))
}
