package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The prompt text doubles as the wire contract with the completion service:
// each prompt documents the exact JSON schema the answer must use.

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func profileLines(p BrandProfileInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Brand name: %s\n", p.BrandName)
	fmt.Fprintf(&b, "- Tagline: %s\n", orNA(p.Tagline))
	fmt.Fprintf(&b, "- Industry: %s\n", orNA(p.Industry))
	fmt.Fprintf(&b, "- Keywords: %s\n", strings.Join(p.Keywords, ", "))
	fmt.Fprintf(&b, "- Target audience: %s\n", orNA(p.TargetAudience))
	fmt.Fprintf(&b, "- Tone/voice: %s\n", strings.Join(p.Tone, ", "))
	return b.String()
}

func colorPalettePrompt(p BrandProfileInput) string {
	return fmt.Sprintf(`Generate a professional color palette for a brand with the following profile:
%s
Create a color palette with:
- 1-2 primary colors that represent the core brand identity
- 2-3 secondary colors that complement the primary colors
- 1-2 accent colors for highlights and calls to action

For each color, provide:
- A descriptive name
- The hex code
- A brief explanation of its meaning/significance to the brand

Format your response as JSON with this structure:
{
  "primary": [{"name": "Color Name", "hex": "#HEXCODE", "meaning": "Meaning"}],
  "secondary": [{"name": "Color Name", "hex": "#HEXCODE", "meaning": "Meaning"}],
  "accent": [{"name": "Color Name", "hex": "#HEXCODE", "meaning": "Meaning"}]
}`, profileLines(p))
}

func typographyPrompt(p BrandProfileInput) string {
	return fmt.Sprintf(`Recommend typography for a brand with the following profile:
%s
Select appropriate fonts from Google Fonts:
- A heading font that captures the brand personality
- A body text font that's highly readable
- An optional accent font for special elements (if needed)

Also create a type scale with size recommendations for:
- H1, H2, H3, H4 headings
- Body text, small text
- Button text and labels

Format your response as JSON with this structure:
{
  "headingFont": "Font Name",
  "bodyFont": "Font Name",
  "accentFont": "Font Name or null if not needed",
  "typescale": [
    {"level": "H1", "size": "3rem", "weight": 700, "application": "Main page titles"}
  ]
}`, profileLines(p))
}

func brandStoryPrompt(p BrandProfileInput) string {
	return fmt.Sprintf(`Create a brand story/identity for:
- Brand name: %s
- Tagline: %s
- Mission statement: %s
- Industry: %s
- Keywords: %s
- Target audience: %s
- Tone/voice: %s

Generate the following:
1. A compelling brand story (2-3 paragraphs)
2. 3-5 core brand values with brief explanations
3. 4-6 brand personality traits
4. Voice and tone guidelines with examples of do's and don'ts

Format your response as JSON with this structure:
{
  "story": "Brand story text here...",
  "values": ["Value 1", "Value 2"],
  "personality": ["Trait 1", "Trait 2"],
  "voiceAndTone": {
    "description": "Overall description of voice and tone",
    "examples": {
      "dos": ["Example 1", "Example 2"],
      "donts": ["Example 1", "Example 2"]
    }
  }
}`,
		p.BrandName, orNA(p.Tagline), orNA(p.MissionStatement), orNA(p.Industry),
		strings.Join(p.Keywords, ", "), orNA(p.TargetAudience), strings.Join(p.Tone, ", "))
}

func logoGuidelinesPrompt(p BrandProfileInput, palette ColorPaletteOutput) string {
	paletteJSON, _ := json.Marshal(palette)
	return fmt.Sprintf(`Create logo usage guidelines for:
- Brand name: %s
- Industry: %s
- Brand colors: %s

Provide detailed guidelines for:
1. Logo clear space requirements
2. Minimum size guidelines
3. Approved color variations
4. Improper logo usage examples
5. Logo placement recommendations

Format your response as JSON.`, p.BrandName, orNA(p.Industry), paletteJSON)
}

func digitalGuidelinesPrompt(p BrandProfileInput, palette ColorPaletteOutput, typography TypographyOutput) string {
	paletteJSON, _ := json.Marshal(palette)
	typographyJSON, _ := json.Marshal(typography)
	return fmt.Sprintf(`Create digital design guidelines for:
- Brand name: %s
- Brand colors: %s
- Typography: %s

Provide guidelines for:
1. UI component design principles
2. Digital accessibility standards
3. Animation and transition specifications
4. Responsive design principles
5. Digital asset usage

Format your response as JSON.`, p.BrandName, paletteJSON, typographyJSON)
}

func printGuidelinesPrompt(p BrandProfileInput, palette ColorPaletteOutput, typography TypographyOutput) string {
	paletteJSON, _ := json.Marshal(palette)
	typographyJSON, _ := json.Marshal(typography)
	return fmt.Sprintf(`Create print design guidelines for:
- Brand name: %s
- Brand colors: %s
- Typography: %s

Provide guidelines for:
1. Business card specifications
2. Letterhead and stationery design
3. Brochure and flyer standards
4. Print production specifications (paper, finishes)
5. Large format printing guidelines

Format your response as JSON.`, p.BrandName, paletteJSON, typographyJSON)
}

const assistantSystemPrompt = "You are a brand identity assistant helping a user build their brand style guide. " +
	"Answer questions about branding, colors, typography, and brand voice concisely and practically."
