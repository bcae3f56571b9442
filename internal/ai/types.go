package ai

// BrandProfileInput carries the brand attributes a prompt is built from.
type BrandProfileInput struct {
	BrandName        string   `json:"brandName"`
	Tagline          string   `json:"tagline,omitempty"`
	MissionStatement string   `json:"missionStatement,omitempty"`
	Keywords         []string `json:"keywords"`
	TargetAudience   string   `json:"targetAudience,omitempty"`
	Tone             []string `json:"tone"`
	Industry         string   `json:"industry,omitempty"`
}

// PaletteColor is one generated palette entry.
type PaletteColor struct {
	Name    string `json:"name"`
	Hex     string `json:"hex"`
	Meaning string `json:"meaning"`
}

// ColorPaletteOutput is the structured palette generation result.
type ColorPaletteOutput struct {
	Primary   []PaletteColor `json:"primary"`
	Secondary []PaletteColor `json:"secondary"`
	Accent    []PaletteColor `json:"accent"`
}

// TypeScaleEntry is one level of the generated type scale.
type TypeScaleEntry struct {
	Level       string `json:"level"`
	Size        string `json:"size"`
	Weight      int    `json:"weight"`
	Application string `json:"application"`
}

// TypographyOutput is the structured typography recommendation.
type TypographyOutput struct {
	HeadingFont string           `json:"headingFont"`
	BodyFont    string           `json:"bodyFont"`
	AccentFont  *string          `json:"accentFont,omitempty"`
	Typescale   []TypeScaleEntry `json:"typescale"`
}

// VoiceExamples holds do and don't examples for brand voice.
type VoiceExamples struct {
	Dos   []string `json:"dos"`
	Donts []string `json:"donts"`
}

// VoiceAndTone is the generated voice and tone guidance.
type VoiceAndTone struct {
	Description string        `json:"description"`
	Examples    VoiceExamples `json:"examples"`
}

// BrandStoryOutput is the structured narrative generation result.
type BrandStoryOutput struct {
	Story        string       `json:"story"`
	Values       []string     `json:"values"`
	Personality  []string     `json:"personality"`
	VoiceAndTone VoiceAndTone `json:"voiceAndTone"`
}

// GuidelineDocument is a loosely typed guideline result; the schema is not
// statically enforced beyond being a JSON object.
type GuidelineDocument map[string]interface{}
