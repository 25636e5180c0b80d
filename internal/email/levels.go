package email

// Every slider shares the same five-bucket shape; only the labels differ per
// axis. Thresholds are exclusive upper bounds, so a boundary value belongs to
// the next bucket: 20 is "formal", not "very_formal". 100 is reachable only
// through the final bucket.

// Level is an ordinal category derived from a slider value.
type Level string

// scale maps a 0-100 slider onto five ordinal levels for one axis.
type scale struct {
	axis   string
	levels [5]Level
}

func levelIndex(v int) int {
	switch {
	case v < 20:
		return 0
	case v < 40:
		return 1
	case v < 60:
		return 2
	case v < 80:
		return 3
	default:
		return 4
	}
}

// Level discretizes v. Callers validate range beforehand; out-of-range input
// would land in the outer buckets, never panic.
func (s scale) Level(v int) Level {
	return s.levels[levelIndex(v)]
}

var (
	toneScale = scale{axis: "tone", levels: [5]Level{
		"very_formal", "formal", "neutral", "friendly", "casual",
	}}
	lengthScale = scale{axis: "length", levels: [5]Level{
		"very_brief", "concise", "moderate", "detailed", "comprehensive",
	}}
	urgencyScale = scale{axis: "urgency", levels: [5]Level{
		"none", "low", "moderate", "high", "critical",
	}}
	ctaScale = scale{axis: "cta_strength", levels: [5]Level{
		"none", "subtle", "clear", "strong", "insistent",
	}}
	politenessScale = scale{axis: "politeness", levels: [5]Level{
		"blunt", "direct", "courteous", "polite", "very_polite",
	}}
)
