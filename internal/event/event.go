package event

import (
	"regexp"
	"strings"
)

// Well-known source identities. Producers may suffix the agent form
// with a name, e.g. "AI_AGENT:crimson".
const (
	SourceHuman   = "HUMAN"
	SourceAIAgent = "AI_AGENT"
	SourceUnknown = "UNKNOWN"
)

// Event is a single pixel paint action.
type Event struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Color     string `json:"color"`
	Source    string `json:"source"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// SourceKind buckets a source identity for display and filtering.
type SourceKind int

const (
	KindUnknown SourceKind = iota
	KindHuman
	KindAIAgent
)

func (k SourceKind) String() string {
	switch k {
	case KindHuman:
		return SourceHuman
	case KindAIAgent:
		return SourceAIAgent
	default:
		return SourceUnknown
	}
}

// ClassifySource maps a source identity onto its kind. Agent identities
// match either the bare form or the name-suffixed "AI_AGENT:" form.
func ClassifySource(source string) SourceKind {
	switch {
	case source == SourceHuman:
		return KindHuman
	case source == SourceAIAgent || strings.HasPrefix(source, SourceAIAgent+":"):
		return KindAIAgent
	default:
		return KindUnknown
	}
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidColor reports whether s is a #RRGGBB hex color.
func ValidColor(s string) bool { return colorPattern.MatchString(s) }

// NormalizeColor upper-cases the hex digits of a valid color so that
// equal colors compare equal. The input must already be valid.
func NormalizeColor(s string) string { return "#" + strings.ToUpper(s[1:]) }
