package classify

import (
	"strings"
)

// Tier is the confidence of a record. Tiers are ordered Reject < Review < Accept.
type Tier int

const (
	TierReject Tier = iota
	TierReview
	TierAccept
)

// TagAmbiguous marks a review status caused by conflicting signals.
const TagAmbiguous = "ambiguous"

func (t Tier) String() string {
	switch t {
	case TierAccept:
		return "accept"
	case TierReview:
		return "review"
	default:
		return "reject"
	}
}

// Color is the legacy spreadsheet name of the tier (green, yellow, gray).
func (t Tier) Color() string {
	switch t {
	case TierAccept:
		return "green"
	case TierReview:
		return "yellow"
	default:
		return "gray"
	}
}

// Status is a tier plus an optional tag, written as "review:ambiguous".
type Status struct {
	Tier Tier
	Tag  string
}

func (s Status) String() string {
	if s.Tag == "" {
		return s.Tier.String()
	}
	return s.Tier.String() + ":" + s.Tag
}

// ParseStatus reads a status cell. Both tier names (accept, review, reject)
// and legacy colors (green, yellow, gray) are accepted, case-insensitively.
// It returns false for empty or unknown values.
func ParseStatus(s string) (Status, bool) {
	name, tag, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	var tier Tier
	switch strings.TrimSpace(name) {
	case "accept", "green":
		tier = TierAccept
	case "review", "yellow":
		tier = TierReview
	case "reject", "gray", "grey":
		tier = TierReject
	default:
		return Status{}, false
	}
	return Status{Tier: tier, Tag: strings.TrimSpace(tag)}, true
}

// MergePrior combines a freshly computed status with the one a previous run
// stored for the same record. The higher tier wins, so a record never moves
// down across runs; on equal tiers the fresh status is kept.
func MergePrior(current Status, prior Status, hasPrior bool) Status {
	if hasPrior && prior.Tier > current.Tier {
		return prior
	}
	return current
}
