package classify

import (
	"github.com/adriandez/de-zamacona-data/internal/lexicon"
	"github.com/adriandez/de-zamacona-data/internal/textnorm"
)

// PromotionAction is the outcome of one promotion decision.
type PromotionAction string

const (
	ActionPromote   PromotionAction = "promote"
	ActionPreserve  PromotionAction = "preserve"
	ActionAmbiguous PromotionAction = "ambiguous"
	ActionExcluded  PromotionAction = "excluded"
	ActionNone      PromotionAction = "none"
)

// Promotion reason codes.
const (
	ReasonPreserved           = "keep:accept"
	ReasonAmbiguousExact      = "skip:ambiguous:blacklist+exact"
	ReasonAmbiguousSynonym    = "skip:ambiguous:blacklist+syn"
	ReasonBlacklisted         = "skip:blacklist"
	ReasonForcedExact         = "force:target:exact"
	ReasonForcedStrongSynonym = "force:target:syn-strong"
	ReasonNoMatch             = "skip:no-match"
)

// Promotion is the new status of a record and why it was chosen.
type Promotion struct {
	Status Status
	Action PromotionAction
	Reason string
}

// Promoter upgrades non-accepted records whose full name names the target
// surname. It never lowers a tier, and applying it to its own output
// changes nothing.
type Promoter struct {
	lex *lexicon.Lexicon
}

// NewPromoter creates a Promoter over lex.
func NewPromoter(lex *lexicon.Lexicon) *Promoter {
	return &Promoter{lex: lex}
}

// Promote decides the status of a record from its current status and its
// normalized full name.
func (p *Promoter) Promote(current Status, fullName string) Promotion {
	if current.Tier == TierAccept {
		return Promotion{Status: current, Action: ActionPreserve, Reason: ReasonPreserved}
	}

	text := textnorm.LettersOnly(fullName)
	bad := containsAny(text, p.lex.PromotionBlacklist)
	exact := textnorm.ContainsWord(text, p.lex.TargetKey())
	strong := containsAny(text, p.lex.StrongSynonyms)

	ambiguous := Status{Tier: TierReview, Tag: TagAmbiguous}
	switch {
	case bad && exact:
		return Promotion{Status: ambiguous, Action: ActionAmbiguous, Reason: ReasonAmbiguousExact}
	case bad && strong:
		return Promotion{Status: ambiguous, Action: ActionAmbiguous, Reason: ReasonAmbiguousSynonym}
	case bad:
		return Promotion{Status: current, Action: ActionExcluded, Reason: ReasonBlacklisted}
	case exact:
		return Promotion{Status: Status{Tier: TierAccept}, Action: ActionPromote, Reason: ReasonForcedExact}
	case strong:
		return Promotion{Status: Status{Tier: TierAccept}, Action: ActionPromote, Reason: ReasonForcedStrongSynonym}
	default:
		return Promotion{Status: current, Action: ActionNone, Reason: ReasonNoMatch}
	}
}

func containsAny(text string, words lexicon.Set) bool {
	for w := range words {
		if textnorm.ContainsWord(text, w) {
			return true
		}
	}
	return false
}
