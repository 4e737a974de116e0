// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Matching constants
const (
	// DefaultNearThreshold is the maximum edit distance for a fuzzy surname match
	DefaultNearThreshold = 2
)

// Processing constants
const (
	// WorkerPoolSize is the default number of parallel workers for per-record stages
	WorkerPoolSize = 4
)

// Lexical resource file names, looked up in the data directory
const (
	WhitelistFile      = "whitelist_surnames.txt"
	SynonymsFile       = "surname_synonyms.csv"
	RejectSurnamesFile = "reject_surnames.txt"
)

// Output file names, written to the output directory
const (
	NormalizedFile     = "normalized.csv"
	ReviewLogFile      = "review_log.txt"
	UniqueGivenFile    = "unique_given.tsv"
	UniqueSurnamesFile = "unique_surnames.tsv"
	PatchedFile        = "normalized_patched.csv"
	PromotionLogFile   = "force_green.tsv"
	InferLogFile       = "infer_log.tsv"
	EnhancedFile       = "normalized_enhanced.csv"
	SurnamesOKFile     = "surnames_ok.tsv"
	SurnamesNearFile   = "surnames_near.tsv"
	SurnamesRejectFile = "surnames_reject.tsv"
	LooksLikeGivenFile = "surnames_looks_like_given.tsv"
	SuggestionsFile    = "surnames_suggestions.tsv"
)

// Record-level columns
const (
	ColArkID          = "arkId"
	ColStatus         = "status"
	ColBlacklistFlag  = "blacklistFlag"
	ColReviewFlag     = "reviewFlag"
	ColBlacklistRsn   = "blacklistReason"
	ColInferenceApply = "surnameInferenceApplied"
)

// Per-role column suffixes
const (
	SuffixWork     = "__work"
	SuffixGiven    = "__given"
	SuffixSurname1 = "__surn1"
	SuffixSurname2 = "__surn2"
)

// Name roles
const (
	RoleSubject  = "fullName"
	RoleFather   = "fatherFullName"
	RoleMother   = "motherFullName"
	RoleSpouse   = "spouseFullName"
	RoleChildren = "childrenFullNames"
	RoleOther    = "otherFullNames"
)

// Roles lists every name role in column order.
var Roles = []string{RoleSubject, RoleFather, RoleMother, RoleSpouse, RoleChildren, RoleOther}

// Archive constants
const (
	// DefaultArchiveDomain is the public site serving ark identifiers
	DefaultArchiveDomain = "https://www.familysearch.org"
	// DefaultArchiveLang is the UI language requested for record links
	DefaultArchiveLang = "es"
)
