package wordlist

import (
	"fmt"

	"github.com/lth/hashcrack/internal/digest"
)

const (
	MinCostFactor     = 4
	MaxCostFactor     = 20
	DefaultCostFactor = 10

	// Cost factors at which the large tiers switch on by themselves.
	UltraCostFactor = 16
	MegaCostFactor  = 18
)

// Scale is the size class of a generated wordlist.
type Scale int

const (
	Normal Scale = iota
	Ultra
	Mega
)

func (s Scale) String() string {
	switch s {
	case Ultra:
		return "ultra"
	case Mega:
		return "mega"
	default:
		return "normal"
	}
}

// Plan sets the bounds of every generator tier. A zero limit disables the
// tier. Plans derived from a higher cost factor or a larger scale never
// shrink a limit, so their output contains the output of smaller plans.
type Plan struct {
	CostFactor int
	Scale      Scale
	Extended   bool // add the extended dictionaries

	NumericLimit int // 0 .. NumericLimit-1
	Pad4Limit    int // zero-padded to 4 digits below this bound
	Pad6Limit    int
	Pad8Limit    int
	Pad10Limit   int

	StartYear, EndYear int
	MonthYear          bool // MMYYYY, YYYYMM
	FullDates          bool // DDMMYYYY, YYYYMMDD, MMDDYYYY, DD/MM/YYYY, MM/DD/YYYY
	ExtraDates         bool // YYYY-MM-DD, DDMMYY

	Suffixes    []string
	Prefixes    []string
	Capitalized bool
	Upper       bool

	LetterNumberLimit int // a0 .. z<limit-1>, upper-case too
	NumberLetterLimit int // 0a .. <limit-1>z, upper-case too
	TwoLetterLimit    int
	ThreeLetterLimit  int
	KeyboardNumbers   bool
	PhoneLimit        int // area code followed by a 7-digit number below this bound
	PhoneAreaFrom     int // inclusive range of extra area codes, 0 disables
	PhoneAreaTo       int
	SpecialWrapWords  int // base words wrapped in special characters
}

var (
	baseSuffixes = []string{"!", "!!", "!!!", "1", "12", "123", "1234", "12345",
		"@", "#", "$", "2023", "2024", "2025", "!@#", "!123", "@123"}
	extendedSuffixes = []string{"%", "^", "&", "*", "123456", "1234567", "12345678",
		"2020", "2021", "2022", "#123", "$123", "!@#$", "1!", "12!", "123!", "1@", "12@", "123@"}

	basePrefixes     = []string{"my", "the", "i", "love", "super", "admin", "user"}
	extendedPrefixes = []string{"test", "new", "old", "big", "small", "hot", "cool", "best", "top"}

	phoneAreaCodes = []string{"000", "111", "123", "555", "999"}
)

// ClampCostFactor forces cf into [MinCostFactor, MaxCostFactor].
func ClampCostFactor(cf int) int {
	return min(max(cf, MinCostFactor), MaxCostFactor)
}

// ValidateCostFactor rejects values outside [MinCostFactor, MaxCostFactor].
func ValidateCostFactor(cf int) error {
	if cf < MinCostFactor || cf > MaxCostFactor {
		return fmt.Errorf("cost factor %d outside [%d, %d]", cf, MinCostFactor, MaxCostFactor)
	}
	return nil
}

// DetectCostFactor suggests a cost factor for a hash family.
func DetectCostFactor(f digest.Family) int {
	switch f {
	case digest.MD5:
		return 10
	case digest.SHA1:
		return 12
	case digest.SHA256:
		return 14
	case digest.SHA384:
		return 16
	case digest.SHA512:
		return 18
	default:
		return DefaultCostFactor
	}
}

// ScaleFor picks the scale from the cost factor and the explicit flags.
func ScaleFor(cf int, ultra, mega bool) Scale {
	switch {
	case mega || cf >= MegaCostFactor:
		return Mega
	case ultra || cf >= UltraCostFactor:
		return Ultra
	default:
		return Normal
	}
}

// PlanFor builds the plan for a cost factor and flags.
func PlanFor(cf int, ultra, mega bool) Plan {
	cf = ClampCostFactor(cf)
	switch ScaleFor(cf, ultra, mega) {
	case Mega:
		return MegaPlan(cf)
	case Ultra:
		return UltraPlan(cf)
	default:
		return NormalPlan(cf)
	}
}

// NormalPlan is the interactive-size plan. The numeric range doubles with
// each cost factor step up to 5M.
func NormalPlan(cf int) Plan {
	cf = ClampCostFactor(cf)
	p := Plan{
		CostFactor:   cf,
		Scale:        Normal,
		NumericLimit: min(10_000<<(cf-MinCostFactor), 5_000_000),
		StartYear:    1950,
		EndYear:      2030,
		Suffixes:     baseSuffixes,
	}
	if cf >= 8 {
		p.Pad4Limit = 10_000
		p.MonthYear = true
		p.Capitalized = true
		p.LetterNumberLimit = 1_000
		p.KeyboardNumbers = true
	}
	if cf >= 10 {
		p.FullDates = true
	}
	if cf >= 12 {
		p.Pad6Limit = 100_000
		p.StartYear = 1900
		p.Upper = true
		p.Prefixes = basePrefixes
		p.PhoneLimit = 1_000
	}
	if cf >= 14 {
		p.LetterNumberLimit = 10_000
		p.TwoLetterLimit = 1_000
		p.SpecialWrapWords = 100
	}
	return p
}

// UltraPlan widens every NormalPlan tier to tens of millions of candidates.
func UltraPlan(cf int) Plan {
	p := NormalPlan(cf)
	p.Scale = Ultra
	p.Extended = true
	p.NumericLimit = max(p.NumericLimit, 10_000_000)
	p.Pad6Limit = max(p.Pad6Limit, 100_000)
	p.Pad8Limit = max(p.Pad8Limit, 100_000)
	p.StartYear = 1900
	p.MonthYear = true
	p.FullDates = true
	p.Suffixes = append(append([]string(nil), baseSuffixes...), extendedSuffixes...)
	p.Prefixes = append(append([]string(nil), basePrefixes...), extendedPrefixes...)
	p.Capitalized = true
	p.Upper = true
	p.LetterNumberLimit = max(p.LetterNumberLimit, 100_000)
	p.NumberLetterLimit = max(p.NumberLetterLimit, 10_000)
	p.TwoLetterLimit = max(p.TwoLetterLimit, 10_000)
	p.KeyboardNumbers = true
	p.PhoneLimit = max(p.PhoneLimit, 1_000)
	p.PhoneAreaFrom, p.PhoneAreaTo = 200, 999
	p.SpecialWrapWords = max(p.SpecialWrapWords, 100)
	return p
}

// MegaPlan extends UltraPlan with three-letter prefixes, deeper numeric
// ranges and extra date layouts.
func MegaPlan(cf int) Plan {
	p := UltraPlan(cf)
	p.Scale = Mega
	p.NumericLimit = max(p.NumericLimit, 20_000_000)
	p.Pad8Limit = max(p.Pad8Limit, 1_000_000)
	p.Pad10Limit = max(p.Pad10Limit, 1_000_000)
	p.ExtraDates = true
	p.ThreeLetterLimit = max(p.ThreeLetterLimit, 100)
	p.PhoneLimit = max(p.PhoneLimit, 10_000)
	return p
}

// Estimate is an upper bound on the number of candidates the plan adds
// before deduplication.
func (p Plan) Estimate() int {
	words := len(TopPasswords) + len(CommonWords) + len(Names)
	if p.Extended {
		words += len(extendedTopPasswords) + len(extendedCommonWords) + len(extendedNames)
	}

	n := words + len(KeyboardPatterns) + len(LeetSubstitutions)
	n += p.NumericLimit + min(p.Pad4Limit, p.NumericLimit) + min(p.Pad6Limit, p.NumericLimit) +
		min(p.Pad8Limit, p.NumericLimit) + min(p.Pad10Limit, p.NumericLimit)

	years := max(p.EndYear-p.StartYear+1, 0)
	dateForms := 1
	if p.MonthYear {
		dateForms += 2 * 12
	}
	if p.FullDates {
		dateForms += 5 * 12 * 31
	}
	if p.ExtraDates {
		dateForms += 2 * 12 * 31
	}
	n += years * dateForms

	n += words * len(p.Suffixes) * 3
	n += words * len(p.Prefixes) * 2
	n += 26*2*p.LetterNumberLimit + 26*2*p.NumberLetterLimit
	n += 26*26*p.TwoLetterLimit + 26*26*26*p.ThreeLetterLimit
	n += 2000 + 3*600 // keyboard walks and leet variations
	areas := len(phoneAreaCodes)
	if p.PhoneAreaFrom > 0 {
		areas += p.PhoneAreaTo - p.PhoneAreaFrom + 1
	}
	n += areas * p.PhoneLimit
	n += p.SpecialWrapWords * 8 * 8 * 2
	return n
}
