package wordlist

import (
	"context"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/lth/hashcrack/internal/shared"
)

// progressEvery is how many added candidates pass between progress
// callbacks and cancellation checks.
const progressEvery = 100_000

const specialChars = "!@#$%^&*"

var (
	keyboardRows = []string{"1234567890", "qwertyuiop", "asdfghjkl", "zxcvbnm"}
	leetWords    = []string{"password", "admin", "root", "login", "test", "user"}
	leetTables   = []*strings.Replacer{
		strings.NewReplacer("a", "4", "e", "3", "i", "1", "o", "0", "s", "5"),
		strings.NewReplacer("a", "@", "e", "3", "i", "!", "o", "0", "s", "$"),
	}
)

// Options feed caller-owned inputs and observers into generation.
type Options struct {
	// Verified passwords are placed first.
	Verified *VerifiedStore
	// External entries are appended after the generated tiers.
	External []string

	Logger     *log.Logger
	OnLog      func(msg string)
	OnProgress func(count, generated int)
}

type builder struct {
	ctx       context.Context
	set       *Set
	generated int
	err       error
	opts      Options
	logger    *log.Logger
}

func (b *builder) add(v string) {
	b.set.Add(v)
	b.generated++
	if b.generated%progressEvery != 0 {
		return
	}
	if err := b.ctx.Err(); err != nil {
		b.err = err
	}
	if b.opts.OnProgress != nil {
		b.opts.OnProgress(b.set.Len(), b.generated)
	}
}

func (b *builder) addAll(vs []string) {
	for _, v := range vs {
		b.add(v)
	}
}

func (b *builder) ok() bool { return b.err == nil }

func (b *builder) logf(msg string, keyvals ...any) {
	b.logger.Debug(msg, keyvals...)
	if b.opts.OnLog != nil {
		b.opts.OnLog(msg)
	}
}

type tier struct {
	name string
	fn   func(*builder, Plan)
}

var tiers = []tier{
	{"dictionaries", addDictionaries},
	{"numeric", addNumeric},
	{"dates", addDates},
	{"word combinations", addWordCombinations},
	{"letter-number", addLetterNumbers},
	{"keyboard walks", addKeyboardWalks},
	{"leet variations", addLeetVariations},
	{"phone numbers", addPhoneNumbers},
	{"special wraps", addSpecialWraps},
}

// Generate materializes the candidate list for p in the calling goroutine.
// It stops early only when ctx is cancelled.
func Generate(ctx context.Context, p Plan, opts Options) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = shared.Logger
	}

	b := &builder{
		ctx:    ctx,
		set:    NewSet(min(p.Estimate(), 1<<24)),
		opts:   opts,
		logger: logger,
	}

	if opts.Verified != nil {
		b.addAll(opts.Verified.All())
	}

	b.logf("Generating wordlist", "cost_factor", p.CostFactor, "scale", p.Scale)
	for _, t := range tiers {
		if !b.ok() {
			break
		}
		t.fn(b, p)
		b.logf("Generated "+t.name, "total", b.set.Len())
	}

	if b.ok() && len(opts.External) > 0 {
		local := b.set.Len()
		b.addAll(opts.External)
		b.logf("Merged external wordlist", "local", local, "external", len(opts.External), "total", b.set.Len())
	}

	if !b.ok() {
		return nil, b.err
	}

	logger.Info("Wordlist ready", "passwords", humanize.Comma(int64(b.set.Len())),
		"cost_factor", p.CostFactor, "scale", p.Scale)
	if opts.OnProgress != nil {
		opts.OnProgress(b.set.Len(), b.generated)
	}
	return b.set.Items(), nil
}

func baseWords(p Plan) []string {
	words := make([]string, 0, len(TopPasswords)+len(CommonWords)+len(Names))
	words = append(words, TopPasswords...)
	words = append(words, CommonWords...)
	words = append(words, Names...)
	if p.Extended {
		words = append(words, extendedTopPasswords...)
		words = append(words, extendedCommonWords...)
		words = append(words, extendedNames...)
	}
	return words
}

func addDictionaries(b *builder, p Plan) {
	b.addAll(baseWords(p))
	b.addAll(KeyboardPatterns)
	b.addAll(LeetSubstitutions)
}

func addNumeric(b *builder, p Plan) {
	for i := 0; i < p.NumericLimit && b.ok(); i++ {
		s := strconv.Itoa(i)
		b.add(s)
		if i < p.Pad4Limit {
			b.add(pad(s, 4))
		}
		if i < p.Pad6Limit {
			b.add(pad(s, 6))
		}
		if i < p.Pad8Limit {
			b.add(pad(s, 8))
		}
		if i < p.Pad10Limit {
			b.add(pad(s, 10))
		}
	}
}

func addDates(b *builder, p Plan) {
	for year := p.StartYear; year <= p.EndYear && b.ok(); year++ {
		y := strconv.Itoa(year)
		b.add(y)
		if !p.MonthYear && !p.FullDates && !p.ExtraDates {
			continue
		}
		for month := 1; month <= 12; month++ {
			m := pad(strconv.Itoa(month), 2)
			if p.MonthYear {
				b.add(m + y)
				b.add(y + m)
			}
			if !p.FullDates && !p.ExtraDates {
				continue
			}
			for day := 1; day <= 31; day++ {
				d := pad(strconv.Itoa(day), 2)
				if p.FullDates {
					b.add(d + m + y)
					b.add(y + m + d)
					b.add(m + d + y)
					b.add(d + "/" + m + "/" + y)
					b.add(m + "/" + d + "/" + y)
				}
				if p.ExtraDates {
					b.add(y + "-" + m + "-" + d)
					b.add(d + m + y[2:])
				}
			}
		}
	}
}

func addWordCombinations(b *builder, p Plan) {
	for _, word := range baseWords(p) {
		if !b.ok() {
			return
		}
		title := capitalize(word)
		upper := strings.ToUpper(word)
		for _, suffix := range p.Suffixes {
			b.add(word + suffix)
			if p.Capitalized {
				b.add(title + suffix)
			}
			if p.Upper {
				b.add(upper + suffix)
			}
		}
		for _, prefix := range p.Prefixes {
			b.add(prefix + word)
			b.add(prefix + title)
		}
	}
}

func addLetterNumbers(b *builder, p Plan) {
	for l := 'a'; l <= 'z' && b.ok(); l++ {
		lower, upper := string(l), string(unicode.ToUpper(l))
		for j := 0; j < p.LetterNumberLimit; j++ {
			n := strconv.Itoa(j)
			b.add(lower + n)
			b.add(upper + n)
		}
		for j := 0; j < p.NumberLetterLimit; j++ {
			n := strconv.Itoa(j)
			b.add(n + lower)
			b.add(n + upper)
		}
	}

	if p.TwoLetterLimit > 0 {
		for l1 := 'a'; l1 <= 'z' && b.ok(); l1++ {
			for l2 := 'a'; l2 <= 'z'; l2++ {
				prefix := string([]rune{l1, l2})
				for k := 0; k < p.TwoLetterLimit; k++ {
					b.add(prefix + strconv.Itoa(k))
				}
			}
		}
	}

	if p.ThreeLetterLimit > 0 {
		for l1 := 'a'; l1 <= 'z' && b.ok(); l1++ {
			for l2 := 'a'; l2 <= 'z'; l2++ {
				for l3 := 'a'; l3 <= 'z'; l3++ {
					prefix := string([]rune{l1, l2, l3})
					for k := 0; k < p.ThreeLetterLimit; k++ {
						b.add(prefix + strconv.Itoa(k))
					}
				}
			}
		}
	}
}

func addKeyboardWalks(b *builder, p Plan) {
	for _, row := range keyboardRows {
		for i := 0; i < len(row)-2; i++ {
			for length := 3; length <= min(10, len(row)-i); length++ {
				walk := row[i : i+length]
				upper := strings.ToUpper(walk)
				b.add(walk)
				b.add(upper)
				if !p.KeyboardNumbers {
					continue
				}
				for num := 0; num < 100; num++ {
					n := strconv.Itoa(num)
					b.add(walk + n)
					b.add(upper + n)
				}
			}
		}
	}
}

func addLeetVariations(b *builder, _ Plan) {
	for _, word := range leetWords {
		variations := []string{word}
		for _, r := range leetTables {
			variations = append(variations, r.Replace(word))
		}
		for _, v := range variations {
			title := capitalize(v)
			b.add(v)
			b.add(title)
			b.add(strings.ToUpper(v))
			for i := 0; i < 100; i++ {
				n := strconv.Itoa(i)
				b.add(v + n)
				b.add(title + n)
			}
		}
	}
}

func addPhoneNumbers(b *builder, p Plan) {
	if p.PhoneLimit <= 0 {
		return
	}
	areas := append([]string(nil), phoneAreaCodes...)
	if p.PhoneAreaFrom > 0 {
		for area := p.PhoneAreaFrom; area <= p.PhoneAreaTo; area++ {
			areas = append(areas, strconv.Itoa(area))
		}
	}
	for _, area := range areas {
		if !b.ok() {
			return
		}
		for n := 0; n < p.PhoneLimit; n++ {
			b.add(area + pad(strconv.Itoa(n), 7))
		}
	}
}

func addSpecialWraps(b *builder, p Plan) {
	words := baseWords(p)
	for _, word := range words[:min(p.SpecialWrapWords, len(words))] {
		for _, c1 := range specialChars {
			for _, c2 := range specialChars {
				b.add(string(c1) + word + string(c2))
				b.add(word + string(c1) + string(c2))
			}
		}
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
