// Package modifier turns raw item modifier text into a (template, magnitude)
// pair suitable for feature extraction.
//
// "+12% to Fire Resistance" becomes template "+X% to Fire Resistance" with
// magnitude 12. Mods with two numbers ("Adds 4 to 9 Physical Damage") get
// both substituted ("Adds X to Y Physical Damage") and the magnitude is the
// mean of the pair. Mods with no numbers keep their text verbatim and carry a
// sentinel magnitude of 1.0 so their presence is still visible downstream.
package modifier

import (
	"regexp"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

var numberPattern = regexp.MustCompile(`(\d+\.?\d*)`)

// PresenceMagnitude marks mods that carry no number of their own.
const PresenceMagnitude = 1.0

// Parser caches parsed modifier text. Mod text repeats heavily across items
// in the same category, so even a small cache removes most of the regex work.
type Parser struct {
	cache *lru.Cache[string, domain.Modifier]
}

// DefaultCacheSize holds the distinct mod templates of a typical league
// comfortably.
const DefaultCacheSize = 4096

// NewParser returns a Parser with a cache of the given size. Size <= 0 falls
// back to DefaultCacheSize.
func NewParser(size int) (*Parser, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, domain.Modifier](size)
	if err != nil {
		return nil, err
	}
	return &Parser{cache: cache}, nil
}

// Parse converts raw modifier text into its template form and magnitude.
func (p *Parser) Parse(text string) domain.Modifier {
	if mod, ok := p.cache.Get(text); ok {
		return mod
	}
	mod := parse(text)
	p.cache.Add(text, mod)
	return mod
}

// ParseAll parses a slice of raw modifier lines in order.
func (p *Parser) ParseAll(lines []string) []domain.Modifier {
	if len(lines) == 0 {
		return nil
	}
	mods := make([]domain.Modifier, 0, len(lines))
	for _, line := range lines {
		mods = append(mods, p.Parse(line))
	}
	return mods
}

func parse(text string) domain.Modifier {
	numbers := numberPattern.FindAllString(text, -1)
	if len(numbers) == 0 {
		return domain.Modifier{Template: text, Magnitude: PresenceMagnitude}
	}

	template := strings.Replace(text, numbers[0], "X", 1)
	first, _ := strconv.ParseFloat(numbers[0], 64)
	if len(numbers) == 1 {
		return domain.Modifier{Template: template, Magnitude: first}
	}

	// Mods with three or more numbers are rare; the first two carry the roll.
	template = strings.Replace(template, numbers[1], "Y", 1)
	second, _ := strconv.ParseFloat(numbers[1], 64)
	return domain.Modifier{Template: template, Magnitude: (first + second) / 2}
}
