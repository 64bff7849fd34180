package menu

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxItems caps one extraction run; every surviving candidate costs a
// downstream image-generation call.
const MaxItems = 10

var (
	priceRe    = regexp.MustCompile(`\$\d+\.?\d*`)
	stopwordRe = regexp.MustCompile(`(?i)^(the|and|or|with|from)$`)
)

// Section headers and boilerplate that never name a dish.
var skipWords = []string{"menu", "appetizers", "entrees", "desserts", "drinks", "beverages"}

// ExtractItems splits raw OCR text into dish candidates. It is a
// heuristic pass with no correctness guarantee: keep anything that looks
// like a dish line, drop headers and fragments. It never fails; text
// with no usable lines yields an empty slice.
func ExtractItems(rawText string) []Item {
	items := make([]Item, 0, MaxItems)

	for _, line := range strings.Split(rawText, "\n") {
		if len(items) == MaxItems {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			continue
		}

		price := priceRe.FindString(line)

		name := line
		if price != "" {
			name = line[:strings.Index(line, price)]
		}
		name = strings.TrimSpace(name)
		if len(name) > 50 {
			name = strings.TrimSpace(name[:50])
		}

		// Re-check after price removal and truncation.
		if len(name) < 3 || stopwordRe.MatchString(name) {
			continue
		}

		items = append(items, Item{
			ID:    fmt.Sprintf("item-%d", len(items)+1),
			Name:  name,
			Price: price,
		})
	}

	return items
}

func isSectionHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range skipWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
