package impl

import (
	"regexp"
	"strconv"
	"strings"

	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
)

// maxPortions caps a single line so a typo cannot drain the pantry.
const maxPortions = 1000

var (
	leadingQuantity  = regexp.MustCompile(`^(\d+)(?:\s+[xX×*]\s+|[xX×*]\s*)(\S.*)$`)
	trailingQuantity = regexp.MustCompile(`^(.*\S)\s+[xX×*]\s*(\d+)$`)
)

// dishLine is one dish of a request with its aggregated portion count.
type dishLine struct {
	Name     string // As first written.
	Key      string // Lower-cased name used for lookups.
	Quantity int
}

// parseDishRequest splits a free-text request such as "2 x Bread, Soup x3; Tea"
// into lines. Entries are separated by commas, semicolons or newlines; repeated
// dishes are merged case-insensitively in order of first appearance.
func parseDishRequest(request string) ([]dishLine, error) {
	entries := strings.FieldsFunc(request, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})

	lines := make([]dishLine, 0, len(entries))
	index := make(map[string]int, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, quantity, err := parseDishEntry(entry)
		if err != nil {
			return nil, err
		}

		key := entity.DishNameKey(name)
		if i, ok := index[key]; ok {
			lines[i].Quantity += quantity
			if lines[i].Quantity > maxPortions {
				return nil, domainerrors.ErrValidationFailed.WithDetails("too many portions of " + strconv.Quote(lines[i].Name))
			}

			continue
		}

		index[key] = len(lines)
		lines = append(lines, dishLine{Name: name, Key: key, Quantity: quantity})
	}

	if len(lines) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dish request names no dish")
	}

	return lines, nil
}

func parseDishEntry(entry string) (string, int, error) {
	name, count := entry, "1"
	if m := leadingQuantity.FindStringSubmatch(entry); m != nil {
		count, name = m[1], m[2]
	} else if m := trailingQuantity.FindStringSubmatch(entry); m != nil {
		name, count = m[1], m[2]
	}

	name = strings.Join(strings.Fields(name), " ")

	quantity, err := strconv.Atoi(count)
	if err != nil || quantity <= 0 || quantity > maxPortions {
		return "", 0, domainerrors.ErrValidationFailed.WithDetails("invalid quantity in " + strconv.Quote(entry))
	}

	return name, quantity, nil
}
