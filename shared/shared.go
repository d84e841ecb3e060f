package shared

import (
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// SplitList turns "WiFi, AC,,Desk" into [WiFi AC Desk].
func SplitList(value string) []string {
	items := []string{}

	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		items = append(items, item)
	}

	return items
}

// ParseLeadingInt reads the integer prefix of value after leading whitespace,
// so "800/night" is 800. ok is false when there is no digit to read.
func ParseLeadingInt(value string) (res int, ok bool) {
	value = strings.TrimSpace(value)

	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}

	digitsStart := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	res, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0, false
	}

	return res, true
}

// NewID returns prefix followed by a random UUID.
func NewID(prefix string) string {
	return prefix + uuid.NewString()
}

// NewestFirst returns a reversed copy of an append-ordered collection.
func NewestFirst[T any](items []T) []T {
	res := slices.Clone(items)
	slices.Reverse(res)

	if res == nil {
		return []T{}
	}

	return res
}

// Filter returns the items matching keep, never nil.
func Filter[T any](items []T, keep func(T) bool) []T {
	res := []T{}

	for _, item := range items {
		if keep(item) {
			res = append(res, item)
		}
	}

	return res
}
