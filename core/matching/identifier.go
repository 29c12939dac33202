package matching

import (
	"strconv"
)

// Identifier is a key split into its base id and optional metadata variant.
type Identifier struct {
	ID   string
	Meta *int
}

// ParseIdentifier splits key on a trailing "@" followed by one or two digits.
// Any other suffix, including longer digit runs or non-digits, leaves the whole
// key as the id with no metadata.
func ParseIdentifier(key string) Identifier {
	for _, width := range []int{1, 2} {
		at := len(key) - width - 1
		if at < 0 || key[at] != '@' {
			continue
		}
		suffix := key[at+1:]
		if !allDigits(suffix) {
			break
		}
		meta, err := strconv.Atoi(suffix)
		if err != nil {
			break
		}
		return Identifier{ID: key[:at], Meta: &meta}
	}
	return Identifier{ID: key}
}

// NewIdentifier returns an identifier with an explicit metadata value.
func NewIdentifier(id string, meta int) Identifier {
	return Identifier{ID: id, Meta: &meta}
}

// HasMeta reports whether the identifier carries a metadata variant.
func (i Identifier) HasMeta() bool {
	return i.Meta != nil
}

// String renders the identifier back into key form.
func (i Identifier) String() string {
	if i.Meta == nil {
		return i.ID
	}
	return i.ID + "@" + strconv.Itoa(*i.Meta)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
