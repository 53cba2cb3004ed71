package reference

import "strings"

// Author is one author on a cited work.
type Author struct {
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}

// String renders "First Last", or just "Last" when First is empty.
func (a Author) String() string {
	if a.First == "" {
		return a.Last
	}
	return a.First + " " + a.Last
}

// ParseAuthorList parses the free-form authors field of a SET Citation
// tuple (spec.md §4.2's `SET Citation = {..., <authors>, ...}`) into
// individual Authors. The list is split on "|" (BEL's conventional
// separator) when the field contains one, otherwise on ","; each non-empty
// part is parsed by parseAuthorName.
func ParseAuthorList(raw string) []Author {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var parts []string
	switch {
	case strings.Contains(raw, "|"):
		parts = strings.Split(raw, "|")
	default:
		parts = strings.Split(raw, ",")
	}

	authors := make([]Author, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		authors = append(authors, parseAuthorName(p))
	}
	return authors
}

// parseAuthorName parses a single author name in "First Last" form,
// splitting at the last space. A name that contains a comma or no space
// is stored whole as Last.
func parseAuthorName(input string) Author {
	input = strings.TrimSpace(input)

	if idx := strings.Index(input, " "); idx > 0 && !strings.Contains(input, ",") {
		parts := strings.Fields(input)
		if len(parts) > 1 {
			last := parts[len(parts)-1]
			first := strings.Join(parts[:len(parts)-1], " ")
			return Author{First: first, Last: last}
		}
	}

	return Author{Last: input}
}
