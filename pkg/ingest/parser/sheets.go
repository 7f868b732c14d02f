package parser

import "strings"

// SelectSheet picks the sheet holding the primary data set: the first
// entry of the ranked preference list that matches any sheet name,
// case-insensitively, wins. With no match the first sheet in
// declaration order is used. Returns "" only for an empty workbook.
func SelectSheet(names []string, preferences []string) string {
	for _, pref := range preferences {
		for _, name := range names {
			if strings.EqualFold(strings.TrimSpace(name), pref) {
				return name
			}
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return ""
}
