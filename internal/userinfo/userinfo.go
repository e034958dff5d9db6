// Package userinfo extracts the user's name and date of birth from a single
// free-text answer.
package userinfo

import (
	"regexp"
	"strings"
)

// Profile is the information collected at the start of a conversation.
// It is filled once and not modified afterwards.
type Profile struct {
	Name        string
	DateOfBirth string
}

var (
	// 2-4 consecutive capitalised tokens, bounded by start/space and space/end.
	namePattern = regexp.MustCompile(`( |^)[A-Z][a-zA-Z.\-&']*( [A-Z][A-Za-z.\-&']*){1,3}( |$)`)

	// MM/DD/YY. Days are range-checked only, not against the month.
	dobPattern = regexp.MustCompile(`( |^)(0[1-9]|1[0-2])/(0[1-9]|[12][0-9]|3[01])/[0-9][0-9]( |$)`)
)

// Extract returns the first name-like span and the first MM/DD/YY date found
// in text. A field that cannot be found is returned as "".
func Extract(text string) (name, dob string) {
	return find(namePattern, text), find(dobPattern, text)
}

// Parse is Extract returning a Profile and whether both fields were found.
func Parse(text string) (Profile, bool) {
	name, dob := Extract(text)
	return Profile{Name: name, DateOfBirth: dob}, name != "" && dob != ""
}

// FirstName returns the first token of a full name.
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func find(re *regexp.Regexp, text string) string {
	m := re.FindString(text)
	if m == "" {
		return ""
	}
	// The boundary groups capture at most one space on each side.
	m = strings.TrimPrefix(m, " ")
	m = strings.TrimSuffix(m, " ")
	return m
}
