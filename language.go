package clipocr

import "sort"

// LanguageSet maps human-readable language display names (as shown in a
// picker UI) to the opaque tags a recognition engine understands, e.g.
// "Japanese" → "jpn". It is plain caller-constructed data: build it from
// whatever language inventory the embedding application has, pass it to
// Scanner.Languages, and select by name with Scanner.LanguageName.
type LanguageSet map[string]string

// Tag returns the engine tag registered for the display name.
func (s LanguageSet) Tag(displayName string) (string, bool) {
	tag, ok := s[displayName]
	return tag, ok
}

// Names returns the display names in sorted order, ready for a picker.
func (s LanguageSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
