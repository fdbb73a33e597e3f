package charref

import "github.com/kestrel-parse/html5core/internal/constants"

func legacyLookup(name string) bool {
	return constants.LegacyEntities[name]
}

func constantsNumericReplacement(codePoint int) (rune, bool) {
	r, ok := constants.NumericReplacements[codePoint]
	return r, ok
}
