package csvio

import "strings"

// ProviderDV selects the DV-specific export quirks: a "Report Time" footer
// that terminates the data section, and a spurious leading tier separator
// in category paths.
const ProviderDV = "dv"

// footerToken marks the start of the DV footer block.
const footerToken = "report time"

// IsFooter reports whether line is the provider's footer, meaning the scan
// must stop and everything after the line be ignored. Always false for
// providers other than "dv".
func IsFooter(provider, line string) bool {
	if provider != ProviderDV {
		return false
	}
	return strings.HasPrefix(strings.ToLower(line), footerToken)
}

// FixCategoryPath removes the first occurrence of sep from a category path
// for provider "dv", whose exports prepend a spurious separator that would
// otherwise yield an empty leading tier. Only the first occurrence goes;
// interior separators are real tier boundaries.
func FixCategoryPath(provider, category string, sep byte) string {
	if provider != ProviderDV {
		return category
	}
	return strings.Replace(category, string(sep), "", 1)
}
