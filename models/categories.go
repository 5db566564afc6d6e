package models

import "sort"

// categoryRegistry is the compiled-in set of categories recognised per scope
var categoryRegistry = map[Scope][]string{
	ScopePlatform: {
		"tenant-onboarding-defaults",
		"global-notification-config",
		"system-policies",
		"document-templates",
		"license-policy",
	},
	ScopeTenant: {
		"complaint-rules",
		"job-work-config",
		"notification-preferences",
		"document-templates",
		"product-defaults",
	},
}

// CategoriesFor returns the valid categories for a scope, sorted by name
func CategoriesFor(scope Scope) []string {
	categories := append([]string(nil), categoryRegistry[scope]...)
	sort.Strings(categories)
	return categories
}

// IsValidCategory checks whether a category is registered for the scope
func IsValidCategory(scope Scope, category string) bool {
	for _, c := range categoryRegistry[scope] {
		if c == category {
			return true
		}
	}
	return false
}
