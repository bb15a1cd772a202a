// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The search pipeline lives here:
//
//	catalog -> IndexBuilder -> []SearchRecord -> Search -> []SearchResult
//	result -> NavigationService.Select -> handoff -> DetailService.Load
//
// Services are pure Go with no CGO. Beyond the ports they only use
// golang.org/x/text for Unicode normalisation.
package services
