// Package normalisers converts catalog markup into plain text.
// Rich-text item fields (contains, features, reference_info) are stored as
// HTML and must be reduced to their visible text before they are indexed
// or shown in a terminal.
package normalisers
