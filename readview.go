// Package readview extracts the primary readable content of an HTML page:
// the article body, its title, a lead paragraph and a representative image.
// Navigation, ads, comments and other boilerplate are discarded so the result
// can be rendered in a reading view.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. The extraction pipeline lives in readability/;
// collaborators live in subdirectories named after their primary dependency
// (e.g., goquery/, bluemonday/, charset/, trafilatura/).
package readview
