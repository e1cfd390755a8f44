// Package sitecrawl provides a single-site web crawler.
// It walks a website breadth-first from a base URL, stays within the base
// URL's host, records the URL and title of every page it fetches, and exports
// the collected results as delimited text or a spreadsheet.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, excelize/).
package sitecrawl
