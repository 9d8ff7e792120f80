// Package main provides the entry point for the pagescan CLI.
//
// Pagescan is an HTML document analysis tool. It parses documents into a
// tree, validates their structure, and scores them for SEO, accessibility,
// performance, and readability.
//
// Usage:
//
//	pagescan analyze <file.html>
//	pagescan analyze - < page.html
//
// See --help for all available options.
package main

// main is the entry point for pagescan.
func main() {
	Execute()
}
