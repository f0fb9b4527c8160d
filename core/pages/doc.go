// Package pages holds the HTML pages the server synthesizes: the 404 page,
// directory indexes and the wrapper documents for images and Markdown.
// Pages are templ components; Render turns one into a string when it has to
// pass through the inliner before being sent.
package pages
