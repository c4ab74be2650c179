// Package pipeline implements the Snudown-to-HTML side of the module.
//
// The stages run before extraction:
//   - Markdown preprocessing (line normalization, >!spoiler!< syntax,
//     headings written without a space)
//   - Markdown to HTML compilation via Goldmark, with tables, strikethrough,
//     autolinks and r/ u/ platform links
//   - Sanitizing pre-rendered platform body_html and resolving its
//     site-relative links
//
// The root snudown package consumes the HTML fragments produced here and
// never looks at markdown itself.
package pipeline
