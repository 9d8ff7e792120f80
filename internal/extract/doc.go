// Package extract provides read-only extraction passes over a document tree.
//
// Each extractor is a pure function from a tree to one facet of
// structured data: metadata, headings, images, links, scripts, styles,
// sections, or text content. Extractors are independent of each other,
// idempotent, and order-preserving: every slice they return follows
// document order.
//
// Design decision: Extractors return freshly constructed values rather
// than references into the tree because:
//  1. The tree snapshot stays frozen for the lifetime of the call
//  2. Reports can outlive the tree without keeping it reachable
//  3. Analyzers never need the tree at all, only extractor outputs
//
// Per-element problems (a malformed JSON-LD block, a missing attribute)
// are never errors; they surface as counted fields in the extracted data.
package extract
