// Package exchange multiplexes every domain's stored state into one export
// document and restores a document back into the store.
//
// Import is staged: all seven blocks are split and decoded in memory first,
// and the store is written only when every block succeeded. A broken document
// therefore leaves the stored session untouched.
package exchange
