// Package recommend builds prompts for named task types, executes them
// against the generative service, and parses the free-form output into
// structured recommendations. It also owns the deterministic fallback set
// returned when generation is skipped or fails.
package recommend
