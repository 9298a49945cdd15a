// Package classify decides which reconstruction strategy applies to a
// tokenized clipboard paste.
//
// Four structural detectors examine the first rows of the tokenized input:
//
//   - [DetectSplitRows] - rank numbers rendered on their own physical line
//   - [DetectSpanningHeader] - a wide header row over a short sub-header row
//   - [DetectMultilineHeader] - header text broken across physical lines,
//     typically carrying bracketed unit annotations
//   - [DetectWikipediaStyle] - footnote markers, unit tokens, coordinates, or
//     irregular early column counts
//
// The detectors are not mutually exclusive; [Classify] applies them in a fixed
// priority order and returns the single [Kind] whose strategy should run.
//
// # Configuration
//
// Detector behavior is controlled by [Config]:
//
//	cfg := classify.DefaultConfig()
//	cfg.MinSplitPairs = 3
//	kind := classify.Classify(rows, maxCols, cfg)
//
// The thresholds are empirically tuned against a corpus of real Wikipedia and
// spreadsheet pastes. They are exposed for tuning, not load-bearing
// architecture.
package classify
