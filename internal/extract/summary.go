// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package extract

// TierSummary aggregates the extracted records of one tier
type TierSummary struct {
	TierID         string  `json:"tier_id" yaml:"tier_id"`
	Records        int     `json:"records" yaml:"records"`
	KnownDurations int     `json:"known_durations" yaml:"known_durations"`
	TotalDuration  float64 `json:"total_duration" yaml:"total_duration"`
}

// Summarize groups records per tier, preserving the order in which
// tiers first appear in the record stream.
func Summarize(records []Record) []TierSummary {
	index := make(map[string]int)
	summaries := make([]TierSummary, 0)

	for i := range records {
		rec := &records[i]
		pos, ok := index[rec.TierID]
		if !ok {
			pos = len(summaries)
			index[rec.TierID] = pos
			summaries = append(summaries, TierSummary{TierID: rec.TierID})
		}
		summaries[pos].Records++
		if rec.Duration != nil {
			summaries[pos].KnownDurations++
			summaries[pos].TotalDuration += *rec.Duration
		}
	}

	return summaries
}
