package semantic

import "github.com/jonathan/resume-scanner/internal/types"

// candidate pairs an extracted keyword with its embedding.
type candidate struct {
	keyword types.Keyword
	vector  []float32
}

// clusterCandidates collapses near-duplicate phrasings ("ci/cd pipeline" vs
// "continuous integration pipeline"). Candidates must arrive sorted by
// frequency descending; walking the list, each unclustered candidate seeds a
// cluster that absorbs every later unclustered candidate within threshold.
// The seed — the highest-frequency member — is the representative kept.
func clusterCandidates(cands []candidate, threshold float64) []candidate {
	if len(cands) <= 1 {
		return cands
	}
	absorbed := make([]bool, len(cands))
	kept := make([]candidate, 0, len(cands))
	for i := range cands {
		if absorbed[i] {
			continue
		}
		kept = append(kept, cands[i])
		for j := i + 1; j < len(cands); j++ {
			if absorbed[j] {
				continue
			}
			if CosineSimilarity(cands[i].vector, cands[j].vector) >= threshold {
				absorbed[j] = true
			}
		}
	}
	return kept
}
