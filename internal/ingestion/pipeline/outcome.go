package pipeline

// FileOutcome is the per-workbook summary the orchestrator reports. A
// skipped file is not an error at the run level; SkipReason says why.
type FileOutcome struct {
	File  string `json:"file"`
	Cycle string `json:"cycle,omitempty"`

	SelfCards        int `json:"self_cards"`
	SelfRowsSkipped  int `json:"self_rows_skipped"`
	PeerGroups       int `json:"peer_groups"`
	PeerGroupsFailed int `json:"peer_groups_failed"`
	PeerRowsSkipped  int `json:"peer_rows_skipped"`
	Nominations      int `json:"nominations"`
	NominationErrors int `json:"nomination_errors"`

	Skipped    bool   `json:"skipped"`
	SkipReason string `json:"skip_reason,omitempty"`

	// Errors collects caught unit-level failures (a rolled-back assessment
	// transaction, a failed peer group) for the run diagnostics.
	Errors []string `json:"errors,omitempty"`
}

// Partial reports whether the file landed with some units sacrificed.
func (o *FileOutcome) Partial() bool {
	return o.SelfRowsSkipped > 0 || o.PeerGroupsFailed > 0 ||
		o.PeerRowsSkipped > 0 || o.NominationErrors > 0 || len(o.Errors) > 0
}

// RunOutcome aggregates a bulk run across files.
type RunOutcome struct {
	Files       []*FileOutcome `json:"files"`
	FilesFailed int            `json:"files_failed"`
}

func (r *RunOutcome) TotalSelfCards() int {
	var n int
	for _, f := range r.Files {
		n += f.SelfCards
	}
	return n
}

func (r *RunOutcome) TotalNominations() int {
	var n int
	for _, f := range r.Files {
		n += f.Nominations
	}
	return n
}
