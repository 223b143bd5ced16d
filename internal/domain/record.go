package domain

// StatusFail is the status label of a failed boot
const StatusFail = "FAIL"

// Record represents one boot test result as stored by the status store
type Record struct {
	Board     string `json:"board"`
	Tree      string `json:"tree"`
	Branch    string `json:"branch"`
	Version   string `json:"version"`
	Arch      string `json:"arch"`
	Config    string `json:"config"`
	Lab       string `json:"lab"`
	KCIBoard  string `json:"kci_board"` // Board name as known by kernelci
	Link      string `json:"link"`
	Status    string `json:"status"`
	Published string `json:"published"` // ISO-8601, may carry a zone offset
}

// TreeBranch returns the "tree/branch" label shown in reports
func (r Record) TreeBranch() string {
	return r.Tree + "/" + r.Branch
}
