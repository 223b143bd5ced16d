package render

import (
	"fmt"
	"strings"

	"kcisum/internal/domain"
)

// Row is one line of the summary table
type Row struct {
	Board   string
	Tree    string // "tree/branch"
	Version string
	Config  string
	BootLog string
	Link    string
	Status  string
}

// BootLogURL returns the kernelci storage URL of the boot log for r.
// Fields are substituted verbatim.
func BootLogURL(base string, r domain.Record) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s/lab-%s/boot-%s.html",
		strings.TrimRight(base, "/"), r.Tree, r.Branch, r.Version, r.Arch, r.Config, r.Lab, r.KCIBoard)
}

// NewRow builds the table row for r
func NewRow(base string, r domain.Record) Row {
	return Row{
		Board:   r.Board,
		Tree:    r.TreeBranch(),
		Version: r.Version,
		Config:  r.Config,
		BootLog: BootLogURL(base, r),
		Link:    r.Link,
		Status:  r.Status,
	}
}
