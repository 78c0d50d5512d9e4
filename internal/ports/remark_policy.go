package ports

// Port: decides whether a driving segment's free-text remark is notable
// enough to earn a label under the grid. Pluggable so the keyword
// heuristic can be replaced without touching layout logic.
type RemarkPolicy interface {
	Notable(remark string) bool
}
