package model

// Summary holds the results of one patch run.
type Summary struct {
	GuardLinesDropped int
	ErrorLinesDropped int
	InvocationsQuoted int
	OutputPath        string
}
