// Package batch runs the frame pipeline over many photos concurrently:
// per file it resolves metadata, decodes with orientation correction,
// renders the selected style and encodes the result next to the original.
// One photo's failure never aborts the batch; progress is reported through
// a caller-supplied callback.
package batch

// Status classifies the outcome of one pipeline step for one file.
type Status string

const (
	// StatusProcessing is emitted when a file's pipeline starts.
	StatusProcessing Status = "processing"

	// StatusDone is emitted after a successful export; the event message
	// carries the output path.
	StatusDone Status = "done"

	// StatusSkipped marks files left untouched on purpose, currently
	// only those without EXIF metadata.
	StatusSkipped Status = "skipped"

	// StatusFailed marks files whose pipeline errored; the event message
	// carries the error text.
	StatusFailed Status = "failed"
)

// Event is one progress notification. Current and Total position the file
// within the batch; Message is the output path for StatusDone and the
// error or reason text otherwise.
type Event struct {
	Current int
	Total   int
	Path    string
	Status  Status
	Message string
}
