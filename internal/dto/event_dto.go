package dto

// PublishSummarizeDocumentMessage asks the background consumer to produce a
// summary for an ingested document.
type PublishSummarizeDocumentMessage struct {
	FileName string `json:"file_name"`
}
