package dto

type FileUpload struct {
	FileId   string `json:"file_id" validate:"required"`
	FileName string `json:"file_name" validate:"required"`
	FileUrl  string `json:"file_url" validate:"required"`
	CourseId string `json:"course_id" validate:"required"`
}

type UploadFilesRequest struct {
	Files []FileUpload `json:"files" validate:"required,min=1,dive"`
}

// FileOutcome reports what happened to one uploaded file end to end.
type FileOutcome struct {
	FileId      string `json:"file_id"`
	FileName    string `json:"file_name"`
	CourseId    string `json:"course_id"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ChunkCount  int    `json:"chunk_count"`
	ChunksSaved int    `json:"chunks_saved"`
}

// BatchOutcome reports one vector store write attempt.
type BatchOutcome struct {
	BatchIndex int    `json:"batch_index"`
	ChunkCount int    `json:"chunk_count"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// IngestionAuditMessage is the payload published on the ingestion topic and
// persisted by the audit consumer.
type IngestionAuditMessage struct {
	FileId     string `json:"file_id"`
	FileName   string `json:"file_name"`
	CourseId   string `json:"course_id"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ChunkCount int    `json:"chunk_count"`
}

type UploadFilesResponse struct {
	Files        []FileOutcome  `json:"files"`
	Batches      []BatchOutcome `json:"batches"`
	ChunksSaved  int            `json:"chunks_saved"`
	ChunksFailed int            `json:"chunks_failed"`
}
