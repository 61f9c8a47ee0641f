package dto

type DirectoryMutationRequest struct {
	Type  string `json:"type" validate:"required"`
	Value string `json:"value" validate:"required"`
}

type DirectoryListResponse struct {
	Items []string `json:"items"`
}
