package domains

// TransformRequest is a transformation request, arriving over HTTP or the
// message broker. Either job_type_code or job_type_id identifies the job
// type; job_type_id wins when both are set.
type TransformRequest struct {
	RequestID      string                 `json:"request_id,omitempty"`
	APIKey         string                 `json:"api_key,omitempty"`
	SourcePlatform string                 `json:"source_platform" validate:"required"`
	TargetPlatform string                 `json:"target_platform" validate:"required"`
	JobTypeCode    string                 `json:"job_type_code,omitempty"`
	JobTypeID      int                    `json:"job_type_id,omitempty"`
	JobGroupID     int                    `json:"job_group_id,omitempty"`
	Data           map[string]interface{} `json:"data" validate:"required"`
}

// TransformResponse is the broker-side reply, published to
// transform/responses/{request_id}.
type TransformResponse struct {
	RequestID string                 `json:"request_id"`
	Success   bool                   `json:"success"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Error     *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
