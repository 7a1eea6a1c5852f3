package entity

// IdentityRequest - тело POST /jwt: произвольные данные, которые попадут в claims
type IdentityRequest map[string]interface{}

// TokenResponse - ответ POST /jwt
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateMessageRequest - тело PUT /my-review/:id
type UpdateMessageRequest struct {
	Message string `json:"message"`
}

// DataResponse - успешный ответ с данными: {success:true, data}
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// SuccessResponse - успешный ответ с сообщением: {success:true, message}
type SuccessResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	InsertedID string `json:"insertedId,omitempty"`
}

// ErrorResponse - ответ об ошибке: {success:false, error}
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// StatusErrorResponse - ответ об ошибке чтения services: {success:false, status:"error", message}
type StatusErrorResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewDataResponse(data interface{}) DataResponse {
	return DataResponse{Success: true, Data: data}
}

func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

func NewStatusErrorResponse(message string) StatusErrorResponse {
	return StatusErrorResponse{Success: false, Status: "error", Message: message}
}
